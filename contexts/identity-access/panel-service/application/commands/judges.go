package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"artjury/contexts/identity-access/panel-service/domain/entities"
	domainerrors "artjury/contexts/identity-access/panel-service/domain/errors"
	"artjury/contexts/identity-access/panel-service/ports"
	"artjury/internal/shared/access"
	"artjury/internal/shared/logging"
	"artjury/internal/shared/validation"
)

type CreateJudgeCommand struct {
	Username   string
	Name       string
	Password   string
	Categories []string
}

// UpdateJudgeCommand replaces username, name and categories. An empty
// Password keeps the current credential.
type UpdateJudgeCommand struct {
	JudgeID    string
	Username   string
	Name       string
	Password   string
	Categories []string
}

type JudgeUseCase struct {
	Repository ports.PanelRepository
	Hasher     ports.PasswordHasher
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

func (uc JudgeUseCase) CreateJudge(ctx context.Context, actor access.Actor, cmd CreateJudgeCommand) (entities.Judge, error) {
	logger := logging.OrDefault(uc.Logger)
	if err := access.RequireAdmin(actor); err != nil {
		return entities.Judge{}, err
	}
	username, name, categories, err := validateJudgeFields(cmd.Username, cmd.Name, cmd.Categories)
	if err != nil {
		return entities.Judge{}, err
	}
	if err := validatePassword(cmd.Password, true); err != nil {
		return entities.Judge{}, err
	}
	if err := uc.ensureUsernameFree(ctx, username, ""); err != nil {
		return entities.Judge{}, err
	}

	hash, err := uc.Hasher.Hash(cmd.Password)
	if err != nil {
		return entities.Judge{}, err
	}
	id, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Judge{}, err
	}
	now := uc.now()
	judge := entities.Judge{
		JudgeID:      id,
		Username:     username,
		Name:         name,
		PasswordHash: hash,
		Categories:   categories,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.Repository.CreateJudge(ctx, judge); err != nil {
		return entities.Judge{}, err
	}

	logger.Info("judge created",
		"event", "panel_judge_created",
		"module", "identity-access/panel-service",
		"layer", "application",
		"judge_id", judge.JudgeID,
		"username", judge.Username,
		"categories", access.CategoryStrings(judge.Categories),
	)
	return judge, nil
}

func (uc JudgeUseCase) UpdateJudge(ctx context.Context, actor access.Actor, cmd UpdateJudgeCommand) (entities.Judge, error) {
	logger := logging.OrDefault(uc.Logger)
	if err := access.RequireAdmin(actor); err != nil {
		return entities.Judge{}, err
	}
	judge, err := uc.Repository.GetJudge(ctx, strings.TrimSpace(cmd.JudgeID))
	if err != nil {
		return entities.Judge{}, err
	}
	username, name, categories, err := validateJudgeFields(cmd.Username, cmd.Name, cmd.Categories)
	if err != nil {
		return entities.Judge{}, err
	}
	if err := validatePassword(cmd.Password, false); err != nil {
		return entities.Judge{}, err
	}
	if username != judge.Username {
		if err := uc.ensureUsernameFree(ctx, username, judge.JudgeID); err != nil {
			return entities.Judge{}, err
		}
	}

	judge.Username = username
	judge.Name = name
	judge.Categories = categories
	passwordChanged := cmd.Password != ""
	if passwordChanged {
		hash, err := uc.Hasher.Hash(cmd.Password)
		if err != nil {
			return entities.Judge{}, err
		}
		judge.PasswordHash = hash
	}
	judge.UpdatedAt = uc.now()
	if err := uc.Repository.UpdateJudge(ctx, judge); err != nil {
		return entities.Judge{}, err
	}

	logger.Info("judge updated",
		"event", "panel_judge_updated",
		"module", "identity-access/panel-service",
		"layer", "application",
		"judge_id", judge.JudgeID,
		"password_changed", passwordChanged,
	)
	return judge, nil
}

// DeleteJudge removes the judge account. Votes already cast are kept.
func (uc JudgeUseCase) DeleteJudge(ctx context.Context, actor access.Actor, judgeID string) error {
	logger := logging.OrDefault(uc.Logger)
	if err := access.RequireAdmin(actor); err != nil {
		return err
	}
	judgeID = strings.TrimSpace(judgeID)
	if judgeID == "" {
		return domainerrors.ErrJudgeNotFound
	}
	if err := uc.Repository.DeleteJudge(ctx, judgeID); err != nil {
		return err
	}
	logger.Info("judge deleted",
		"event", "panel_judge_deleted",
		"module", "identity-access/panel-service",
		"layer", "application",
		"judge_id", judgeID,
		"actor_id", actor.ID,
	)
	return nil
}

// ensureUsernameFree checks judges and admins so that no judge is shadowed by
// an admin at login.
func (uc JudgeUseCase) ensureUsernameFree(ctx context.Context, username string, selfID string) error {
	existing, found, err := uc.Repository.GetJudgeByUsername(ctx, username)
	if err != nil {
		return err
	}
	if found && existing.JudgeID != selfID {
		return domainerrors.ErrUsernameTaken
	}
	_, found, err = uc.Repository.GetAdminByUsername(ctx, username)
	if err != nil {
		return err
	}
	if found {
		return domainerrors.ErrUsernameTaken
	}
	return nil
}

func (uc JudgeUseCase) now() time.Time {
	if uc.Clock == nil {
		return time.Now().UTC()
	}
	return uc.Clock.Now().UTC()
}

func NormalizeUsername(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func validateJudgeFields(rawUsername string, rawName string, rawCategories []string) (string, string, []access.Category, error) {
	username := NormalizeUsername(rawUsername)
	if username == "" {
		return "", "", nil, validation.Field("username", "is required")
	}
	if strings.ContainsAny(username, " \t\r\n") {
		return "", "", nil, validation.Field("username", "must not contain spaces")
	}
	name := strings.TrimSpace(rawName)
	if name == "" {
		return "", "", nil, validation.Field("name", "is required")
	}
	if len(rawCategories) == 0 {
		return "", "", nil, validation.Field("categories", "at least one category is required")
	}
	categories, ok := access.NormalizeCategories(rawCategories)
	if !ok {
		return "", "", nil, validation.Field("categories", "must be competition categories")
	}
	return username, name, categories, nil
}

func validatePassword(password string, required bool) error {
	if password == "" {
		if required {
			return validation.Field("password", "is required")
		}
		return nil
	}
	if len([]rune(password)) < entities.MinPasswordLength {
		return validation.Fieldf("password", "must be at least %d characters", entities.MinPasswordLength)
	}
	return nil
}
