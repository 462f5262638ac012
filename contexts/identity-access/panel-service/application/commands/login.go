package commands

import (
	"context"
	"log/slog"
	"time"

	"artjury/contexts/identity-access/panel-service/domain/entities"
	domainerrors "artjury/contexts/identity-access/panel-service/domain/errors"
	"artjury/contexts/identity-access/panel-service/ports"
	"artjury/internal/shared/logging"
)

type LoginUseCase struct {
	Repository ports.PanelRepository
	Hasher     ports.PasswordHasher
	Clock      ports.Clock
	Logger     *slog.Logger
}

// Authenticate checks admins first, then judges. Unknown usernames and wrong
// passwords fail the same way.
func (uc LoginUseCase) Authenticate(ctx context.Context, rawUsername string, password string) (entities.Principal, error) {
	logger := logging.OrDefault(uc.Logger)
	username := NormalizeUsername(rawUsername)
	if username == "" || password == "" {
		return entities.Principal{}, domainerrors.ErrInvalidCredentials
	}

	admin, found, err := uc.Repository.GetAdminByUsername(ctx, username)
	if err != nil {
		return entities.Principal{}, err
	}
	if found {
		if !uc.Hasher.Compare(admin.PasswordHash, password) {
			uc.logFailure(logger, username)
			return entities.Principal{}, domainerrors.ErrInvalidCredentials
		}
		uc.logSuccess(logger, admin.AdminID, "admin")
		return entities.Principal{Actor: admin.Actor(), Username: admin.Username, Name: admin.Name}, nil
	}

	judge, found, err := uc.Repository.GetJudgeByUsername(ctx, username)
	if err != nil {
		return entities.Principal{}, err
	}
	if !found || !uc.Hasher.Compare(judge.PasswordHash, password) {
		uc.logFailure(logger, username)
		return entities.Principal{}, domainerrors.ErrInvalidCredentials
	}
	if err := uc.Repository.RecordJudgeLogin(ctx, judge.JudgeID, uc.now()); err != nil {
		logger.Warn("judge login timestamp not recorded",
			"event", "panel_judge_login_record_failed",
			"module", "identity-access/panel-service",
			"layer", "application",
			"judge_id", judge.JudgeID,
			"error", err.Error(),
		)
	}
	uc.logSuccess(logger, judge.JudgeID, "judge")
	return entities.Principal{Actor: judge.Actor(), Username: judge.Username, Name: judge.Name}, nil
}

func (uc LoginUseCase) logFailure(logger *slog.Logger, username string) {
	logger.Warn("login rejected",
		"event", "panel_login_rejected",
		"module", "identity-access/panel-service",
		"layer", "application",
		"username", username,
	)
}

func (uc LoginUseCase) logSuccess(logger *slog.Logger, id string, role string) {
	logger.Info("login accepted",
		"event", "panel_login_accepted",
		"module", "identity-access/panel-service",
		"layer", "application",
		"subject_id", id,
		"role", role,
	)
}

func (uc LoginUseCase) now() time.Time {
	if uc.Clock == nil {
		return time.Now().UTC()
	}
	return uc.Clock.Now().UTC()
}
