package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"artjury/contexts/identity-access/panel-service/domain/entities"
	domainerrors "artjury/contexts/identity-access/panel-service/domain/errors"
	"artjury/contexts/identity-access/panel-service/ports"
	"artjury/internal/shared/logging"
	"artjury/internal/shared/validation"
)

type CreateAdminCommand struct {
	Username string
	Name     string
	Password string
}

// AdminUseCase provisions administrators. No HTTP route reaches it; the seed
// command does.
type AdminUseCase struct {
	Repository ports.PanelRepository
	Hasher     ports.PasswordHasher
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

func (uc AdminUseCase) CreateAdmin(ctx context.Context, cmd CreateAdminCommand) (entities.Admin, error) {
	logger := logging.OrDefault(uc.Logger)
	username := NormalizeUsername(cmd.Username)
	if username == "" {
		return entities.Admin{}, validation.Field("username", "is required")
	}
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return entities.Admin{}, validation.Field("name", "is required")
	}
	if err := validatePassword(cmd.Password, true); err != nil {
		return entities.Admin{}, err
	}
	if _, found, err := uc.Repository.GetAdminByUsername(ctx, username); err != nil {
		return entities.Admin{}, err
	} else if found {
		return entities.Admin{}, domainerrors.ErrUsernameTaken
	}
	if _, found, err := uc.Repository.GetJudgeByUsername(ctx, username); err != nil {
		return entities.Admin{}, err
	} else if found {
		return entities.Admin{}, domainerrors.ErrUsernameTaken
	}

	hash, err := uc.Hasher.Hash(cmd.Password)
	if err != nil {
		return entities.Admin{}, err
	}
	id, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Admin{}, err
	}
	now := time.Now().UTC()
	if uc.Clock != nil {
		now = uc.Clock.Now().UTC()
	}
	admin := entities.Admin{
		AdminID:      id,
		Username:     username,
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.Repository.CreateAdmin(ctx, admin); err != nil {
		return entities.Admin{}, err
	}
	logger.Info("admin created",
		"event", "panel_admin_created",
		"module", "identity-access/panel-service",
		"layer", "application",
		"admin_id", admin.AdminID,
		"username", admin.Username,
	)
	return admin, nil
}
