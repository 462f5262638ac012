package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"artjury/contexts/identity-access/panel-service/domain/entities"
	domainerrors "artjury/contexts/identity-access/panel-service/domain/errors"
	"artjury/contexts/identity-access/panel-service/ports"
	"artjury/internal/shared/access"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&judgeModel{}, &adminModel{}); err != nil {
		return r.logError("panel_repo_migrate_failed", err)
	}
	return nil
}

func (r *Repository) CreateJudge(ctx context.Context, judge entities.Judge) error {
	row, err := judgeModelFromEntity(judge)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrUsernameTaken
		}
		return r.logError("panel_repo_create_judge_failed", err, "judge_id", row.ID)
	}
	return nil
}

func (r *Repository) UpdateJudge(ctx context.Context, judge entities.Judge) error {
	row, err := judgeModelFromEntity(judge)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Model(&judgeModel{}).
		Where("id = ?", row.ID).
		Updates(map[string]any{
			"username":      row.Username,
			"name":          row.Name,
			"password_hash": row.PasswordHash,
			"categories":    row.Categories,
			"updated_at":    row.UpdatedAt,
		})
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerrors.ErrUsernameTaken
		}
		return r.logError("panel_repo_update_judge_failed", result.Error, "judge_id", row.ID)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrJudgeNotFound
	}
	return nil
}

func (r *Repository) DeleteJudge(ctx context.Context, judgeID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(judgeID)).
		Delete(&judgeModel{})
	if result.Error != nil {
		return r.logError("panel_repo_delete_judge_failed", result.Error, "judge_id", strings.TrimSpace(judgeID))
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrJudgeNotFound
	}
	return nil
}

func (r *Repository) GetJudge(ctx context.Context, judgeID string) (entities.Judge, error) {
	var row judgeModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(judgeID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Judge{}, domainerrors.ErrJudgeNotFound
		}
		return entities.Judge{}, r.logError("panel_repo_get_judge_failed", err, "judge_id", strings.TrimSpace(judgeID))
	}
	return row.toEntity()
}

func (r *Repository) GetJudgeByUsername(ctx context.Context, username string) (entities.Judge, bool, error) {
	var row judgeModel
	err := r.db.WithContext(ctx).
		Where("username = ?", strings.ToLower(strings.TrimSpace(username))).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Judge{}, false, nil
		}
		return entities.Judge{}, false, r.logError("panel_repo_get_judge_by_username_failed", err)
	}
	judge, err := row.toEntity()
	if err != nil {
		return entities.Judge{}, false, err
	}
	return judge, true, nil
}

func (r *Repository) ListJudges(ctx context.Context) ([]entities.Judge, error) {
	var rows []judgeModel
	if err := r.db.WithContext(ctx).Order("username ASC").Find(&rows).Error; err != nil {
		return nil, r.logError("panel_repo_list_judges_failed", err)
	}
	return toJudgeEntities(rows)
}

func (r *Repository) ListJudgesByIDs(ctx context.Context, judgeIDs []string) ([]entities.Judge, error) {
	if len(judgeIDs) == 0 {
		return []entities.Judge{}, nil
	}
	var rows []judgeModel
	if err := r.db.WithContext(ctx).Where("id IN ?", judgeIDs).Find(&rows).Error; err != nil {
		return nil, r.logError("panel_repo_list_judges_by_ids_failed", err, "judge_count", len(judgeIDs))
	}
	return toJudgeEntities(rows)
}

func (r *Repository) RecordJudgeLogin(ctx context.Context, judgeID string, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&judgeModel{}).
		Where("id = ?", strings.TrimSpace(judgeID)).
		Update("last_login_at", at.UTC())
	if result.Error != nil {
		return r.logError("panel_repo_record_judge_login_failed", result.Error, "judge_id", strings.TrimSpace(judgeID))
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrJudgeNotFound
	}
	return nil
}

func (r *Repository) CreateAdmin(ctx context.Context, admin entities.Admin) error {
	row := adminModel{
		ID:           strings.TrimSpace(admin.AdminID),
		Username:     strings.ToLower(strings.TrimSpace(admin.Username)),
		Name:         admin.Name,
		PasswordHash: admin.PasswordHash,
		CreatedAt:    admin.CreatedAt.UTC(),
		UpdatedAt:    admin.UpdatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrUsernameTaken
		}
		return r.logError("panel_repo_create_admin_failed", err, "admin_id", row.ID)
	}
	return nil
}

func (r *Repository) GetAdminByUsername(ctx context.Context, username string) (entities.Admin, bool, error) {
	var row adminModel
	err := r.db.WithContext(ctx).
		Where("username = ?", strings.ToLower(strings.TrimSpace(username))).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Admin{}, false, nil
		}
		return entities.Admin{}, false, r.logError("panel_repo_get_admin_by_username_failed", err)
	}
	return entities.Admin{
		AdminID:      row.ID,
		Username:     row.Username,
		Name:         row.Name,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt.UTC(),
		UpdatedAt:    row.UpdatedAt.UTC(),
	}, true, nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "identity-access/panel-service",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("panel repository operation failed", fields...)
	return err
}

type judgeModel struct {
	ID           string     `gorm:"column:id;primaryKey"`
	Username     string     `gorm:"column:username;not null;uniqueIndex:idx_judges_username"`
	Name         string     `gorm:"column:name;not null"`
	PasswordHash string     `gorm:"column:password_hash;not null"`
	Categories   string     `gorm:"column:categories;type:jsonb;not null"`
	LastLoginAt  *time.Time `gorm:"column:last_login_at"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (judgeModel) TableName() string {
	return "judges"
}

type adminModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Username     string    `gorm:"column:username;not null;uniqueIndex:idx_admins_username"`
	Name         string    `gorm:"column:name;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (adminModel) TableName() string {
	return "admins"
}

func judgeModelFromEntity(judge entities.Judge) (judgeModel, error) {
	categories, err := json.Marshal(access.CategoryStrings(judge.Categories))
	if err != nil {
		return judgeModel{}, err
	}
	var lastLogin *time.Time
	if judge.LastLoginAt != nil {
		at := judge.LastLoginAt.UTC()
		lastLogin = &at
	}
	return judgeModel{
		ID:           strings.TrimSpace(judge.JudgeID),
		Username:     strings.ToLower(strings.TrimSpace(judge.Username)),
		Name:         judge.Name,
		PasswordHash: judge.PasswordHash,
		Categories:   string(categories),
		LastLoginAt:  lastLogin,
		CreatedAt:    judge.CreatedAt.UTC(),
		UpdatedAt:    judge.UpdatedAt.UTC(),
	}, nil
}

func (m judgeModel) toEntity() (entities.Judge, error) {
	var raw []string
	if strings.TrimSpace(m.Categories) != "" {
		if err := json.Unmarshal([]byte(m.Categories), &raw); err != nil {
			return entities.Judge{}, err
		}
	}
	categories := make([]access.Category, 0, len(raw))
	for _, value := range raw {
		categories = append(categories, access.Category(value))
	}
	var lastLogin *time.Time
	if m.LastLoginAt != nil {
		at := m.LastLoginAt.UTC()
		lastLogin = &at
	}
	return entities.Judge{
		JudgeID:      m.ID,
		Username:     m.Username,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		Categories:   categories,
		LastLoginAt:  lastLogin,
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}, nil
}

func toJudgeEntities(rows []judgeModel) ([]entities.Judge, error) {
	items := make([]entities.Judge, 0, len(rows))
	for _, row := range rows {
		judge, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		items = append(items, judge)
	}
	return items, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ ports.PanelRepository = (*Repository)(nil)
