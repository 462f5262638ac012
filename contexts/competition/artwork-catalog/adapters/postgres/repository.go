package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"artjury/contexts/competition/artwork-catalog/domain/entities"
	domainerrors "artjury/contexts/competition/artwork-catalog/domain/errors"
	"artjury/contexts/competition/artwork-catalog/ports"
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

// Migrate creates the artworks table and its indexes.
func (r *Repository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&artworkModel{}); err != nil {
		return r.logError("catalog_repo_migrate_failed", err)
	}
	return nil
}

func (r *Repository) CreateArtwork(ctx context.Context, artwork entities.Artwork) error {
	row := artworkModelFromEntity(artwork)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrDuplicateArtworkCode
		}
		return r.logError("catalog_repo_create_artwork_failed", err,
			"artwork_id", row.ID,
			"artwork_code", row.ArtworkCode,
		)
	}
	return nil
}

func (r *Repository) UpdateArtwork(ctx context.Context, artwork entities.Artwork) error {
	row := artworkModelFromEntity(artwork)
	result := r.db.WithContext(ctx).
		Model(&artworkModel{}).
		Where("id = ?", row.ID).
		Updates(map[string]any{
			"artwork_code":          row.ArtworkCode,
			"title":                 row.Title,
			"description":           row.Description,
			"category":              row.Category,
			"artist_name":           row.ArtistName,
			"image_url":             row.ImageURL,
			"order_within_category": row.OrderWithinCategory,
			"updated_at":            row.UpdatedAt,
		})
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerrors.ErrDuplicateArtworkCode
		}
		return r.logError("catalog_repo_update_artwork_failed", result.Error, "artwork_id", row.ID)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrArtworkNotFound
	}
	return nil
}

func (r *Repository) GetArtwork(ctx context.Context, artworkID string) (entities.Artwork, error) {
	var row artworkModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(artworkID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Artwork{}, domainerrors.ErrArtworkNotFound
		}
		return entities.Artwork{}, r.logError("catalog_repo_get_artwork_failed", err, "artwork_id", strings.TrimSpace(artworkID))
	}
	return row.toEntity(), nil
}

func (r *Repository) ListArtworks(ctx context.Context, categories []access.Category) ([]entities.Artwork, error) {
	if len(categories) == 0 {
		return []entities.Artwork{}, nil
	}
	var rows []artworkModel
	if err := r.db.WithContext(ctx).
		Where("category IN ?", access.CategoryStrings(categories)).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("catalog_repo_list_artworks_failed", err)
	}
	return toArtworkEntities(rows), nil
}

func (r *Repository) ListArtworksByCategory(ctx context.Context, category access.Category) ([]entities.Artwork, error) {
	var rows []artworkModel
	if err := r.db.WithContext(ctx).
		Where("category = ?", string(category)).
		Order("order_within_category ASC").
		Order("created_at ASC").
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("catalog_repo_list_artworks_by_category_failed", err, "category", string(category))
	}
	return toArtworkEntities(rows), nil
}

func (r *Repository) ListArtworkDetails(ctx context.Context, artworkIDs []string) (map[string]entities.ArtworkDetails, error) {
	out := make(map[string]entities.ArtworkDetails, len(artworkIDs))
	if len(artworkIDs) == 0 {
		return out, nil
	}
	ids := make([]string, 0, len(artworkIDs))
	for _, id := range artworkIDs {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	var rows []artworkModel
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, r.logError("catalog_repo_list_artwork_details_failed", err, "artwork_count", len(ids))
	}
	for _, row := range rows {
		out[row.ID] = row.toEntity().Details()
	}
	return out, nil
}

func (r *Repository) UpdateArtworkOrder(ctx context.Context, artworkID string, order int, updatedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&artworkModel{}).
		Where("id = ?", strings.TrimSpace(artworkID)).
		Updates(map[string]any{
			"order_within_category": order,
			"updated_at":            updatedAt.UTC(),
		})
	if result.Error != nil {
		return r.logError("catalog_repo_update_artwork_order_failed", result.Error,
			"artwork_id", strings.TrimSpace(artworkID),
			"order", order,
		)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrArtworkNotFound
	}
	return nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "competition/artwork-catalog",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("artwork repository operation failed", fields...)
	return err
}

type artworkModel struct {
	ID                  string    `gorm:"column:id;primaryKey"`
	ArtworkCode         string    `gorm:"column:artwork_code;not null;uniqueIndex:idx_artworks_code"`
	Title               string    `gorm:"column:title;not null"`
	Description         string    `gorm:"column:description;not null"`
	Category            string    `gorm:"column:category;not null;index:idx_artworks_category_order,priority:1"`
	ArtistName          string    `gorm:"column:artist_name;not null"`
	ImageURL            string    `gorm:"column:image_url;not null"`
	OrderWithinCategory int       `gorm:"column:order_within_category;not null;index:idx_artworks_category_order,priority:2"`
	CreatedAt           time.Time `gorm:"column:created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at"`
}

func (artworkModel) TableName() string {
	return "artworks"
}

func artworkModelFromEntity(artwork entities.Artwork) artworkModel {
	return artworkModel{
		ID:                  strings.TrimSpace(artwork.ArtworkID),
		ArtworkCode:         strings.TrimSpace(artwork.ArtworkCode),
		Title:               artwork.Title,
		Description:         artwork.Description,
		Category:            string(artwork.Category),
		ArtistName:          artwork.ArtistName,
		ImageURL:            artwork.ImageURL,
		OrderWithinCategory: artwork.OrderWithinCategory,
		CreatedAt:           artwork.CreatedAt.UTC(),
		UpdatedAt:           artwork.UpdatedAt.UTC(),
	}
}

func (m artworkModel) toEntity() entities.Artwork {
	return entities.Artwork{
		ArtworkID:           m.ID,
		ArtworkCode:         m.ArtworkCode,
		Title:               m.Title,
		Description:         m.Description,
		Category:            access.Category(m.Category),
		ArtistName:          m.ArtistName,
		ImageURL:            m.ImageURL,
		OrderWithinCategory: m.OrderWithinCategory,
		CreatedAt:           m.CreatedAt.UTC(),
		UpdatedAt:           m.UpdatedAt.UTC(),
	}
}

func toArtworkEntities(rows []artworkModel) []entities.Artwork {
	items := make([]entities.Artwork, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ ports.ArtworkRepository = (*Repository)(nil)
