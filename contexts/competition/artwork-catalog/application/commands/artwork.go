package commands

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"artjury/contexts/competition/artwork-catalog/domain/entities"
	domainerrors "artjury/contexts/competition/artwork-catalog/domain/errors"
	"artjury/contexts/competition/artwork-catalog/ports"
	"artjury/internal/shared/access"
	"artjury/internal/shared/logging"
	"artjury/internal/shared/validation"
)

const (
	ImportErrMissingFields   = "Missing required fields"
	ImportErrInvalidCategory = "Invalid category"
	ImportErrDuplicateCode   = "Duplicate artwork code"
	ImportErrSaveFailed      = "Failed to save artwork"
)

type CreateArtworkCommand struct {
	ArtworkCode         string
	Title               string
	Description         string
	Category            string
	ArtistName          string
	ImageURL            string
	OrderWithinCategory int
}

// UpdateArtworkCommand is a partial edit; nil fields are left unchanged.
type UpdateArtworkCommand struct {
	ArtworkID           string
	ArtworkCode         *string
	Title               *string
	Description         *string
	Category            *string
	ArtistName          *string
	ImageURL            *string
	OrderWithinCategory *int
}

// ImportRow is one already-parsed bulk upload record. Values arrive as text.
type ImportRow struct {
	ArtworkCode         string
	Title               string
	Description         string
	Category            string
	ArtistName          string
	ImageURL            string
	OrderWithinCategory string
}

type ImportResult struct {
	ArtworkCode string
	Success     bool
	Error       string
}

type ArtworkUseCase struct {
	Artworks ports.ArtworkRepository
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

func (uc ArtworkUseCase) CreateArtwork(ctx context.Context, actor access.Actor, cmd CreateArtworkCommand) (entities.Artwork, error) {
	logger := logging.OrDefault(uc.Logger)
	if err := access.RequireAdmin(actor); err != nil {
		logger.Warn("artwork create denied",
			"event", "catalog_artwork_create_denied",
			"module", "competition/artwork-catalog",
			"layer", "application",
			"actor_id", actor.ID,
		)
		return entities.Artwork{}, err
	}

	artwork, err := buildArtwork(cmd)
	if err != nil {
		return entities.Artwork{}, err
	}
	id, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Artwork{}, err
	}
	now := uc.now()
	artwork.ArtworkID = id
	artwork.CreatedAt = now
	artwork.UpdatedAt = now

	if err := uc.Artworks.CreateArtwork(ctx, artwork); err != nil {
		if errors.Is(err, domainerrors.ErrDuplicateArtworkCode) {
			logger.Warn("artwork code already exists",
				"event", "catalog_artwork_create_duplicate",
				"module", "competition/artwork-catalog",
				"layer", "application",
				"artwork_code", artwork.ArtworkCode,
			)
		}
		return entities.Artwork{}, err
	}

	logger.Info("artwork created",
		"event", "catalog_artwork_created",
		"module", "competition/artwork-catalog",
		"layer", "application",
		"artwork_id", artwork.ArtworkID,
		"artwork_code", artwork.ArtworkCode,
		"category", string(artwork.Category),
	)
	return artwork, nil
}

func (uc ArtworkUseCase) UpdateArtwork(ctx context.Context, actor access.Actor, cmd UpdateArtworkCommand) (entities.Artwork, error) {
	logger := logging.OrDefault(uc.Logger)
	if err := access.RequireAdmin(actor); err != nil {
		return entities.Artwork{}, err
	}
	artworkID := strings.TrimSpace(cmd.ArtworkID)
	if artworkID == "" {
		return entities.Artwork{}, validation.Field("artwork_id", "is required")
	}

	artwork, err := uc.Artworks.GetArtwork(ctx, artworkID)
	if err != nil {
		return entities.Artwork{}, err
	}
	previousCategory := artwork.Category

	textFields := []struct {
		name   string
		value  *string
		target *string
	}{
		{"artworkCode", cmd.ArtworkCode, &artwork.ArtworkCode},
		{"title", cmd.Title, &artwork.Title},
		{"description", cmd.Description, &artwork.Description},
		{"artistName", cmd.ArtistName, &artwork.ArtistName},
		{"imageUrl", cmd.ImageURL, &artwork.ImageURL},
	}
	for _, field := range textFields {
		if field.value == nil {
			continue
		}
		value := strings.TrimSpace(*field.value)
		if value == "" {
			return entities.Artwork{}, validation.Field(field.name, "must not be empty")
		}
		*field.target = value
	}
	if cmd.Category != nil {
		category, ok := access.ParseCategory(*cmd.Category)
		if !ok {
			return entities.Artwork{}, validation.Field("category", "must be one of the competition categories")
		}
		artwork.Category = category
	}
	if cmd.OrderWithinCategory != nil {
		if *cmd.OrderWithinCategory < 0 {
			return entities.Artwork{}, validation.Field("orderWithinCategory", "must not be negative")
		}
		artwork.OrderWithinCategory = *cmd.OrderWithinCategory
	}
	artwork.UpdatedAt = uc.now()

	if err := uc.Artworks.UpdateArtwork(ctx, artwork); err != nil {
		return entities.Artwork{}, err
	}
	if previousCategory != artwork.Category {
		// Votes keep the old category label until they are resubmitted.
		logger.Warn("artwork category changed",
			"event", "catalog_artwork_category_changed",
			"module", "competition/artwork-catalog",
			"layer", "application",
			"artwork_id", artwork.ArtworkID,
			"from", string(previousCategory),
			"to", string(artwork.Category),
		)
	}
	logger.Info("artwork updated",
		"event", "catalog_artwork_updated",
		"module", "competition/artwork-catalog",
		"layer", "application",
		"artwork_id", artwork.ArtworkID,
	)
	return artwork, nil
}

// BulkImport creates one artwork per row and reports each row independently.
// A failing row never aborts the rest of the batch.
func (uc ArtworkUseCase) BulkImport(ctx context.Context, actor access.Actor, rows []ImportRow) ([]ImportResult, error) {
	logger := logging.OrDefault(uc.Logger)
	if err := access.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, validation.Field("rows", "at least one row is required")
	}

	results := make([]ImportResult, 0, len(rows))
	created := 0
	for _, row := range rows {
		result := ImportResult{ArtworkCode: strings.TrimSpace(row.ArtworkCode)}
		artwork, err := buildArtwork(CreateArtworkCommand{
			ArtworkCode:         row.ArtworkCode,
			Title:               row.Title,
			Description:         row.Description,
			Category:            row.Category,
			ArtistName:          row.ArtistName,
			ImageURL:            row.ImageURL,
			OrderWithinCategory: parseImportOrder(row.OrderWithinCategory),
		})
		if err != nil {
			var verr *validation.Error
			if errors.As(err, &verr) && verr.Field == "category" && strings.TrimSpace(row.Category) != "" {
				result.Error = ImportErrInvalidCategory
			} else {
				result.Error = ImportErrMissingFields
			}
			results = append(results, result)
			continue
		}

		id, err := uc.IDGen.NewID(ctx)
		if err != nil {
			return nil, err
		}
		now := uc.now()
		artwork.ArtworkID = id
		artwork.CreatedAt = now
		artwork.UpdatedAt = now

		if err := uc.Artworks.CreateArtwork(ctx, artwork); err != nil {
			if errors.Is(err, domainerrors.ErrDuplicateArtworkCode) {
				result.Error = ImportErrDuplicateCode
			} else {
				logger.Error("bulk import row failed",
					"event", "catalog_bulk_import_row_failed",
					"module", "competition/artwork-catalog",
					"layer", "application",
					"artwork_code", artwork.ArtworkCode,
					"error", err.Error(),
				)
				result.Error = ImportErrSaveFailed
			}
			results = append(results, result)
			continue
		}
		result.Success = true
		created++
		results = append(results, result)
	}

	logger.Info("bulk import completed",
		"event", "catalog_bulk_import_completed",
		"module", "competition/artwork-catalog",
		"layer", "application",
		"rows", len(rows),
		"created", created,
	)
	return results, nil
}

func (uc ArtworkUseCase) now() time.Time {
	if uc.Clock == nil {
		return time.Now().UTC()
	}
	return uc.Clock.Now().UTC()
}

func buildArtwork(cmd CreateArtworkCommand) (entities.Artwork, error) {
	artwork := entities.Artwork{
		ArtworkCode:         strings.TrimSpace(cmd.ArtworkCode),
		Title:               strings.TrimSpace(cmd.Title),
		Description:         strings.TrimSpace(cmd.Description),
		ArtistName:          strings.TrimSpace(cmd.ArtistName),
		ImageURL:            strings.TrimSpace(cmd.ImageURL),
		OrderWithinCategory: cmd.OrderWithinCategory,
	}
	required := []struct {
		name  string
		value string
	}{
		{"artworkCode", artwork.ArtworkCode},
		{"title", artwork.Title},
		{"description", artwork.Description},
		{"category", strings.TrimSpace(cmd.Category)},
		{"artistName", artwork.ArtistName},
		{"imageUrl", artwork.ImageURL},
	}
	for _, field := range required {
		if field.value == "" {
			return entities.Artwork{}, validation.Field(field.name, "is required")
		}
	}
	category, ok := access.ParseCategory(cmd.Category)
	if !ok {
		return entities.Artwork{}, validation.Field("category", "must be one of the competition categories")
	}
	artwork.Category = category
	if artwork.OrderWithinCategory < 0 {
		return entities.Artwork{}, validation.Field("orderWithinCategory", "must not be negative")
	}
	return artwork, nil
}

// parseImportOrder is lenient: unparseable or negative values become 0.
func parseImportOrder(raw string) int {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || value != value || value < 0 || value > float64(1<<31-1) {
		return 0
	}
	return int(value)
}
