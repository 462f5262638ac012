package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"artjury/contexts/competition/artwork-catalog/domain/entities"
	domainerrors "artjury/contexts/competition/artwork-catalog/domain/errors"
	"artjury/contexts/competition/artwork-catalog/ports"
	"artjury/internal/shared/access"
	"artjury/internal/shared/logging"
	"artjury/internal/shared/validation"
)

// OrderingUseCase maintains the admin-curated display order within each
// category. It never consults vote data.
type OrderingUseCase struct {
	Artworks ports.ArtworkRepository
	Clock    ports.Clock
	Logger   *slog.Logger
}

type SwapOrderResult struct {
	First  entities.Artwork
	Second entities.Artwork
}

// SetOrder assigns any non-negative display order. Duplicates within a
// category are allowed.
func (uc OrderingUseCase) SetOrder(ctx context.Context, actor access.Actor, artworkID string, order int) (entities.Artwork, error) {
	logger := logging.OrDefault(uc.Logger)
	if err := access.RequireAdmin(actor); err != nil {
		return entities.Artwork{}, err
	}
	artworkID = strings.TrimSpace(artworkID)
	if artworkID == "" {
		return entities.Artwork{}, validation.Field("artwork_id", "is required")
	}
	if order < 0 {
		return entities.Artwork{}, validation.Field("orderWithinCategory", "must not be negative")
	}

	artwork, err := uc.Artworks.GetArtwork(ctx, artworkID)
	if err != nil {
		return entities.Artwork{}, err
	}
	now := uc.now()
	if err := uc.Artworks.UpdateArtworkOrder(ctx, artworkID, order, now); err != nil {
		return entities.Artwork{}, err
	}
	logger.Info("artwork order set",
		"event", "catalog_artwork_order_set",
		"module", "competition/artwork-catalog",
		"layer", "application",
		"artwork_id", artworkID,
		"from", artwork.OrderWithinCategory,
		"to", order,
	)
	artwork.OrderWithinCategory = order
	artwork.UpdatedAt = now
	return artwork, nil
}

// SwapOrder exchanges the display order of two artworks with two single-row
// writes. When the second write fails the first is left in place and a
// *PartialSwapError describes both halves.
func (uc OrderingUseCase) SwapOrder(ctx context.Context, actor access.Actor, firstID string, secondID string) (SwapOrderResult, error) {
	logger := logging.OrDefault(uc.Logger)
	if err := access.RequireAdmin(actor); err != nil {
		return SwapOrderResult{}, err
	}
	firstID = strings.TrimSpace(firstID)
	secondID = strings.TrimSpace(secondID)
	if firstID == "" || secondID == "" {
		return SwapOrderResult{}, validation.Field("artworkIds", "two artwork ids are required")
	}

	first, err := uc.Artworks.GetArtwork(ctx, firstID)
	if err != nil {
		return SwapOrderResult{}, err
	}
	if firstID == secondID {
		return SwapOrderResult{First: first, Second: first}, nil
	}
	second, err := uc.Artworks.GetArtwork(ctx, secondID)
	if err != nil {
		return SwapOrderResult{}, err
	}

	now := uc.now()
	firstOrder, secondOrder := first.OrderWithinCategory, second.OrderWithinCategory
	if err := uc.Artworks.UpdateArtworkOrder(ctx, firstID, secondOrder, now); err != nil {
		return SwapOrderResult{}, err
	}
	if err := uc.Artworks.UpdateArtworkOrder(ctx, secondID, firstOrder, now); err != nil {
		logger.Error("artwork order swap partially applied",
			"event", "catalog_artwork_order_swap_partial",
			"module", "competition/artwork-catalog",
			"layer", "application",
			"applied_artwork_id", firstID,
			"failed_artwork_id", secondID,
			"error", err.Error(),
		)
		return SwapOrderResult{}, &domainerrors.PartialSwapError{
			AppliedArtworkID: firstID,
			AppliedOrder:     secondOrder,
			FailedArtworkID:  secondID,
			FailedOrder:      firstOrder,
			Err:              err,
		}
	}

	first.OrderWithinCategory, second.OrderWithinCategory = secondOrder, firstOrder
	first.UpdatedAt, second.UpdatedAt = now, now
	logger.Info("artwork order swapped",
		"event", "catalog_artwork_order_swapped",
		"module", "competition/artwork-catalog",
		"layer", "application",
		"first_artwork_id", firstID,
		"second_artwork_id", secondID,
	)
	return SwapOrderResult{First: first, Second: second}, nil
}

type ReorderItem struct {
	ArtworkID           string
	OrderWithinCategory int
}

type ReorderResult struct {
	ArtworkID string
	Artwork   entities.Artwork
	Err       error
}

// Reorder applies SetOrder to each item in turn. A failing item is reported
// in its result and does not stop the batch.
func (uc OrderingUseCase) Reorder(ctx context.Context, actor access.Actor, items []ReorderItem) ([]ReorderResult, error) {
	if err := access.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, validation.Field("items", "at least one item is required")
	}
	results := make([]ReorderResult, 0, len(items))
	for _, item := range items {
		artwork, err := uc.SetOrder(ctx, actor, item.ArtworkID, item.OrderWithinCategory)
		results = append(results, ReorderResult{
			ArtworkID: strings.TrimSpace(item.ArtworkID),
			Artwork:   artwork,
			Err:       err,
		})
	}
	return results, nil
}

func (uc OrderingUseCase) now() time.Time {
	if uc.Clock == nil {
		return time.Now().UTC()
	}
	return uc.Clock.Now().UTC()
}
