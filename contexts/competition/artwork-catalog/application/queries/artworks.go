package queries

import (
	"context"
	"strings"

	"artjury/contexts/competition/artwork-catalog/domain/entities"
	domainerrors "artjury/contexts/competition/artwork-catalog/domain/errors"
	"artjury/contexts/competition/artwork-catalog/ports"
	"artjury/internal/shared/access"
	"artjury/internal/shared/validation"
)

type ArtworkQueryService struct {
	Artworks ports.ArtworkRepository
}

// ListArtworks returns what the actor may see. Anonymous actors and judges
// without categories get an empty list.
func (s ArtworkQueryService) ListArtworks(ctx context.Context, actor access.Actor) ([]entities.Artwork, error) {
	categories := access.VisibleCategories(actor)
	if len(categories) == 0 {
		return []entities.Artwork{}, nil
	}
	return s.Artworks.ListArtworks(ctx, categories)
}

func (s ArtworkQueryService) GetArtwork(ctx context.Context, actor access.Actor, artworkID string) (entities.Artwork, error) {
	artwork, err := s.Artworks.GetArtwork(ctx, strings.TrimSpace(artworkID))
	if err != nil {
		return entities.Artwork{}, err
	}
	if !access.CanViewCategory(actor, artwork.Category) {
		return entities.Artwork{}, domainerrors.ErrArtworkNotFound
	}
	return artwork, nil
}

// ListByCategory is the gallery read: ascending display order, ties by
// arrival.
func (s ArtworkQueryService) ListByCategory(ctx context.Context, actor access.Actor, rawCategory string) ([]entities.Artwork, error) {
	category, ok := access.ParseCategory(rawCategory)
	if !ok {
		return nil, validation.Field("category", "must be one of the competition categories")
	}
	if !access.CanViewCategory(actor, category) {
		return []entities.Artwork{}, nil
	}
	return s.Artworks.ListArtworksByCategory(ctx, category)
}

// FindArtwork and ArtworkDetails serve other contexts that reference
// artworks by id.
func (s ArtworkQueryService) FindArtwork(ctx context.Context, artworkID string) (entities.Artwork, error) {
	return s.Artworks.GetArtwork(ctx, strings.TrimSpace(artworkID))
}

func (s ArtworkQueryService) ArtworkDetails(ctx context.Context, artworkIDs []string) (map[string]entities.ArtworkDetails, error) {
	if len(artworkIDs) == 0 {
		return map[string]entities.ArtworkDetails{}, nil
	}
	return s.Artworks.ListArtworkDetails(ctx, artworkIDs)
}
