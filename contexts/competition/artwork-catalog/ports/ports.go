package ports

import (
	"context"
	"time"

	"artjury/contexts/competition/artwork-catalog/domain/entities"
	"artjury/internal/shared/access"
)

// ArtworkRepository is the artwork slice of the entity store.
type ArtworkRepository interface {
	CreateArtwork(ctx context.Context, artwork entities.Artwork) error
	UpdateArtwork(ctx context.Context, artwork entities.Artwork) error
	GetArtwork(ctx context.Context, artworkID string) (entities.Artwork, error)
	// ListArtworks returns artworks in the given categories, newest first.
	ListArtworks(ctx context.Context, categories []access.Category) ([]entities.Artwork, error)
	// ListArtworksByCategory returns one category ascending by display order,
	// ties by creation order.
	ListArtworksByCategory(ctx context.Context, category access.Category) ([]entities.Artwork, error)
	ListArtworkDetails(ctx context.Context, artworkIDs []string) (map[string]entities.ArtworkDetails, error)
	UpdateArtworkOrder(ctx context.Context, artworkID string, order int, updatedAt time.Time) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
