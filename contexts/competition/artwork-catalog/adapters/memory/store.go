package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"artjury/contexts/competition/artwork-catalog/domain/entities"
	domainerrors "artjury/contexts/competition/artwork-catalog/domain/errors"
	"artjury/contexts/competition/artwork-catalog/ports"
	"artjury/internal/shared/access"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	artworks map[string]entities.Artwork
	byCode   map[string]string
	// arrival records insertion sequence so equal timestamps still sort stably.
	arrival map[string]int
	seq     int
}

func NewStore(seed []entities.Artwork) *Store {
	store := &Store{
		artworks: make(map[string]entities.Artwork, len(seed)),
		byCode:   make(map[string]string, len(seed)),
		arrival:  make(map[string]int, len(seed)),
	}
	for _, artwork := range seed {
		store.insertLocked(artwork)
	}
	return store
}

func (s *Store) CreateArtwork(_ context.Context, artwork entities.Artwork) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	artwork = normalize(artwork)
	if _, exists := s.byCode[artwork.ArtworkCode]; exists {
		return domainerrors.ErrDuplicateArtworkCode
	}
	s.insertLocked(artwork)
	return nil
}

func (s *Store) UpdateArtwork(_ context.Context, artwork entities.Artwork) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	artwork = normalize(artwork)
	current, ok := s.artworks[artwork.ArtworkID]
	if !ok {
		return domainerrors.ErrArtworkNotFound
	}
	if ownerID, exists := s.byCode[artwork.ArtworkCode]; exists && ownerID != artwork.ArtworkID {
		return domainerrors.ErrDuplicateArtworkCode
	}
	delete(s.byCode, current.ArtworkCode)
	artwork.CreatedAt = current.CreatedAt
	s.artworks[artwork.ArtworkID] = artwork
	s.byCode[artwork.ArtworkCode] = artwork.ArtworkID
	return nil
}

func (s *Store) GetArtwork(_ context.Context, artworkID string) (entities.Artwork, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	artwork, ok := s.artworks[strings.TrimSpace(artworkID)]
	if !ok {
		return entities.Artwork{}, domainerrors.ErrArtworkNotFound
	}
	return artwork, nil
}

func (s *Store) ListArtworks(_ context.Context, categories []access.Category) ([]entities.Artwork, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	allowed := make(map[access.Category]struct{}, len(categories))
	for _, category := range categories {
		allowed[category] = struct{}{}
	}
	items := make([]entities.Artwork, 0, len(s.artworks))
	for _, artwork := range s.artworks {
		if _, ok := allowed[artwork.Category]; ok {
			items = append(items, artwork)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return s.arrival[items[i].ArtworkID] > s.arrival[items[j].ArtworkID]
	})
	return items, nil
}

func (s *Store) ListArtworksByCategory(_ context.Context, category access.Category) ([]entities.Artwork, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Artwork, 0)
	for _, artwork := range s.artworks {
		if artwork.Category == category {
			items = append(items, artwork)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].OrderWithinCategory != items[j].OrderWithinCategory {
			return items[i].OrderWithinCategory < items[j].OrderWithinCategory
		}
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		}
		return s.arrival[items[i].ArtworkID] < s.arrival[items[j].ArtworkID]
	})
	return items, nil
}

func (s *Store) ListArtworkDetails(_ context.Context, artworkIDs []string) (map[string]entities.ArtworkDetails, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]entities.ArtworkDetails, len(artworkIDs))
	for _, id := range artworkIDs {
		if artwork, ok := s.artworks[strings.TrimSpace(id)]; ok {
			out[artwork.ArtworkID] = artwork.Details()
		}
	}
	return out, nil
}

func (s *Store) UpdateArtworkOrder(_ context.Context, artworkID string, order int, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	artworkID = strings.TrimSpace(artworkID)
	artwork, ok := s.artworks[artworkID]
	if !ok {
		return domainerrors.ErrArtworkNotFound
	}
	artwork.OrderWithinCategory = order
	artwork.UpdatedAt = updatedAt.UTC()
	s.artworks[artworkID] = artwork
	return nil
}

// DeleteArtwork removes an artwork while leaving its votes in place. No API
// route removes artworks; tests use it to check results for vanished ones.
func (s *Store) DeleteArtwork(artworkID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	artworkID = strings.TrimSpace(artworkID)
	if artwork, ok := s.artworks[artworkID]; ok {
		delete(s.byCode, artwork.ArtworkCode)
		delete(s.artworks, artworkID)
		delete(s.arrival, artworkID)
	}
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func (s *Store) insertLocked(artwork entities.Artwork) {
	artwork = normalize(artwork)
	s.seq++
	s.artworks[artwork.ArtworkID] = artwork
	s.byCode[artwork.ArtworkCode] = artwork.ArtworkID
	s.arrival[artwork.ArtworkID] = s.seq
}

func normalize(artwork entities.Artwork) entities.Artwork {
	artwork.ArtworkID = strings.TrimSpace(artwork.ArtworkID)
	artwork.ArtworkCode = strings.TrimSpace(artwork.ArtworkCode)
	return artwork
}

var _ ports.ArtworkRepository = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
var _ ports.IDGenerator = (*Store)(nil)
