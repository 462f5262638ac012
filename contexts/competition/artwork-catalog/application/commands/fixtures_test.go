package commands_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"artjury/contexts/competition/artwork-catalog/adapters/memory"
	"artjury/contexts/competition/artwork-catalog/domain/entities"
	"artjury/internal/shared/access"

	"github.com/brianvoe/gofakeit/v7"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

type sequenceIDs struct {
	next int
}

func (g *sequenceIDs) NewID(context.Context) (string, error) {
	g.next++
	return fmt.Sprintf("art-%03d", g.next), nil
}

// flakyOrderStore fails order writes for one artwork id.
type flakyOrderStore struct {
	*memory.Store
	failFor string
}

var errStoreUnavailable = errors.New("store unavailable")

func (s flakyOrderStore) UpdateArtworkOrder(ctx context.Context, artworkID string, order int, updatedAt time.Time) error {
	if strings.TrimSpace(artworkID) == s.failFor {
		return errStoreUnavailable
	}
	return s.Store.UpdateArtworkOrder(ctx, artworkID, order, updatedAt)
}

func fakeArtwork(faker *gofakeit.Faker, id string, category access.Category, order int, createdAt time.Time) entities.Artwork {
	return entities.Artwork{
		ArtworkID:           id,
		ArtworkCode:         faker.Numerify("ART-#####") + "-" + id,
		Title:               faker.Sentence(3),
		Description:         faker.Sentence(8),
		Category:            category,
		ArtistName:          faker.Name(),
		ImageURL:            faker.URL(),
		OrderWithinCategory: order,
		CreatedAt:           createdAt,
		UpdatedAt:           createdAt,
	}
}

var (
	adminActor = access.Admin("admin-1")
	judgeActor = access.Judge("judge-1", access.CategoryPhotography)
	baseTime   = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
)
