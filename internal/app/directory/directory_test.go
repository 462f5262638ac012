package directory

import (
	"context"
	"testing"
	"time"

	"artjury/contexts/competition/artwork-catalog/adapters/memory"
	catalogqueries "artjury/contexts/competition/artwork-catalog/application/queries"
	catalogentities "artjury/contexts/competition/artwork-catalog/domain/entities"
	judgingentities "artjury/contexts/competition/judging-engine/domain/entities"
	judgingerrors "artjury/contexts/competition/judging-engine/domain/errors"
	"artjury/internal/shared/access"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtworksTranslatesCatalogRecords(t *testing.T) {
	store := memory.NewStore([]catalogentities.Artwork{{
		ArtworkID:   "art-1",
		ArtworkCode: "PHO-001",
		Title:       "Harbour at Dawn",
		Description: "Long exposure",
		Category:    access.CategoryPhotography,
		ArtistName:  "Ines Duarte",
		ImageURL:    "https://example.test/pho-001.jpg",
		CreatedAt:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}})
	dir := Artworks{Catalog: catalogqueries.ArtworkQueryService{Artworks: store}}

	want := judgingentities.ArtworkSummary{
		ArtworkID:   "art-1",
		ArtworkCode: "PHO-001",
		Title:       "Harbour at Dawn",
		ArtistName:  "Ines Duarte",
		ImageURL:    "https://example.test/pho-001.jpg",
		Category:    access.CategoryPhotography,
	}
	got, err := dir.FindArtwork(context.Background(), "art-1")
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}

	_, err = dir.FindArtwork(context.Background(), "missing")
	assert.ErrorIs(t, err, judgingerrors.ErrArtworkNotFound)

	summaries, err := dir.ArtworkSummaries(context.Background(), []string{"art-1", "missing"})
	require.NoError(t, err)
	if diff := cmp.Diff(map[string]judgingentities.ArtworkSummary{"art-1": want}, summaries); diff != "" {
		t.Fatalf("summaries mismatch (-want +got):\n%s", diff)
	}
}
