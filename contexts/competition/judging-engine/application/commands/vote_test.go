package commands_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"artjury/contexts/competition/judging-engine/adapters/memory"
	"artjury/contexts/competition/judging-engine/application/commands"
	"artjury/contexts/competition/judging-engine/domain/entities"
	domainerrors "artjury/contexts/competition/judging-engine/domain/errors"
	"artjury/internal/shared/access"
	"artjury/internal/shared/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type artworkDirectory struct {
	mu       sync.Mutex
	artworks map[string]entities.ArtworkSummary
}

func (d *artworkDirectory) FindArtwork(_ context.Context, artworkID string) (entities.ArtworkSummary, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	artwork, ok := d.artworks[artworkID]
	if !ok {
		return entities.ArtworkSummary{}, domainerrors.ErrArtworkNotFound
	}
	return artwork, nil
}

func (d *artworkDirectory) ArtworkSummaries(_ context.Context, ids []string) (map[string]entities.ArtworkSummary, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := map[string]entities.ArtworkSummary{}
	for _, id := range ids {
		if artwork, ok := d.artworks[id]; ok {
			out[id] = artwork
		}
	}
	return out, nil
}

func (d *artworkDirectory) recategorize(artworkID string, category access.Category) {
	d.mu.Lock()
	defer d.mu.Unlock()
	artwork := d.artworks[artworkID]
	artwork.Category = category
	d.artworks[artworkID] = artwork
}

type tickingClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *tickingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

var (
	judgeOne = access.Judge("judge-1", access.CategoryPhotography)
	judgeTwo = access.Judge("judge-2", access.CategoryPhotography)
	admin    = access.Admin("admin-1")
)

func newVoteFixture() (*memory.Store, *artworkDirectory, commands.VoteUseCase) {
	store := memory.NewStore(nil)
	directory := &artworkDirectory{artworks: map[string]entities.ArtworkSummary{
		"artwork-a": {ArtworkID: "artwork-a", ArtworkCode: "PHO-001", Title: "Harbor", Category: access.CategoryPhotography},
		"artwork-d": {ArtworkID: "artwork-d", ArtworkCode: "DRA-001", Title: "Lines", Category: access.CategoryDrawing},
	}}
	return store, directory, commands.VoteUseCase{
		Votes:    store,
		Artworks: directory,
		Clock:    &tickingClock{now: time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)},
		IDGen:    store,
		MaxScore: entities.DefaultMaxScore,
	}
}

func scores(technique, creativity, concept, aesthetic any) map[string]any {
	return map[string]any{
		"techniqueExecution":    technique,
		"creativityOriginality": creativity,
		"conceptMessage":        concept,
		"aestheticImpact":       aesthetic,
	}
}

func TestSubmitVoteTwiceKeepsOneVoteWithLatestValues(t *testing.T) {
	store, _, uc := newVoteFixture()

	first, err := uc.SubmitVote(context.Background(), judgeOne, commands.SubmitVoteCommand{
		ArtworkID: "artwork-a",
		Scores:    scores(4.0, 4.0, 4.0, 4.0),
		Comment:   "good start",
	})
	require.NoError(t, err)
	assert.False(t, first.WasUpdate)

	second, err := uc.SubmitVote(context.Background(), judgeOne, commands.SubmitVoteCommand{
		ArtworkID: "artwork-a",
		Scores:    scores(9.0, 8.0, 7.0, 6.0),
		Comment:   "  revised  ",
	})
	require.NoError(t, err)
	assert.True(t, second.WasUpdate)
	assert.Equal(t, first.Vote.VoteID, second.Vote.VoteID)
	assert.Equal(t, first.Vote.CreatedAt, second.Vote.CreatedAt)

	votes, err := store.ListVotes(context.Background())
	require.NoError(t, err)
	require.Len(t, votes, 1)
	assert.Equal(t, entities.Scores{TechniqueExecution: 9, CreativityOriginality: 8, ConceptMessage: 7, AestheticImpact: 6}, votes[0].Scores)
	assert.Equal(t, "revised", votes[0].Comment)
	assert.True(t, votes[0].UpdatedAt.After(votes[0].CreatedAt))
}

func TestSubmitVoteCoercesInsteadOfRejecting(t *testing.T) {
	_, _, uc := newVoteFixture()

	result, err := uc.SubmitVote(context.Background(), judgeOne, commands.SubmitVoteCommand{
		ArtworkID: "artwork-a",
		Scores:    scores(7.0, 8.0, "x", nil),
	})
	require.NoError(t, err)
	assert.Equal(t, entities.Scores{TechniqueExecution: 7, CreativityOriginality: 8}, result.Vote.Scores)
}

func TestSubmitVoteRederivesCategoryOnResubmission(t *testing.T) {
	_, directory, uc := newVoteFixture()

	first, err := uc.SubmitVote(context.Background(), judgeOne, commands.SubmitVoteCommand{ArtworkID: "artwork-a", Scores: scores(1.0, 1.0, 1.0, 1.0)})
	require.NoError(t, err)
	assert.Equal(t, access.CategoryPhotography, first.Vote.Category)

	directory.recategorize("artwork-a", access.CategoryDigitalPainting)
	second, err := uc.SubmitVote(context.Background(), judgeOne, commands.SubmitVoteCommand{ArtworkID: "artwork-a", Scores: scores(1.0, 1.0, 1.0, 1.0)})
	require.NoError(t, err)
	assert.Equal(t, access.CategoryDigitalPainting, second.Vote.Category)
}

func TestSubmitVoteDoesNotCheckCategoryAssignment(t *testing.T) {
	_, _, uc := newVoteFixture()

	result, err := uc.SubmitVote(context.Background(), judgeOne, commands.SubmitVoteCommand{ArtworkID: "artwork-d", Scores: scores(5.0, 5.0, 5.0, 5.0)})
	require.NoError(t, err)
	assert.Equal(t, access.CategoryDrawing, result.Vote.Category)
}

func TestSubmitVoteRejections(t *testing.T) {
	_, _, uc := newVoteFixture()
	ctx := context.Background()

	_, err := uc.SubmitVote(ctx, judgeOne, commands.SubmitVoteCommand{ArtworkID: "missing"})
	assert.ErrorIs(t, err, domainerrors.ErrArtworkNotFound)

	_, err = uc.SubmitVote(ctx, access.Anonymous(), commands.SubmitVoteCommand{ArtworkID: "artwork-a"})
	assert.ErrorIs(t, err, access.ErrUnauthenticated)

	_, err = uc.SubmitVote(ctx, access.Judge("judge-3"), commands.SubmitVoteCommand{ArtworkID: "artwork-a"})
	assert.ErrorIs(t, err, access.ErrForbidden)

	_, err = uc.SubmitVote(ctx, admin, commands.SubmitVoteCommand{ArtworkID: "artwork-a"})
	assert.ErrorIs(t, err, access.ErrForbidden)

	_, err = uc.SubmitVote(ctx, judgeOne, commands.SubmitVoteCommand{ArtworkID: "artwork-a", Comment: strings.Repeat("é", 501)})
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "comment", verr.Field)

	_, err = uc.SubmitVote(ctx, judgeOne, commands.SubmitVoteCommand{ArtworkID: "artwork-a", Comment: strings.Repeat("é", 500)})
	assert.NoError(t, err)
}

func TestSubmitVoteConcurrentFirstWritesProduceOneRow(t *testing.T) {
	store, _, uc := newVoteFixture()

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			value := float64(i % 10)
			_, err := uc.SubmitVote(context.Background(), judgeOne, commands.SubmitVoteCommand{
				ArtworkID: "artwork-a",
				Scores:    scores(value, value, value, value),
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	votes, err := store.ListVotes(context.Background())
	require.NoError(t, err)
	assert.Len(t, votes, 1)
}

func TestDeleteVoteByOtherJudgeIsForbidden(t *testing.T) {
	store, _, uc := newVoteFixture()
	result, err := uc.SubmitVote(context.Background(), judgeOne, commands.SubmitVoteCommand{ArtworkID: "artwork-a", Scores: scores(3.0, 3.0, 3.0, 3.0)})
	require.NoError(t, err)

	err = uc.DeleteVote(context.Background(), judgeTwo, result.Vote.VoteID)
	assert.ErrorIs(t, err, access.ErrForbidden)

	remaining, err := store.GetVote(context.Background(), result.Vote.VoteID)
	require.NoError(t, err)
	assert.Equal(t, result.Vote, remaining)
}

func TestDeleteVoteByOwnerAndAdmin(t *testing.T) {
	store, _, uc := newVoteFixture()
	ctx := context.Background()
	own, err := uc.SubmitVote(ctx, judgeOne, commands.SubmitVoteCommand{ArtworkID: "artwork-a"})
	require.NoError(t, err)
	other, err := uc.SubmitVote(ctx, judgeTwo, commands.SubmitVoteCommand{ArtworkID: "artwork-a"})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteVote(ctx, judgeOne, own.Vote.VoteID))
	require.NoError(t, uc.DeleteVote(ctx, admin, other.Vote.VoteID))

	votes, err := store.ListVotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, votes)

	assert.ErrorIs(t, uc.DeleteVote(ctx, admin, own.Vote.VoteID), domainerrors.ErrVoteNotFound)
	assert.ErrorIs(t, uc.DeleteVote(ctx, access.Anonymous(), own.Vote.VoteID), access.ErrUnauthenticated)

	// After deletion the same judge can vote on the artwork again.
	again, err := uc.SubmitVote(ctx, judgeOne, commands.SubmitVoteCommand{ArtworkID: "artwork-a"})
	require.NoError(t, err)
	assert.False(t, again.WasUpdate)
}
