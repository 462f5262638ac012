//go:build integration

package bootstrap

import (
	"context"
	"testing"
	"time"

	judgingcommands "artjury/contexts/competition/judging-engine/application/commands"
	panelcommands "artjury/contexts/identity-access/panel-service/application/commands"
	paneldomainerrors "artjury/contexts/identity-access/panel-service/domain/errors"
	"artjury/internal/app/seed"
	"artjury/internal/platform/config"
	"artjury/internal/shared/access"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) string {
	t.Helper()
	ctx := context.Background()
	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("artjury"),
		postgres.WithUsername("artjury"),
		postgres.WithPassword("artjury"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	return dsn
}

func TestPostgresModulesEndToEnd(t *testing.T) {
	cfg := config.Defaults()
	cfg.Session.Secret = "integration-secret"
	cfg.Store.Driver = config.StorePostgres
	cfg.Store.PostgresDSN = startPostgres(t)

	ctx := context.Background()
	modules, err := BuildModules(ctx, cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = modules.Close() })

	seeder := modules.Seeder(nil)
	reports, err := seeder.SeedAll(ctx, seed.DefaultFixture())
	require.NoError(t, err)
	assert.Equal(t, seed.Report{Created: 6}, reports["artworks"])

	again, err := seeder.SeedAll(ctx, seed.DefaultFixture())
	require.NoError(t, err)
	assert.Equal(t, seed.Report{Skipped: 2}, again["judges"])

	principal, err := modules.Panel.Handler.Login.Authenticate(ctx, "JUDGE1", "judgepass")
	require.NoError(t, err)
	judge := principal.Actor
	assert.ElementsMatch(t,
		[]access.Category{access.CategoryPhotography, access.CategoryDigitalPainting},
		judge.Categories,
	)

	admin := access.Admin("integration")
	artworks, err := modules.Catalog.Queries.ListArtworks(ctx, admin)
	require.NoError(t, err)
	var photoID string
	for _, artwork := range artworks {
		if artwork.ArtworkCode == "PHO-001" {
			photoID = artwork.ArtworkID
		}
	}
	require.NotEmpty(t, photoID)

	votes := modules.Judging.Handler.Votes
	first, err := votes.SubmitVote(ctx, judge, judgingcommands.SubmitVoteCommand{
		ArtworkID: photoID,
		Scores: map[string]any{
			"techniqueExecution":    8,
			"creativityOriginality": 7,
			"conceptMessage":        6,
			"aestheticImpact":       9,
		},
	})
	require.NoError(t, err)
	assert.False(t, first.WasUpdate)

	second, err := votes.SubmitVote(ctx, judge, judgingcommands.SubmitVoteCommand{
		ArtworkID: photoID,
		Scores: map[string]any{
			"techniqueExecution":    10,
			"creativityOriginality": 10,
			"conceptMessage":        10,
			"aestheticImpact":       10,
		},
		Comment: "  revised  ",
	})
	require.NoError(t, err)
	assert.True(t, second.WasUpdate)
	assert.Equal(t, first.Vote.VoteID, second.Vote.VoteID)
	assert.Equal(t, "revised", second.Vote.Comment)

	results, err := modules.Judging.Handler.Results.Results(ctx, admin, 0)
	require.NoError(t, err)
	require.Len(t, results.ArtworkStats, 1)
	assert.Equal(t, 1, results.ArtworkStats[0].TotalVotes)
	assert.InDelta(t, 40, results.ArtworkStats[0].TotalScore, 1e-9)
	assert.Equal(t, "PHO-001", results.ArtworkStats[0].ArtworkCode)

	_, err = modules.Panel.Handler.Judges.CreateJudge(ctx, admin, panelcommands.CreateJudgeCommand{
		Username:   "Admin",
		Name:       "Clash",
		Password:   "secret",
		Categories: []string{"Drawing"},
	})
	assert.ErrorIs(t, err, paneldomainerrors.ErrUsernameTaken)
}
