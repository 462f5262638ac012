package queries

import (
	"context"
	"fmt"
	"log/slog"

	"artjury/contexts/competition/judging-engine/domain/entities"
	"artjury/contexts/competition/judging-engine/domain/services"
	"artjury/contexts/competition/judging-engine/ports"
	"artjury/internal/shared/access"
	"artjury/internal/shared/logging"

	"golang.org/x/sync/singleflight"
)

// VoteView is a vote with its derived total and the names needed to render it.
type VoteView struct {
	Vote        entities.Vote
	TotalScore  float64
	JudgeName   string
	Title       string
	ArtworkCode string
}

type Results struct {
	Votes         []VoteView
	ArtworkStats  []entities.ArtworkStats
	TopByCategory map[access.Category][]entities.ArtworkStats
	Categories    []access.Category
}

// ResultsQueryService recomputes results from the full vote set on every
// call. Concurrent calls with the same limit share one computation; the
// shared Results value must be treated as read-only.
type ResultsQueryService struct {
	Votes       ports.VoteRepository
	Artworks    ports.ArtworkDirectory
	Judges      ports.JudgeDirectory
	DefaultTopN int
	Flight      *singleflight.Group
	Logger      *slog.Logger
}

func (s ResultsQueryService) Results(ctx context.Context, actor access.Actor, limit int) (Results, error) {
	if err := access.RequireAdmin(actor); err != nil {
		return Results{}, err
	}
	if limit <= 0 {
		limit = s.DefaultTopN
	}
	if limit <= 0 {
		limit = services.DefaultTopN
	}
	if s.Flight == nil {
		return s.compute(ctx, limit)
	}
	// The shared computation outlives any single caller; one cancelled
	// request must not fail the others waiting on it.
	shared := context.WithoutCancel(ctx)
	value, err, _ := s.Flight.Do(fmt.Sprintf("results:%d", limit), func() (any, error) {
		return s.compute(shared, limit)
	})
	if err != nil {
		return Results{}, err
	}
	return value.(Results), nil
}

func (s ResultsQueryService) compute(ctx context.Context, limit int) (Results, error) {
	logger := logging.OrDefault(s.Logger)
	votes, err := s.Votes.ListVotes(ctx)
	if err != nil {
		return Results{}, err
	}

	artworkIDs := make([]string, 0)
	judgeIDs := make([]string, 0)
	seenArtworks := map[string]struct{}{}
	seenJudges := map[string]struct{}{}
	for _, vote := range votes {
		if _, ok := seenArtworks[vote.ArtworkID]; !ok {
			seenArtworks[vote.ArtworkID] = struct{}{}
			artworkIDs = append(artworkIDs, vote.ArtworkID)
		}
		if _, ok := seenJudges[vote.JudgeID]; !ok {
			seenJudges[vote.JudgeID] = struct{}{}
			judgeIDs = append(judgeIDs, vote.JudgeID)
		}
	}

	artworks, err := s.Artworks.ArtworkSummaries(ctx, artworkIDs)
	if err != nil {
		return Results{}, err
	}
	judgeNames := map[string]string{}
	if s.Judges != nil {
		judgeNames, err = s.Judges.JudgeNames(ctx, judgeIDs)
		if err != nil {
			return Results{}, err
		}
	}

	categories := access.Categories()
	stats := services.JoinArtworkDetails(services.ComputeArtworkStats(votes), artworks)
	top := services.ComputeTopNByCategory(stats, categories, limit)

	views := make([]VoteView, 0, len(votes))
	for _, vote := range votes {
		artwork := artworks[vote.ArtworkID]
		views = append(views, VoteView{
			Vote:        vote,
			TotalScore:  services.ComputeVoteTotalScore(vote.Scores),
			JudgeName:   judgeNames[vote.JudgeID],
			Title:       artwork.Title,
			ArtworkCode: artwork.ArtworkCode,
		})
	}

	logger.Info("results computed",
		"event", "judging_results_computed",
		"module", "competition/judging-engine",
		"layer", "application",
		"votes", len(votes),
		"artworks_ranked", len(stats),
		"top_n", limit,
	)
	return Results{
		Votes:         views,
		ArtworkStats:  stats,
		TopByCategory: top,
		Categories:    categories,
	}, nil
}
