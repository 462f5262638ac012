package queries

import (
	"context"

	"artjury/contexts/competition/judging-engine/domain/services"
	"artjury/contexts/competition/judging-engine/ports"
	"artjury/internal/shared/access"
)

type MyVotesQueryService struct {
	Votes    ports.VoteRepository
	Artworks ports.ArtworkDirectory
}

// ListMyVotes returns the calling judge's votes, newest first.
func (s MyVotesQueryService) ListMyVotes(ctx context.Context, actor access.Actor) ([]VoteView, error) {
	if err := access.RequireVotingJudge(actor); err != nil {
		return nil, err
	}
	votes, err := s.Votes.ListVotesByJudge(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	artworkIDs := make([]string, 0, len(votes))
	for _, vote := range votes {
		artworkIDs = append(artworkIDs, vote.ArtworkID)
	}
	artworks, err := s.Artworks.ArtworkSummaries(ctx, artworkIDs)
	if err != nil {
		return nil, err
	}

	views := make([]VoteView, 0, len(votes))
	for _, vote := range votes {
		artwork := artworks[vote.ArtworkID]
		views = append(views, VoteView{
			Vote:        vote,
			TotalScore:  services.ComputeVoteTotalScore(vote.Scores),
			Title:       artwork.Title,
			ArtworkCode: artwork.ArtworkCode,
		})
	}
	return views, nil
}
