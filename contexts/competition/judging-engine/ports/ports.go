package ports

import (
	"context"
	"time"

	"artjury/contexts/competition/judging-engine/domain/entities"
)

// VoteRepository is the vote slice of the entity store. UpsertVote must keep
// at most one row per (judge, artwork) even under concurrent first writes.
type VoteRepository interface {
	UpsertVote(ctx context.Context, vote entities.Vote) (entities.Vote, error)
	GetVote(ctx context.Context, voteID string) (entities.Vote, error)
	GetVoteByIdentity(ctx context.Context, judgeID string, artworkID string) (entities.Vote, bool, error)
	ListVotes(ctx context.Context) ([]entities.Vote, error)
	ListVotesByJudge(ctx context.Context, judgeID string) ([]entities.Vote, error)
	DeleteVote(ctx context.Context, voteID string) error
}

// ArtworkDirectory resolves artworks owned by the catalog context.
type ArtworkDirectory interface {
	FindArtwork(ctx context.Context, artworkID string) (entities.ArtworkSummary, error)
	ArtworkSummaries(ctx context.Context, artworkIDs []string) (map[string]entities.ArtworkSummary, error)
}

// JudgeDirectory resolves judge display names owned by the panel context.
type JudgeDirectory interface {
	JudgeNames(ctx context.Context, judgeIDs []string) (map[string]string, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
