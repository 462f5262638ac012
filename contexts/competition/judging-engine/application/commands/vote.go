package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"artjury/contexts/competition/judging-engine/domain/entities"
	domainerrors "artjury/contexts/competition/judging-engine/domain/errors"
	"artjury/contexts/competition/judging-engine/ports"
	"artjury/internal/shared/access"
	"artjury/internal/shared/logging"
	"artjury/internal/shared/validation"
)

// SubmitVoteCommand carries scores exactly as decoded from the request body.
type SubmitVoteCommand struct {
	ArtworkID string
	Scores    map[string]any
	Comment   string
}

type SubmitVoteResult struct {
	Vote      entities.Vote
	WasUpdate bool
}

// VoteUseCase owns vote writes: one vote per (judge, artwork), resubmission
// overwrites in place.
type VoteUseCase struct {
	Votes    ports.VoteRepository
	Artworks ports.ArtworkDirectory
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	MaxScore float64
	Logger   *slog.Logger
}

func (uc VoteUseCase) SubmitVote(ctx context.Context, actor access.Actor, cmd SubmitVoteCommand) (SubmitVoteResult, error) {
	logger := logging.OrDefault(uc.Logger)
	if err := access.RequireVotingJudge(actor); err != nil {
		logger.Warn("vote submit denied",
			"event", "judging_vote_submit_denied",
			"module", "competition/judging-engine",
			"layer", "application",
			"actor_id", actor.ID,
			"role", string(actor.Role),
		)
		return SubmitVoteResult{}, err
	}

	artworkID := strings.TrimSpace(cmd.ArtworkID)
	if artworkID == "" {
		return SubmitVoteResult{}, validation.Field("artworkId", "is required")
	}
	comment := strings.TrimSpace(cmd.Comment)
	if utf8.RuneCountInString(comment) > entities.MaxCommentLength {
		return SubmitVoteResult{}, validation.Fieldf("comment", "must be at most %d characters", entities.MaxCommentLength)
	}

	artwork, err := uc.Artworks.FindArtwork(ctx, artworkID)
	if err != nil {
		return SubmitVoteResult{}, err
	}
	if !access.CanViewCategory(actor, artwork.Category) {
		// Accepted: the write path does not re-check category assignment.
		logger.Warn("vote submitted outside assigned categories",
			"event", "judging_vote_outside_assignment",
			"module", "competition/judging-engine",
			"layer", "application",
			"judge_id", actor.ID,
			"artwork_id", artworkID,
			"category", string(artwork.Category),
		)
	}

	existing, found, err := uc.Votes.GetVoteByIdentity(ctx, actor.ID, artworkID)
	if err != nil {
		return SubmitVoteResult{}, err
	}

	now := uc.now()
	vote := entities.Vote{
		JudgeID:   actor.ID,
		ArtworkID: artworkID,
		Category:  artwork.Category,
		Scores:    entities.CoerceScores(cmd.Scores, uc.MaxScore),
		Comment:   comment,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if found {
		vote.VoteID = existing.VoteID
		vote.CreatedAt = existing.CreatedAt
	} else {
		id, err := uc.IDGen.NewID(ctx)
		if err != nil {
			return SubmitVoteResult{}, err
		}
		vote.VoteID = id
	}

	stored, err := uc.Votes.UpsertVote(ctx, vote)
	if err != nil {
		logger.Error("vote upsert failed",
			"event", "judging_vote_upsert_failed",
			"module", "competition/judging-engine",
			"layer", "application",
			"judge_id", actor.ID,
			"artwork_id", artworkID,
			"error", err.Error(),
		)
		return SubmitVoteResult{}, err
	}

	// A concurrent first write by the same judge can win the race; the store
	// returns that row and this call becomes an update of it.
	wasUpdate := found || stored.VoteID != vote.VoteID
	event := "judging_vote_created"
	if wasUpdate {
		event = "judging_vote_updated"
	}
	logger.Info("vote stored",
		"event", event,
		"module", "competition/judging-engine",
		"layer", "application",
		"vote_id", stored.VoteID,
		"judge_id", stored.JudgeID,
		"artwork_id", stored.ArtworkID,
		"category", string(stored.Category),
	)
	return SubmitVoteResult{Vote: stored, WasUpdate: wasUpdate}, nil
}

// DeleteVote lets the owning judge or any admin remove a vote permanently.
func (uc VoteUseCase) DeleteVote(ctx context.Context, actor access.Actor, voteID string) error {
	logger := logging.OrDefault(uc.Logger)
	if actor.IsAnonymous() {
		return access.ErrUnauthenticated
	}
	voteID = strings.TrimSpace(voteID)
	if voteID == "" {
		return domainerrors.ErrVoteNotFound
	}

	vote, err := uc.Votes.GetVote(ctx, voteID)
	if err != nil {
		return err
	}
	if !access.CanDeleteVote(actor, vote.JudgeID) {
		logger.Warn("vote delete forbidden",
			"event", "judging_vote_delete_forbidden",
			"module", "competition/judging-engine",
			"layer", "application",
			"vote_id", voteID,
			"actor_id", actor.ID,
		)
		return access.ErrForbidden
	}
	if err := uc.Votes.DeleteVote(ctx, voteID); err != nil {
		return err
	}

	logger.Info("vote deleted",
		"event", "judging_vote_deleted",
		"module", "competition/judging-engine",
		"layer", "application",
		"vote_id", voteID,
		"actor_id", actor.ID,
		"role", string(actor.Role),
	)
	return nil
}

func (uc VoteUseCase) now() time.Time {
	if uc.Clock == nil {
		return time.Now().UTC()
	}
	return uc.Clock.Now().UTC()
}
