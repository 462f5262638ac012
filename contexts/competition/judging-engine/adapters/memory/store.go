package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"artjury/contexts/competition/judging-engine/domain/entities"
	domainerrors "artjury/contexts/competition/judging-engine/domain/errors"
	"artjury/contexts/competition/judging-engine/ports"

	"github.com/google/uuid"
)

type identity struct {
	judgeID   string
	artworkID string
}

// Store keeps votes keyed by id plus a unique (judge, artwork) index guarded
// by the same mutex.
type Store struct {
	mu sync.RWMutex

	votes      map[string]entities.Vote
	byIdentity map[identity]string
}

func NewStore(seed []entities.Vote) *Store {
	store := &Store{
		votes:      make(map[string]entities.Vote, len(seed)),
		byIdentity: make(map[identity]string, len(seed)),
	}
	for _, vote := range seed {
		vote = normalize(vote)
		store.votes[vote.VoteID] = vote
		store.byIdentity[identity{judgeID: vote.JudgeID, artworkID: vote.ArtworkID}] = vote.VoteID
	}
	return store
}

func (s *Store) UpsertVote(_ context.Context, vote entities.Vote) (entities.Vote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	vote = normalize(vote)
	key := identity{judgeID: vote.JudgeID, artworkID: vote.ArtworkID}
	if existingID, ok := s.byIdentity[key]; ok {
		existing := s.votes[existingID]
		existing.Category = vote.Category
		existing.Scores = vote.Scores
		existing.Comment = vote.Comment
		existing.UpdatedAt = vote.UpdatedAt
		s.votes[existingID] = existing
		return existing, nil
	}
	if _, taken := s.votes[vote.VoteID]; taken {
		return entities.Vote{}, domainerrors.ErrVoteConflict
	}
	s.votes[vote.VoteID] = vote
	s.byIdentity[key] = vote.VoteID
	return vote, nil
}

func (s *Store) GetVote(_ context.Context, voteID string) (entities.Vote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	vote, ok := s.votes[strings.TrimSpace(voteID)]
	if !ok {
		return entities.Vote{}, domainerrors.ErrVoteNotFound
	}
	return vote, nil
}

func (s *Store) GetVoteByIdentity(_ context.Context, judgeID string, artworkID string) (entities.Vote, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	voteID, ok := s.byIdentity[identity{judgeID: strings.TrimSpace(judgeID), artworkID: strings.TrimSpace(artworkID)}]
	if !ok {
		return entities.Vote{}, false, nil
	}
	return s.votes[voteID], true, nil
}

func (s *Store) ListVotes(_ context.Context) ([]entities.Vote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Vote, 0, len(s.votes))
	for _, vote := range s.votes {
		items = append(items, vote)
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		}
		return items[i].VoteID < items[j].VoteID
	})
	return items, nil
}

func (s *Store) ListVotesByJudge(_ context.Context, judgeID string) ([]entities.Vote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	judgeID = strings.TrimSpace(judgeID)
	items := make([]entities.Vote, 0)
	for _, vote := range s.votes {
		if vote.JudgeID == judgeID {
			items = append(items, vote)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].VoteID > items[j].VoteID
	})
	return items, nil
}

func (s *Store) DeleteVote(_ context.Context, voteID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	voteID = strings.TrimSpace(voteID)
	vote, ok := s.votes[voteID]
	if !ok {
		return domainerrors.ErrVoteNotFound
	}
	delete(s.votes, voteID)
	delete(s.byIdentity, identity{judgeID: vote.JudgeID, artworkID: vote.ArtworkID})
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func normalize(vote entities.Vote) entities.Vote {
	vote.VoteID = strings.TrimSpace(vote.VoteID)
	vote.JudgeID = strings.TrimSpace(vote.JudgeID)
	vote.ArtworkID = strings.TrimSpace(vote.ArtworkID)
	return vote
}

var _ ports.VoteRepository = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
var _ ports.IDGenerator = (*Store)(nil)
