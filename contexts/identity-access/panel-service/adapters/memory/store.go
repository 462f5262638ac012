package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"artjury/contexts/identity-access/panel-service/domain/entities"
	domainerrors "artjury/contexts/identity-access/panel-service/domain/errors"
	"artjury/contexts/identity-access/panel-service/ports"
	"artjury/internal/shared/access"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	judges          map[string]entities.Judge
	judgeByUsername map[string]string
	admins          map[string]entities.Admin
	adminByUsername map[string]string
}

func NewStore() *Store {
	return &Store{
		judges:          make(map[string]entities.Judge),
		judgeByUsername: make(map[string]string),
		admins:          make(map[string]entities.Admin),
		adminByUsername: make(map[string]string),
	}
}

func (s *Store) CreateJudge(_ context.Context, judge entities.Judge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	judge = normalizeJudge(judge)
	if _, exists := s.judgeByUsername[judge.Username]; exists {
		return domainerrors.ErrUsernameTaken
	}
	s.judges[judge.JudgeID] = judge
	s.judgeByUsername[judge.Username] = judge.JudgeID
	return nil
}

func (s *Store) UpdateJudge(_ context.Context, judge entities.Judge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	judge = normalizeJudge(judge)
	current, ok := s.judges[judge.JudgeID]
	if !ok {
		return domainerrors.ErrJudgeNotFound
	}
	if ownerID, exists := s.judgeByUsername[judge.Username]; exists && ownerID != judge.JudgeID {
		return domainerrors.ErrUsernameTaken
	}
	delete(s.judgeByUsername, current.Username)
	s.judges[judge.JudgeID] = judge
	s.judgeByUsername[judge.Username] = judge.JudgeID
	return nil
}

func (s *Store) DeleteJudge(_ context.Context, judgeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	judgeID = strings.TrimSpace(judgeID)
	judge, ok := s.judges[judgeID]
	if !ok {
		return domainerrors.ErrJudgeNotFound
	}
	delete(s.judges, judgeID)
	delete(s.judgeByUsername, judge.Username)
	return nil
}

func (s *Store) GetJudge(_ context.Context, judgeID string) (entities.Judge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	judge, ok := s.judges[strings.TrimSpace(judgeID)]
	if !ok {
		return entities.Judge{}, domainerrors.ErrJudgeNotFound
	}
	return copyJudge(judge), nil
}

func (s *Store) GetJudgeByUsername(_ context.Context, username string) (entities.Judge, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	judgeID, ok := s.judgeByUsername[strings.ToLower(strings.TrimSpace(username))]
	if !ok {
		return entities.Judge{}, false, nil
	}
	return copyJudge(s.judges[judgeID]), true, nil
}

func (s *Store) ListJudges(_ context.Context) ([]entities.Judge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Judge, 0, len(s.judges))
	for _, judge := range s.judges {
		items = append(items, copyJudge(judge))
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Username < items[j].Username
	})
	return items, nil
}

func (s *Store) ListJudgesByIDs(_ context.Context, judgeIDs []string) ([]entities.Judge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Judge, 0, len(judgeIDs))
	for _, id := range judgeIDs {
		if judge, ok := s.judges[strings.TrimSpace(id)]; ok {
			items = append(items, copyJudge(judge))
		}
	}
	return items, nil
}

func (s *Store) RecordJudgeLogin(_ context.Context, judgeID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	judgeID = strings.TrimSpace(judgeID)
	judge, ok := s.judges[judgeID]
	if !ok {
		return domainerrors.ErrJudgeNotFound
	}
	loginAt := at.UTC()
	judge.LastLoginAt = &loginAt
	s.judges[judgeID] = judge
	return nil
}

func (s *Store) CreateAdmin(_ context.Context, admin entities.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	admin.AdminID = strings.TrimSpace(admin.AdminID)
	admin.Username = strings.ToLower(strings.TrimSpace(admin.Username))
	if _, exists := s.adminByUsername[admin.Username]; exists {
		return domainerrors.ErrUsernameTaken
	}
	s.admins[admin.AdminID] = admin
	s.adminByUsername[admin.Username] = admin.AdminID
	return nil
}

func (s *Store) GetAdminByUsername(_ context.Context, username string) (entities.Admin, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	adminID, ok := s.adminByUsername[strings.ToLower(strings.TrimSpace(username))]
	if !ok {
		return entities.Admin{}, false, nil
	}
	return s.admins[adminID], true, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func normalizeJudge(judge entities.Judge) entities.Judge {
	judge.JudgeID = strings.TrimSpace(judge.JudgeID)
	judge.Username = strings.ToLower(strings.TrimSpace(judge.Username))
	return copyJudge(judge)
}

func copyJudge(judge entities.Judge) entities.Judge {
	judge.Categories = append([]access.Category(nil), judge.Categories...)
	if judge.LastLoginAt != nil {
		at := *judge.LastLoginAt
		judge.LastLoginAt = &at
	}
	return judge
}

var _ ports.PanelRepository = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
var _ ports.IDGenerator = (*Store)(nil)
