package queries

import (
	"context"

	"artjury/contexts/identity-access/panel-service/domain/entities"
	"artjury/contexts/identity-access/panel-service/ports"
	"artjury/internal/shared/access"
)

type JudgeQueryService struct {
	Repository ports.PanelRepository
}

// ListJudges is admin only and ordered by username.
func (s JudgeQueryService) ListJudges(ctx context.Context, actor access.Actor) ([]entities.Judge, error) {
	if err := access.RequireAdmin(actor); err != nil {
		return nil, err
	}
	return s.Repository.ListJudges(ctx)
}

// JudgeNames maps judge ids to display names for result views. Unknown ids
// are omitted.
func (s JudgeQueryService) JudgeNames(ctx context.Context, judgeIDs []string) (map[string]string, error) {
	out := make(map[string]string, len(judgeIDs))
	if len(judgeIDs) == 0 {
		return out, nil
	}
	judges, err := s.Repository.ListJudgesByIDs(ctx, judgeIDs)
	if err != nil {
		return nil, err
	}
	for _, judge := range judges {
		out[judge.JudgeID] = judge.Name
	}
	return out, nil
}
