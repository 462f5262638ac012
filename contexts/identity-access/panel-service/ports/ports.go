package ports

import (
	"context"
	"time"

	"artjury/contexts/identity-access/panel-service/domain/entities"
	"artjury/internal/shared/access"
)

// Usernames are stored lowercased; lookups take already-normalized values.
type PanelRepository interface {
	CreateJudge(ctx context.Context, judge entities.Judge) error
	UpdateJudge(ctx context.Context, judge entities.Judge) error
	DeleteJudge(ctx context.Context, judgeID string) error
	GetJudge(ctx context.Context, judgeID string) (entities.Judge, error)
	GetJudgeByUsername(ctx context.Context, username string) (entities.Judge, bool, error)
	ListJudges(ctx context.Context) ([]entities.Judge, error)
	ListJudgesByIDs(ctx context.Context, judgeIDs []string) ([]entities.Judge, error)
	RecordJudgeLogin(ctx context.Context, judgeID string, at time.Time) error

	CreateAdmin(ctx context.Context, admin entities.Admin) error
	GetAdminByUsername(ctx context.Context, username string) (entities.Admin, bool, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) bool
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// TokenIssuer signs a session token for an authenticated panel member.
type TokenIssuer interface {
	IssueToken(actor access.Actor, name string) (string, time.Time, error)
}
