// Package session signs and verifies the bearer tokens handed out at login.
// A token carries the actor's role and, for judges, the category snapshot
// taken at login time.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"artjury/internal/shared/access"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrTokenExpired = errors.New("session token has expired")
)

type claims struct {
	jwt.RegisteredClaims
	Role       string   `json:"role"`
	Name       string   `json:"name,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock returns a copy of the service that reads time from now.
func (s *Service) WithClock(now func() time.Time) *Service {
	clone := *s
	clone.now = now
	return &clone
}

func (s *Service) IssueToken(actor access.Actor, name string) (string, time.Time, error) {
	if actor.IsAnonymous() {
		return "", time.Time{}, errors.New("session: cannot issue a token for an anonymous actor")
	}
	now := s.now().UTC()
	expiresAt := now.Add(s.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   actor.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Role:       string(actor.Role),
		Name:       name,
		Categories: access.CategoryStrings(actor.Categories),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify parses a token back into the actor it was issued for. Unknown
// categories in the snapshot are dropped.
func (s *Service) Verify(raw string) (access.Actor, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return access.Anonymous(), ErrInvalidToken
	}
	token, err := jwt.ParseWithClaims(raw, &claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return access.Anonymous(), ErrTokenExpired
		}
		return access.Anonymous(), ErrInvalidToken
	}
	parsed, ok := token.Claims.(*claims)
	if !ok || !token.Valid || strings.TrimSpace(parsed.Subject) == "" {
		return access.Anonymous(), ErrInvalidToken
	}

	switch access.Role(parsed.Role) {
	case access.RoleAdmin:
		return access.Admin(parsed.Subject), nil
	case access.RoleJudge:
		categories := make([]access.Category, 0, len(parsed.Categories))
		for _, value := range parsed.Categories {
			if category, ok := access.ParseCategory(value); ok {
				categories = append(categories, category)
			}
		}
		return access.Judge(parsed.Subject, categories...), nil
	default:
		return access.Anonymous(), ErrInvalidToken
	}
}
