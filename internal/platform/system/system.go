// Package system provides the wall clock and ID source used by every
// context when running against a real store.
package system

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Clock struct{}

func (Clock) Now() time.Time {
	return time.Now().UTC()
}

// UUIDs hands out random (v4) identifiers.
type UUIDs struct{}

func (UUIDs) NewID(_ context.Context) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return id.String(), nil
}
