package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type migratorFunc func(ctx context.Context) error

func (f migratorFunc) Migrate(ctx context.Context) error { return f(ctx) }

func TestMigrateStopsAtFirstFailure(t *testing.T) {
	var ran []string
	boom := errors.New("boom")
	err := Migrate(context.Background(),
		migratorFunc(func(context.Context) error { ran = append(ran, "artworks"); return nil }),
		migratorFunc(func(context.Context) error { ran = append(ran, "votes"); return boom }),
		migratorFunc(func(context.Context) error { ran = append(ran, "panel"); return nil }),
	)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"artworks", "votes"}, ran)
}

func TestConnectRequiresDSN(t *testing.T) {
	_, err := Connect("")
	require.Error(t, err)
	_, err = Connect("   ")
	require.Error(t, err)
}

func TestCloseNilIsSafe(t *testing.T) {
	var pg *Postgres
	assert.NoError(t, pg.Close())
}
