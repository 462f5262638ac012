package system

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockIsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, Clock{}.Now().Location())
}

func TestUUIDsAreDistinctV4(t *testing.T) {
	first, err := UUIDs{}.NewID(context.Background())
	require.NoError(t, err)
	second, err := UUIDs{}.NewID(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}
