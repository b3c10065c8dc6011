package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionauth/core/auth"
)

func TestNewCleaner_Validation(t *testing.T) {
	sessions := newMemSessionStore()

	_, err := auth.NewCleaner(nil, time.Hour, time.Minute)
	assert.Error(t, err)

	_, err = auth.NewCleaner(sessions, 0, time.Minute)
	assert.Error(t, err)

	_, err = auth.NewCleaner(sessions, time.Hour, 0)
	assert.Error(t, err)
}

func TestCleaner_RunOnce(t *testing.T) {
	sessions := newMemSessionStore()

	stale := auth.Session{ID: uuid.New(), Adapter: "session", AuthHash: "stale", LastVisit: time.Now().Add(-48 * time.Hour)}
	fresh := auth.Session{ID: uuid.New(), Adapter: "session", AuthHash: "fresh", LastVisit: time.Now()}
	require.NoError(t, sessions.Insert(context.Background(), stale))
	require.NoError(t, sessions.Insert(context.Background(), fresh))

	cleaner, err := auth.NewCleaner(sessions, 24*time.Hour, time.Minute)
	require.NoError(t, err)

	deleted, err := cleaner.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
	assert.Equal(t, 1, sessions.count())
	assert.Equal(t, "fresh", sessions.only().AuthHash)
}

func TestCleaner_RunStopsOnCancel(t *testing.T) {
	cleaner, err := auth.NewCleaner(newMemSessionStore(), time.Hour, time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err = cleaner.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
