package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PParksung/smart-subscription-manager/internal/models"
)

func TestMemoryStore_CreateGetDelete(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	sess := models.Session{ID: "abc", UserID: 1, Email: "tester@example.com", Name: "Tester"}
	require.NoError(t, store.Create(ctx, sess))

	got, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.UserID)
	assert.Equal(t, "tester@example.com", got.Email)

	require.NoError(t, store.Delete(ctx, "abc"))

	_, err = store.Get(ctx, "abc")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_UnknownID(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_Expired(t *testing.T) {
	store := NewMemoryStore(-time.Second)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, models.Session{ID: "abc", UserID: 1}))

	_, err := store.Get(ctx, "abc")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_DeleteMissingIsNoError(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	assert.NoError(t, store.Delete(context.Background(), "missing"))
}
