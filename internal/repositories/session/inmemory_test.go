package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/questline/internal/entities"
	"github.com/KirkDiggler/questline/internal/errors"
	"github.com/KirkDiggler/questline/internal/repositories/session"
	"github.com/KirkDiggler/questline/internal/testutils/builders"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := session.NewInMemory()

	saved := builders.NewSessionBuilder().
		WithCompleted(1).
		WithStats(entities.TierC, entities.TierD, entities.TierE).
		Build()

	out, err := repo.Save(ctx, &session.SaveInput{Session: saved})
	require.NoError(t, err)
	assert.True(t, out.ExpiresAt.IsZero())

	t.Run("get returns an independent copy", func(t *testing.T) {
		got, err := repo.Get(ctx, &session.GetInput{SessionID: saved.ID})
		require.NoError(t, err)
		assert.Equal(t, entities.TierC, got.Session.Character.Stats.Strength())

		got.Session.Points = 500
		got.Session.Completed[2] = true

		again, err := repo.Get(ctx, &session.GetInput{SessionID: saved.ID})
		require.NoError(t, err)
		assert.Zero(t, again.Session.Points)
		assert.False(t, again.Session.IsQuestCompleted(2))
	})

	t.Run("save snapshots the session", func(t *testing.T) {
		saved.Points = 77

		got, err := repo.Get(ctx, &session.GetInput{SessionID: saved.ID})
		require.NoError(t, err)
		assert.Zero(t, got.Session.Points)
	})

	t.Run("missing session", func(t *testing.T) {
		_, err := repo.Get(ctx, &session.GetInput{SessionID: "nope"})
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("delete", func(t *testing.T) {
		_, err := repo.Delete(ctx, &session.DeleteInput{SessionID: saved.ID})
		require.NoError(t, err)

		_, err = repo.Delete(ctx, &session.DeleteInput{SessionID: saved.ID})
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := repo.Save(ctx, &session.SaveInput{})
		assert.True(t, errors.IsInvalidArgument(err))

		_, err = repo.Get(ctx, nil)
		assert.True(t, errors.IsInvalidArgument(err))
	})
}
