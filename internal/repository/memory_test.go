package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/rocketscienceinc/hexguess-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Stored round is returned as a copy", func(t *testing.T) {
		// Given: a stored round
		roundRepo := NewMemoryRoundRepository()
		round := entity.NewRound("r1", "1a2b3c")
		require.NoError(t, roundRepo.CreateOrUpdate(ctx, round))

		// When: the caller keeps mutating its own round
		_, err := round.Guess("000000")
		require.NoError(t, err)

		// Then: the stored round is unchanged
		stored, err := roundRepo.GetByID(ctx, "r1")
		require.NoError(t, err)
		assert.Empty(t, stored.Guesses)
		assert.Equal(t, round.Target, stored.Target)
	})

	t.Run("Update stores the change", func(t *testing.T) {
		// Given: a stored round
		roundRepo := NewMemoryRoundRepository()
		require.NoError(t, roundRepo.CreateOrUpdate(ctx, entity.NewRound("r1", "1a2b3c")))

		// When: a guess is recorded through Update
		updated, err := roundRepo.Update(ctx, "r1", func(round *entity.Round) (bool, error) {
			return round.Guess("000000")
		})

		// Then: the next read sees it
		require.NoError(t, err)
		assert.Len(t, updated.Guesses, 1)

		stored, err := roundRepo.GetByID(ctx, "r1")
		require.NoError(t, err)
		assert.Equal(t, updated, stored)
	})

	t.Run("Update keeps the stored round when the change fails", func(t *testing.T) {
		roundRepo := NewMemoryRoundRepository()
		require.NoError(t, roundRepo.CreateOrUpdate(ctx, entity.NewRound("r1", "1a2b3c")))

		_, err := roundRepo.Update(ctx, "r1", func(round *entity.Round) (bool, error) {
			round.Draft = "abc"
			return true, errors.New("rejected")
		})
		require.Error(t, err)

		stored, err := roundRepo.GetByID(ctx, "r1")
		require.NoError(t, err)
		assert.Empty(t, stored.Draft)
	})

	t.Run("Update of a missing round returns ErrRoundNotFound", func(t *testing.T) {
		roundRepo := NewMemoryRoundRepository()

		updated, err := roundRepo.Update(ctx, "missing", func(*entity.Round) (bool, error) {
			return true, nil
		})

		assert.Equal(t, ErrRoundNotFound, err)
		assert.Nil(t, updated)
	})

	t.Run("Missing round returns ErrRoundNotFound", func(t *testing.T) {
		roundRepo := NewMemoryRoundRepository()

		stored, err := roundRepo.GetByID(ctx, "missing")

		assert.Equal(t, ErrRoundNotFound, err)
		assert.Nil(t, stored)
	})
}

func TestMemoryPlayerRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Round trip", func(t *testing.T) {
		playerRepo := NewMemoryPlayerRepository()
		player := &entity.Player{ID: "p1", RoundID: "r1", Wins: 3}

		require.NoError(t, playerRepo.CreateOrUpdate(ctx, player))

		stored, err := playerRepo.GetByID(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, player, stored)
	})

	t.Run("Update counts a win", func(t *testing.T) {
		playerRepo := NewMemoryPlayerRepository()
		require.NoError(t, playerRepo.CreateOrUpdate(ctx, &entity.Player{ID: "p1"}))

		updated, err := playerRepo.Update(ctx, "p1", func(player *entity.Player) (bool, error) {
			player.Wins++
			return true, nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1, updated.Wins)
		require.NoError(t, playerRepo.Refresh(ctx, "p1"))
	})

	t.Run("Missing player returns ErrPlayerNotFound", func(t *testing.T) {
		playerRepo := NewMemoryPlayerRepository()

		stored, err := playerRepo.GetByID(ctx, "missing")

		assert.Equal(t, ErrPlayerNotFound, err)
		assert.Nil(t, stored)
	})
}
