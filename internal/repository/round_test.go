package repository

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rocketscienceinc/hexguess-backend/internal/entity"
	"github.com/rocketscienceinc/hexguess-backend/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTTL = time.Minute

func TestRoundRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	roundRepo := NewRoundRepository(st.Storage, testTTL)

	// Given: a new round
	round := entity.NewRound("123", "1a2b3c")

	// When: CreateOrUpdate is called
	err := roundRepo.CreateOrUpdate(ctx, round)

	// Then: no error should be returned, and the key expires with the session
	require.NoError(t, err)

	ttl, err := st.Storage.TTL(ctx, "round:123").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestRoundRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		roundRepo := NewRoundRepository(st.Storage, testTTL)

		// Given: a stored round with one guess
		round := entity.NewRound("123", "1a2b3c")
		_, err := round.Guess("1a2b3d")
		require.NoError(t, err)

		err = roundRepo.CreateOrUpdate(ctx, round)
		require.NoError(t, err)

		// When: GetByID is called with existing ID
		retrievedRound, err := roundRepo.GetByID(ctx, round.ID)

		// Then: the retrieved round should match the saved round
		require.NoError(t, err)
		require.Equal(t, round, retrievedRound)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		roundRepo := NewRoundRepository(st.Storage, testTTL)

		// When: GetByID is called with non-existent ID
		retrievedRound, err := roundRepo.GetByID(ctx, "9999999")

		// Then: an ErrRoundNotFound error should be returned
		require.Error(t, err)
		assert.Equal(t, ErrRoundNotFound, err)
		assert.Nil(t, retrievedRound)
	})
}

func TestRoundRepository_Update(t *testing.T) {
	t.Run("Update_AppliesChange", func(t *testing.T) {
		ctx, st := suite.New(t)

		roundRepo := NewRoundRepository(st.Storage, testTTL)

		// Given: a stored round
		require.NoError(t, roundRepo.CreateOrUpdate(ctx, entity.NewRound("123", "1a2b3c")))

		// When: a guess is recorded through Update
		updated, err := roundRepo.Update(ctx, "123", func(round *entity.Round) (bool, error) {
			return round.Guess("000000")
		})

		// Then: the stored round carries the guess
		require.NoError(t, err)
		assert.Len(t, updated.Guesses, 1)

		stored, err := roundRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, updated, stored)
	})

	t.Run("Update_ConcurrentWritersKeepEveryChange", func(t *testing.T) {
		ctx, st := suite.New(t)

		roundRepo := NewRoundRepository(st.Storage, testTTL)
		require.NoError(t, roundRepo.CreateOrUpdate(ctx, entity.NewRound("123", "1a2b3c")))

		const writers = 5

		// When: several writers append a guess at the same time
		var wg sync.WaitGroup
		for i := range writers {
			wg.Add(1)
			go func() {
				defer wg.Done()

				_, err := roundRepo.Update(ctx, "123", func(round *entity.Round) (bool, error) {
					return round.Guess(fmt.Sprintf("%06x", i))
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		// Then: no write was lost
		stored, err := roundRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Len(t, stored.Guesses, writers)
	})

	t.Run("Update_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		roundRepo := NewRoundRepository(st.Storage, testTTL)

		updated, err := roundRepo.Update(ctx, "missing", func(*entity.Round) (bool, error) {
			return true, nil
		})

		require.ErrorIs(t, err, ErrRoundNotFound)
		assert.Nil(t, updated)
	})
}
