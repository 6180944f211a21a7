package repository

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/hexguess-backend/internal/entity"
	"github.com/rocketscienceinc/hexguess-backend/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	playerRepo := NewPlayerRepository(st.Storage, testTTL)

	// Given: a player with ID
	player := &entity.Player{
		ID: "123",
	}

	// When: CreateOrUpdate is called
	err := playerRepo.CreateOrUpdate(ctx, player)

	// Then: no error should be returned, and player is stored
	require.NoError(t, err)
}

func TestPlayerRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		playerRepo := NewPlayerRepository(st.Storage, testTTL)

		// Given: a player in a round with one win
		player := &entity.Player{
			ID:      "123",
			RoundID: "r1",
			Wins:    1,
		}

		err := playerRepo.CreateOrUpdate(ctx, player)
		require.NoError(t, err)

		// When: GetByID is called with existing ID
		retrievedPlayer, err := playerRepo.GetByID(ctx, player.ID)

		// Then: the retrieved player should match the saved player
		require.NoError(t, err)
		require.Equal(t, player, retrievedPlayer)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		playerRepo := NewPlayerRepository(st.Storage, testTTL)

		nonExistentPlayerID := "9999999"

		// When: GetByID is called with non-existent ID
		retrievedPlayer, err := playerRepo.GetByID(ctx, nonExistentPlayerID)

		// Then: an ErrPlayerNotFound error should be returned
		require.Error(t, err)
		assert.Equal(t, ErrPlayerNotFound, err)
		assert.Nil(t, retrievedPlayer)
	})
}

func TestPlayerRepository_Update(t *testing.T) {
	ctx, st := suite.New(t)

	playerRepo := NewPlayerRepository(st.Storage, testTTL)

	// Given: a stored player with one win
	require.NoError(t, playerRepo.CreateOrUpdate(ctx, &entity.Player{ID: "123", Wins: 1}))

	// When: a win is counted through Update
	updated, err := playerRepo.Update(ctx, "123", func(player *entity.Player) (bool, error) {
		player.Wins++
		return true, nil
	})

	// Then: the stored player has two wins
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Wins)

	stored, err := playerRepo.GetByID(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Wins)
}

func TestPlayerRepository_Refresh(t *testing.T) {
	ctx, st := suite.New(t)

	playerRepo := NewPlayerRepository(st.Storage, testTTL)

	// Given: a player whose key is about to expire
	require.NoError(t, playerRepo.CreateOrUpdate(ctx, &entity.Player{ID: "123"}))
	require.NoError(t, st.Storage.Expire(ctx, "player:123", time.Second).Err())

	// When: Refresh is called
	err := playerRepo.Refresh(ctx, "123")

	// Then: the key lives for the full session TTL again
	require.NoError(t, err)

	ttl, err := st.Storage.TTL(ctx, "player:123").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Second)
}
