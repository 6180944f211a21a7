package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/hexguess-backend/internal/apperror"
	"github.com/rocketscienceinc/hexguess-backend/internal/entity"
	"github.com/rocketscienceinc/hexguess-backend/internal/hexguess"
	"github.com/rocketscienceinc/hexguess-backend/internal/repository"
)

// slowRounds - round storage with a network-like delay on reads.
type slowRounds struct {
	repository.RoundRepository
}

func (that slowRounds) GetByID(ctx context.Context, id string) (*entity.Round, error) {
	time.Sleep(time.Millisecond)
	return that.RoundRepository.GetByID(ctx, id)
}

func newConcurrentUseCase(t *testing.T) (GameUseCase, repository.RoundRepository, *entity.Player) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	playerRepo := repository.NewMemoryPlayerRepository()
	roundRepo := slowRounds{repository.NewMemoryRoundRepository()}

	useCaseInstance := NewGameUseCase(logger, playerRepo, roundRepo,
		WithTargetGenerator(func() hexguess.Color { return "1a2b3c" }),
	)

	ctx := context.Background()

	player, err := useCaseInstance.GetOrCreatePlayer(ctx, "")
	require.NoError(t, err)

	_, err = useCaseInstance.GetOrCreateRound(ctx, player.ID)
	require.NoError(t, err)

	player, err = playerRepo.GetByID(ctx, player.ID)
	require.NoError(t, err)

	return useCaseInstance, roundRepo, player
}

func TestGameUseCase_ConcurrentGuesses(t *testing.T) {
	ctx := context.Background()

	t.Run("Every accepted guess is kept", func(t *testing.T) {
		// Given: one session with an ongoing round
		useCaseInstance, roundRepo, player := newConcurrentUseCase(t)

		const guesses = 50

		var (
			accepted atomic.Int32
			wg       sync.WaitGroup
		)

		// When: many guesses for the same session arrive at once
		for i := range guesses {
			wg.Add(1)
			go func() {
				defer wg.Done()

				_, ok, err := useCaseInstance.MakeGuess(ctx, player.ID, fmt.Sprintf("%06x", i))
				assert.NoError(t, err)
				if ok {
					accepted.Add(1)
				}
			}()
		}
		wg.Wait()

		// Then: the stored history holds each of them exactly once
		stored, err := roundRepo.GetByID(ctx, player.RoundID)
		require.NoError(t, err)

		assert.Equal(t, int32(guesses), accepted.Load())
		require.Len(t, stored.Guesses, guesses)

		seen := make(map[hexguess.Color]bool, guesses)
		for _, guess := range stored.Guesses {
			seen[guess.Color] = true
		}
		assert.Len(t, seen, guesses)
	})

	t.Run("Only one winning guess counts", func(t *testing.T) {
		// Given: one session with an ongoing round
		useCaseInstance, _, player := newConcurrentUseCase(t)

		const attempts = 10

		var (
			accepted atomic.Int32
			won      atomic.Int32
			wg       sync.WaitGroup
		)

		// When: the target is submitted from several requests at once
		for range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()

				_, ok, err := useCaseInstance.MakeGuess(ctx, player.ID, "1a2b3c")
				switch {
				case err == nil && ok:
					accepted.Add(1)
				case assert.ErrorIs(t, err, apperror.ErrRoundWon):
					won.Add(1)
				}
			}()
		}
		wg.Wait()

		// Then: the first one wins, the rest find the round finished
		assert.Equal(t, int32(1), accepted.Load())
		assert.Equal(t, int32(attempts-1), won.Load())

		updated, err := useCaseInstance.GetOrCreatePlayer(ctx, player.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, updated.Wins)

		round, err := useCaseInstance.GetOrCreateRound(ctx, player.ID)
		require.NoError(t, err)
		assert.Len(t, round.Guesses, 1)
	})
}
