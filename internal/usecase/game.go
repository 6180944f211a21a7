package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/hexguess-backend/internal/apperror"
	"github.com/rocketscienceinc/hexguess-backend/internal/entity"
	"github.com/rocketscienceinc/hexguess-backend/internal/hexguess"
	"github.com/rocketscienceinc/hexguess-backend/internal/pkg"
	"github.com/rocketscienceinc/hexguess-backend/internal/repository"
)

type GameUseCase interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)
	GetOrCreateRound(ctx context.Context, playerID string) (*entity.Round, error)

	UpdateDraft(ctx context.Context, playerID, draft string) (*entity.Round, error)
	SubmitGuess(ctx context.Context, playerID string) (*entity.Round, bool, error)
	MakeGuess(ctx context.Context, playerID, guess string) (*entity.Round, bool, error)
	ResetRound(ctx context.Context, playerID string) (*entity.Round, error)
}

type playerRepoDep interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
	Update(ctx context.Context, id string, mutate func(player *entity.Player) (bool, error)) (*entity.Player, error)
	Refresh(ctx context.Context, id string) error
}

type roundRepoDep interface {
	CreateOrUpdate(ctx context.Context, round *entity.Round) error
	GetByID(ctx context.Context, id string) (*entity.Round, error)
	Update(ctx context.Context, id string, mutate func(round *entity.Round) (bool, error)) (*entity.Round, error)
}

type Option func(*gameUseCase)

// WithTargetGenerator - replaces the random target color source.
func WithTargetGenerator(generate func() hexguess.Color) Option {
	return func(that *gameUseCase) {
		that.generateTarget = generate
	}
}

// WithIDGenerator - replaces the session and round id source.
func WithIDGenerator(generate func() string) Option {
	return func(that *gameUseCase) {
		that.generateID = generate
	}
}

type gameUseCase struct {
	logger *slog.Logger

	playerRepo playerRepoDep
	roundRepo  roundRepoDep

	generateTarget func() hexguess.Color
	generateID     func() string

	locks *sessionLocks
}

func NewGameUseCase(logger *slog.Logger, playerRepo playerRepoDep, roundRepo roundRepoDep, opts ...Option) GameUseCase {
	useCase := &gameUseCase{
		logger: logger.With("component", "usecase"),

		playerRepo: playerRepo,
		roundRepo:  roundRepo,

		generateTarget: hexguess.GenerateTargetColor,
		generateID:     pkg.GenerateNewSessionID,

		locks: newSessionLocks(),
	}

	for _, opt := range opts {
		opt(useCase)
	}

	return useCase
}

func (that *gameUseCase) GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error) {
	if playerID == "" {
		player, err := that.createPlayer(ctx, that.generateID())
		if err != nil {
			return nil, fmt.Errorf("could not create player: %w", err)
		}

		return player, nil
	}

	unlock := that.locks.lock(playerID)
	defer unlock()

	return that.getOrCreatePlayer(ctx, playerID)
}

func (that *gameUseCase) GetOrCreateRound(ctx context.Context, playerID string) (*entity.Round, error) {
	unlock := that.locks.lock(playerID)
	defer unlock()

	_, round, err := that.loadSession(ctx, playerID)
	if err != nil {
		return nil, err
	}

	return round, nil
}

func (that *gameUseCase) UpdateDraft(ctx context.Context, playerID, draft string) (*entity.Round, error) {
	unlock := that.locks.lock(playerID)
	defer unlock()

	player, round, err := that.loadSession(ctx, playerID)
	if err != nil {
		return nil, err
	}

	round, err = that.roundRepo.Update(ctx, round.ID, func(round *entity.Round) (bool, error) {
		return true, round.SetDraft(draft)
	})
	if err != nil {
		return round, fmt.Errorf("failed to update draft: %w", err)
	}

	if err = that.refreshPlayer(ctx, player.ID); err != nil {
		return nil, err
	}

	return round, nil
}

func (that *gameUseCase) SubmitGuess(ctx context.Context, playerID string) (*entity.Round, bool, error) {
	unlock := that.locks.lock(playerID)
	defer unlock()

	player, round, err := that.loadSession(ctx, playerID)
	if err != nil {
		return nil, false, err
	}

	var accepted bool
	round, err = that.roundRepo.Update(ctx, round.ID, func(round *entity.Round) (bool, error) {
		var err error
		accepted, err = round.Submit()
		return accepted, err
	})
	if err != nil {
		return round, false, fmt.Errorf("failed to submit guess: %w", err)
	}

	return that.recordGuess(ctx, player, round, accepted)
}

func (that *gameUseCase) MakeGuess(ctx context.Context, playerID, guess string) (*entity.Round, bool, error) {
	unlock := that.locks.lock(playerID)
	defer unlock()

	player, round, err := that.loadSession(ctx, playerID)
	if err != nil {
		return nil, false, err
	}

	var accepted bool
	round, err = that.roundRepo.Update(ctx, round.ID, func(round *entity.Round) (bool, error) {
		var err error
		accepted, err = round.Guess(guess)
		return accepted, err
	})
	if err != nil {
		return round, false, fmt.Errorf("failed to make guess: %w", err)
	}

	return that.recordGuess(ctx, player, round, accepted)
}

func (that *gameUseCase) ResetRound(ctx context.Context, playerID string) (*entity.Round, error) {
	log := that.logger.With("method", "ResetRound", "playerID", playerID)

	unlock := that.locks.lock(playerID)
	defer unlock()

	player, round, err := that.loadSession(ctx, playerID)
	if err != nil {
		return nil, err
	}

	target := that.generateTarget()
	round, err = that.roundRepo.Update(ctx, round.ID, func(round *entity.Round) (bool, error) {
		return true, round.Reset(target)
	})
	if err != nil {
		return round, fmt.Errorf("failed to reset round: %w", err)
	}

	if err = that.refreshPlayer(ctx, player.ID); err != nil {
		return nil, err
	}

	log.Info("round reset", "roundID", round.ID)

	return round, nil
}

// recordGuess - keeps the player alive as long as the round and credits a win.
func (that *gameUseCase) recordGuess(ctx context.Context, player *entity.Player, round *entity.Round, accepted bool) (*entity.Round, bool, error) {
	log := that.logger.With("method", "recordGuess", "playerID", player.ID, "roundID", round.ID)

	if !accepted {
		return round, false, nil
	}

	if !round.IsWon() {
		if err := that.refreshPlayer(ctx, player.ID); err != nil {
			return nil, false, err
		}

		return round, true, nil
	}

	player, err := that.playerRepo.Update(ctx, player.ID, func(player *entity.Player) (bool, error) {
		player.Wins++
		return true, nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to count win: %w", err)
	}

	log.Info("round won", "guesses", len(round.Guesses), "wins", player.Wins)

	return round, true, nil
}

// loadSession - returns the player and their round, starting a round when there is none.
func (that *gameUseCase) loadSession(ctx context.Context, playerID string) (*entity.Player, *entity.Round, error) {
	if playerID == "" {
		return nil, nil, apperror.ErrSessionRequired
	}

	player, err := that.getOrCreatePlayer(ctx, playerID)
	if err != nil {
		return nil, nil, err
	}

	if player.RoundID != "" {
		round, err := that.roundRepo.GetByID(ctx, player.RoundID)
		if err == nil {
			return player, round, nil
		}

		if !errors.Is(err, repository.ErrRoundNotFound) {
			return nil, nil, fmt.Errorf("failed to get round: %w", err)
		}
	}

	round, err := that.createRound(ctx, player)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create round: %w", err)
	}

	return player, round, nil
}

func (that *gameUseCase) getOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error) {
	player, err := that.playerRepo.GetByID(ctx, playerID)
	if errors.Is(err, repository.ErrPlayerNotFound) {
		// the session outlived its record, keep the id the browser already holds
		player, err = that.createPlayer(ctx, playerID)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}

func (that *gameUseCase) createPlayer(ctx context.Context, playerID string) (*entity.Player, error) {
	player := &entity.Player{
		ID: playerID,
	}

	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return player, nil
}

func (that *gameUseCase) createRound(ctx context.Context, player *entity.Player) (*entity.Round, error) {
	log := that.logger.With("method", "createRound", "playerID", player.ID)

	round := entity.NewRound(that.generateID(), that.generateTarget())

	if err := that.roundRepo.CreateOrUpdate(ctx, round); err != nil {
		return nil, fmt.Errorf("failed to create round: %w", err)
	}

	player.RoundID = round.ID
	if err := that.updatePlayer(ctx, player); err != nil {
		return nil, err
	}

	log.Info("round created", "roundID", round.ID)

	return round, nil
}

// refreshPlayer - the player key expires no earlier than its round.
func (that *gameUseCase) refreshPlayer(ctx context.Context, playerID string) error {
	if err := that.playerRepo.Refresh(ctx, playerID); err != nil {
		return fmt.Errorf("failed to refresh player: %w", err)
	}

	return nil
}

func (that *gameUseCase) updatePlayer(ctx context.Context, player *entity.Player) error {
	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}

	return nil
}
