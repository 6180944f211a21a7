package websocket

import (
	"context"
	"errors"

	"github.com/rocketscienceinc/hexguess-backend/internal/apperror"
	"github.com/rocketscienceinc/hexguess-backend/internal/hexguess"
	"github.com/rocketscienceinc/hexguess-backend/internal/repository"
	"github.com/rocketscienceinc/hexguess-backend/transport/view"
)

var errNotConnected = errors.New("send connect first")

func (that *Server) handleConnect(ctx context.Context, conn *connection, payload *Payload) (*Payload, error) {
	log := that.logger.With("method", "handleConnect")

	playerID := conn.playerID
	if payload.Player != nil && payload.Player.ID != "" {
		playerID = payload.Player.ID
	}

	player, err := that.game.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	round, err := that.game.GetOrCreateRound(ctx, player.ID)
	if err != nil {
		return nil, err
	}

	conn.playerID = player.ID

	log.Info("successfully connected player", "playerID", player.ID)

	return &Payload{
		Player: player,
		Round:  view.NewRound(round),
	}, nil
}

func (that *Server) handleGetRound(ctx context.Context, conn *connection, _ *Payload) (*Payload, error) {
	if conn.playerID == "" {
		return nil, errNotConnected
	}

	round, err := that.game.GetOrCreateRound(ctx, conn.playerID)
	if err != nil {
		return nil, err
	}

	return &Payload{Round: view.NewRound(round)}, nil
}

func (that *Server) handleUpdateDraft(ctx context.Context, conn *connection, payload *Payload) (*Payload, error) {
	if conn.playerID == "" {
		return nil, errNotConnected
	}

	round, err := that.game.UpdateDraft(ctx, conn.playerID, payload.Draft)
	if err != nil {
		return nil, err
	}

	return &Payload{Round: view.NewRound(round)}, nil
}

func (that *Server) handleSubmitGuess(ctx context.Context, conn *connection, _ *Payload) (*Payload, error) {
	if conn.playerID == "" {
		return nil, errNotConnected
	}

	round, accepted, err := that.game.SubmitGuess(ctx, conn.playerID)
	if err != nil {
		return nil, err
	}

	return &Payload{Round: view.NewRound(round), Accepted: accepted}, nil
}

func (that *Server) handleMakeGuess(ctx context.Context, conn *connection, payload *Payload) (*Payload, error) {
	if conn.playerID == "" {
		return nil, errNotConnected
	}

	round, accepted, err := that.game.MakeGuess(ctx, conn.playerID, payload.Guess)
	if err != nil {
		return nil, err
	}

	return &Payload{Round: view.NewRound(round), Accepted: accepted}, nil
}

func (that *Server) handleResetRound(ctx context.Context, conn *connection, _ *Payload) (*Payload, error) {
	if conn.playerID == "" {
		return nil, errNotConnected
	}

	round, err := that.game.ResetRound(ctx, conn.playerID)
	if err != nil {
		return nil, err
	}

	return &Payload{Round: view.NewRound(round)}, nil
}

// clientError - message safe to show to the player.
func clientError(err error) string {
	for _, known := range []error{
		errNotConnected,
		apperror.ErrRoundWon,
		apperror.ErrRoundInProgress,
		repository.ErrUpdateConflict,
		apperror.ErrSessionRequired,
		hexguess.ErrInvalidDigit,
		hexguess.ErrInvalidLength,
		hexguess.ErrDraftTooLong,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}

	return "internal error"
}
