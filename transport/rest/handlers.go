package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rocketscienceinc/hexguess-backend/internal/apperror"
	"github.com/rocketscienceinc/hexguess-backend/internal/entity"
	"github.com/rocketscienceinc/hexguess-backend/internal/hexguess"
	"github.com/rocketscienceinc/hexguess-backend/internal/repository"
	"github.com/rocketscienceinc/hexguess-backend/transport/view"
)

var errInvalidBody = errors.New("invalid request body")

type draftRequest struct {
	Draft string `json:"draft"`
}

type guessRequest struct {
	Guess string `json:"guess"`
}

type roundResponse struct {
	Round    *view.Round `json:"round"`
	Accepted bool        `json:"accepted"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Server) handleGetSession(writer http.ResponseWriter, req *http.Request) {
	that.writeJSON(writer, http.StatusOK, playerFromContext(req.Context()))
}

func (that *Server) handleGetRound(writer http.ResponseWriter, req *http.Request) {
	player := playerFromContext(req.Context())

	round, err := that.game.GetOrCreateRound(req.Context(), player.ID)
	if err != nil {
		that.writeError(writer, err)
		return
	}

	that.writeRound(writer, round, false)
}

func (that *Server) handleUpdateDraft(writer http.ResponseWriter, req *http.Request) {
	player := playerFromContext(req.Context())

	var body draftRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		that.writeError(writer, fmt.Errorf("%w: %w", errInvalidBody, err))
		return
	}

	round, err := that.game.UpdateDraft(req.Context(), player.ID, body.Draft)
	if err != nil {
		that.writeError(writer, err)
		return
	}

	that.writeRound(writer, round, false)
}

func (that *Server) handleSubmitGuess(writer http.ResponseWriter, req *http.Request) {
	player := playerFromContext(req.Context())

	round, accepted, err := that.game.SubmitGuess(req.Context(), player.ID)
	if err != nil {
		that.writeError(writer, err)
		return
	}

	that.writeRound(writer, round, accepted)
}

func (that *Server) handleMakeGuess(writer http.ResponseWriter, req *http.Request) {
	player := playerFromContext(req.Context())

	var body guessRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		that.writeError(writer, fmt.Errorf("%w: %w", errInvalidBody, err))
		return
	}

	round, accepted, err := that.game.MakeGuess(req.Context(), player.ID, body.Guess)
	if err != nil {
		that.writeError(writer, err)
		return
	}

	that.writeRound(writer, round, accepted)
}

func (that *Server) handleResetRound(writer http.ResponseWriter, req *http.Request) {
	player := playerFromContext(req.Context())

	round, err := that.game.ResetRound(req.Context(), player.ID)
	if err != nil {
		that.writeError(writer, err)
		return
	}

	that.writeRound(writer, round, false)
}

func (that *Server) writeRound(writer http.ResponseWriter, round *entity.Round, accepted bool) {
	that.writeJSON(writer, http.StatusOK, roundResponse{
		Round:    view.NewRound(round),
		Accepted: accepted,
	})
}

func (that *Server) writeError(writer http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "error", err)
		that.writeJSON(writer, status, errorResponse{Error: http.StatusText(status)})
		return
	}

	that.writeJSON(writer, status, errorResponse{Error: err.Error()})
}

func (that *Server) writeJSON(writer http.ResponseWriter, status int, body any) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)

	if err := json.NewEncoder(writer).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errInvalidBody),
		errors.Is(err, hexguess.ErrInvalidDigit),
		errors.Is(err, hexguess.ErrInvalidLength),
		errors.Is(err, hexguess.ErrDraftTooLong):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrSessionRequired):
		return http.StatusUnauthorized
	case errors.Is(err, apperror.ErrRoundWon),
		errors.Is(err, apperror.ErrRoundInProgress),
		errors.Is(err, repository.ErrUpdateConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
