package entity

import (
	"fmt"

	"github.com/rocketscienceinc/hexguess-backend/internal/apperror"
	"github.com/rocketscienceinc/hexguess-backend/internal/hexguess"
)

const (
	StatusAwaitingGuess = "awaiting_guess"
	StatusWon           = "won"
)

// Guess - a submitted color with the feedback it received.
type Guess struct {
	Color      hexguess.Color      `json:"color"`
	Evaluation hexguess.Evaluation `json:"evaluation"`
}

// Round - one target color and the guesses made against it, oldest first.
type Round struct {
	ID      string         `json:"id"`
	Target  hexguess.Color `json:"target"`
	Draft   string         `json:"draft"`
	Guesses []Guess        `json:"guesses"`
	Status  string         `json:"status"`
}

func NewRound(id string, target hexguess.Color) *Round {
	return &Round{
		ID:      id,
		Target:  target,
		Guesses: []Guess{},
		Status:  StatusAwaitingGuess,
	}
}

// SetDraft - replaces the current unsubmitted guess text.
func (that *Round) SetDraft(input string) error {
	if that.IsWon() {
		return apperror.ErrRoundWon
	}

	draft, err := hexguess.ValidDraft(input)
	if err != nil {
		return fmt.Errorf("invalid draft: %w", err)
	}

	that.Draft = draft

	return nil
}

// Submit - evaluates the draft. An incomplete draft is ignored.
func (that *Round) Submit() (bool, error) {
	if err := that.ConfirmAwaitingGuess(); err != nil {
		return false, err
	}

	if len(that.Draft) != hexguess.Width {
		return false, nil
	}

	color := hexguess.Color(that.Draft)
	evaluation := hexguess.Evaluate(that.Target, color)

	that.Guesses = append(that.Guesses, Guess{
		Color:      color,
		Evaluation: evaluation,
	})
	that.Draft = ""

	if evaluation.Won {
		that.Status = StatusWon
	}

	return true, nil
}

// Guess - submits input directly. Input shorter than a full color is ignored
// and leaves the draft untouched.
func (that *Round) Guess(input string) (bool, error) {
	if err := that.ConfirmAwaitingGuess(); err != nil {
		return false, err
	}

	guess, err := hexguess.ValidDraft(input)
	if err != nil {
		return false, fmt.Errorf("invalid guess: %w", err)
	}

	if len(guess) != hexguess.Width {
		return false, nil
	}

	that.Draft = guess

	return that.Submit()
}

// Reset - starts the next round once this one is won.
func (that *Round) Reset(target hexguess.Color) error {
	if !that.IsWon() {
		return apperror.ErrRoundInProgress
	}

	that.Target = target
	that.Draft = ""
	that.Guesses = []Guess{}
	that.Status = StatusAwaitingGuess

	return nil
}

// LastGuess - most recent submitted color, or the neutral swatch.
func (that *Round) LastGuess() hexguess.Color {
	if len(that.Guesses) == 0 {
		return hexguess.NeutralColor
	}

	return that.Guesses[len(that.Guesses)-1].Color
}

func (that *Round) IsWon() bool {
	return that.Status == StatusWon
}

func (that *Round) IsAwaitingGuess() bool {
	return that.Status == StatusAwaitingGuess
}

func (that *Round) ConfirmAwaitingGuess() error {
	switch {
	case that.IsAwaitingGuess():
		return nil
	case that.IsWon():
		return apperror.ErrRoundWon
	default:
		return fmt.Errorf("%w: %s", apperror.ErrUnknownStatus, that.Status)
	}
}
