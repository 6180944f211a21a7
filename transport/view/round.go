package view

import (
	"github.com/rocketscienceinc/hexguess-backend/internal/entity"
	"github.com/rocketscienceinc/hexguess-backend/internal/hexguess"
)

// Guess - one row of the guess history as the client draws it.
type Guess struct {
	Color    hexguess.Color                    `json:"color"`
	Deltas   [hexguess.Width]int               `json:"deltas"`
	Feedback [hexguess.Width]hexguess.Feedback `json:"feedback"`
	Symbols  [hexguess.Width]string            `json:"symbols"`
	Distance float64                           `json:"distance"`
}

// Round - round state sent to clients. Guesses are newest first.
//
// Target is always present so the client can paint the target swatch.
// Clients show the target's hex text only once Revealed is true.
type Round struct {
	ID        string         `json:"id"`
	Status    string         `json:"status"`
	Target    hexguess.Color `json:"target"`
	Revealed  bool           `json:"revealed"`
	LastGuess hexguess.Color `json:"last_guess"`
	Draft     string         `json:"draft"`
	Guesses   []Guess        `json:"guesses"`
}

func NewRound(round *entity.Round) *Round {
	if round == nil {
		return nil
	}

	guesses := make([]Guess, 0, len(round.Guesses))
	for i := len(round.Guesses) - 1; i >= 0; i-- {
		guess := round.Guesses[i]

		guesses = append(guesses, Guess{
			Color:    guess.Color,
			Deltas:   guess.Evaluation.Deltas,
			Feedback: guess.Evaluation.Feedback,
			Symbols:  guess.Evaluation.Symbols(),
			Distance: guess.Evaluation.Distance,
		})
	}

	return &Round{
		ID:        round.ID,
		Status:    round.Status,
		Target:    round.Target,
		Revealed:  round.IsWon(),
		LastGuess: round.LastGuess(),
		Draft:     round.Draft,
		Guesses:   guesses,
	}
}
