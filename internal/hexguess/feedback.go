package hexguess

// Feedback - hint for a single digit of a guess.
type Feedback string

const (
	Match     Feedback = "match"
	UpLarge   Feedback = "up_large"
	UpSmall   Feedback = "up_small"
	DownLarge Feedback = "down_large"
	DownSmall Feedback = "down_small"
)

// smallStep - largest delta still reported as a small move.
const smallStep = 2

var emoji = map[Feedback]string{
	Match:     "✅",
	UpLarge:   "⏫",
	UpSmall:   "🔼",
	DownLarge: "⏬",
	DownSmall: "🔽",
}

// Evaluation - result of comparing one guess with the target.
type Evaluation struct {
	Deltas   [Width]int      `json:"deltas"`
	Feedback [Width]Feedback `json:"feedback"`
	Won      bool            `json:"won"`
	Distance float64         `json:"distance"`
}

// FeedbackSymbol - maps a digit delta to the hint shown to the player.
func FeedbackSymbol(delta int) Feedback {
	switch {
	case delta == 0:
		return Match
	case delta > smallStep:
		return UpLarge
	case delta > 0:
		return UpSmall
	case delta < -smallStep:
		return DownLarge
	default:
		return DownSmall
	}
}

// Evaluate - compares every digit of guess against target.
func Evaluate(target, guess Color) Evaluation {
	var result Evaluation

	for i := 0; i < Width; i++ {
		result.Deltas[i] = DigitDelta(target, guess, i)
		result.Feedback[i] = FeedbackSymbol(result.Deltas[i])
	}

	result.Won = IsWinningGuess(target, guess)
	result.Distance = Distance(target, guess)

	return result
}

// Emoji - symbol the game shows for this hint.
func (that Feedback) Emoji() string {
	return emoji[that]
}

// Symbols - emoji for every digit of the evaluation.
func (that Evaluation) Symbols() [Width]string {
	var symbols [Width]string
	for i, feedback := range that.Feedback {
		symbols[i] = feedback.Emoji()
	}

	return symbols
}
