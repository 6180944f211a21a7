package hexguess

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// Width - number of hex digits in a color.
	Width = 6

	// NeutralColor - swatch shown before the first guess.
	NeutralColor Color = "777777"

	colorSpace = 1 << 24
)

var (
	ErrInvalidLength = errors.New("color must be exactly 6 hex digits")
	ErrInvalidDigit  = errors.New("color may contain only 0-9 and a-f")
	ErrDraftTooLong  = errors.New("guess may not be longer than 6 digits")
)

// Color - six lowercase hex digits describing an RGB value.
type Color string

// GenerateTargetColor - picks a color uniformly from the 24-bit space.
func GenerateTargetColor() Color {
	return colorFromValue(rand.IntN(colorSpace)) //nolint: gosec // it's a guessing game
}

// colorFromValue - renders value as a zero-padded six digit color.
func colorFromValue(value int) Color {
	return Color(fmt.Sprintf("%06x", value))
}

// ParseColor - converts player input into a Color.
func ParseColor(input string) (Color, error) {
	normalized, err := ValidDraft(input)
	if err != nil {
		return "", err
	}

	if len(normalized) != Width {
		return "", fmt.Errorf("%w: got %d", ErrInvalidLength, len(normalized))
	}

	return Color(normalized), nil
}

// ValidDraft - checks a partially typed guess and returns it lowercased.
func ValidDraft(input string) (string, error) {
	normalized := strings.ToLower(input)

	if len(normalized) > Width {
		return "", ErrDraftTooLong
	}

	for i := 0; i < len(normalized); i++ {
		if digitValue(normalized[i]) < 0 {
			return "", fmt.Errorf("%w: %q", ErrInvalidDigit, normalized[i])
		}
	}

	return normalized, nil
}

// DigitDelta - difference between target and guess digit at position.
func DigitDelta(target, guess Color, position int) int {
	return digitValue(target[position]) - digitValue(guess[position])
}

// IsWinningGuess - reports whether guess is exactly the target.
func IsWinningGuess(target, guess Color) bool {
	return target == guess
}

// Distance - perceptual CIEDE2000 distance between two colors. Both colors
// must come from ParseColor or GenerateTargetColor; anything else yields NaN.
func Distance(a, b Color) float64 {
	first, err := colorful.Hex("#" + string(a))
	if err != nil {
		return math.NaN()
	}

	second, err := colorful.Hex("#" + string(b))
	if err != nil {
		return math.NaN()
	}

	return first.DistanceCIEDE2000(second)
}

func (that Color) String() string {
	return string(that)
}

func digitValue(digit byte) int {
	switch {
	case digit >= '0' && digit <= '9':
		return int(digit - '0')
	case digit >= 'a' && digit <= 'f':
		return int(digit-'a') + 10
	default:
		return -1
	}
}
