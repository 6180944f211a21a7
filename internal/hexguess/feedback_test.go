package hexguess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeedbackSymbol(t *testing.T) {
	cases := map[int]Feedback{
		0:   Match,
		1:   UpSmall,
		2:   UpSmall,
		3:   UpLarge,
		15:  UpLarge,
		-1:  DownSmall,
		-2:  DownSmall,
		-3:  DownLarge,
		-15: DownLarge,
	}

	for delta, expected := range cases {
		assert.Equal(t, expected, FeedbackSymbol(delta), "delta %d", delta)
	}
}

func TestFeedback_Emoji(t *testing.T) {
	assert.Equal(t, "✅", Match.Emoji())
	assert.Equal(t, "⏫", UpLarge.Emoji())
	assert.Equal(t, "🔼", UpSmall.Emoji())
	assert.Equal(t, "⏬", DownLarge.Emoji())
	assert.Equal(t, "🔽", DownSmall.Emoji())
}

func TestEvaluate(t *testing.T) {
	t.Run("Exact guess wins", func(t *testing.T) {
		// When: the guess equals the target
		result := Evaluate("1a2b3c", "1a2b3c")

		// Then: every digit matches and the guess wins
		assert.True(t, result.Won)
		assert.Equal(t, [Width]Feedback{Match, Match, Match, Match, Match, Match}, result.Feedback)
		assert.Equal(t, [Width]int{}, result.Deltas)
	})

	t.Run("All digits far too low", func(t *testing.T) {
		// When: guessing black against white
		result := Evaluate("ffffff", "000000")

		// Then: every digit asks for a large increase
		assert.False(t, result.Won)
		assert.Equal(t, [Width]int{15, 15, 15, 15, 15, 15}, result.Deltas)
		assert.Equal(t, [Width]Feedback{UpLarge, UpLarge, UpLarge, UpLarge, UpLarge, UpLarge}, result.Feedback)
	})

	t.Run("Single digit slightly too high", func(t *testing.T) {
		// When: only the second digit overshoots by one
		result := Evaluate("777777", "787777")

		// Then: that digit asks for a small decrease
		assert.Equal(t, -1, result.Deltas[1])
		assert.Equal(t, DownSmall, result.Feedback[1])
		assert.Equal(t, Match, result.Feedback[0])
		assert.Equal(t, [Width]string{"✅", "🔽", "✅", "✅", "✅", "✅"}, result.Symbols())
	})
}
