package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// series returns n closes counting up from start by step.
func series(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

func TestEvaluate_Up(t *testing.T) {
	closes := series(100, 0, 70)
	closes[59] = 150
	closes[69] = 160

	assert.Equal(t, OutcomeUp, Evaluate(closes, 59, 69))
}

func TestEvaluate_Down(t *testing.T) {
	closes := series(100, 0, 70)
	closes[59] = 150
	closes[69] = 140

	assert.Equal(t, OutcomeDown, Evaluate(closes, 59, 69))
}

func TestEvaluate_Same(t *testing.T) {
	closes := series(100, 0, 70)
	assert.Equal(t, OutcomeSame, Evaluate(closes, 59, 69))
}

func TestEvaluate_ClampsToLastBar(t *testing.T) {
	// Only 3 bars past the cutoff: the verdict uses the last available bar
	// instead of failing.
	closes := series(100, 0, 63)
	closes[59] = 150
	closes[62] = 155

	assert.Equal(t, OutcomeUp, Evaluate(closes, 59, 69))
}

func TestEvaluate_TooShort(t *testing.T) {
	assert.Equal(t, OutcomeUnknown, Evaluate(series(100, 1, 59), 59, 69))
	assert.Equal(t, OutcomeUnknown, Evaluate(nil, 59, 69))
	assert.Equal(t, OutcomeUnknown, Evaluate([]float64{1, 2, 3}, -1, 9))
}

func TestEvaluate_AlwaysDefinedAboveCutoff(t *testing.T) {
	// Any series long enough to contain the cutoff bar yields a real verdict.
	for n := 60; n <= 75; n++ {
		out := Evaluate(series(100, 0.5, n), 59, 69)
		assert.Contains(t, []Outcome{OutcomeUp, OutcomeDown, OutcomeSame}, out, "n=%d", n)
	}
}

func TestEvaluate_CutoffExactlyLastBar(t *testing.T) {
	// 60 bars, cutoff index 59: lookahead clamps onto the cutoff itself.
	assert.Equal(t, OutcomeSame, Evaluate(series(100, 1, 60), 59, 69))
}
