package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Direction is the player's guess for what the hidden part of the chart does.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Result is the scored verdict of a guess round.
type Result string

const (
	ResultPending   Result = "pending"
	ResultCorrect   Result = "correct"
	ResultIncorrect Result = "incorrect"
	ResultNoChange  Result = "no-change"
	ResultVoid      Result = "void" // outcome could not be judged, no scoring
)

var (
	// ErrGuessAlreadyMade is returned when a round already has a guess.
	// Callers treat it as a no-op, not a hard failure.
	ErrGuessAlreadyMade = errors.New("guess already registered for this round")

	// ErrNoGuess is returned when a reveal is requested before any guess.
	ErrNoGuess = errors.New("no guess registered for this round")
)

// GuessRound is one round of the guessing game: a symbol is drawn, the player
// guesses, the hidden tail is revealed and the guess is scored. The round is
// terminal after Reveal; the next round replaces it.
type GuessRound struct {
	ID       string
	Symbol   string
	Guess    Direction
	HasGuess bool
	Revealed bool
	Result   Result
}

// NewGuessRound starts a round for the given symbol, awaiting a guess.
func NewGuessRound(symbol string) GuessRound {
	return GuessRound{
		ID:     uuid.New().String(),
		Symbol: symbol,
		Result: ResultPending,
	}
}

// RegisterGuess records the player's direction. Valid exactly once per round.
func (r *GuessRound) RegisterGuess(dir Direction) error {
	if r.HasGuess || r.Revealed {
		return ErrGuessAlreadyMade
	}
	r.Guess = dir
	r.HasGuess = true
	return nil
}

// Reveal scores the round against the fully revealed closes. It returns the
// result and the score delta (+1 correct, -1 incorrect, 0 otherwise). A
// ResultVoid round carries no scoring event and must not feed the challenge
// tracker.
func (r *GuessRound) Reveal(closes []float64, cutoffIdx, lookaheadIdx int) (Result, int, error) {
	if !r.HasGuess {
		return ResultPending, 0, ErrNoGuess
	}
	if r.Revealed {
		return r.Result, 0, ErrGuessAlreadyMade
	}

	outcome := Evaluate(closes, cutoffIdx, lookaheadIdx)
	result, delta := ScoreRound(r.Guess, outcome)

	r.Revealed = true
	r.Result = result
	return result, delta, nil
}

// ScoreRound maps a guess and a realized outcome to a result and score delta.
// Pure; the round state machine and tests both go through it.
func ScoreRound(guess Direction, outcome Outcome) (Result, int) {
	switch outcome {
	case OutcomeUnknown:
		return ResultVoid, 0
	case OutcomeSame:
		return ResultNoChange, 0
	case Outcome(guess):
		return ResultCorrect, 1
	default:
		return ResultIncorrect, -1
	}
}
