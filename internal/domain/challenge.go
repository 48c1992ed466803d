package domain

// Daily challenge rules: complete by winning StreakTarget rounds in a row, or
// by reaching ScoreTarget without the score ever dropping to ScoreFloor.
// Either path awards CoinReward coins exactly once per tracking period.
const (
	StreakTarget = 5
	ScoreFloor   = -5
	ScoreTarget  = 10
	CoinReward   = 5
)

// ChallengeState is the per-user daily challenge progress. It persists across
// rounds and is reset only by an external scheduler at the day boundary.
type ChallengeState struct {
	Streak    int  // consecutive correct guesses
	MinScore  int  // running minimum of the score, never increases
	Completed bool // one-way flag within a tracking period
}

// ApplyRound folds one scored round into the challenge state and returns the
// new state plus the coins awarded (zero except on the completion
// transition). Pure reducer; ResultVoid and ResultPending rounds must not be
// passed in, they carry no scoring event.
func ApplyRound(prev ChallengeState, result Result, newScore int) (ChallengeState, int) {
	next := prev

	switch result {
	case ResultCorrect:
		next.Streak = prev.Streak + 1
	case ResultIncorrect:
		next.Streak = 0
	case ResultNoChange:
		// a flat reveal neither builds nor breaks a streak
	default:
		return prev, 0
	}

	if newScore < next.MinScore {
		next.MinScore = newScore
	}

	if prev.Completed {
		return next, 0
	}

	switch {
	case next.Streak >= StreakTarget:
		next.Completed = true
		return next, CoinReward
	case next.MinScore > ScoreFloor && newScore >= ScoreTarget:
		next.Completed = true
		return next, CoinReward
	}

	return next, 0
}

// ResetChallenge returns a fresh tracking period. Invoked by the daily
// scheduler collaborator, never by ApplyRound itself.
func ResetChallenge() ChallengeState {
	return ChallengeState{}
}

// UserState is everything the store persists per user: the coin wallet and
// the challenge progress.
type UserState struct {
	Coins     int
	Challenge ChallengeState
}
