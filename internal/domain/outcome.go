package domain

// Outcome classifies the realized direction of a price series over the
// reveal window.
type Outcome string

const (
	OutcomeUp      Outcome = "up"
	OutcomeDown    Outcome = "down"
	OutcomeSame    Outcome = "same"
	OutcomeUnknown Outcome = "unknown" // not enough bars to judge
)

// Evaluate compares the close at cutoffIdx against the close at lookaheadIdx,
// clamped to the last available bar. The clamp is deliberate: a short series
// still produces a verdict using whatever future is available.
//
// Returns OutcomeUnknown when closes[cutoffIdx] does not exist; callers must
// not score such rounds.
func Evaluate(closes []float64, cutoffIdx, lookaheadIdx int) Outcome {
	if cutoffIdx < 0 || len(closes) < cutoffIdx+1 {
		return OutcomeUnknown
	}

	before := closes[cutoffIdx]
	afterIdx := lookaheadIdx
	if last := len(closes) - 1; afterIdx > last {
		afterIdx = last
	}
	after := closes[afterIdx]

	switch {
	case after > before:
		return OutcomeUp
	case after < before:
		return OutcomeDown
	default:
		return OutcomeSame
	}
}
