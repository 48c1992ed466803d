package ports

import (
	"context"

	"github.com/andrewborzenkov20-ui/Stockify/internal/domain"
)

// Reveal is the payload emitted when a round transitions to revealed: the
// full visible-plus-hidden window and how the guess scored.
type Reveal struct {
	Symbol  string
	Guess   domain.Direction
	Outcome domain.Outcome
	Result  domain.Result
	Closes  []float64 // cutoff + after bars, clamped to the series
	Score   int       // running score after this round
}

// RevealSink receives reveal notifications for rendering. One-way: the core
// never waits on a response.
type RevealSink interface {
	PublishReveal(ctx context.Context, r Reveal) error
}
