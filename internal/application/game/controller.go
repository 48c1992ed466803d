package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/andrewborzenkov20-ui/Stockify/internal/domain"
	"github.com/andrewborzenkov20-ui/Stockify/internal/ports"
)

// lookaheadBars is how far past the cutoff the outcome is judged. Fixed for
// behavioral compatibility with the original game, not configurable.
const lookaheadBars = 10

// Config controls the guessing game.
type Config struct {
	Cutoff     int      // bars visible before the guess
	After      int      // bars revealed past the cutoff
	SymbolPool []string // symbols the round draw picks from
}

// Controller runs the guessing game for one user: it draws rounds, scores
// guesses, folds results into the daily challenge and writes wallet mutations
// through to the store. All transitions are synchronous; there is at most one
// active round.
type Controller struct {
	cfg      Config
	provider ports.SeriesProvider
	store    ports.UserStore
	sink     ports.RevealSink
	rng      *rand.Rand
	userID   string

	score  int
	state  domain.UserState
	round  domain.GuessRound
	series domain.PriceSeries
	active bool
}

// New builds a controller. The random source is injected so round draws are
// deterministic under test.
func New(cfg Config, provider ports.SeriesProvider, store ports.UserStore, sink ports.RevealSink, rng *rand.Rand, userID string) *Controller {
	return &Controller{
		cfg:      cfg,
		provider: provider,
		store:    store,
		sink:     sink,
		rng:      rng,
		userID:   userID,
	}
}

// Start loads the persisted wallet and challenge state. Called once per
// session.
func (c *Controller) Start(ctx context.Context) error {
	state, err := c.store.Load(ctx, c.userID)
	if err != nil {
		return fmt.Errorf("game.Start: load user state: %w", err)
	}
	c.state = state
	slog.Info("game session started",
		"user", c.userID,
		"coins", state.Coins,
		"streak", state.Challenge.Streak,
		"completed", state.Challenge.Completed,
	)
	return nil
}

// StartRound draws a symbol uniformly from the pool, loads its series and
// opens a fresh round. The score and challenge state carry over.
func (c *Controller) StartRound(ctx context.Context) (domain.GuessRound, error) {
	symbol := c.cfg.SymbolPool[c.rng.Intn(len(c.cfg.SymbolPool))]

	series, err := c.provider.DailyCloses(ctx, symbol)
	if err != nil {
		return domain.GuessRound{}, fmt.Errorf("game.StartRound: %s: %w", symbol, err)
	}

	c.series = series
	c.round = domain.NewGuessRound(symbol)
	c.active = true

	slog.Debug("round started", "symbol", symbol, "bars", series.Len())
	return c.round, nil
}

// RoundOutcome is the snapshot produced by a scored guess.
type RoundOutcome struct {
	Round        domain.GuessRound
	Outcome      domain.Outcome
	ScoreDelta   int
	Score        int
	Challenge    domain.ChallengeState
	CoinsAwarded int
	Coins        int
	Message      string
	ChallengeMsg string
}

// Guess registers the direction and synchronously reveals and scores the
// round. A second guess on the same round returns ErrGuessAlreadyMade, which
// callers treat as a no-op. A void outcome (series too short past the
// cutoff) reveals the chart but changes neither score, challenge nor wallet.
func (c *Controller) Guess(ctx context.Context, dir domain.Direction) (RoundOutcome, error) {
	if !c.active {
		return RoundOutcome{}, domain.ErrNoGuess
	}
	if err := c.round.RegisterGuess(dir); err != nil {
		return RoundOutcome{}, err
	}

	cutoffIdx := c.cfg.Cutoff - 1
	closes := c.series.Closes()

	result, delta, err := c.round.Reveal(closes, cutoffIdx, cutoffIdx+lookaheadBars)
	if err != nil {
		return RoundOutcome{}, fmt.Errorf("game.Guess: reveal: %w", err)
	}

	out := RoundOutcome{
		Round:   c.round,
		Outcome: domain.Evaluate(closes, cutoffIdx, cutoffIdx+lookaheadBars),
	}

	if result == domain.ResultVoid {
		out.Score = c.score
		out.Challenge = c.state.Challenge
		out.Coins = c.state.Coins
		out.Message = "Not enough data after cutoff. No score."
		c.publishReveal(ctx, out)
		return out, nil
	}

	c.score += delta

	challenge, coins := domain.ApplyRound(c.state.Challenge, result, c.score)
	c.state.Challenge = challenge
	c.state.Coins += coins

	out.ScoreDelta = delta
	out.Score = c.score
	out.Challenge = challenge
	out.CoinsAwarded = coins
	out.Coins = c.state.Coins
	out.Message = resultMessage(result, dir)
	out.ChallengeMsg = challengeMessage(coins, challenge)

	if err := c.store.Save(ctx, c.userID, c.state); err != nil {
		return out, fmt.Errorf("game.Guess: save user state: %w", err)
	}

	c.publishReveal(ctx, out)
	return out, nil
}

// Score returns the running score for this session.
func (c *Controller) Score() int { return c.score }

// Coins returns the user's current coin balance.
func (c *Controller) Coins() int { return c.state.Coins }

// Challenge returns the current challenge state.
func (c *Controller) Challenge() domain.ChallengeState { return c.state.Challenge }

// VisibleCloses returns the bars the player may see before guessing.
func (c *Controller) VisibleCloses() []float64 {
	return c.series.Visible(c.cfg.Cutoff)
}

// ResetChallenge starts a new tracking period and persists it. Called by the
// daily scheduler at the day boundary.
func (c *Controller) ResetChallenge(ctx context.Context) error {
	c.state.Challenge = domain.ResetChallenge()
	if err := c.store.Save(ctx, c.userID, c.state); err != nil {
		return fmt.Errorf("game.ResetChallenge: save user state: %w", err)
	}
	slog.Info("daily challenge reset", "user", c.userID)
	return nil
}

func (c *Controller) publishReveal(ctx context.Context, out RoundOutcome) {
	reveal := ports.Reveal{
		Symbol:  c.round.Symbol,
		Guess:   c.round.Guess,
		Outcome: out.Outcome,
		Result:  c.round.Result,
		Closes:  c.series.Revealed(c.cfg.Cutoff, c.cfg.After),
		Score:   c.score,
	}
	if err := c.sink.PublishReveal(ctx, reveal); err != nil {
		slog.Warn("reveal sink error", "symbol", c.round.Symbol, "err", err)
	}
}

// IsNoOp reports whether the error from Guess should be swallowed by the UI
// rather than shown: repeated guesses on a revealed round are ignored.
func IsNoOp(err error) bool {
	return errors.Is(err, domain.ErrGuessAlreadyMade)
}

func resultMessage(result domain.Result, dir domain.Direction) string {
	switch result {
	case domain.ResultCorrect:
		return "Correct! You predicted " + strings.ToUpper(string(dir)) + "."
	case domain.ResultIncorrect:
		return "Wrong! You predicted " + strings.ToUpper(string(dir)) + "."
	case domain.ResultNoChange:
		return "No change after cutoff. No score."
	default:
		return ""
	}
}

func challengeMessage(coins int, state domain.ChallengeState) string {
	if coins == 0 {
		return ""
	}
	if state.Streak >= domain.StreakTarget {
		return fmt.Sprintf("Challenge complete! %d in a row. +%d coins!", domain.StreakTarget, coins)
	}
	return fmt.Sprintf("Challenge complete! Never went below %d. +%d coins!", domain.ScoreFloor, coins)
}
