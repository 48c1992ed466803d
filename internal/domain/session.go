package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Rejection errors for funded-practice operations. State is unchanged when
// any of these is returned; the UI surfaces them as short-lived messages.
var (
	ErrPositionOpen        = errors.New("close your current position first")
	ErrInsufficientBalance = errors.New("not enough balance")
	ErrAmountTooSmall      = errors.New("buy amount too small")
	ErrNoPosition          = errors.New("no open position to sell")
)

// fallbackPrice is used when a session has no bars loaded yet.
const fallbackPrice = 100

// SessionConfig holds the funded-practice challenge thresholds.
type SessionConfig struct {
	StartBalance float64
	ProfitTarget float64 // total profit at or above this passes the challenge
	MaxDrawdown  float64 // total profit at or below this fails it (negative)
}

// SessionStatus is the funded-practice challenge verdict, recomputed on
// every query.
type SessionStatus string

const (
	StatusInProgress SessionStatus = "in-progress"
	StatusPassed     SessionStatus = "passed"
	StatusFailed     SessionStatus = "failed"
)

// ClosedTrade is one completed round trip in a practice session.
type ClosedTrade struct {
	ID       string
	Entry    float64
	Exit     float64
	Shares   int
	Profit   float64
	ClosedAt time.Time
}

// TradingSession simulates one long-only position against a replayed daily
// series. The replay cursor is the only source of the current price; balance
// never includes unrealized P&L.
//
// Selling credits sale proceeds and the P&L delta separately, which
// double-counts the price move. That is the behavior of the game this engine
// replays and is locked in by tests; do not "fix" it here without changing
// the challenge math everywhere.
type TradingSession struct {
	ID         string
	Symbol     string
	Balance    float64
	Position   int     // shares, never negative
	EntryPrice float64 // meaningful only while Position > 0
	History    []ClosedTrade

	closes []float64
	cursor int
	cfg    SessionConfig
}

// NewTradingSession starts a fresh session at the first bar of the series
// with the configured starting balance. Switching symbols means creating a
// new session, never mutating an old one.
func NewTradingSession(symbol string, closes []float64, cfg SessionConfig) *TradingSession {
	c := make([]float64, len(closes))
	copy(c, closes)
	return &TradingSession{
		ID:      uuid.New().String(),
		Symbol:  symbol,
		Balance: cfg.StartBalance,
		closes:  c,
		cfg:     cfg,
	}
}

// Price returns the close at the replay cursor.
func (s *TradingSession) Price() float64 {
	if len(s.closes) == 0 {
		return fallbackPrice
	}
	return s.closes[s.cursor]
}

// Bar returns the current replay cursor index.
func (s *TradingSession) Bar() int { return s.cursor }

// Bars returns the number of loaded bars.
func (s *TradingSession) Bars() int { return len(s.closes) }

// Buy opens a position worth up to the given dollar amount at the current
// price. Share count is floored; fractional shares are not simulated.
func (s *TradingSession) Buy(dollars float64) (int, error) {
	if s.Position != 0 {
		return 0, ErrPositionOpen
	}
	if dollars > s.Balance {
		return 0, ErrInsufficientBalance
	}

	price := s.Price()
	shares := int(dollars / price)
	if shares < 1 {
		return 0, ErrAmountTooSmall
	}

	s.Position = shares
	s.EntryPrice = price
	s.Balance -= float64(shares) * price
	return shares, nil
}

// Sell closes the open position at the current price, credits the balance
// and appends a trade record.
func (s *TradingSession) Sell() (ClosedTrade, error) {
	if s.Position == 0 {
		return ClosedTrade{}, ErrNoPosition
	}

	price := s.Price()
	profit := (price - s.EntryPrice) * float64(s.Position)
	s.Balance += float64(s.Position)*price + profit

	trade := ClosedTrade{
		ID:       uuid.New().String(),
		Entry:    s.EntryPrice,
		Exit:     price,
		Shares:   s.Position,
		Profit:   profit,
		ClosedAt: time.Now().UTC(),
	}
	s.History = append(s.History, trade)

	s.Position = 0
	s.EntryPrice = 0
	return trade, nil
}

// Advance moves the replay one bar forward. At the last bar it is a no-op
// and reports false.
func (s *TradingSession) Advance() bool {
	if s.cursor >= len(s.closes)-1 {
		return false
	}
	s.cursor++
	return true
}

// OpenPnL is the unrealized profit of the open position at the current bar.
func (s *TradingSession) OpenPnL() float64 {
	if s.Position <= 0 {
		return 0
	}
	return (s.Price() - s.EntryPrice) * float64(s.Position)
}

// TotalProfit is realized plus unrealized profit relative to the starting
// balance.
func (s *TradingSession) TotalProfit() float64 {
	return s.Balance - s.cfg.StartBalance + s.OpenPnL()
}

// Drawdown is the worst closed-trade loss, capped at zero.
func (s *TradingSession) Drawdown() float64 {
	dd := 0.0
	for _, t := range s.History {
		if t.Profit < dd {
			dd = t.Profit
		}
	}
	return dd
}

// Status evaluates the funded challenge against the profit target and max
// drawdown thresholds. Stateless: a later query can flip the verdict back if
// the open P&L moves.
func (s *TradingSession) Status() SessionStatus {
	total := s.TotalProfit()
	switch {
	case total >= s.cfg.ProfitTarget:
		return StatusPassed
	case total <= s.cfg.MaxDrawdown:
		return StatusFailed
	default:
		return StatusInProgress
	}
}
