package practice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/andrewborzenkov20-ui/Stockify/internal/domain"
	"github.com/andrewborzenkov20-ui/Stockify/internal/ports"
)

// Config controls the funded-practice mode.
type Config struct {
	Session domain.SessionConfig
	Symbols []string // instruments the player may switch between
}

// Engine drives a funded-practice session: it loads the replay series,
// forwards buy/sell/advance to the trading session and journals closed
// trades. Switching instruments abandons the old session entirely.
type Engine struct {
	cfg      Config
	provider ports.SeriesProvider
	store    ports.UserStore
	userID   string
	session  *domain.TradingSession
}

// New builds an engine without an active session; call Switch first.
func New(cfg Config, provider ports.SeriesProvider, store ports.UserStore, userID string) *Engine {
	return &Engine{cfg: cfg, provider: provider, store: store, userID: userID}
}

// Switch loads the series for symbol and starts a fresh session: balance,
// position, history and replay cursor all reset to initial values.
func (e *Engine) Switch(ctx context.Context, symbol string) error {
	series, err := e.provider.DailyCloses(ctx, symbol)
	if err != nil {
		return fmt.Errorf("practice.Switch: %s: %w", symbol, err)
	}

	e.session = domain.NewTradingSession(symbol, series.Closes(), e.cfg.Session)
	slog.Info("practice session started",
		"symbol", symbol,
		"bars", series.Len(),
		"balance", e.cfg.Session.StartBalance,
	)
	return nil
}

// Buy opens a position worth the given dollar amount at the current bar.
// Returns the status message shown to the player.
func (e *Engine) Buy(dollars float64) (string, error) {
	shares, err := e.session.Buy(dollars)
	if err != nil {
		return rejectionMessage(err), err
	}
	msg := fmt.Sprintf("Bought %d shares @ $%.2f", shares, e.session.EntryPrice)
	slog.Info("practice: position opened",
		"symbol", e.session.Symbol,
		"shares", shares,
		"entry", e.session.EntryPrice,
		"balance", e.session.Balance,
	)
	return msg, nil
}

// Sell closes the open position at the current bar and journals the trade.
func (e *Engine) Sell(ctx context.Context) (string, error) {
	trade, err := e.session.Sell()
	if err != nil {
		return rejectionMessage(err), err
	}

	if err := e.store.AppendTrade(ctx, e.userID, e.session.Symbol, trade); err != nil {
		slog.Warn("practice: error journaling trade", "err", err)
	}

	msg := fmt.Sprintf("Closed position. P&L: $%.2f", trade.Profit)
	slog.Info("practice: position closed",
		"symbol", e.session.Symbol,
		"entry", trade.Entry,
		"exit", trade.Exit,
		"shares", trade.Shares,
		"profit", trade.Profit,
		"status", e.session.Status(),
	)
	return msg, nil
}

// Advance moves the replay forward one bar. A no-op at the last bar.
func (e *Engine) Advance() bool {
	return e.session.Advance()
}

// Session exposes the live trading session for rendering.
func (e *Engine) Session() *domain.TradingSession { return e.session }

// Symbols returns the instruments available in this mode.
func (e *Engine) Symbols() []string { return e.cfg.Symbols }

func rejectionMessage(err error) string {
	switch err {
	case domain.ErrPositionOpen:
		return "Close your current position first."
	case domain.ErrInsufficientBalance:
		return "Not enough balance."
	case domain.ErrAmountTooSmall:
		return "Buy amount too small."
	case domain.ErrNoPosition:
		return "You can't sell stocks you don't own. Open a position first."
	default:
		return err.Error()
	}
}
