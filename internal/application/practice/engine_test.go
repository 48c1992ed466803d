package practice

import (
	"context"
	"testing"
	"time"

	"github.com/andrewborzenkov20-ui/Stockify/internal/domain"
	"github.com/andrewborzenkov20-ui/Stockify/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	series map[string]domain.PriceSeries
}

func (p *stubProvider) DailyCloses(_ context.Context, symbol string) (domain.PriceSeries, error) {
	s, ok := p.series[symbol]
	if !ok {
		return domain.PriceSeries{}, ports.ErrSeriesNotFound
	}
	return s, nil
}

type journalStore struct {
	trades  []domain.ClosedTrade
	symbols []string
}

func (s *journalStore) Load(context.Context, string) (domain.UserState, error) {
	return domain.UserState{}, nil
}
func (s *journalStore) Save(context.Context, string, domain.UserState) error { return nil }

func (s *journalStore) AppendTrade(_ context.Context, _ string, symbol string, trade domain.ClosedTrade) error {
	s.trades = append(s.trades, trade)
	s.symbols = append(s.symbols, symbol)
	return nil
}

func (s *journalStore) Trades(context.Context, string) ([]domain.ClosedTrade, error) {
	return s.trades, nil
}
func (s *journalStore) Close() error { return nil }

func seriesOf(t *testing.T, symbol string, closes ...float64) domain.PriceSeries {
	t.Helper()
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	points := make([]domain.PricePoint, len(closes))
	for i, c := range closes {
		points[i] = domain.PricePoint{Date: start.AddDate(0, 0, i), Close: c}
	}
	s, err := domain.NewPriceSeries(symbol, points)
	require.NoError(t, err)
	return s
}

func newTestEngine(t *testing.T, store *journalStore) *Engine {
	t.Helper()
	provider := &stubProvider{series: map[string]domain.PriceSeries{
		"AAPL": seriesOf(t, "AAPL", 100, 110, 120),
		"MSFT": seriesOf(t, "MSFT", 200, 190),
	}}
	cfg := Config{
		Session: domain.SessionConfig{StartBalance: 50000, ProfitTarget: 2500, MaxDrawdown: -2500},
		Symbols: []string{"AAPL", "MSFT"},
	}
	return New(cfg, provider, store, "tester")
}

func TestEngine_BuySellJournalsTrade(t *testing.T) {
	store := &journalStore{}
	eng := newTestEngine(t, store)
	ctx := context.Background()

	require.NoError(t, eng.Switch(ctx, "AAPL"))

	msg, err := eng.Buy(1000)
	require.NoError(t, err)
	assert.Equal(t, "Bought 10 shares @ $100.00", msg)

	require.True(t, eng.Advance())

	msg, err = eng.Sell(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Closed position. P&L: $100.00", msg)

	require.Len(t, store.trades, 1)
	assert.Equal(t, "AAPL", store.symbols[0])
	assert.InDelta(t, 100, store.trades[0].Profit, 1e-9)
}

func TestEngine_RejectionMessages(t *testing.T) {
	store := &journalStore{}
	eng := newTestEngine(t, store)
	ctx := context.Background()
	require.NoError(t, eng.Switch(ctx, "AAPL"))

	msg, err := eng.Sell(ctx)
	assert.ErrorIs(t, err, domain.ErrNoPosition)
	assert.Equal(t, "You can't sell stocks you don't own. Open a position first.", msg)

	msg, err = eng.Buy(99999)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.Equal(t, "Not enough balance.", msg)

	msg, err = eng.Buy(50)
	assert.ErrorIs(t, err, domain.ErrAmountTooSmall)
	assert.Equal(t, "Buy amount too small.", msg)

	_, err = eng.Buy(1000)
	require.NoError(t, err)
	msg, err = eng.Buy(1000)
	assert.ErrorIs(t, err, domain.ErrPositionOpen)
	assert.Equal(t, "Close your current position first.", msg)

	// No trade reached the journal.
	assert.Empty(t, store.trades)
}

func TestEngine_SwitchResetsSession(t *testing.T) {
	store := &journalStore{}
	eng := newTestEngine(t, store)
	ctx := context.Background()

	require.NoError(t, eng.Switch(ctx, "AAPL"))
	_, err := eng.Buy(1000)
	require.NoError(t, err)
	eng.Advance()

	require.NoError(t, eng.Switch(ctx, "MSFT"))
	s := eng.Session()

	assert.Equal(t, "MSFT", s.Symbol)
	assert.Equal(t, 0, s.Position)
	assert.Equal(t, 0, s.Bar())
	assert.InDelta(t, 50000, s.Balance, 1e-9)
	assert.Empty(t, s.History)
}

func TestEngine_SwitchUnknownSymbol(t *testing.T) {
	eng := newTestEngine(t, &journalStore{})

	err := eng.Switch(context.Background(), "NOPE")
	assert.ErrorIs(t, err, ports.ErrSeriesNotFound)
}
