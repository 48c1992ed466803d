package notify_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/andrewborzenkov20-ui/Stockify/internal/adapters/notify"
	"github.com/andrewborzenkov20-ui/Stockify/internal/domain"
	"github.com/andrewborzenkov20-ui/Stockify/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole_PublishReveal(t *testing.T) {
	var buf bytes.Buffer
	c := notify.NewConsoleWriter(&buf)

	err := c.PublishReveal(context.Background(), ports.Reveal{
		Symbol:  "AAPL",
		Guess:   domain.DirectionUp,
		Outcome: domain.OutcomeUp,
		Result:  domain.ResultCorrect,
		Closes:  []float64{100, 105, 160},
		Score:   3,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "AAPL")
	assert.Contains(t, out, "outcome UP")
	assert.Contains(t, out, "guess UP")
	assert.Contains(t, out, "score 3")
}

func TestConsole_PublishReveal_Empty(t *testing.T) {
	var buf bytes.Buffer
	c := notify.NewConsoleWriter(&buf)

	err := c.PublishReveal(context.Background(), ports.Reveal{Symbol: "AAPL"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "no data")
}

func TestConsole_PrintChallenge(t *testing.T) {
	var buf bytes.Buffer
	c := notify.NewConsoleWriter(&buf)

	c.PrintChallenge(domain.ChallengeState{Streak: 2, MinScore: -1, Completed: true}, 4, 5)

	out := buf.String()
	assert.Contains(t, out, "Score: 4")
	assert.Contains(t, out, "Coins: 5")
	assert.Contains(t, out, "Streak: 2")
	assert.Contains(t, out, "completed")
}

func TestConsole_PrintTrades(t *testing.T) {
	var buf bytes.Buffer
	c := notify.NewConsoleWriter(&buf)

	c.PrintTrades([]domain.ClosedTrade{
		{Entry: 100, Exit: 120, Shares: 10, Profit: 200},
	})

	out := buf.String()
	assert.Contains(t, out, "$100.00")
	assert.Contains(t, out, "$120.00")
	assert.Contains(t, out, "$200.00")
}

func TestConsole_PrintTrades_Empty(t *testing.T) {
	var buf bytes.Buffer
	c := notify.NewConsoleWriter(&buf)

	c.PrintTrades(nil)
	assert.Contains(t, buf.String(), "No closed trades yet.")
}

func TestConsole_PrintSessionReport(t *testing.T) {
	var buf bytes.Buffer
	c := notify.NewConsoleWriter(&buf)

	c.PrintSessionReport(notify.SessionReport{
		Symbol:      "TSLA",
		Bar:         4,
		Bars:        100,
		Price:       250.5,
		Balance:     49000,
		Position:    10,
		EntryPrice:  240,
		OpenPnL:     105,
		TotalProfit: 105,
		Drawdown:    -50,
		Status:      domain.StatusInProgress,
	})

	out := buf.String()
	assert.Contains(t, out, "TSLA")
	assert.Contains(t, out, "Balance: $49000.00")
	assert.Contains(t, out, "10 shares")
	assert.Contains(t, out, "in progress")
}
