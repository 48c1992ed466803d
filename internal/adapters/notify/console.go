package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/andrewborzenkov20-ui/Stockify/internal/domain"
	"github.com/andrewborzenkov20-ui/Stockify/internal/ports"
	"github.com/olekukonko/tablewriter"
)

// Console implements ports.RevealSink and renders game and practice state to
// the terminal.
type Console struct {
	out io.Writer
}

// NewConsole creates a console writing to stdout.
func NewConsole() *Console {
	return &Console{out: os.Stdout}
}

// NewConsoleWriter creates a console for tests.
func NewConsoleWriter(w io.Writer) *Console {
	return &Console{out: w}
}

// PublishReveal prints the revealed window and how the guess scored.
func (c *Console) PublishReveal(_ context.Context, r ports.Reveal) error {
	now := time.Now().Format("15:04:05")

	if len(r.Closes) == 0 {
		fmt.Fprintf(c.out, "[%s] %s revealed: no data\n", now, r.Symbol)
		return nil
	}

	first := r.Closes[0]
	last := r.Closes[len(r.Closes)-1]
	fmt.Fprintf(c.out, "[%s] %s revealed: %d bars, $%.2f → $%.2f | outcome %s | guess %s → %s | score %d\n",
		now, r.Symbol, len(r.Closes), first, last,
		strings.ToUpper(string(r.Outcome)),
		strings.ToUpper(string(r.Guess)),
		r.Result, r.Score,
	)
	return nil
}

// PrintChallenge shows the daily challenge progress line.
func (c *Console) PrintChallenge(state domain.ChallengeState, score, coins int) {
	done := ""
	if state.Completed {
		done = " | completed ✓"
	}
	fmt.Fprintf(c.out, "Score: %d | Coins: %d | Streak: %d | Min score: %d%s\n",
		score, coins, state.Streak, state.MinScore, done)
}

// PrintTrades renders the closed-trade journal as a table.
func (c *Console) PrintTrades(trades []domain.ClosedTrade) {
	if len(trades) == 0 {
		fmt.Fprintln(c.out, "No closed trades yet.")
		return
	}

	table := tablewriter.NewWriter(c.out)
	table.Header("#", "Entry", "Exit", "Shares", "P&L")

	for i, t := range trades {
		table.Append(
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("$%.2f", t.Entry),
			fmt.Sprintf("$%.2f", t.Exit),
			fmt.Sprintf("%d", t.Shares),
			fmt.Sprintf("$%.2f", t.Profit),
		)
	}

	table.Render()
}

// SessionReport is the funded-practice snapshot the console renders. The cmd
// layer maps the live session into it.
type SessionReport struct {
	Symbol      string
	Bar         int
	Bars        int
	Price       float64
	Balance     float64
	Position    int
	EntryPrice  float64
	OpenPnL     float64
	TotalProfit float64
	Drawdown    float64
	Status      domain.SessionStatus
	History     []domain.ClosedTrade
}

// PrintSessionReport renders the practice session state and trade history.
func (c *Console) PrintSessionReport(r SessionReport) {
	fmt.Fprintf(c.out, "\n=== %s — bar %d/%d @ $%.2f ===\n", r.Symbol, r.Bar+1, r.Bars, r.Price)
	fmt.Fprintf(c.out, "Balance: $%.2f", r.Balance)
	if r.Position > 0 {
		fmt.Fprintf(c.out, " | Position: %d shares (entry $%.2f) | Open P&L: $%.2f", r.Position, r.EntryPrice, r.OpenPnL)
	}
	fmt.Fprintf(c.out, "\nTotal profit: $%.2f | Drawdown: $%.2f | Challenge: %s\n", r.TotalProfit, r.Drawdown, statusLabel(r.Status))
	c.PrintTrades(r.History)
}

func statusLabel(s domain.SessionStatus) string {
	switch s {
	case domain.StatusPassed:
		return "Challenge Passed!"
	case domain.StatusFailed:
		return "Challenge Failed (Max Drawdown)."
	default:
		return "in progress"
	}
}
