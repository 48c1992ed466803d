package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/andrewborzenkov20-ui/Stockify/config"
	"github.com/andrewborzenkov20-ui/Stockify/internal/adapters/notify"
	"github.com/andrewborzenkov20-ui/Stockify/internal/application/practice"
	"github.com/andrewborzenkov20-ui/Stockify/internal/domain"
	"github.com/andrewborzenkov20-ui/Stockify/internal/ports"
)

func runPractice(ctx context.Context, cfg *config.Config, provider ports.SeriesProvider, store ports.UserStore, console *notify.Console, userID string) {
	eng := practice.New(practice.Config{
		Session: domain.SessionConfig{
			StartBalance: cfg.Practice.StartBalance,
			ProfitTarget: cfg.Practice.ProfitTarget,
			MaxDrawdown:  cfg.Practice.MaxDrawdown,
		},
		Symbols: cfg.Practice.Symbols,
	}, provider, store, userID)

	if err := eng.Switch(ctx, cfg.Practice.Symbols[0]); err != nil {
		slog.Error("failed to start practice session", "err", err)
		os.Exit(1)
	}

	fmt.Printf("Funded Trader Practice — start $%.0f, target +$%.0f, max drawdown $%.0f.\n",
		cfg.Practice.StartBalance, cfg.Practice.ProfitTarget, cfg.Practice.MaxDrawdown)
	fmt.Println("Commands: buy [dollars], sell, next, stock SYM, report, quit")

	scan := bufio.NewScanner(os.Stdin)

	for ctx.Err() == nil {
		s := eng.Session()
		fmt.Printf("[%s bar %d/%d $%.2f] > ", s.Symbol, s.Bar()+1, s.Bars(), s.Price())

		if !scan.Scan() {
			return
		}
		fields := strings.Fields(strings.ToLower(scan.Text()))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "buy":
			dollars := cfg.Practice.DefaultBuy
			if len(fields) > 1 {
				v, err := strconv.ParseFloat(fields[1], 64)
				if err != nil {
					fmt.Println("Usage: buy [dollars]")
					continue
				}
				dollars = v
			}
			msg, _ := eng.Buy(dollars)
			fmt.Println(msg)

		case "sell":
			msg, _ := eng.Sell(ctx)
			fmt.Println(msg)
			printVerdict(eng.Session())

		case "next", "n":
			if !eng.Advance() {
				fmt.Println("End of series — no more bars.")
			}
			printVerdict(eng.Session())

		case "stock":
			if len(fields) < 2 {
				fmt.Println("Usage: stock SYM")
				continue
			}
			symbol := strings.ToUpper(fields[1])
			if err := eng.Switch(ctx, symbol); err != nil {
				fmt.Println("No local data found for this symbol.")
				slog.Debug("switch failed", "symbol", symbol, "err", err)
			}

		case "report":
			console.PrintSessionReport(sessionReport(eng.Session()))

		case "quit", "q":
			console.PrintSessionReport(sessionReport(eng.Session()))
			return

		default:
			fmt.Println("Commands: buy [dollars], sell, next, stock SYM, report, quit")
		}
	}
}

func printVerdict(s *domain.TradingSession) {
	switch s.Status() {
	case domain.StatusPassed:
		fmt.Println("Challenge Passed!")
	case domain.StatusFailed:
		fmt.Println("Challenge Failed (Max Drawdown).")
	}
}

func sessionReport(s *domain.TradingSession) notify.SessionReport {
	return notify.SessionReport{
		Symbol:      s.Symbol,
		Bar:         s.Bar(),
		Bars:        s.Bars(),
		Price:       s.Price(),
		Balance:     s.Balance,
		Position:    s.Position,
		EntryPrice:  s.EntryPrice,
		OpenPnL:     s.OpenPnL(),
		TotalProfit: s.TotalProfit(),
		Drawdown:    s.Drawdown(),
		Status:      s.Status(),
		History:     s.History,
	}
}
