package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"

	"github.com/andrewborzenkov20-ui/Stockify/config"
	"github.com/andrewborzenkov20-ui/Stockify/internal/adapters/notify"
	"github.com/andrewborzenkov20-ui/Stockify/internal/application/game"
	"github.com/andrewborzenkov20-ui/Stockify/internal/domain"
	"github.com/andrewborzenkov20-ui/Stockify/internal/ports"
	"github.com/andrewborzenkov20-ui/Stockify/internal/scheduler"
)

func runGuess(ctx context.Context, cfg *config.Config, provider ports.SeriesProvider, store ports.UserStore, console *notify.Console, rng *rand.Rand, userID string) {
	ctrl := game.New(game.Config{
		Cutoff:     cfg.Game.Cutoff,
		After:      cfg.Game.After,
		SymbolPool: cfg.Game.Symbols,
	}, provider, store, console, rng, userID)

	if err := ctrl.Start(ctx); err != nil {
		slog.Error("failed to start game session", "err", err)
		os.Exit(1)
	}

	sched := scheduler.New()
	if err := sched.RegisterDailyReset(ctx, cfg.Game.ResetCron, ctrl.ResetChallenge); err != nil {
		slog.Error("failed to register daily reset", "err", err)
		os.Exit(1)
	}
	sched.Start()
	defer sched.Stop()

	fmt.Println("Stock Guessing Game — guess whether the hidden tail goes up or down.")
	fmt.Printf("Daily Challenge: get %d in a row, or reach %d without dropping below %d.\n",
		domain.StreakTarget, domain.ScoreTarget, domain.ScoreFloor)
	fmt.Println("Commands: u (up), d (down), q (quit)")

	scan := bufio.NewScanner(os.Stdin)

	for {
		if ctx.Err() != nil {
			return
		}

		round, err := ctrl.StartRound(ctx)
		if err != nil {
			if errors.Is(err, ports.ErrSeriesNotFound) {
				slog.Warn("no local data for drawn symbol, drawing again", "err", err)
				continue
			}
			slog.Error("failed to start round", "err", err)
			return
		}

		visible := ctrl.VisibleCloses()
		fmt.Printf("\n%s — last %d closes, latest $%.2f. Up or down?\n",
			round.Symbol, len(visible), visible[len(visible)-1])

		dir, quit := readDirection(scan)
		if quit {
			return
		}

		out, err := ctrl.Guess(ctx, dir)
		if err != nil {
			if game.IsNoOp(err) {
				continue
			}
			slog.Error("guess failed", "err", err)
			return
		}

		fmt.Println(out.Message)
		if out.ChallengeMsg != "" {
			fmt.Println(out.ChallengeMsg)
		}
		console.PrintChallenge(out.Challenge, out.Score, out.Coins)
	}
}

func readDirection(scan *bufio.Scanner) (domain.Direction, bool) {
	for {
		fmt.Print("> ")
		if !scan.Scan() {
			return "", true
		}
		switch strings.ToLower(strings.TrimSpace(scan.Text())) {
		case "u", "up":
			return domain.DirectionUp, false
		case "d", "down":
			return domain.DirectionDown, false
		case "q", "quit":
			return "", true
		default:
			fmt.Println("Type u, d or q.")
		}
	}
}
