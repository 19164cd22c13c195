package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lox/ginrummy/internal/config"
	"github.com/lox/ginrummy/internal/randutil"
	"github.com/lox/ginrummy/internal/simulator"
	"github.com/lox/ginrummy/internal/statistics"
)

type SimulateCmd struct {
	Config    string `short:"c" help:"HCL configuration file" type:"path"`
	Games     int    `short:"n" help:"Number of games (overrides config)"`
	Seed      int64  `help:"Base seed (overrides config; 0 keeps config or picks a fresh one)"`
	Workers   int    `short:"w" help:"Parallel workers (overrides config)"`
	Duplicate bool   `help:"Replay every seed with the seats swapped"`
	Output    string `short:"o" help:"Write per-game CSV records to this file" type:"path"`
}

func (c *SimulateCmd) Run(cli *CLI) error {
	cfg, err := c.load()
	if err != nil {
		return err
	}

	level := cli.LogLevel
	if level == "" {
		level = cfg.LogLevel
	}
	logger, err := newLogger(level)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	report, err := simulator.New(cfg.Simulator(logger)).Run(ctx)
	if err != nil {
		return err
	}
	printReport(cfg, report.Stats, time.Since(start))

	if cfg.Output != "" {
		if err := simulator.SaveCSV(cfg.Output, report.Records); err != nil {
			return fmt.Errorf("write results: %w", err)
		}
		logger.Info("Wrote results", "file", cfg.Output, "games", len(report.Records))
	}
	return nil
}

// load reads the config file and applies command line overrides
func (c *SimulateCmd) load() (*config.Config, error) {
	cfg := config.Default()
	if c.Config != "" {
		var err error
		if cfg, err = config.Load(c.Config); err != nil {
			return nil, err
		}
	}

	if c.Games > 0 {
		cfg.Simulation.Games = c.Games
	}
	if c.Seed != 0 {
		cfg.Simulation.Seed = c.Seed
	}
	if cfg.Simulation.Seed == 0 {
		cfg.Simulation.Seed = randutil.FreshSeed()
	}
	if c.Workers > 0 {
		cfg.Simulation.Workers = c.Workers
	}
	if c.Duplicate {
		cfg.Simulation.Duplicate = true
	}
	if c.Output != "" {
		cfg.Output = c.Output
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func printReport(cfg *config.Config, stats *statistics.Statistics, elapsed time.Duration) {
	tracked, opponent := cfg.Players[0], cfg.Players[1]
	lo, hi := stats.WinRateCI95()
	mlo, mhi := stats.ConfidenceInterval95()

	fmt.Println(headerStyle.Render(fmt.Sprintf("%s (%s) vs %s (%s)",
		tracked.Label, tracked.Strategy, opponent.Label, opponent.Strategy)))
	fmt.Println(row("Games", fmt.Sprintf("%d in %s (seed %d)", stats.Games, elapsed.Round(time.Millisecond), cfg.Simulation.Seed)))
	fmt.Println(row("Win rate", winStyle.Render(fmt.Sprintf("%.1f%%", stats.WinRate()*100))+
		fmt.Sprintf(" [%.1f%%, %.1f%%]", lo*100, hi*100)))
	fmt.Println(row("Margin", fmt.Sprintf("%.1f ± %.1f [%.1f, %.1f], median %.0f",
		stats.Mean(), stats.StdError(), mlo, mhi, stats.Median())))
	for seat, s := range stats.Seats {
		fmt.Println(row(fmt.Sprintf("Seat %d", seat), fmt.Sprintf("%d/%d (%.1f%%)", s.Wins, s.Games, stats.SeatWinRate(seat)*100)))
	}

	fmt.Println(headerStyle.Render("Hands"))
	fmt.Println(row("Per game", fmt.Sprintf("%.1f", stats.HandsPerGame())))
	fmt.Println(row("Knocks", fmt.Sprintf("%d (%d won)", stats.Knocks, stats.KnocksWon)))
	fmt.Println(row("Gins", fmt.Sprintf("%d (%d won)", stats.Gins, stats.GinsWon)))
	fmt.Println(row("Undercuts", fmt.Sprintf("%d (%d won)", stats.Undercuts, stats.UndercutsWon)))
	fmt.Println(row("Cancelled", stats.Cancelled))
	fmt.Println(row("Layoffs", stats.Layoffs))
	if stats.Forfeits > 0 {
		fmt.Println(row("Forfeits", warnStyle.Render(fmt.Sprintf("%d (%d by %s)", stats.Forfeits, stats.OwnForfeits, tracked.Label))))
	}
}
