package main

import (
	"fmt"

	"github.com/lox/rpsls/internal/game"
	"github.com/lox/rpsls/internal/simulator"
)

type SimulateCmd struct {
	A         string `arg:"" help:"First opponent name"`
	B         string `arg:"" help:"Second opponent name"`
	Matches   int    `default:"10000" help:"Number of matches to simulate"`
	Seed      int64  `help:"RNG seed (0 uses the configured seed)"`
	Workers   int    `help:"Parallel workers (0 for one per CPU, capped at 8)"`
	MaxRounds int    `default:"1000" help:"Abort a match that runs longer than this"`
}

func (c *SimulateCmd) Run(cli *CLI) error {
	cfg, logger, closer, err := loadSettings(cli)
	if err != nil {
		return err
	}
	defer closer.Close()

	seed := c.Seed
	if seed == 0 {
		seed = cfg.Game.Seed
	}

	ctx := setupSignalHandler(logger)

	fmt.Printf("Starting simulation: %d matches, %s vs %s (seed: %d)\n", c.Matches, c.A, c.B, seed)

	sim := simulator.New(simulator.Config{
		Matches:   c.Matches,
		OpponentA: c.A,
		OpponentB: c.B,
		Seed:      seed,
		Workers:   c.Workers,
		MaxRounds: c.MaxRounds,
		Settings:  cfg,
		Logger:    logger,
	})
	report, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	printResults(report, c.A, c.B)
	return nil
}

func printResults(report *simulator.Report, a, b string) {
	stats := report.Stats
	low, high := stats.ConfidenceInterval95()

	fmt.Printf("\n=== RESULTS (%d matches in %v) ===\n", stats.Matches, report.Elapsed)
	fmt.Printf("%-12s %6d wins (%.1f%%)\n", a, stats.WinsA, stats.WinRate(game.SideA)*100)
	fmt.Printf("%-12s %6d wins (%.1f%%)\n", b, stats.WinsB, stats.WinRate(game.SideB)*100)
	fmt.Printf("Rounds/match: %.2f ± %.2f SD (median %.0f, p95 %.0f)\n",
		stats.Mean(), stats.StdDev(), stats.Median(), stats.Percentile(0.95))
	fmt.Printf("95%% CI: [%.3f, %.3f] rounds/match\n", low, high)
	fmt.Printf("Tie rate: %.1f%% of %d rounds\n", stats.TieRate()*100, stats.TotalRounds)

	fmt.Printf("\nMove frequency:\n")
	fmt.Printf("%-10s %12s %12s\n", "", a, b)
	for _, m := range game.Moves() {
		fmt.Printf("%-10s %11.1f%% %11.1f%%\n", m,
			stats.MoveFrequency(game.SideA, m)*100,
			stats.MoveFrequency(game.SideB, m)*100)
	}
}
