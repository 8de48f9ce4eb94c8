package main

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/lox/rpsls/internal/config"
	"github.com/lox/rpsls/internal/display"
	"github.com/lox/rpsls/internal/game"
)

type RulesCmd struct{}

func (c *RulesCmd) Run(cli *CLI) error {
	printer := display.NewPrinter(os.Stdout, !cli.NoColor)
	table := game.DefaultTable()

	printer.Println(display.KindTitle, "Rules")
	for _, r := range table.Rules() {
		printer.Println(display.KindInfo, fmt.Sprintf("%s %s %s", r.Winner, r.Verb, r.Loser))
	}
	return nil
}

type RosterCmd struct{}

func (c *RosterCmd) Run(cli *CLI) error {
	cfg, err := config.LoadConfig(cli.Config)
	if err != nil {
		return err
	}
	printer := display.NewPrinter(os.Stdout, !cli.NoColor)

	printer.Println(display.KindTitle, "Opponents")
	for _, o := range cfg.Opponents {
		printer.Println(display.KindInfo, fmt.Sprintf("%-10s %s", o.Name, describeOpponent(o)))
	}
	return nil
}

func describeOpponent(o config.OpponentConfig) string {
	switch o.Strategy {
	case config.StrategyFixed:
		return "always plays " + o.Move
	case config.StrategyWeighted:
		// aliases such as "sc" and "scissors" name the same move
		perMove := make(map[game.Move]int, len(o.Weights))
		total := 0
		for name, w := range o.Weights {
			m, err := game.ParseMove(name)
			if err != nil || w <= 0 {
				continue
			}
			perMove[m] += w
			total += w
		}
		var parts []string
		for _, m := range game.Moves() {
			if w := perMove[m]; w > 0 {
				pct := math.Round(float64(w) * 100 / float64(total))
				parts = append(parts, fmt.Sprintf("%s %.0f%%", m, pct))
			}
		}
		return "plays " + strings.Join(parts, ", ")
	default:
		return "plays at random"
	}
}
