package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/lox/rpsls/internal/display"
	"github.com/lox/rpsls/internal/game"
	"github.com/lox/rpsls/internal/session"
)

type PlayCmd struct {
	Name     string `short:"n" help:"Your display name (prompted for when empty)"`
	Opponent string `short:"o" help:"Opponent to play (random from the roster when empty)"`
	Seed     int64  `help:"RNG seed (0 uses the configured seed, or the clock)"`
}

func (c *PlayCmd) Run(cli *CLI) error {
	cfg, logger, closer, err := loadSettings(cli)
	if err != nil {
		return err
	}
	defer closer.Close()

	printer := display.NewPrinter(os.Stdout, !cli.NoColor)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          printer.Prompt("> "),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return fmt.Errorf("failed to create input: %w", err)
	}
	defer rl.Close()

	input := func() (string, error) {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			return "", io.EOF
		}
		return line, err
	}

	name := c.Name
	if name == "" {
		name, err = askName(input, printer.Output)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}

	seed := c.Seed
	if seed == 0 {
		seed = cfg.Game.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("Starting session", "player", name, "seed", seed)

	printer.Println(display.KindTitle, "Rock, Paper, Scissors, Lizard, Spock")
	s, err := session.New(session.Options{
		PlayerName: name,
		Opponent:   c.Opponent,
		Input:      input,
		Output:     printer.Output,
		Config:     cfg,
		Rng:        rand.New(rand.NewSource(seed)),
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	return s.Run()
}

// askName repeats the question until a non-blank name is given.
func askName(input game.InputFunc, output game.OutputFunc) (string, error) {
	for {
		output("What is your name?")
		line, err := input()
		if err != nil {
			return "", err
		}
		if name := strings.TrimSpace(line); name != "" {
			return name, nil
		}
		output("Sorry, must enter a value.")
	}
}
