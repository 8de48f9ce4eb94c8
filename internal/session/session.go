// Package session runs a series of matches between a human and one computer
// opponent, asking to play again after each match.
package session

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/rpsls/internal/config"
	"github.com/lox/rpsls/internal/game"
)

// Options configures a session
type Options struct {
	PlayerName string
	Opponent   string // empty picks one from the roster at random
	Input      game.InputFunc
	Output     game.OutputFunc
	Config     *config.Config
	Rng        *rand.Rand
	Logger     *log.Logger
	Clock      quartz.Clock
}

// Session holds the players and history that persist across rematches.
type Session struct {
	human    *game.Player
	computer *game.Player
	history  *game.History
	input    game.InputFunc
	output   game.OutputFunc
	settings *config.GameSettings
	logger   *log.Logger
	clock    quartz.Clock
	results  []*game.MatchResult
}

// New creates a session and selects the computer opponent.
func New(opts Options) (*Session, error) {
	if opts.Input == nil {
		return nil, errors.New("input is required")
	}
	if opts.PlayerName == "" {
		return nil, errors.New("player name is required")
	}
	if opts.Rng == nil {
		return nil, errors.New("rng is required")
	}
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if opts.Output == nil {
		opts.Output = game.DiscardOutput
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}

	opponent, err := pickOpponent(opts.Config, opts.Opponent, opts.Rng)
	if err != nil {
		return nil, err
	}
	strategy, err := opponent.NewStrategy(opts.Rng)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger.WithPrefix("session")
	logger.Info("Opponent selected", "opponent", opponent.Name, "strategy", opponent.Strategy)

	return &Session{
		human:    game.NewPlayer(opts.PlayerName, game.NewInteractive(opts.Input, opts.Output)),
		computer: game.NewPlayer(opponent.Name, strategy),
		history:  game.NewHistory(),
		input:    opts.Input,
		output:   opts.Output,
		settings: opts.Config.Game,
		logger:   logger,
		clock:    opts.Clock,
	}, nil
}

func pickOpponent(cfg *config.Config, name string, rng *rand.Rand) (config.OpponentConfig, error) {
	if name != "" {
		o, ok := cfg.Opponent(name)
		if !ok {
			return config.OpponentConfig{}, fmt.Errorf("unknown opponent %q (available: %s)",
				name, strings.Join(cfg.OpponentNames(), ", "))
		}
		return o, nil
	}
	if len(cfg.Opponents) == 0 {
		return config.OpponentConfig{}, errors.New("no opponents configured")
	}
	return cfg.Opponents[rng.Intn(len(cfg.Opponents))], nil
}

// Opponent returns the computer player
func (s *Session) Opponent() *game.Player { return s.computer }

// History returns the moves of every match played so far
func (s *Session) History() *game.History { return s.history }

// Results returns the finished matches in order
func (s *Session) Results() []*game.MatchResult { return s.results }

// Run plays matches until the player declines a rematch or input ends,
// then prints the move history and a goodbye.
func (s *Session) Run() error {
	s.welcome()

	err := s.loop()
	if errors.Is(err, io.EOF) {
		s.logger.Info("Input closed, ending session")
		err = nil
	}

	for _, line := range s.history.Summary(s.human.Name(), s.computer.Name()) {
		s.output(line)
	}
	s.output("Thanks for playing Rock, Paper, Scissors, Lizard, Spock. Good bye!")
	return err
}

func (s *Session) loop() error {
	for {
		m := game.NewMatch(s.human, s.computer, s.history,
			game.WithThreshold(s.settings.WinningScore),
			game.WithOutput(s.output),
			game.WithLogger(s.logger),
			game.WithClock(s.clock),
		)

		result, err := m.Play()
		if err != nil {
			return err
		}
		s.results = append(s.results, result)

		again, err := s.PlayAgain()
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
		s.logger.Info("Rematch", "matches", len(s.results))
	}
}

func (s *Session) welcome() {
	s.output("Welcome to Rock, Paper, Scissors, Lizard, Spock!")
	s.output(fmt.Sprintf("You will be playing a tournament against %s today.", s.computer.Name()))
	s.output(fmt.Sprintf("The first to %d wins!", s.settings.WinningScore))
}

// PlayAgain asks until the answer is one of y, yes, n or no.
func (s *Session) PlayAgain() (bool, error) {
	for {
		s.output("Would you like to play again? (y/n)")
		line, err := s.input()
		if err != nil {
			return false, fmt.Errorf("reading answer: %w", err)
		}
		if again, ok := ParseAnswer(line); ok {
			return again, nil
		}
		s.output("Sorry, must be y or n.")
	}
}

// ParseAnswer maps a yes/no reply. ok is false for anything outside
// {y, yes, n, no}, compared case-insensitively.
func ParseAnswer(line string) (again bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	default:
		return false, false
	}
}
