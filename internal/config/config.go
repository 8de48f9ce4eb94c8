// Package config loads the rpsls HCL configuration: match settings and the
// roster of computer opponents.
package config

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strconv"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/rpsls/internal/game"
)

// EnvSeed overrides the configured random seed
const EnvSeed = "RPSLS_SEED"

// Strategy names accepted in opponent blocks
const (
	StrategyRandom   = "random"
	StrategyFixed    = "fixed"
	StrategyWeighted = "weighted"
)

// Config represents the complete configuration
type Config struct {
	Game      *GameSettings    `hcl:"game,block"`
	Opponents []OpponentConfig `hcl:"opponent,block"`
}

// GameSettings contains match-level configuration
type GameSettings struct {
	WinningScore int    `hcl:"winning_score,optional"`
	Seed         int64  `hcl:"seed,optional"`
	LogLevel     string `hcl:"log_level,optional"`
	LogFile      string `hcl:"log_file,optional"`
}

// OpponentConfig defines a computer opponent
type OpponentConfig struct {
	Name     string         `hcl:"name,label"`
	Strategy string         `hcl:"strategy,optional"`
	Move     string         `hcl:"move,optional"`
	Weights  map[string]int `hcl:"weights,optional"`
}

// DefaultConfig returns the built-in roster
func DefaultConfig() *Config {
	return &Config{
		Game: &GameSettings{
			WinningScore: game.WinningScore,
			LogLevel:     "warn",
		},
		Opponents: []OpponentConfig{
			{Name: "R2D2", Strategy: StrategyFixed, Move: "rock"},
			{Name: "Hal", Strategy: StrategyWeighted, Weights: map[string]int{"scissors": 3, "rock": 1}},
			{Name: "Chappie", Strategy: StrategyRandom},
			{Name: "Sonny", Strategy: StrategyRandom},
			{Name: "Number 5", Strategy: StrategyRandom},
		},
	}
}

// LoadConfig loads configuration from an HCL file. A missing file yields
// the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		cfg := DefaultConfig()
		return cfg, cfg.applyEnv()
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(src, filename)
}

// ParseConfig decodes HCL source, applies defaults and the environment
// override, and validates the result.
func ParseConfig(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Game == nil {
		c.Game = defaults.Game
	}
	if c.Game.WinningScore == 0 {
		c.Game.WinningScore = game.WinningScore
	}
	if c.Game.LogLevel == "" {
		c.Game.LogLevel = defaults.Game.LogLevel
	}
	if len(c.Opponents) == 0 {
		c.Opponents = defaults.Opponents
	}
	for i := range c.Opponents {
		if c.Opponents[i].Strategy == "" {
			c.Opponents[i].Strategy = StrategyRandom
		}
	}
}

func (c *Config) applyEnv() error {
	seedStr := os.Getenv(EnvSeed)
	if seedStr == "" {
		return nil
	}
	seed, err := strconv.ParseInt(seedStr, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid %s value: %w", EnvSeed, err)
	}
	c.Game.Seed = seed
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Game == nil {
		return errors.New("game settings are required")
	}
	if c.Game.WinningScore < 1 {
		return fmt.Errorf("invalid winning score: %d", c.Game.WinningScore)
	}
	if len(c.Opponents) == 0 {
		return errors.New("at least one opponent must be configured")
	}

	seen := make(map[string]bool, len(c.Opponents))
	for _, o := range c.Opponents {
		if seen[o.Name] {
			return fmt.Errorf("opponent %s: duplicate name", o.Name)
		}
		seen[o.Name] = true

		// building against a throwaway source checks moves and weights
		if _, err := o.NewStrategy(rand.New(rand.NewSource(0))); err != nil {
			return err
		}
	}
	return nil
}

// Opponent returns the opponent with the given name
func (c *Config) Opponent(name string) (OpponentConfig, bool) {
	for _, o := range c.Opponents {
		if o.Name == name {
			return o, true
		}
	}
	return OpponentConfig{}, false
}

// OpponentNames returns the configured names in file order
func (c *Config) OpponentNames() []string {
	names := make([]string, len(c.Opponents))
	for i, o := range c.Opponents {
		names[i] = o.Name
	}
	return names
}

// NewStrategy builds the opponent's move selection, drawing randomness
// from rng.
func (o OpponentConfig) NewStrategy(rng *rand.Rand) (game.Strategy, error) {
	switch o.Strategy {
	case StrategyRandom:
		return game.NewUniformRandom(rng), nil

	case StrategyFixed:
		m, err := game.ParseMove(o.Move)
		if err != nil {
			return nil, fmt.Errorf("opponent %s: %w", o.Name, err)
		}
		return game.FixedChoice{Move: m}, nil

	case StrategyWeighted:
		// sorted so a seed replays identically regardless of map order
		names := make([]string, 0, len(o.Weights))
		for name := range o.Weights {
			names = append(names, name)
		}
		sort.Strings(names)

		weights := make([]game.Weight, 0, len(names))
		for _, name := range names {
			m, err := game.ParseMove(name)
			if err != nil {
				return nil, fmt.Errorf("opponent %s: %w", o.Name, err)
			}
			weights = append(weights, game.Weight{Move: m, Weight: o.Weights[name]})
		}
		s, err := game.NewWeightedRandom(rng, weights)
		if err != nil {
			return nil, fmt.Errorf("opponent %s: %w", o.Name, err)
		}
		return s, nil

	default:
		return nil, fmt.Errorf("opponent %s: invalid strategy %s", o.Name, o.Strategy)
	}
}
