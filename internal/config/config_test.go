package config

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/lox/rpsls/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
game {
  winning_score = 3
  seed          = 99
  log_level     = "debug"
}

opponent "R2D2" {
  strategy = "fixed"
  move     = "rock"
}

opponent "Hal" {
  strategy = "weighted"
  weights  = { scissors = 3, rock = 1 }
}

opponent "Chappie" {}
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleConfig), "test.hcl")
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Game.WinningScore)
	assert.Equal(t, int64(99), cfg.Game.Seed)
	assert.Equal(t, "debug", cfg.Game.LogLevel)
	assert.Equal(t, []string{"R2D2", "Hal", "Chappie"}, cfg.OpponentNames())

	chappie, ok := cfg.Opponent("Chappie")
	require.True(t, ok)
	assert.Equal(t, StrategyRandom, chappie.Strategy, "strategy defaults to random")

	hal, ok := cfg.Opponent("Hal")
	require.True(t, ok)
	assert.Equal(t, map[string]int{"scissors": 3, "rock": 1}, hal.Weights)

	_, ok = cfg.Opponent("Sonny")
	assert.False(t, ok)
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(""), "empty.hcl")
	require.NoError(t, err)

	assert.Equal(t, game.WinningScore, cfg.Game.WinningScore)
	assert.Equal(t, "warn", cfg.Game.LogLevel)
	assert.Equal(t, DefaultConfig().OpponentNames(), cfg.OpponentNames())
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"syntax", `game {`, "failed to parse HCL"},
		{"unknown attribute", `game { colour = "red" }`, "failed to decode HCL"},
		{"bad strategy", `opponent "X" { strategy = "psychic" }`, "invalid strategy psychic"},
		{"bad fixed move", `opponent "X" {
  strategy = "fixed"
  move     = "dynamite"
}`, "invalid move"},
		{"missing fixed move", `opponent "X" { strategy = "fixed" }`, "invalid move"},
		{"bad weight move", `opponent "X" {
  strategy = "weighted"
  weights  = { dynamite = 1 }
}`, "invalid move"},
		{"zero weights", `opponent "X" {
  strategy = "weighted"
  weights  = { rock = 0 }
}`, "invalid strategy weights"},
		{"overflowing weights", `opponent "X" {
  strategy = "weighted"
  weights  = { rock = 9223372036854775807, paper = 1 }
}`, "total weight overflows"},
		{"duplicate", `opponent "X" {}
opponent "X" {}`, "duplicate name"},
		{"negative score", `game { winning_score = -1 }`, "invalid winning score"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(test.src), "bad.hcl")
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.want)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing file uses defaults", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.hcl"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rpsls.hcl")
		require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Game.WinningScore)
	})
}

func TestSeedFromEnvironment(t *testing.T) {
	t.Setenv(EnvSeed, "1234")

	cfg, err := ParseConfig([]byte(sampleConfig), "test.hcl")
	require.NoError(t, err)
	assert.Equal(t, int64(1234), cfg.Game.Seed)

	cfg, err = LoadConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, int64(1234), cfg.Game.Seed)

	t.Setenv(EnvSeed, "not-a-number")
	_, err = ParseConfig([]byte(sampleConfig), "test.hcl")
	assert.ErrorContains(t, err, EnvSeed)
}

func TestDefaultConfigValidates(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestNewStrategy(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	cfg := DefaultConfig()

	r2d2, _ := cfg.Opponent("R2D2")
	s, err := r2d2.NewStrategy(rng)
	require.NoError(t, err)
	assert.Equal(t, game.FixedChoice{Move: game.Rock}, s)

	hal, _ := cfg.Opponent("Hal")
	s, err = hal.NewStrategy(rng)
	require.NoError(t, err)
	weighted, ok := s.(*game.WeightedRandom)
	require.True(t, ok)
	assert.Equal(t, []game.Weight{
		{Move: game.Rock, Weight: 1},
		{Move: game.Scissors, Weight: 3},
	}, weighted.Weights())

	sonny, _ := cfg.Opponent("Sonny")
	s, err = sonny.NewStrategy(rng)
	require.NoError(t, err)
	assert.IsType(t, &game.UniformRandom{}, s)
}
