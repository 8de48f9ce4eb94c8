package simulator

import (
	"context"
	"testing"

	"github.com/coder/quartz"
	"github.com/lox/rpsls/internal/config"
	"github.com/lox/rpsls/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Opponents = append(cfg.Opponents,
		config.OpponentConfig{Name: "Paperclip", Strategy: config.StrategyFixed, Move: "paper"},
	)
	return cfg
}

func TestSimulatorFixedMatchup(t *testing.T) {
	t.Parallel()

	sim := New(Config{
		Matches:   20,
		OpponentA: "Paperclip",
		OpponentB: "R2D2",
		Seed:      42,
		Settings:  testSettings(),
		Clock:     quartz.NewMock(t),
	})

	report, err := sim.Run(context.Background())
	require.NoError(t, err)

	stats := report.Stats
	assert.Equal(t, 20, stats.Matches)
	assert.Equal(t, 20, stats.WinsA)
	assert.Zero(t, stats.WinsB)
	assert.InDelta(t, 5.0, stats.Mean(), 1e-9)
	assert.Zero(t, stats.StdDev())
	assert.Zero(t, stats.TieRate())
	assert.InDelta(t, 1.0, stats.MoveFrequency(game.SideA, game.Paper), 1e-9)
	assert.InDelta(t, 1.0, stats.MoveFrequency(game.SideB, game.Rock), 1e-9)
	assert.Zero(t, report.Elapsed, "mock clock never advances")
}

func TestSimulatorIsDeterministic(t *testing.T) {
	t.Parallel()

	run := func(workers int) *Report {
		sim := New(Config{
			Matches:   200,
			OpponentA: "Hal",
			OpponentB: "Chappie",
			Seed:      7,
			Workers:   workers,
		})
		report, err := sim.Run(context.Background())
		require.NoError(t, err)
		return report
	}

	serial, parallel := run(1), run(8)
	assert.Equal(t, serial.Stats.WinsA, parallel.Stats.WinsA)
	assert.Equal(t, serial.Stats.Values, parallel.Stats.Values)
	assert.Equal(t, serial.Stats.MoveCounts, parallel.Stats.MoveCounts)

	stats := serial.Stats
	require.NoError(t, stats.Validate())
	assert.Zero(t, stats.MoveCounts[game.SideA][game.Paper], "Hal never plays paper")
	assert.Greater(t, stats.MoveFrequency(game.SideA, game.Scissors), stats.MoveFrequency(game.SideA, game.Rock))
}

func TestSimulatorEndlessTies(t *testing.T) {
	t.Parallel()

	sim := New(Config{
		Matches:   3,
		OpponentA: "R2D2",
		OpponentB: "R2D2",
		MaxRounds: 50,
	})

	_, err := sim.Run(context.Background())
	assert.ErrorIs(t, err, game.ErrRoundLimit)
}

func TestSimulatorErrors(t *testing.T) {
	t.Parallel()

	_, err := New(Config{Matches: 1, OpponentA: "Marvin", OpponentB: "Hal"}).Run(context.Background())
	assert.ErrorContains(t, err, `unknown opponent "Marvin"`)

	_, err = New(Config{Matches: 1, OpponentA: "Hal", OpponentB: "Marvin"}).Run(context.Background())
	assert.ErrorContains(t, err, `unknown opponent "Marvin"`)

	_, err = New(Config{OpponentA: "Hal", OpponentB: "Sonny"}).Run(context.Background())
	assert.ErrorContains(t, err, "invalid match count")

	settings := config.DefaultConfig()
	settings.Game = nil
	_, err = New(Config{Matches: 1, OpponentA: "Hal", OpponentB: "Sonny", Settings: settings}).Run(context.Background())
	assert.ErrorContains(t, err, "game settings are required")
}

func TestSimulatorCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Config{Matches: 10, OpponentA: "Hal", OpponentB: "Sonny"}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
