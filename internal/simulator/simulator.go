package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/rpsls/internal/config"
	"github.com/lox/rpsls/internal/game"
	"github.com/lox/rpsls/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxRounds bounds a single simulated match. Two fixed strategies
// that tie forever would otherwise never finish.
const DefaultMaxRounds = 1000

// Config holds configuration for running simulations
type Config struct {
	Matches   int
	OpponentA string
	OpponentB string
	Seed      int64
	Workers   int
	MaxRounds int
	Settings  *config.Config
	Logger    *log.Logger
	Clock     quartz.Clock
}

// Report is the outcome of a simulation run
type Report struct {
	Stats   *statistics.Statistics
	Elapsed time.Duration
}

// Simulator plays computer opponents against each other
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(cfg Config) *Simulator {
	if cfg.Settings == nil {
		cfg.Settings = config.DefaultConfig()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	if cfg.MaxRounds == 0 {
		cfg.MaxRounds = DefaultMaxRounds
	}
	if cfg.Workers <= 0 {
		cfg.Workers = min(runtime.NumCPU(), 8)
	}
	cfg.Logger = cfg.Logger.WithPrefix("simulator")
	return &Simulator{config: cfg}
}

// Run plays every match and aggregates the results. Each match gets its
// own seed drawn up front from the master seed, so results do not depend
// on worker scheduling.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	if s.config.Matches <= 0 {
		return nil, fmt.Errorf("invalid match count: %d", s.config.Matches)
	}
	if err := s.config.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	a, ok := s.config.Settings.Opponent(s.config.OpponentA)
	if !ok {
		return nil, fmt.Errorf("unknown opponent %q", s.config.OpponentA)
	}
	b, ok := s.config.Settings.Opponent(s.config.OpponentB)
	if !ok {
		return nil, fmt.Errorf("unknown opponent %q", s.config.OpponentB)
	}

	master := rand.New(rand.NewSource(s.config.Seed))
	seeds := make([]int64, s.config.Matches)
	for i := range seeds {
		seeds[i] = master.Int63()
	}

	start := s.config.Clock.Now()
	s.config.Logger.Info("Starting simulation",
		"matches", s.config.Matches,
		"a", a.Name,
		"b", b.Name,
		"workers", s.config.Workers,
		"seed", s.config.Seed)

	results := make([]statistics.MatchResult, len(seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for i, seed := range seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := s.playMatch(a, b, seed)
			if err != nil {
				return fmt.Errorf("match %d (seed %d): %w", i+1, seed, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Add(r)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	elapsed := s.config.Clock.Since(start)
	s.config.Logger.Info("Simulation complete", "matches", stats.Matches, "elapsed", elapsed)
	return &Report{Stats: stats, Elapsed: elapsed}, nil
}

// playMatch runs one match on its own RNG, players and history.
func (s *Simulator) playMatch(a, b config.OpponentConfig, seed int64) (statistics.MatchResult, error) {
	rng := rand.New(rand.NewSource(seed))

	strategyA, err := a.NewStrategy(rng)
	if err != nil {
		return statistics.MatchResult{}, err
	}
	strategyB, err := b.NewStrategy(rng)
	if err != nil {
		return statistics.MatchResult{}, err
	}

	history := game.NewHistory()
	m := game.NewMatch(
		game.NewPlayer(a.Name, strategyA),
		game.NewPlayer(b.Name, strategyB),
		history,
		game.WithThreshold(s.config.Settings.Game.WinningScore),
		game.WithMaxRounds(s.config.MaxRounds),
		game.WithLogger(s.config.Logger),
		game.WithClock(s.config.Clock),
	)

	result, err := m.Play()
	if errors.Is(err, game.ErrRoundLimit) {
		return statistics.MatchResult{}, fmt.Errorf("%s vs %s cannot finish: %w", a.Name, b.Name, err)
	}
	if err != nil {
		return statistics.MatchResult{}, err
	}

	return statistics.MatchResult{
		Seed:   seed,
		Winner: result.WinnerSide,
		Rounds: result.Rounds,
		Ties:   result.Ties,
		MovesA: history.MovesFor(game.SideA),
		MovesB: history.MovesFor(game.SideB),
	}, nil
}
