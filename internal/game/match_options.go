package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// MatchOption configures a Match during creation.
type MatchOption func(*matchConfig)

type matchConfig struct {
	threshold int
	table     *DominanceTable
	output    OutputFunc
	logger    *log.Logger
	maxRounds int // 0 means unbounded
	clock     quartz.Clock
	id        string
}

func defaultMatchConfig() *matchConfig {
	return &matchConfig{
		threshold: WinningScore,
		table:     DefaultTable(),
		output:    DiscardOutput,
		logger:    log.New(io.Discard),
		clock:     quartz.NewReal(),
	}
}

// WithThreshold sets the round wins needed to take the match.
func WithThreshold(n int) MatchOption {
	return func(c *matchConfig) { c.threshold = n }
}

// WithTable replaces the default dominance rules.
func WithTable(t *DominanceTable) MatchOption {
	return func(c *matchConfig) { c.table = t }
}

// WithOutput sets where round and result lines are written.
func WithOutput(out OutputFunc) MatchOption {
	return func(c *matchConfig) { c.output = out }
}

// WithLogger sets the match logger.
func WithLogger(logger *log.Logger) MatchOption {
	return func(c *matchConfig) { c.logger = logger }
}

// WithMaxRounds stops Play with ErrRoundLimit after n rounds without a
// winner.
func WithMaxRounds(n int) MatchOption {
	return func(c *matchConfig) { c.maxRounds = n }
}

// WithClock sets the clock used to timestamp rounds.
func WithClock(clock quartz.Clock) MatchOption {
	return func(c *matchConfig) { c.clock = clock }
}

// WithMatchID overrides the generated match identifier.
func WithMatchID(id string) MatchOption {
	return func(c *matchConfig) { c.id = id }
}
