package game

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

// ScriptedInput returns an InputFunc that yields lines in order and io.EOF
// once they run out.
func ScriptedInput(lines ...string) InputFunc {
	i := 0
	return func() (string, error) {
		if i >= len(lines) {
			return "", io.EOF
		}
		line := lines[i]
		i++
		return line, nil
	}
}

// OutputRecorder collects every line written through Output.
type OutputRecorder struct {
	Lines []string
}

// Output appends line to the recorder.
func (r *OutputRecorder) Output(line string) {
	r.Lines = append(r.Lines, line)
}

// TestMatchOption configures test match creation
type TestMatchOption func(*testMatchBuilder)

type testMatchBuilder struct {
	seed      int64
	nameA     string
	nameB     string
	strategyA Strategy
	strategyB Strategy
	history   *History
	opts      []MatchOption
}

func WithTestSeed(seed int64) TestMatchOption {
	return func(b *testMatchBuilder) { b.seed = seed }
}

func WithPlayerA(name string, s Strategy) TestMatchOption {
	return func(b *testMatchBuilder) { b.nameA, b.strategyA = name, s }
}

func WithPlayerB(name string, s Strategy) TestMatchOption {
	return func(b *testMatchBuilder) { b.nameB, b.strategyB = name, s }
}

func WithTestHistory(h *History) TestMatchOption {
	return func(b *testMatchBuilder) { b.history = h }
}

func WithMatchOptions(opts ...MatchOption) TestMatchOption {
	return func(b *testMatchBuilder) { b.opts = append(b.opts, opts...) }
}

// NewTestMatch creates a match between two uniform random players seeded
// deterministically, unless overridden by options.
func NewTestMatch(opts ...TestMatchOption) *Match {
	b := &testMatchBuilder{
		seed:  42,
		nameA: "Alice",
		nameB: "Bob",
	}
	for _, opt := range opts {
		opt(b)
	}

	rng := rand.New(rand.NewSource(b.seed))
	if b.strategyA == nil {
		b.strategyA = NewUniformRandom(rng)
	}
	if b.strategyB == nil {
		b.strategyB = NewUniformRandom(rng)
	}
	if b.history == nil {
		b.history = NewHistory()
	}

	matchOpts := append([]MatchOption{WithLogger(log.New(io.Discard))}, b.opts...)
	return NewMatch(NewPlayer(b.nameA, b.strategyA), NewPlayer(b.nameB, b.strategyB), b.history, matchOpts...)
}
