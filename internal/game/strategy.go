package game

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// ErrInvalidWeights is returned when a weighted strategy has no positive
// weight, a negative weight, or an unknown move.
var ErrInvalidWeights = errors.New("invalid strategy weights")

// StrategyContext is what a strategy may see when choosing. It deliberately
// carries nothing about the opponent or earlier rounds.
type StrategyContext struct {
	Round  int
	Player string
}

// Strategy selects a move for a player each round.
type Strategy interface {
	ChooseMove(ctx StrategyContext) (Move, error)
}

// InputFunc supplies one raw line of text per call.
type InputFunc func() (string, error)

// OutputFunc presents one line of text to the user.
type OutputFunc func(line string)

// DiscardOutput drops every line.
func DiscardOutput(string) {}

// Interactive asks an external collaborator for the move and re-prompts
// until the answer names a legal move. It never picks a default.
type Interactive struct {
	Input  InputFunc
	Output OutputFunc
}

// NewInteractive creates an interactive strategy. A nil output discards
// prompts.
func NewInteractive(input InputFunc, output OutputFunc) *Interactive {
	if input == nil {
		panic("input is required for interactive strategy")
	}
	if output == nil {
		output = DiscardOutput
	}
	return &Interactive{Input: input, Output: output}
}

// ChooseMove implements Strategy
func (s *Interactive) ChooseMove(StrategyContext) (Move, error) {
	for {
		s.Output("Please choose [r]ock, [p]aper, [sc]issors, [l]izard, or [sp]ock:")
		line, err := s.Input()
		if err != nil {
			return NoMove, fmt.Errorf("reading move: %w", err)
		}
		m, err := ParseMove(line)
		if err == nil {
			return m, nil
		}
		s.Output("Sorry, invalid choice.")
	}
}

// UniformRandom picks each of the five moves with equal probability.
type UniformRandom struct {
	rng *rand.Rand
}

// NewUniformRandom creates a uniform strategy drawing from rng.
func NewUniformRandom(rng *rand.Rand) *UniformRandom {
	if rng == nil {
		panic("rng is required for random strategy")
	}
	return &UniformRandom{rng: rng}
}

// ChooseMove implements Strategy
func (s *UniformRandom) ChooseMove(StrategyContext) (Move, error) {
	return allMoves[s.rng.Intn(moveCount)], nil
}

// FixedChoice always plays the same move.
type FixedChoice struct {
	Move Move
}

// ChooseMove implements Strategy
func (s FixedChoice) ChooseMove(StrategyContext) (Move, error) {
	return s.Move, nil
}

// Weight assigns a relative frequency to a move.
type Weight struct {
	Move   Move
	Weight int
}

// WeightedRandom samples from a fixed discrete distribution. The weights
// never change during play.
type WeightedRandom struct {
	rng     *rand.Rand
	weights []Weight
	total   int
}

// NewWeightedRandom validates weights and builds the strategy. Zero weights
// are allowed as long as at least one weight is positive.
func NewWeightedRandom(rng *rand.Rand, weights []Weight) (*WeightedRandom, error) {
	if rng == nil {
		panic("rng is required for random strategy")
	}
	total := 0
	kept := make([]Weight, 0, len(weights))
	for _, w := range weights {
		if !w.Move.Valid() {
			return nil, fmt.Errorf("%w: unknown move %d", ErrInvalidWeights, uint8(w.Move))
		}
		if w.Weight < 0 {
			return nil, fmt.Errorf("%w: negative weight %d for %s", ErrInvalidWeights, w.Weight, w.Move)
		}
		if w.Weight == 0 {
			continue
		}
		if w.Weight > math.MaxInt-total {
			return nil, fmt.Errorf("%w: total weight overflows", ErrInvalidWeights)
		}
		total += w.Weight
		kept = append(kept, w)
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: no positive weight", ErrInvalidWeights)
	}
	return &WeightedRandom{rng: rng, weights: kept, total: total}, nil
}

// ChooseMove implements Strategy
func (s *WeightedRandom) ChooseMove(StrategyContext) (Move, error) {
	n := s.rng.Intn(s.total)
	for _, w := range s.weights {
		if n < w.Weight {
			return w.Move, nil
		}
		n -= w.Weight
	}
	// unreachable: n < total
	return s.weights[len(s.weights)-1].Move, nil
}

// Weights returns a copy of the positive weights.
func (s *WeightedRandom) Weights() []Weight {
	out := make([]Weight, len(s.weights))
	copy(out, s.weights)
	return out
}
