package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/rpsls/internal/game"
)

// MatchResult represents the outcome of a single simulated match
type MatchResult struct {
	Seed   int64     // RNG seed for this match (for replay)
	Winner game.Side // Side that reached the threshold
	Rounds int       // Rounds played, ties included
	Ties   int       // Rounds that ended level
	MovesA []game.Move
	MovesB []game.Move
}

// Statistics tracks aggregate results over many matches
type Statistics struct {
	Matches int
	WinsA   int
	WinsB   int

	SumRounds  float64
	SumRounds2 float64   // Sum of squares for variance calculation
	Values     []float64 // Rounds per match, for median/percentile

	TotalRounds int
	TieRounds   int

	// Move frequencies per side, indexed by game.Move
	MoveCounts [2][game.Spock + 1]int
}

// Add incorporates a new match result into the statistics
func (s *Statistics) Add(r MatchResult) {
	s.Matches++
	switch r.Winner {
	case game.SideA:
		s.WinsA++
	case game.SideB:
		s.WinsB++
	}

	rounds := float64(r.Rounds)
	s.SumRounds += rounds
	s.SumRounds2 += rounds * rounds
	s.Values = append(s.Values, rounds)

	s.TotalRounds += r.Rounds
	s.TieRounds += r.Ties

	for _, m := range r.MovesA {
		if m.Valid() {
			s.MoveCounts[game.SideA][m]++
		}
	}
	for _, m := range r.MovesB {
		if m.Valid() {
			s.MoveCounts[game.SideB][m]++
		}
	}
}

// WinRate returns the share of matches won by side
func (s *Statistics) WinRate(side game.Side) float64 {
	if s.Matches == 0 {
		return 0
	}
	if side == game.SideA {
		return float64(s.WinsA) / float64(s.Matches)
	}
	return float64(s.WinsB) / float64(s.Matches)
}

// TieRate returns the share of all rounds that were ties
func (s *Statistics) TieRate() float64 {
	if s.TotalRounds == 0 {
		return 0
	}
	return float64(s.TieRounds) / float64(s.TotalRounds)
}

// MoveFrequency returns how often side played m, as a share of its rounds
func (s *Statistics) MoveFrequency(side game.Side, m game.Move) float64 {
	if s.TotalRounds == 0 || !m.Valid() {
		return 0
	}
	return float64(s.MoveCounts[side][m]) / float64(s.TotalRounds)
}

// Mean returns the mean number of rounds per match
func (s *Statistics) Mean() float64 {
	if s.Matches == 0 {
		return 0
	}
	return s.SumRounds / float64(s.Matches)
}

// Variance returns the sample variance of rounds per match
func (s *Statistics) Variance() float64 {
	if s.Matches < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumRounds2 - float64(s.Matches)*mean*mean) / float64(s.Matches-1)
}

// StdDev returns the sample standard deviation of rounds per match
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Matches == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Matches))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median rounds per match
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns rounds per match at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate checks that the counters agree with each other
func (s *Statistics) Validate() error {
	if s.Matches <= 0 {
		return fmt.Errorf("invalid match count: %d", s.Matches)
	}
	if s.WinsA+s.WinsB != s.Matches {
		return fmt.Errorf("wins (%d+%d) do not match total matches (%d)", s.WinsA, s.WinsB, s.Matches)
	}
	if len(s.Values) != s.Matches {
		return fmt.Errorf("values array length (%d) does not match match count (%d)", len(s.Values), s.Matches)
	}
	if s.TieRounds > s.TotalRounds {
		return fmt.Errorf("tie rounds (%d) exceed total rounds (%d)", s.TieRounds, s.TotalRounds)
	}
	for side := game.SideA; side <= game.SideB; side++ {
		played := 0
		for _, n := range s.MoveCounts[side] {
			played += n
		}
		if played != s.TotalRounds {
			return fmt.Errorf("side %s played %d moves over %d rounds", side, played, s.TotalRounds)
		}
	}
	return nil
}
