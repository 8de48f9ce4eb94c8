package game

import "fmt"

// WinningScore is the number of round wins that ends a match.
const WinningScore = 5

// Side identifies one of the two seats in a match.
type Side int

const (
	SideA Side = iota
	SideB
)

// String returns the string representation of a side
func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	default:
		return "unknown"
	}
}

// Score tracks round wins for one match. Counts only ever increase.
type Score struct {
	threshold int
	names     [2]string
	counts    [2]int
}

// NewScore creates a zeroed score. Names are used only for display.
func NewScore(threshold int, nameA, nameB string) *Score {
	if threshold < 1 {
		panic("threshold must be positive")
	}
	return &Score{threshold: threshold, names: [2]string{nameA, nameB}}
}

// Update credits the round winner. Ties change nothing.
func (s *Score) Update(o Outcome) {
	switch o {
	case AWins:
		s.counts[SideA]++
	case BWins:
		s.counts[SideB]++
	}
}

// HasWinner reports whether either side has reached the threshold.
func (s *Score) HasWinner() bool {
	return s.counts[SideA] >= s.threshold || s.counts[SideB] >= s.threshold
}

// Winner returns the side with the strictly higher count. Equal counts
// report SideA. Only meaningful once HasWinner is true.
func (s *Score) Winner() Side {
	if s.counts[SideB] > s.counts[SideA] {
		return SideB
	}
	return SideA
}

// Count returns the wins for side.
func (s *Score) Count(side Side) int { return s.counts[side] }

// Threshold returns the wins needed to take the match.
func (s *Score) Threshold() int { return s.threshold }

// String renders the running score.
func (s *Score) String() string {
	return fmt.Sprintf("Current score %s: %d %s: %d",
		s.names[SideA], s.counts[SideA], s.names[SideB], s.counts[SideB])
}

// WinnerMessage renders the final result with the winner first.
func (s *Score) WinnerMessage() string {
	w, l := s.Winner(), SideB
	if w == SideB {
		l = SideA
	}
	return fmt.Sprintf("Congrats to %s, who wins by a score of %d to %d",
		s.names[w], s.counts[w], s.counts[l])
}
