package game

import (
	"errors"
	"fmt"
	"sync"
)

// ErrInconsistentTable is returned when a rule set is not a balanced
// tournament over the move set.
var ErrInconsistentTable = errors.New("inconsistent dominance table")

// Outcome is the result of comparing two moves from the first player's
// point of view.
type Outcome int

const (
	Tie Outcome = iota
	AWins
	BWins
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case Tie:
		return "tie"
	case AWins:
		return "a-wins"
	case BWins:
		return "b-wins"
	default:
		return "unknown"
	}
}

// Rule states that Winner defeats Loser, described by Verb.
type Rule struct {
	Winner Move
	Loser  Move
	Verb   string
}

// StandardRules are the ten pairings of rock, paper, scissors, lizard, spock.
var StandardRules = []Rule{
	{Scissors, Paper, "cuts"},
	{Paper, Rock, "covers"},
	{Rock, Lizard, "crushes"},
	{Lizard, Spock, "poisons"},
	{Spock, Scissors, "smashes"},
	{Scissors, Lizard, "decapitates"},
	{Lizard, Paper, "eats"},
	{Paper, Spock, "disproves"},
	{Spock, Rock, "vaporizes"},
	{Rock, Scissors, "crushes"},
}

// DominanceTable answers "does a beat b" from static rule data. It is
// read-only after construction and safe for concurrent use.
type DominanceTable struct {
	beats [moveCount + 1][moveCount + 1]bool
	verbs [moveCount + 1][moveCount + 1]string
}

// NewDominanceTable builds a table from rules and verifies that the relation
// is a tournament (irreflexive, and exactly one direction holds for every
// distinct pair) in which every move beats and loses to (N-1)/2 others.
func NewDominanceTable(rules []Rule) (*DominanceTable, error) {
	t := &DominanceTable{}
	for _, r := range rules {
		if !r.Winner.Valid() || !r.Loser.Valid() {
			return nil, fmt.Errorf("%w: rule %s over %s uses an unknown move", ErrInconsistentTable, r.Winner, r.Loser)
		}
		if t.beats[r.Winner][r.Loser] {
			return nil, fmt.Errorf("%w: duplicate rule %s over %s", ErrInconsistentTable, r.Winner, r.Loser)
		}
		t.beats[r.Winner][r.Loser] = true
		t.verbs[r.Winner][r.Loser] = r.Verb
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *DominanceTable) validate() error {
	half := (moveCount - 1) / 2
	for _, a := range allMoves {
		if t.beats[a][a] {
			return fmt.Errorf("%w: %s beats itself", ErrInconsistentTable, a)
		}
		wins, losses := 0, 0
		for _, b := range allMoves {
			if a == b {
				continue
			}
			ab, ba := t.beats[a][b], t.beats[b][a]
			if ab == ba {
				return fmt.Errorf("%w: %s and %s have no single winner", ErrInconsistentTable, a, b)
			}
			if ab {
				wins++
			} else {
				losses++
			}
		}
		if wins != half || losses != half {
			return fmt.Errorf("%w: %s beats %d and loses to %d, want %d each", ErrInconsistentTable, a, wins, losses, half)
		}
	}
	return nil
}

var (
	defaultTable     *DominanceTable
	defaultTableOnce sync.Once
)

// DefaultTable returns the table built from StandardRules. A broken built-in
// rule set is a configuration error and panics.
func DefaultTable() *DominanceTable {
	defaultTableOnce.Do(func() {
		t, err := NewDominanceTable(StandardRules)
		if err != nil {
			panic(fmt.Sprintf("standard rules: %v", err))
		}
		defaultTable = t
	})
	return defaultTable
}

// Beats reports whether a dominates b. Invalid moves never beat anything.
func (t *DominanceTable) Beats(a, b Move) bool {
	if !a.Valid() || !b.Valid() {
		return false
	}
	return t.beats[a][b]
}

// Compare resolves a round between a and b.
func (t *DominanceTable) Compare(a, b Move) Outcome {
	switch {
	case t.Beats(a, b):
		return AWins
	case t.Beats(b, a):
		return BWins
	default:
		return Tie
	}
}

// Defeats lists the moves m beats, in canonical order.
func (t *DominanceTable) Defeats(m Move) []Move {
	var out []Move
	for _, other := range allMoves {
		if t.Beats(m, other) {
			out = append(out, other)
		}
	}
	return out
}

// DefeatedBy lists the moves that beat m, in canonical order.
func (t *DominanceTable) DefeatedBy(m Move) []Move {
	var out []Move
	for _, other := range allMoves {
		if t.Beats(other, m) {
			out = append(out, other)
		}
	}
	return out
}

// Describe renders the rule between a and b as "rock crushes scissors",
// with the winner first. Ties return an empty string.
func (t *DominanceTable) Describe(a, b Move) string {
	switch t.Compare(a, b) {
	case AWins:
		return fmt.Sprintf("%s %s %s", a, t.verbs[a][b], b)
	case BWins:
		return fmt.Sprintf("%s %s %s", b, t.verbs[b][a], a)
	default:
		return ""
	}
}

// Rules returns every pairing in canonical winner order.
func (t *DominanceTable) Rules() []Rule {
	var out []Rule
	for _, a := range allMoves {
		for _, b := range allMoves {
			if t.beats[a][b] {
				out = append(out, Rule{Winner: a, Loser: b, Verb: t.verbs[a][b]})
			}
		}
	}
	return out
}
