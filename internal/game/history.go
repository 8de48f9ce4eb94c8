package game

import (
	"fmt"
	"strings"
)

// Round is one completed exchange of moves.
type Round struct {
	Number int
	A      Move
	B      Move
}

// History is an append-only log of rounds. It spans every match in a
// session, so round numbers keep counting across rematches.
type History struct {
	rounds []Round
}

// NewHistory creates an empty history
func NewHistory() *History {
	return &History{}
}

// Append records a completed round and returns it.
func (h *History) Append(a, b Move) Round {
	r := Round{Number: len(h.rounds) + 1, A: a, B: b}
	h.rounds = append(h.rounds, r)
	return r
}

// Len returns the number of rounds recorded
func (h *History) Len() int { return len(h.rounds) }

// Rounds returns a copy of the log in play order.
func (h *History) Rounds() []Round {
	out := make([]Round, len(h.rounds))
	copy(out, h.rounds)
	return out
}

// MovesFor returns one side's moves in play order.
func (h *History) MovesFor(side Side) []Move {
	out := make([]Move, len(h.rounds))
	for i, r := range h.rounds {
		if side == SideA {
			out[i] = r.A
		} else {
			out[i] = r.B
		}
	}
	return out
}

// Summary renders each player's moves as display lines.
func (h *History) Summary(nameA, nameB string) []string {
	return []string{
		fmt.Sprintf("%s chose the following moves:", nameA),
		joinMoves(h.MovesFor(SideA)),
		fmt.Sprintf("%s chose the following moves:", nameB),
		joinMoves(h.MovesFor(SideB)),
	}
}

func joinMoves(moves []Move) string {
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	return strings.Join(names, ", ")
}
