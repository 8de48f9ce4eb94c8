package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMove is returned when text does not name one of the five moves.
var ErrInvalidMove = errors.New("invalid move")

// Move is one of the five hand shapes. The zero value is NoMove and is
// never a legal choice.
type Move uint8

const (
	NoMove Move = iota
	Rock
	Paper
	Scissors
	Lizard
	Spock
)

// moveCount is the size of the fixed move set.
const moveCount = 5

var allMoves = [moveCount]Move{Rock, Paper, Scissors, Lizard, Spock}

// Moves returns the legal moves in their canonical order.
func Moves() []Move {
	moves := make([]Move, moveCount)
	copy(moves, allMoves[:])
	return moves
}

// Valid reports whether m is one of the five legal moves.
func (m Move) Valid() bool {
	return m >= Rock && m <= Spock
}

// String returns the lowercase move name
func (m Move) String() string {
	switch m {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	case Lizard:
		return "lizard"
	case Spock:
		return "spock"
	default:
		return "unknown"
	}
}

// Beats reports whether m dominates other under the default rules.
func (m Move) Beats(other Move) bool {
	return DefaultTable().Beats(m, other)
}

// ParseMove converts user or configuration text into a Move. Full names and
// the short prompt aliases ("r", "p", "sc", "l", "sp") are accepted in any
// case; surrounding whitespace is ignored.
func ParseMove(s string) (Move, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "r", "rock":
		return Rock, nil
	case "p", "paper":
		return Paper, nil
	case "sc", "scissors":
		return Scissors, nil
	case "l", "lizard":
		return Lizard, nil
	case "sp", "spock":
		return Spock, nil
	default:
		return NoMove, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
}

// MustParseMove is like ParseMove but panics on unknown names. Intended for
// static tables and tests.
func MustParseMove(s string) Move {
	m, err := ParseMove(s)
	if err != nil {
		panic(err)
	}
	return m
}
