package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected Move
	}{
		{"rock", Rock},
		{"r", Rock},
		{"ROCK", Rock},
		{"  paper\n", Paper},
		{"p", Paper},
		{"scissors", Scissors},
		{"sc", Scissors},
		{"lizard", Lizard},
		{"l", Lizard},
		{"spock", Spock},
		{"Sp", Spock},
	}

	for _, test := range tests {
		m, err := ParseMove(test.input)
		require.NoError(t, err, "input: %q", test.input)
		assert.Equal(t, test.expected, m, "input: %q", test.input)
	}

	for _, bad := range []string{"", "s", "rocks", "scissor", "banana", "1"} {
		_, err := ParseMove(bad)
		assert.ErrorIs(t, err, ErrInvalidMove, "input: %q", bad)
	}
}

func TestMoveString(t *testing.T) {
	t.Parallel()

	for _, m := range Moves() {
		parsed, err := ParseMove(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
	assert.Equal(t, "unknown", NoMove.String())
	assert.Equal(t, "unknown", Move(42).String())
}

func TestMoveValid(t *testing.T) {
	t.Parallel()

	assert.False(t, NoMove.Valid())
	assert.False(t, Move(6).Valid())
	for _, m := range Moves() {
		assert.True(t, m.Valid(), m.String())
	}
}

func TestMovesReturnsCopy(t *testing.T) {
	t.Parallel()

	moves := Moves()
	require.Equal(t, []Move{Rock, Paper, Scissors, Lizard, Spock}, moves)

	moves[0] = Spock
	assert.Equal(t, Rock, Moves()[0])
}

func TestMustParseMovePanics(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Lizard, MustParseMove("lizard"))
	assert.Panics(t, func() { MustParseMove("dynamite") })
}
