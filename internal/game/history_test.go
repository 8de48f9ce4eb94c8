package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryAppend(t *testing.T) {
	t.Parallel()

	h := NewHistory()
	assert.Zero(t, h.Len())

	r1 := h.Append(Rock, Scissors)
	r2 := h.Append(Spock, Spock)

	assert.Equal(t, Round{Number: 1, A: Rock, B: Scissors}, r1)
	assert.Equal(t, Round{Number: 2, A: Spock, B: Spock}, r2)
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, []Move{Rock, Spock}, h.MovesFor(SideA))
	assert.Equal(t, []Move{Scissors, Spock}, h.MovesFor(SideB))
}

func TestHistoryRoundsIsACopy(t *testing.T) {
	t.Parallel()

	h := NewHistory()
	h.Append(Paper, Rock)

	rounds := h.Rounds()
	require.Len(t, rounds, 1)
	rounds[0].A = Lizard
	_ = append(rounds, Round{Number: 99})

	assert.Equal(t, Paper, h.Rounds()[0].A)
	assert.Equal(t, 1, h.Len())
}

func TestHistorySummary(t *testing.T) {
	t.Parallel()

	h := NewHistory()
	h.Append(Rock, Scissors)
	h.Append(Paper, Rock)

	assert.Equal(t, []string{
		"Alice chose the following moves:",
		"rock, paper",
		"Hal chose the following moves:",
		"scissors, rock",
	}, h.Summary("Alice", "Hal"))
}
