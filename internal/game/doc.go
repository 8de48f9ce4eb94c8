// Package game implements the rock, paper, scissors, lizard, spock match
// engine.
//
// A Match drives rounds between two Players. Each Player owns a Strategy that
// picks a Move without seeing the opponent's choice or earlier rounds. The
// two moves are compared through a DominanceTable, the round is appended to
// a History and the Score is updated until one side reaches the threshold.
//
// # Basic Usage
//
//	rng := rand.New(rand.NewSource(42))
//	alice := game.NewPlayer("Alice", game.NewUniformRandom(rng))
//	r2d2 := game.NewPlayer("R2D2", game.FixedChoice{Move: game.Rock})
//	history := game.NewHistory()
//
//	m := game.NewMatch(alice, r2d2, history, game.WithOutput(func(line string) {
//	    fmt.Println(line)
//	}))
//	result, err := m.Play()
//
// # Rules as data
//
// Dominance is a table, not code. NewDominanceTable checks that the rules
// form a balanced tournament: no move beats itself, every distinct pair has
// exactly one winner and each move beats and loses to two others.
// DefaultTable panics if the built-in rules ever break that property.
//
// # Deterministic Testing
//
// Random strategies take an explicit *rand.Rand, so a fixed seed replays the
// same match:
//
//	rng := rand.New(rand.NewSource(42))
//	s, err := game.NewWeightedRandom(rng, []game.Weight{
//	    {Move: game.Scissors, Weight: 3},
//	    {Move: game.Rock, Weight: 1},
//	})
package game
