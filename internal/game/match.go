package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
)

var (
	// ErrOutOfDomainMove means a strategy produced a value outside the move
	// set. It is a defect in the strategy and aborts the match.
	ErrOutOfDomainMove = errors.New("strategy returned out-of-domain move")

	// ErrRoundLimit is returned by Play when WithMaxRounds is exhausted.
	ErrRoundLimit = errors.New("round limit reached without a winner")

	// ErrMatchOver is returned when playing a round after the match ended.
	ErrMatchOver = errors.New("match is over")
)

// MatchState is the position of a match in its round loop.
type MatchState int

const (
	AwaitingMoves MatchState = iota
	Resolved
	MatchContinues
	MatchOver
)

// String returns the string representation of a match state
func (s MatchState) String() string {
	switch s {
	case AwaitingMoves:
		return "awaiting-moves"
	case Resolved:
		return "resolved"
	case MatchContinues:
		return "match-continues"
	case MatchOver:
		return "match-over"
	default:
		return "unknown"
	}
}

// RoundResult describes one resolved round.
type RoundResult struct {
	Round    Round
	Outcome  Outcome
	Reason   string // "rock crushes scissors"; empty on ties
	PlayedAt time.Time
}

// MatchResult summarises a finished match.
type MatchResult struct {
	ID         string
	WinnerSide Side
	Winner     *Player
	Loser      *Player
	ScoreA     int
	ScoreB     int
	Rounds     int
	Ties       int
	Duration   time.Duration
}

// Match runs rounds between two players until one reaches the threshold.
// A Match is single-use; the Players and History it references outlive it.
type Match struct {
	id      string
	a, b    *Player
	score   *Score
	history *History
	table   *DominanceTable
	output  OutputFunc
	logger  *log.Logger
	clock   quartz.Clock

	maxRounds int
	rounds    int
	ties      int
	state     MatchState
	started   time.Time
}

// NewMatch prepares a match with a fresh score. Rounds are appended to
// history, which may already hold rounds from earlier matches.
func NewMatch(a, b *Player, history *History, opts ...MatchOption) *Match {
	if a == nil || b == nil {
		panic("two players are required for a match")
	}
	if history == nil {
		panic("history is required for a match")
	}

	cfg := defaultMatchConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.id == "" {
		cfg.id = uuid.NewString()
	}

	return &Match{
		id:        cfg.id,
		a:         a,
		b:         b,
		score:     NewScore(cfg.threshold, a.Name(), b.Name()),
		history:   history,
		table:     cfg.table,
		output:    cfg.output,
		logger:    cfg.logger.WithPrefix("match").With("match", cfg.id),
		clock:     cfg.clock,
		maxRounds: cfg.maxRounds,
		state:     AwaitingMoves,
	}
}

// ID returns the match identifier
func (m *Match) ID() string { return m.id }

// Score returns the live score. Callers must treat it as read-only.
func (m *Match) Score() *Score { return m.score }

// State returns the current loop state
func (m *Match) State() MatchState { return m.state }

// PlayRound collects both moves, resolves them, records the round and
// updates the score. Player A is always asked first; neither strategy can
// see the other's choice.
func (m *Match) PlayRound() (RoundResult, error) {
	if m.state == MatchOver {
		return RoundResult{}, ErrMatchOver
	}
	if m.started.IsZero() {
		m.started = m.clock.Now()
	}
	m.state = AwaitingMoves
	number := m.rounds + 1

	moveA, err := m.choose(m.a, number)
	if err != nil {
		return RoundResult{}, err
	}
	moveB, err := m.choose(m.b, number)
	if err != nil {
		return RoundResult{}, err
	}

	outcome := m.table.Compare(moveA, moveB)
	record := m.history.Append(moveA, moveB)
	m.score.Update(outcome)
	m.rounds++
	if outcome == Tie {
		m.ties++
	}
	m.state = Resolved

	result := RoundResult{
		Round:    record,
		Outcome:  outcome,
		Reason:   m.table.Describe(moveA, moveB),
		PlayedAt: m.clock.Now(),
	}

	m.logger.Debug("Round resolved",
		"round", number,
		"a", moveA,
		"b", moveB,
		"outcome", outcome)

	m.announce(result)

	if m.score.HasWinner() {
		m.state = MatchOver
	} else {
		m.state = MatchContinues
	}
	return result, nil
}

func (m *Match) choose(p *Player, round int) (Move, error) {
	move, err := p.Choose(round)
	if err != nil {
		return NoMove, fmt.Errorf("player %s: %w", p.Name(), err)
	}
	if !move.Valid() {
		m.state = MatchOver
		m.logger.Error("Strategy returned invalid move", "player", p.Name(), "move", uint8(move))
		return NoMove, fmt.Errorf("player %s: %w: %d", p.Name(), ErrOutOfDomainMove, uint8(move))
	}
	return move, nil
}

func (m *Match) announce(r RoundResult) {
	m.output(fmt.Sprintf("%s chose %s", m.a.Name(), r.Round.A))
	m.output(fmt.Sprintf("%s chose %s", m.b.Name(), r.Round.B))
	switch r.Outcome {
	case AWins:
		m.output(r.Reason)
		m.output(fmt.Sprintf("%s won!", m.a.Name()))
	case BWins:
		m.output(r.Reason)
		m.output(fmt.Sprintf("%s won!", m.b.Name()))
	default:
		m.output("It's a tie!")
	}
	m.output(m.score.String())
}

// Play runs rounds until the match has a winner, then announces it.
func (m *Match) Play() (*MatchResult, error) {
	m.logger.Info("Match started", "a", m.a.Name(), "b", m.b.Name(), "threshold", m.score.Threshold())

	for m.state != MatchOver {
		if m.maxRounds > 0 && m.rounds >= m.maxRounds {
			return nil, fmt.Errorf("%w: %d rounds", ErrRoundLimit, m.rounds)
		}
		if _, err := m.PlayRound(); err != nil {
			m.logger.Error("Match aborted", "error", err, "round", m.rounds+1)
			return nil, err
		}
	}

	result := m.Result()
	m.output(m.score.WinnerMessage())
	m.logger.Info("Match complete",
		"winner", result.Winner.Name(),
		"score", fmt.Sprintf("%d-%d", result.ScoreA, result.ScoreB),
		"rounds", result.Rounds)
	return result, nil
}

// Result returns the summary of a finished match, or nil while it is still
// in progress.
func (m *Match) Result() *MatchResult {
	if m.state != MatchOver || !m.score.HasWinner() {
		return nil
	}
	side := m.score.Winner()
	winner, loser := m.a, m.b
	if side == SideB {
		winner, loser = m.b, m.a
	}
	return &MatchResult{
		ID:         m.id,
		WinnerSide: side,
		Winner:     winner,
		Loser:      loser,
		ScoreA:     m.score.Count(SideA),
		ScoreB:     m.score.Count(SideB),
		Rounds:     m.rounds,
		Ties:       m.ties,
		Duration:   m.clock.Since(m.started),
	}
}
