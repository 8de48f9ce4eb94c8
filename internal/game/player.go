package game

// Player binds a display name to a strategy and remembers the move chosen
// for the current round only.
type Player struct {
	name     string
	strategy Strategy
	current  Move
}

// NewPlayer creates a player. Players outlive matches; the same player can
// be used for any number of rematches.
func NewPlayer(name string, strategy Strategy) *Player {
	if strategy == nil {
		panic("strategy is required for player")
	}
	return &Player{name: name, strategy: strategy}
}

// Name returns the display name
func (p *Player) Name() string { return p.name }

// Strategy returns the bound strategy
func (p *Player) Strategy() Strategy { return p.strategy }

// Choose asks the strategy for this round's move and records it, replacing
// the previous round's move. An illegal move is returned as-is for the caller
// to reject but is never recorded.
func (p *Player) Choose(round int) (Move, error) {
	m, err := p.strategy.ChooseMove(StrategyContext{Round: round, Player: p.name})
	if err != nil {
		p.current = NoMove
		return NoMove, err
	}
	p.current = NoMove
	if m.Valid() {
		p.current = m
	}
	return m, nil
}

// CurrentMove returns the move from the latest Choose call, if any.
func (p *Player) CurrentMove() (Move, bool) {
	return p.current, p.current != NoMove
}
