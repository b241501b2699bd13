package domain

// Session is a view onto a shared GameState through a Transform. Sessions
// are cheap and may alias the same state; only one move per turn succeeds
// no matter which session submits it.
type Session struct {
	state *GameState
	t     Transform
}

// At returns the tile at view index i.
func (s *Session) At(i int) (Tile, error) {
	return s.state.board.Get(s.t.Apply(i))
}

// MakeMove plays the current player's tile at view index i and closes the turn.
func (s *Session) MakeMove(i int) error {
	g := s.state
	if !g.canMove {
		return ErrMoveAlreadyMade
	}
	idx := s.t.Apply(i)
	tile, err := g.board.Get(idx)
	if err != nil {
		return ErrTileInvalid
	}
	if tile != Empty {
		return ErrTileOccupied
	}
	g.board[idx] = g.current
	g.won, _ = g.board.CheckWinCondition(idx)
	g.canMove = false
	return nil
}

// Board returns the untransformed board.
func (s *Session) Board() Board { return s.state.board }

// CurrentPlayer returns the tile a successful MakeMove will play.
func (s *Session) CurrentPlayer() Tile { return s.state.current }

// OpponentPlayer returns the tile of the waiting player.
func (s *Session) OpponentPlayer() Tile { return s.state.Opponent() }

// Transform returns a session on the same state that applies t after the
// transforms of s.
func (s *Session) Transform(t Transform) *Session {
	return &Session{state: s.state, t: s.t.Then(t)}
}

// Rotate returns s.Transform(Rotation).
func (s *Session) Rotate() *Session { return s.Transform(Rotation) }

// Mirror returns s.Transform(Mirror).
func (s *Session) Mirror() *Session { return s.Transform(Mirror) }

// Symmetries returns one view of s per Symmetry, in Symmetry order.
func (s *Session) Symmetries() [NumSymmetries]*Session {
	var views [NumSymmetries]*Session
	for i, t := range Symmetries() {
		views[i] = s.Transform(t)
	}
	return views
}

// Occupied counts the owned tiles.
func (s *Session) Occupied() int { return s.state.board.Occupied() }
