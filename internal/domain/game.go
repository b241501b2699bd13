package domain

import "errors"

// RuleViolation is an illegal move. Players may recover from it; the game
// loop treats it as a forfeit when it escapes a player's turn.
type RuleViolation struct {
	reason string
}

func (e *RuleViolation) Error() string { return e.reason }

// Rule violations returned by Session.MakeMove and the game loop.
var (
	ErrMoveAlreadyMade = &RuleViolation{"You have already made your move."}
	ErrTileOccupied    = &RuleViolation{"The chosen tile is already occupied."}
	ErrTileInvalid     = &RuleViolation{"The chosen tile is invalid."}
	ErrNoMove          = &RuleViolation{"You have not made a move."}
)

// IsRuleViolation reports whether err is or wraps a *RuleViolation.
func IsRuleViolation(err error) bool {
	var rv *RuleViolation
	return errors.As(err, &rv)
}

// Engine misuse. These are programming errors, not player mistakes.
var (
	ErrTurnOpen = errors.New("next turn requested while a move is pending")
	ErrGameWon  = errors.New("the game is already won")
)

// GameState holds the board of a running game and whose turn it is.
type GameState struct {
	board   Board
	current Tile
	canMove bool
	won     bool
}

// NewGameState returns an empty game. The first PrepareNextMove hands the
// turn to Player1.
func NewGameState() *GameState {
	return &GameState{current: Player2}
}

// NewGameStateFrom starts a game on a prepared board with next to move.
// The first PrepareNextMove hands the turn to next.
func NewGameStateFrom(b Board, next Tile) *GameState {
	return &GameState{board: b, current: next.Opponent()}
}

// PrepareNextMove passes the turn to the other player and opens it.
func (g *GameState) PrepareNextMove() error {
	if g.canMove {
		return ErrTurnOpen
	}
	if g.won {
		return ErrGameWon
	}
	g.current = g.current.Opponent()
	g.canMove = true
	return nil
}

// Board returns a copy of the board.
func (g *GameState) Board() Board { return g.board }

// Current returns the tile of the player whose turn it is.
func (g *GameState) Current() Tile { return g.current }

// Opponent returns the tile of the player waiting for their turn.
func (g *GameState) Opponent() Tile { return g.current.Opponent() }

// CanMove reports whether the current turn is still open.
func (g *GameState) CanMove() bool { return g.canMove }

// Won reports whether the last move completed a line.
func (g *GameState) Won() bool { return g.won }

// Session returns an untransformed view for submitting the current move.
func (g *GameState) Session() *Session {
	return &Session{state: g, t: Identity}
}
