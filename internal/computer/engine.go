package computer

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jaminalder/tictactoe-cli/internal/domain"
)

// Reason tells which rule picked a move.
type Reason string

const (
	ReasonWin      Reason = "win"
	ReasonBlock    Reason = "block"
	ReasonTable    Reason = "table"
	ReasonFallback Reason = "fallback"
)

// ErrNoFreeTile is returned when the engine is asked to move on a full board.
var ErrNoFreeTile = errors.New("no free tile left")

// Thresholds below which a line cannot be completed yet.
const (
	minOccupiedForWin   = 4
	minOccupiedForBlock = 3
)

// Decision describes a committed move. Index is in the coordinates of the
// session passed to Decide. Entry and Symmetry are set for table moves.
type Decision struct {
	Index    int
	Reason   Reason
	Entry    int
	Symmetry domain.Symmetry
}

// Engine picks and commits moves for the computer player.
type Engine struct {
	table  Table
	logger *zap.Logger
}

// NewEngine returns an engine using table. A nil logger disables logging.
func NewEngine(table Table, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{table: table, logger: logger}
}

// Decide picks a move for the current player of s and plays it.
//
// An immediate win is taken first, then the first opponent line is
// blocked, then the pattern table is consulted under all eight symmetries.
// If nothing applies the first free tile is played.
func (e *Engine) Decide(s *domain.Session) (Decision, error) {
	var view domain.Board
	for i := range view {
		t, err := s.At(i)
		if err != nil {
			return Decision{}, err
		}
		view[i] = t
	}
	occupied := view.Occupied()
	if occupied == domain.Size {
		return Decision{}, ErrNoFreeTile
	}

	if occupied >= minOccupiedForWin {
		if i, ok := completingTile(&view, s.CurrentPlayer()); ok {
			return e.commit(s, Decision{Index: i, Reason: ReasonWin, Entry: -1})
		}
	}
	if occupied >= minOccupiedForBlock {
		if i, ok := completingTile(&view, s.OpponentPlayer()); ok {
			return e.commit(s, Decision{Index: i, Reason: ReasonBlock, Entry: -1})
		}
	}

	views := s.Symmetries()
	if ei, sym, ok := e.table.Lookup(views, occupied); ok {
		d := Decision{Index: -1, Reason: ReasonTable, Entry: ei, Symmetry: sym}
		next := e.table[ei].NextMove
		if err := views[sym].MakeMove(next); err != nil {
			return d, fmt.Errorf("table entry %d (%v): %w", ei, e.table[ei].Pattern, err)
		}
		d.Index = placedIndex(s, &view)
		e.log(d)
		return d, nil
	}

	for i, t := range view {
		if t != domain.Empty {
			continue
		}
		err := s.MakeMove(i)
		if domain.IsRuleViolation(err) {
			continue
		}
		if err != nil {
			return Decision{}, err
		}
		d := Decision{Index: i, Reason: ReasonFallback, Entry: -1}
		e.log(d)
		return d, nil
	}
	return Decision{}, ErrNoFreeTile
}

// completingTile returns the first empty index at which tile completes a line.
func completingTile(b *domain.Board, tile domain.Tile) (int, bool) {
	for i, t := range b {
		if t != domain.Empty {
			continue
		}
		if won, _ := b.CheckWinConditionAs(i, tile); won {
			return i, true
		}
	}
	return -1, false
}

// placedIndex finds the tile of s that changed since before was read.
func placedIndex(s *domain.Session, before *domain.Board) int {
	for i, t := range before {
		if now, _ := s.At(i); now != t {
			return i
		}
	}
	return -1
}

func (e *Engine) commit(s *domain.Session, d Decision) (Decision, error) {
	if err := s.MakeMove(d.Index); err != nil {
		return d, err
	}
	e.log(d)
	return d, nil
}

func (e *Engine) log(d Decision) {
	fields := []zap.Field{
		zap.Int("index", d.Index),
		zap.String("reason", string(d.Reason)),
	}
	if d.Reason == ReasonTable {
		fields = append(fields,
			zap.Int("entry", d.Entry),
			zap.Stringer("symmetry", d.Symmetry),
		)
	}
	e.logger.Debug("computer move", fields...)
}
