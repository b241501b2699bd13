package computer

import (
	"fmt"

	"github.com/jaminalder/tictactoe-cli/internal/domain"
)

// Cell is a pattern cell: a tile or Wildcard.
type Cell uint8

const (
	Empty    = Cell(domain.Empty)
	X        = Cell(domain.Player1)
	O        = Cell(domain.Player2)
	Wildcard = Cell(255)
)

// Matches reports whether tile satisfies the pattern cell.
func (c Cell) Matches(t domain.Tile) bool {
	return c == Wildcard || c == Cell(t)
}

func (c Cell) String() string {
	switch c {
	case Wildcard:
		return "*"
	case Empty:
		return "."
	default:
		return domain.Tile(c).String()
	}
}

// Pattern is a board pattern in row-major order.
type Pattern [domain.Size]Cell

func (p Pattern) String() string {
	s := make([]byte, 0, domain.Size+domain.Order-1)
	for i, c := range p {
		if i > 0 && i%domain.Order == 0 {
			s = append(s, '/')
		}
		s = append(s, c.String()...)
	}
	return string(s)
}

// ParsePattern reads a pattern written like domain.ParseBoard, with '*' as
// the wildcard.
func ParsePattern(s string) (Pattern, error) {
	var p Pattern
	n := 0
	for _, r := range s {
		var c Cell
		switch r {
		case '/', ' ', '\n', '\t':
			continue
		case 'X':
			c = X
		case 'O':
			c = O
		case '.':
			c = Empty
		case '*':
			c = Wildcard
		default:
			return Pattern{}, fmt.Errorf("parse pattern: unexpected %q", r)
		}
		if n == domain.Size {
			return Pattern{}, fmt.Errorf("parse pattern: more than %d cells", domain.Size)
		}
		p[n] = c
		n++
	}
	if n != domain.Size {
		return Pattern{}, fmt.Errorf("parse pattern: got %d cells, want %d", n, domain.Size)
	}
	return p, nil
}

func mustPattern(s string) Pattern {
	p, err := ParsePattern(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Entry is one canonical position and the reply to it. Occupied is the
// number of owned tiles a board needs before the pattern is considered.
type Entry struct {
	Occupied int
	Pattern  Pattern
	NextMove int
}

// Table is an ordered list of entries; the first match wins.
type Table []Entry

// Lookup returns the first entry and symmetry whose view of the session
// matches. Entries whose Occupied differs from occupied are skipped.
func (t Table) Lookup(views [domain.NumSymmetries]*domain.Session, occupied int) (int, domain.Symmetry, bool) {
	for ei, e := range t {
		if e.Occupied != occupied {
			continue
		}
		for si, v := range views {
			if e.matches(v) {
				return ei, domain.Symmetry(si), true
			}
		}
	}
	return -1, 0, false
}

func (e Entry) matches(v *domain.Session) bool {
	for i, c := range e.Pattern {
		tile, err := v.At(i)
		if err != nil || !c.Matches(tile) {
			return false
		}
	}
	return true
}

// DefaultTable covers every position the engine meets without a win or a
// block on hand, with X always the first player. Positions it does not
// list are settled by taking the first free tile.
var DefaultTable = Table{
	// X opened; the reply when O is to move
	{Occupied: 1, Pattern: mustPattern("*../.../..."), NextMove: 4},
	{Occupied: 1, Pattern: mustPattern(".../..*/..."), NextMove: 2},

	// X took a corner and O answered
	{Occupied: 2, Pattern: mustPattern("X*./.../..."), NextMove: 3},
	{Occupied: 2, Pattern: mustPattern("X.*/.../..."), NextMove: 3},
	{Occupied: 2, Pattern: mustPattern("X../..*/..."), NextMove: 2},
	{Occupied: 2, Pattern: mustPattern("X../.../..*"), NextMove: 2},

	{Occupied: 3, Pattern: mustPattern("X../.O./.*."), NextMove: 3},
	{Occupied: 3, Pattern: mustPattern("OX./*../..."), NextMove: 4},
	{Occupied: 3, Pattern: mustPattern("OX./..*/..."), NextMove: 6},
	{Occupied: 3, Pattern: mustPattern("OX./.../*.."), NextMove: 4},
	{Occupied: 3, Pattern: mustPattern("OX./.../..*"), NextMove: 4},
	{Occupied: 3, Pattern: mustPattern("..X/.O./*.."), NextMove: 1},
	{Occupied: 3, Pattern: mustPattern("O../.X./..*"), NextMove: 2},
	{Occupied: 3, Pattern: mustPattern("XX*/.../..."), NextMove: 5},

	{Occupied: 4, Pattern: mustPattern("XO./X../*.."), NextMove: 4},
	{Occupied: 4, Pattern: mustPattern("XOX/..*/..."), NextMove: 4},
	{Occupied: 4, Pattern: mustPattern("XOX/.../..*"), NextMove: 6},

	{Occupied: 5, Pattern: mustPattern("XO./.OX/.*."), NextMove: 6},
}
