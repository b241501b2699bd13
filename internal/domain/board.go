package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Tile represents a board cell state.
type Tile uint8

const (
	Empty Tile = iota
	Player1
	Player2
)

// String returns the glyph used when rendering the tile.
func (t Tile) String() string {
	switch t {
	case Player1:
		return "X"
	case Player2:
		return "O"
	default:
		return " "
	}
}

// Opponent returns the other player's tile. Empty has no opponent.
func (t Tile) Opponent() Tile {
	switch t {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return Empty
	}
}

const (
	// Order is the side length of the board.
	Order = 3
	// Size is the number of tiles on the board.
	Size = Order * Order
)

// ErrInvalidIndex is returned for flat indices outside [0, Size).
var ErrInvalidIndex = errors.New("invalid index")

// Board is a fixed 3x3 board stored row-major: idx = y*Order + x.
type Board [Size]Tile

func validIndex(i int) bool { return i >= 0 && i < Size }

// Get returns the tile at flat index i.
func (b Board) Get(i int) (Tile, error) {
	if !validIndex(i) {
		return Empty, fmt.Errorf("%w: %d", ErrInvalidIndex, i)
	}
	return b[i], nil
}

// Set stores t at flat index i.
func (b *Board) Set(i int, t Tile) error {
	if !validIndex(i) {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, i)
	}
	b[i] = t
	return nil
}

// CheckWinCondition reports whether the tile at i is part of a full line.
func (b Board) CheckWinCondition(i int) (bool, error) {
	t, err := b.Get(i)
	if err != nil {
		return false, err
	}
	return b.CheckWinConditionAs(i, t)
}

// CheckWinConditionAs reports whether playing state at i would complete a line.
// The cell at i is assumed to hold state; its real content is not read.
//
// Four lines are evaluated on every call: the row and column through i and
// both diagonals. The diagonals are checked even when i is not on them.
func (b Board) CheckWinConditionAs(i int, state Tile) (bool, error) {
	if !validIndex(i) {
		return false, fmt.Errorf("%w: %d", ErrInvalidIndex, i)
	}
	line := func(begin, skip int) bool {
		for n := 0; n < Order; n, begin = n+1, begin+skip {
			if begin != i && b[begin] != state {
				return false
			}
		}
		return true
	}
	won := line(i-i%Order, 1) || // row
		line(i%Order, Order) || // column
		line(0, Order+1) || // diagonal (\)
		line(Order-1, Order-1) // diagonal (/)
	return won, nil
}

// IsEmpty reports whether no tile has been played.
func (b Board) IsEmpty() bool {
	for _, t := range b {
		if t != Empty {
			return false
		}
	}
	return true
}

// Occupied returns the number of owned tiles.
func (b Board) Occupied() int {
	n := 0
	for _, t := range b {
		if t != Empty {
			n++
		}
	}
	return n
}

// Full reports whether every tile is owned.
func (b Board) Full() bool { return b.Occupied() == Size }

// CaptionFunc returns the caption of the empty tile at index, padded to width.
type CaptionFunc func(width, index int) string

// StyleFunc decorates the glyph of an owned tile.
type StyleFunc func(t Tile, glyph string) string

// BlankCaption renders empty tiles as spaces.
func BlankCaption(width, _ int) string { return strings.Repeat(" ", width) }

// CaptionWidth is the width of every rendered cell.
func CaptionWidth() int { return len(strconv.Itoa(Size)) }

// Render draws the board, using caption for empty tiles.
func (b Board) Render(caption CaptionFunc) string {
	return b.RenderStyled(caption, nil)
}

// RenderStyled draws the board like Render and passes owned glyphs through style.
func (b Board) RenderStyled(caption CaptionFunc, style StyleFunc) string {
	if caption == nil {
		caption = BlankCaption
	}
	width := CaptionWidth()
	pad := strings.Repeat(" ", width/2)
	glyphs := map[Tile]string{
		Player1: pad + Player1.String() + pad,
		Player2: pad + Player2.String() + pad,
	}
	rowSep := "\n +" + strings.Repeat(strings.Repeat("-", width+2)+"+", Order) + " \n"
	const cellSep = " | "

	var sb strings.Builder
	for i, t := range b {
		if i%Order == 0 {
			sb.WriteString(rowSep)
			sb.WriteString(cellSep)
		}
		if t == Empty {
			sb.WriteString(caption(width, i))
		} else {
			g := glyphs[t]
			if style != nil {
				g = style(t, g)
			}
			sb.WriteString(g)
		}
		sb.WriteString(cellSep)
	}
	sb.WriteString(rowSep)
	return sb.String()
}

// String renders the board with blank captions.
func (b Board) String() string { return b.Render(BlankCaption) }

// ParseBoard reads nine tiles from s. X and O are players; '.', '_' and '-'
// are empty. Whitespace and '/' are ignored so rows can be separated.
func ParseBoard(s string) (Board, error) {
	var b Board
	n := 0
	for _, r := range s {
		var t Tile
		switch r {
		case ' ', '\t', '\n', '/':
			continue
		case 'X', 'x':
			t = Player1
		case 'O', 'o':
			t = Player2
		case '.', '_', '-':
			t = Empty
		default:
			return Board{}, fmt.Errorf("parse board: unexpected %q", r)
		}
		if n == Size {
			return Board{}, fmt.Errorf("parse board: more than %d tiles", Size)
		}
		b[n] = t
		n++
	}
	if n != Size {
		return Board{}, fmt.Errorf("parse board: got %d tiles, want %d", n, Size)
	}
	return b, nil
}
