package domain

import (
	"errors"
	"testing"
)

var winningLines = [8][3]int{
	// rows
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	// cols
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	// diags
	{0, 4, 8}, {2, 4, 6},
}

func mustParse(t *testing.T, s string) Board {
	t.Helper()
	b, err := ParseBoard(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return b
}

func TestGetSetOutOfRange(t *testing.T) {
	var b Board
	for _, i := range []int{-1, 9, 100} {
		if _, err := b.Get(i); !errors.Is(err, ErrInvalidIndex) {
			t.Fatalf("Get(%d): expected ErrInvalidIndex, got %v", i, err)
		}
		if err := b.Set(i, Player1); !errors.Is(err, ErrInvalidIndex) {
			t.Fatalf("Set(%d): expected ErrInvalidIndex, got %v", i, err)
		}
		if _, err := b.CheckWinConditionAs(i, Player1); !errors.Is(err, ErrInvalidIndex) {
			t.Fatalf("CheckWinConditionAs(%d): expected ErrInvalidIndex, got %v", i, err)
		}
	}
	if err := b.Set(4, Player2); err != nil {
		t.Fatalf("Set(4): %v", err)
	}
	if got, _ := b.Get(4); got != Player2 {
		t.Fatalf("expected Player2 at 4, got %v", got)
	}
}

func TestCheckWinConditionCompletesTopRow(t *testing.T) {
	b := mustParse(t, "XX./.O./...")
	won, err := b.CheckWinConditionAs(2, Player1)
	if err != nil || !won {
		t.Fatalf("expected X to complete the top row at 2, got %v err=%v", won, err)
	}
	if won, _ := b.CheckWinConditionAs(2, Player2); won {
		t.Fatalf("O at 2 must not win")
	}
}

func TestCheckWinConditionEveryLine(t *testing.T) {
	for _, line := range winningLines {
		for _, side := range []Tile{Player1, Player2} {
			var b Board
			for _, i := range line {
				b[i] = side
			}
			for _, i := range line {
				won, err := b.CheckWinCondition(i)
				if err != nil || !won {
					t.Fatalf("line %v side %v: expected win at %d", line, side, i)
				}
			}
			// the hypothetical cell is never read
			for _, i := range line {
				c := b
				c[i] = Empty
				if won, _ := c.CheckWinConditionAs(i, side); !won {
					t.Fatalf("line %v: playing %v at %d should win", line, side, i)
				}
				if won, _ := c.CheckWinConditionAs(i, side.Opponent()); won {
					t.Fatalf("line %v: %v at %d must not win", line, side.Opponent(), i)
				}
			}
		}
	}
}

// Exhaustive over every assignment of the nine tiles.
func TestCheckWinConditionMatchesLines(t *testing.T) {
	var b Board
	for n := 0; n < 19683; n++ {
		v := n
		for i := range b {
			b[i] = Tile(v % 3)
			v /= 3
		}
		for i := range b {
			state := b[i]
			if state == Empty {
				continue
			}
			want := false
			for _, line := range winningLines {
				onLine := line[0] == i || line[1] == i || line[2] == i
				full := b[line[0]] == state && b[line[1]] == state && b[line[2]] == state
				isDiag := line == winningLines[6] || line == winningLines[7]
				if full && (onLine || isDiag) {
					want = true
				}
			}
			got, err := b.CheckWinCondition(i)
			if err != nil {
				t.Fatalf("board %v index %d: %v", b, i, err)
			}
			if got != want {
				t.Fatalf("board %q index %d: got %v want %v", b.String(), i, got, want)
			}
		}
	}
}

func TestCheckWinConditionAlwaysChecksDiagonals(t *testing.T) {
	b := mustParse(t, "X../.X./..X")
	// 1 is on neither diagonal but the main diagonal is full
	won, _ := b.CheckWinConditionAs(1, Player1)
	if !won {
		t.Fatalf("expected the full diagonal to be reported from index 1")
	}
	won, _ = b.CheckWinConditionAs(1, Player2)
	if won {
		t.Fatalf("O at 1 must not win")
	}
}

// An empty tile is checked as Empty, so it completes any all-empty line
// through it or either diagonal.
func TestCheckWinConditionOnEmptyTile(t *testing.T) {
	var empty Board
	for i := range empty {
		if won, _ := empty.CheckWinCondition(i); !won {
			t.Fatalf("empty board: expected empty lines to match at %d", i)
		}
	}
	b := mustParse(t, "XX./.../...")
	if won, _ := b.CheckWinCondition(0); won {
		t.Fatalf("X at 0 must not win with two in a row")
	}
	// row 0 is not empty but column 2 is
	if won, _ := b.CheckWinCondition(2); !won {
		t.Fatalf("expected the empty column through 2 to match")
	}
	b = mustParse(t, "XOX/OXO/.X.")
	if won, _ := b.CheckWinCondition(6); won {
		t.Fatalf("no line through 6 is empty")
	}
}

func TestIsEmptyAndOccupied(t *testing.T) {
	var b Board
	if !b.IsEmpty() || b.Occupied() != 0 || b.Full() {
		t.Fatalf("expected fresh board to be empty")
	}
	b = mustParse(t, "XOX/OXO/OXO")
	if b.IsEmpty() || b.Occupied() != 9 || !b.Full() {
		t.Fatalf("expected full board, occupied=%d", b.Occupied())
	}
}

func TestRender(t *testing.T) {
	b := mustParse(t, "X../.O./...")
	want := "\n +---+---+---+ \n" +
		" | X |   |   | \n +---+---+---+ \n" +
		" |   | O |   | \n +---+---+---+ \n" +
		" |   |   |   | \n +---+---+---+ \n"
	if got := b.String(); got != want {
		t.Fatalf("unexpected render:\n%q\nwant\n%q", got, want)
	}
	if b.String() != b.String() {
		t.Fatalf("rendering twice should be identical")
	}
}

func TestRenderCaptionsAndStyle(t *testing.T) {
	b := mustParse(t, "X../.../...")
	var seen []int
	out := b.RenderStyled(func(width, i int) string {
		if width != 1 {
			t.Fatalf("expected caption width 1, got %d", width)
		}
		seen = append(seen, i)
		return "#"
	}, func(tile Tile, glyph string) string {
		return "[" + glyph + "]"
	})
	if len(seen) != 8 || seen[0] != 1 || seen[7] != 8 {
		t.Fatalf("caption called for %v", seen)
	}
	want := "\n +---+---+---+ \n | [X] | # | # | "
	if out[:len(want)] != want {
		t.Fatalf("unexpected styled render %q", out)
	}
}

func TestParseBoardErrors(t *testing.T) {
	for _, s := range []string{"XO", "XXXXXXXXXX", "XO?/.../..."} {
		if _, err := ParseBoard(s); err == nil {
			t.Fatalf("expected error for %q", s)
		}
	}
}
