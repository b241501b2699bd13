package computer

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jaminalder/tictactoe-cli/internal/domain"
)

func TestPlayerMakeMove(t *testing.T) {
	var buf bytes.Buffer
	plain := func(_ domain.Tile, glyph string) string { return glyph }
	p := NewPlayer("ENIAC", NewEngine(DefaultTable, nil), WithBoardOutput(&buf, plain))
	if p.Name() != "ENIAC" {
		t.Fatalf("unexpected name %q", p.Name())
	}
	g := openTurn(t, mustBoard(t, "X../.../..."), domain.Player2)
	if err := p.MakeMove(context.Background(), g.Session()); err != nil {
		t.Fatalf("MakeMove: %v", err)
	}
	if b := g.Board(); b[4] != domain.Player2 {
		t.Fatalf("expected the center, board %q", b.String())
	}
	// the board is printed before the move
	if !strings.Contains(buf.String(), " | X |   |   | ") || strings.Contains(buf.String(), "O") {
		t.Fatalf("unexpected board output %q", buf.String())
	}
}

func TestPlayerHonorsCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewPlayer("ENIAC", NewEngine(DefaultTable, nil))
	g := openTurn(t, domain.Board{}, domain.Player1)
	if err := p.MakeMove(ctx, g.Session()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if !g.CanMove() {
		t.Fatalf("a cancelled player must not move")
	}
}
