package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jaminalder/tictactoe-cli/internal/config"
	"github.com/jaminalder/tictactoe-cli/internal/domain"
)

type named string

func (n named) Name() string { return string(n) }

func (named) MakeMove(context.Context, *domain.Session) error { return nil }

func TestAnnouncerMessages(t *testing.T) {
	var out bytes.Buffer
	a := NewAnnouncer(NewRenderer(&out, config.ColorNever))
	alice, bob := named("alice"), named("bob")

	check := func(want string) {
		t.Helper()
		if got := out.String(); got != want {
			t.Fatalf("got %q\nwant %q", got, want)
		}
		out.Reset()
	}

	a.TurnStarted(alice)
	check("alice: Your turn!\n")

	a.Won(alice, bob)
	check("Congratulations, alice, you won!\nbob, better luck next time.\n")

	a.Tie()
	check("It's a tie. Why not give it another try and play again?\n")

	a.Forfeited(bob, alice, domain.ErrTileOccupied)
	check("bob has violated the rules: The chosen tile is already occupied.\nCongratulations, alice, you won!\n")

	a.Abandoned(bob, errors.New("boom"))
	check("Something went wrong during bob's turn.\nThe game is called off.\n")

	b, _ := domain.ParseBoard("XOX/.../...")
	a.GameOver(b)
	got := out.String()
	if !strings.HasPrefix(got, "Game over!\n") || !strings.Contains(got, " | X | O | X | ") {
		t.Fatalf("unexpected game over output %q", got)
	}
}
