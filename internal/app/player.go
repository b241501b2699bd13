package app

import (
	"context"

	"github.com/jaminalder/tictactoe-cli/internal/domain"
)

// Player takes turns in a Match.
//
// MakeMove is expected to call s.MakeMove exactly once. Returning a
// *domain.RuleViolation forfeits the game; any other error calls it off.
type Player interface {
	Name() string
	MakeMove(ctx context.Context, s *domain.Session) error
}

// Announcer is told about the progress of a match.
type Announcer interface {
	TurnStarted(p Player)
	GameOver(b domain.Board)
	Won(winner, loser Player)
	Tie()
	Forfeited(violator, winner Player, err error)
	Abandoned(p Player, err error)
}

// Silent is an Announcer that discards everything.
type Silent struct{}

func (Silent) TurnStarted(Player) {}
func (Silent) GameOver(domain.Board) {}
func (Silent) Won(Player, Player) {}
func (Silent) Tie() {}
func (Silent) Forfeited(Player, Player, error) {}
func (Silent) Abandoned(Player, error) {}
