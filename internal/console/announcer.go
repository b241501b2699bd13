package console

import (
	"fmt"

	"github.com/jaminalder/tictactoe-cli/internal/app"
	"github.com/jaminalder/tictactoe-cli/internal/domain"
)

// Announcer prints match progress to the console.
type Announcer struct {
	r *Renderer
}

// NewAnnouncer returns an announcer writing through r.
func NewAnnouncer(r *Renderer) *Announcer { return &Announcer{r: r} }

// TurnStarted tells p to move.
func (a *Announcer) TurnStarted(p app.Player) {
	fmt.Fprintf(a.r.Writer(), "%s: Your turn!\n", p.Name())
}

// GameOver prints the final board.
func (a *Announcer) GameOver(b domain.Board) {
	fmt.Fprintf(a.r.Writer(), "Game over!\n%s\n", a.r.Board(b, domain.BlankCaption))
}

// Won congratulates the winner.
func (a *Announcer) Won(winner, loser app.Player) {
	fmt.Fprintf(a.r.Writer(), "Congratulations, %s, you won!\n%s, better luck next time.\n",
		winner.Name(), loser.Name())
}

// Tie announces a draw.
func (a *Announcer) Tie() {
	fmt.Fprintln(a.r.Writer(), "It's a tie. Why not give it another try and play again?")
}

// Forfeited reports a rule violation and the resulting winner.
func (a *Announcer) Forfeited(violator, winner app.Player, err error) {
	fmt.Fprintf(a.r.Writer(), "%s has violated the rules: %v\nCongratulations, %s, you won!\n",
		violator.Name(), err, winner.Name())
}

// Abandoned reports that the game was called off during p's turn.
func (a *Announcer) Abandoned(p app.Player, _ error) {
	fmt.Fprintf(a.r.Writer(), "Something went wrong during %s's turn.\nThe game is called off.\n", p.Name())
}

var _ app.Announcer = (*Announcer)(nil)
