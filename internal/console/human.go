package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jaminalder/tictactoe-cli/internal/domain"
)

var errNotATile = errors.New("not a tile number")

// Human is a player entering moves on the console.
type Human struct {
	name string
	in   *bufio.Reader
	r    *Renderer
}

// NewHuman returns a human player reading from in. Players sharing a
// terminal must share in.
func NewHuman(name string, in *bufio.Reader, r *Renderer) *Human {
	return &Human{name: name, in: in, r: r}
}

// Name returns the player's name.
func (h *Human) Name() string { return h.name }

// MakeMove shows the board and asks for a tile until a legal one is given.
func (h *Human) MakeMove(ctx context.Context, s *domain.Session) error {
	out := h.r.Writer()
	fmt.Fprint(out, h.r.Board(s.Board(), NumpadCaption))
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, "\nWhich tile do you want to play? ")
		line, readErr := h.in.ReadString('\n')
		if readErr != nil && line == "" {
			return fmt.Errorf("read move: %w", readErr)
		}

		n, err := parseTile(line)
		if err == nil {
			idx, ok := NumpadToIndex(n)
			if !ok {
				err = domain.ErrTileInvalid
			} else {
				err = s.MakeMove(idx)
			}
		}
		switch {
		case err == nil:
			return nil
		case errors.Is(err, errNotATile):
			fmt.Fprintln(out, "That's not a valid tile number ... try again.")
		case domain.IsRuleViolation(err):
			fmt.Fprintf(out, "%v\nTry again.\n", err)
		default:
			return err
		}
		if readErr != nil {
			return fmt.Errorf("read move: %w", readErr)
		}
	}
}

func parseTile(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, errNotATile
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, errNotATile
	}
	return n, nil
}
