package computer

import (
	"context"
	"fmt"
	"io"

	"github.com/jaminalder/tictactoe-cli/internal/domain"
)

// Player is the computer opponent.
type Player struct {
	name   string
	engine *Engine
	out    io.Writer
	style  domain.StyleFunc
}

// Option configures a Player.
type Option func(*Player)

// WithBoardOutput makes the player print the board to w before each move.
func WithBoardOutput(w io.Writer, style domain.StyleFunc) Option {
	return func(p *Player) {
		p.out = w
		p.style = style
	}
}

// NewPlayer returns a computer player named name that moves with engine.
func NewPlayer(name string, engine *Engine, opts ...Option) *Player {
	p := &Player{name: name, engine: engine}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the player's name.
func (p *Player) Name() string { return p.name }

// MakeMove decides and commits the next move.
func (p *Player) MakeMove(ctx context.Context, s *domain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.out != nil {
		b := s.Board()
		if _, err := fmt.Fprintln(p.out, b.RenderStyled(domain.BlankCaption, p.style)); err != nil {
			return fmt.Errorf("print board: %w", err)
		}
	}
	_, err := p.engine.Decide(s)
	return err
}
