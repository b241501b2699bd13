// Package console runs games in a terminal.
package console

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/jaminalder/tictactoe-cli/internal/config"
	"github.com/jaminalder/tictactoe-cli/internal/domain"
)

// Renderer writes boards to a terminal, coloring player glyphs when the
// terminal supports it.
type Renderer struct {
	out *termenv.Output
}

// NewRenderer wraps w. mode is one of the config color modes.
func NewRenderer(w io.Writer, mode string) *Renderer {
	var opts []termenv.OutputOption
	switch mode {
	case config.ColorAlways:
		opts = append(opts, termenv.WithProfile(termenv.ANSI))
	case config.ColorNever:
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &Renderer{out: termenv.NewOutput(w, opts...)}
}

// Writer returns the underlying output.
func (r *Renderer) Writer() io.Writer { return r.out }

// Style colors the glyph of t. It satisfies domain.StyleFunc.
func (r *Renderer) Style(t domain.Tile, glyph string) string {
	if r.out.Profile == termenv.Ascii {
		return glyph
	}
	color := "1" // red
	if t == domain.Player2 {
		color = "4" // blue
	}
	return r.out.String(glyph).Foreground(r.out.Color(color)).Bold().String()
}

// Board renders b with caption for empty tiles.
func (r *Renderer) Board(b domain.Board, caption domain.CaptionFunc) string {
	return b.RenderStyled(caption, r.Style)
}

// NumpadCaption labels empty tiles with their numpad key: 1 is bottom-left
// and 9 is top-right.
func NumpadCaption(width, index int) string {
	x, y := index%domain.Order, index/domain.Order
	n := (domain.Order-y-1)*domain.Order + x + 1
	return fmt.Sprintf("%*d", width, n)
}

// NumpadToIndex converts a numpad key to a board index.
func NumpadToIndex(n int) (int, bool) {
	i := n - 1
	if i < 0 || i >= domain.Size {
		return -1, false
	}
	x, y := i%domain.Order, i/domain.Order
	return (domain.Order-y-1)*domain.Order + x, true
}
