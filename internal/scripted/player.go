// Package scripted provides a player that follows a fixed list of choices.
//
// A script is described by a list of radices and a seed. The k-th choice is
// the k-th digit of the seed in that mixed radix, and on its k-th turn the
// player takes the choice-th free tile counted in ascending index order.
// Enumerating every seed below Combinations(radices) therefore enumerates
// every possible sequence of replies.
package scripted

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jaminalder/tictactoe-cli/internal/domain"
)

// ErrScriptExhausted is returned when the player has no choice left to play.
var ErrScriptExhausted = errors.New("script exhausted")

// Player replays a decoded script.
type Player struct {
	name    string
	choices []int
	next    int
}

// New decodes seed against radices. Radices must be positive.
func New(radices []int, seed int) (*Player, error) {
	if seed < 0 {
		return nil, fmt.Errorf("scripted: negative seed %d", seed)
	}
	choices := make([]int, 0, len(radices))
	for _, r := range radices {
		if r <= 0 {
			return nil, fmt.Errorf("scripted: radix %d must be positive", r)
		}
		choices = append(choices, seed%r)
		seed /= r
	}
	return FromChoices(choices), nil
}

// FromChoices returns a player taking the given choices in order.
func FromChoices(choices []int) *Player {
	parts := make([]string, len(choices))
	for i, c := range choices {
		parts[i] = strconv.Itoa(c)
	}
	return &Player{
		name:    "test_player({" + strings.Join(parts, ", ") + "})",
		choices: append([]int(nil), choices...),
	}
}

// Combinations returns the number of distinct scripts for radices.
func Combinations(radices []int) int {
	n := 1
	for _, r := range radices {
		n *= r
	}
	return n
}

// Name returns a name listing the decoded choices.
func (p *Player) Name() string { return p.name }

// Choices returns a copy of the decoded choices.
func (p *Player) Choices() []int { return append([]int(nil), p.choices...) }

// MakeMove plays the next scripted choice.
func (p *Player) MakeMove(_ context.Context, s *domain.Session) error {
	if p.next >= len(p.choices) {
		return ErrScriptExhausted
	}
	skip := p.choices[p.next]
	for i := 0; i < domain.Size; i++ {
		t, err := s.At(i)
		if err != nil {
			return err
		}
		if t != domain.Empty {
			continue
		}
		if skip > 0 {
			skip--
			continue
		}
		p.next++
		return s.MakeMove(i)
	}
	return fmt.Errorf("%w: choice %d exceeds free tiles", ErrScriptExhausted, p.choices[p.next])
}
