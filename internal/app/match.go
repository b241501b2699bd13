package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jaminalder/tictactoe-cli/internal/domain"
)

// Outcome is how a match ended.
type Outcome int

const (
	OutcomeTie Outcome = iota
	OutcomeWon
	OutcomeForfeit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeForfeit:
		return "forfeit"
	default:
		return "tie"
	}
}

// Result of a finished match. Winner and Loser are nil on a tie.
type Result struct {
	Winner    Player
	Loser     Player
	Outcome   Outcome
	Violation error
	Moves     int
	Board     domain.Board
}

// Match plays one game between two players. Player one moves first.
type Match struct {
	ID      string
	Created time.Time

	players   [2]Player
	announcer Announcer
	logger    *zap.Logger
}

// MatchOption configures a Match.
type MatchOption func(*Match)

// WithAnnouncer reports progress to a.
func WithAnnouncer(a Announcer) MatchOption {
	return func(m *Match) { m.announcer = a }
}

// WithLogger sets the logger. Log lines carry the match id.
func WithLogger(l *zap.Logger) MatchOption {
	return func(m *Match) { m.logger = l }
}

// NewMatch creates a match between p1 and p2.
func NewMatch(p1, p2 Player, opts ...MatchOption) *Match {
	m := &Match{
		ID:        newMatchID(),
		Created:   time.Now(),
		players:   [2]Player{p1, p2},
		announcer: Silent{},
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With(zap.String("match_id", m.ID))
	return m
}

func (m *Match) player(t domain.Tile) Player {
	if t == domain.Player1 {
		return m.players[0]
	}
	return m.players[1]
}

// Play runs the match and returns the winner, or nil for a tie.
func (m *Match) Play(ctx context.Context) (Player, error) {
	r, err := m.Run(ctx)
	return r.Winner, err
}

// Run alternates the players until one wins, the board is full or a player
// breaks the rules. A rule violation loses the game for the violator.
// Other errors abandon the match and are returned.
func (m *Match) Run(ctx context.Context) (Result, error) {
	state := domain.NewGameState()
	var res Result

	m.logger.Debug("match started",
		zap.String("player1", m.players[0].Name()),
		zap.String("player2", m.players[1].Name()),
	)

	for res.Moves < domain.Size && !state.Won() {
		if err := state.PrepareNextMove(); err != nil {
			return res, fmt.Errorf("match %s: %w", m.ID, err)
		}
		p := m.player(state.Current())
		m.announcer.TurnStarted(p)

		err := p.MakeMove(ctx, state.Session())
		if err == nil && state.CanMove() {
			err = domain.ErrNoMove
		}
		if err != nil {
			res.Board = state.Board()
			if domain.IsRuleViolation(err) {
				res.Outcome = OutcomeForfeit
				res.Loser = p
				res.Winner = m.player(state.Opponent())
				res.Violation = err
				m.announcer.Forfeited(res.Loser, res.Winner, err)
				m.logger.Info("rule violation",
					zap.String("player", p.Name()),
					zap.Error(err),
				)
				return res, nil
			}
			m.announcer.Abandoned(p, err)
			m.logger.Error("match abandoned",
				zap.String("player", p.Name()),
				zap.Error(err),
			)
			return res, fmt.Errorf("match %s: %s's turn: %w", m.ID, p.Name(), err)
		}
		res.Moves++
	}

	res.Board = state.Board()
	m.announcer.GameOver(res.Board)
	if state.Won() {
		res.Outcome = OutcomeWon
		res.Winner = m.player(state.Current())
		res.Loser = m.player(state.Opponent())
		m.announcer.Won(res.Winner, res.Loser)
	} else {
		m.announcer.Tie()
	}
	m.logger.Debug("match finished",
		zap.Stringer("outcome", res.Outcome),
		zap.Int("moves", res.Moves),
	)
	return res, nil
}
