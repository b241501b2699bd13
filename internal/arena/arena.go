// Package arena pits the computer player against every scripted opponent.
package arena

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/jaminalder/tictactoe-cli/internal/app"
	"github.com/jaminalder/tictactoe-cli/internal/domain"
	"github.com/jaminalder/tictactoe-cli/internal/scripted"
)

// Suite is one family of scripted opponents.
type Suite struct {
	Radices       []int
	ComputerFirst bool
}

// DefaultSuites cover every line of play: the tester choosing among all free
// tiles on each of its turns, once moving first and once moving second.
var DefaultSuites = []Suite{
	{Radices: []int{9, 7, 5, 3, 1}},
	{Radices: []int{8, 6, 4, 2}, ComputerFirst: true},
}

// Stats counts finished games. Safe for concurrent use.
type Stats struct {
	testerWins   uint32
	draws        uint32
	computerWins uint32
}

// TesterWins counts games the scripted opponent won.
func (s *Stats) TesterWins() int { return int(atomic.LoadUint32(&s.testerWins)) }

// Draws counts tied games.
func (s *Stats) Draws() int { return int(atomic.LoadUint32(&s.draws)) }

// ComputerWins counts games the computer won.
func (s *Stats) ComputerWins() int { return int(atomic.LoadUint32(&s.computerWins)) }

// Total counts all finished games.
func (s *Stats) Total() int { return s.TesterWins() + s.Draws() + s.ComputerWins() }

// Loss describes a game the computer lost.
type Loss struct {
	Suite  int
	Seed   int
	Tester string
	Board  domain.Board
}

// Arena runs the suites.
type Arena struct {
	Stats
	Suites  []Suite
	Workers int

	newComputer func() app.Player
	logger      *zap.Logger

	mu    sync.Mutex
	loss  *Loss
	fatal error
}

// New returns an arena that builds a fresh computer player per game.
func New(newComputer func() app.Player, workers int, logger *zap.Logger) *Arena {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Arena{
		Suites:      DefaultSuites,
		Workers:     workers,
		newComputer: newComputer,
		logger:      logger,
	}
}

type job struct {
	suite int
	seed  int
}

// Run plays every game of every suite. It returns the first loss by suite
// and seed order, or nil if the computer never lost.
func (a *Arena) Run(ctx context.Context) (*Loss, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan job)
	var wg sync.WaitGroup
	for w := 0; w < a.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				if err := a.play(ctx, j); err != nil {
					a.fail(err)
					cancel()
				}
			}
		}()
	}

Loop:
	for si, suite := range a.Suites {
		for seed := 0; seed < scripted.Combinations(suite.Radices); seed++ {
			select {
			case jobs <- job{suite: si, seed: seed}:
			case <-ctx.Done():
				break Loop
			}
		}
	}
	close(jobs)
	wg.Wait()

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.fatal != nil {
		return a.loss, a.fatal
	}
	if err := ctx.Err(); err != nil {
		return a.loss, err
	}
	a.logger.Info("arena finished",
		zap.Int("games", a.Total()),
		zap.Int("tester_wins", a.TesterWins()),
		zap.Int("draws", a.Draws()),
		zap.Int("computer_wins", a.ComputerWins()),
	)
	return a.loss, nil
}

func (a *Arena) play(ctx context.Context, j job) error {
	suite := a.Suites[j.suite]
	tester, err := scripted.New(suite.Radices, j.seed)
	if err != nil {
		return err
	}
	cpu := a.newComputer()
	p1, p2 := app.Player(tester), cpu
	if suite.ComputerFirst {
		p1, p2 = cpu, tester
	}
	res, err := app.NewMatch(p1, p2, app.WithLogger(a.logger)).Run(ctx)
	if err != nil {
		return fmt.Errorf("suite %d seed %d: %w", j.suite, j.seed, err)
	}
	switch res.Winner {
	case nil:
		atomic.AddUint32(&a.draws, 1)
	case cpu:
		atomic.AddUint32(&a.computerWins, 1)
	default:
		atomic.AddUint32(&a.testerWins, 1)
		a.lost(Loss{Suite: j.suite, Seed: j.seed, Tester: tester.Name(), Board: res.Board})
	}
	return nil
}

func (a *Arena) lost(l Loss) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.logger.Warn("computer lost",
		zap.Int("suite", l.Suite),
		zap.Int("seed", l.Seed),
		zap.String("tester", l.Tester),
	)
	if a.loss == nil || l.Suite < a.loss.Suite || (l.Suite == a.loss.Suite && l.Seed < a.loss.Seed) {
		a.loss = &l
	}
}

func (a *Arena) fail(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.fatal == nil {
		a.fatal = err
	}
}
