package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/jaminalder/tictactoe-cli/internal/app"
	"github.com/jaminalder/tictactoe-cli/internal/arena"
	"github.com/jaminalder/tictactoe-cli/internal/computer"
	"github.com/jaminalder/tictactoe-cli/internal/config"
	"github.com/jaminalder/tictactoe-cli/internal/console"
	"github.com/jaminalder/tictactoe-cli/internal/logging"
)

// computerName selects the computer player on the command line.
const computerName = "cpu"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func usage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, "Usage:\n"+
		"\t%s [flags] <player1> <player2>\n"+
		"\n"+
		"<player1>, <player2>\n"+
		"\tThe names for the respective players.\n"+
		"\tTo play against the computer, use the name %q.\n"+
		"\nFlags:\n", fs.Name(), computerName)
	fs.PrintDefaults()
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tictactoe", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(stderr, fs) }

	cfg, err := config.Parse(fs, args)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, config.ErrUsage):
		usage(stderr, fs)
		return 0
	case err != nil:
		fmt.Fprintf(stderr, "tictactoe: %v\n", err)
		return 2
	}

	logger, err := logging.New(stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(stderr, "tictactoe: %v\n", err)
		return 2
	}
	defer func() { _ = logger.Sync() }()

	engine := computer.NewEngine(computer.DefaultTable, logger.Named("computer"))
	if cfg.Verify {
		return verify(ctx, cfg, engine, logger, stdout)
	}

	r := console.NewRenderer(stdout, cfg.Color)
	names := computer.NewNamePicker(cfg.Seed)
	in := bufio.NewReader(stdin)
	newPlayer := func(name string) app.Player {
		if name == computerName {
			return computer.NewPlayer(names.Pick(), engine, computer.WithBoardOutput(r.Writer(), r.Style))
		}
		return console.NewHuman(name, in, r)
	}

	m := app.NewMatch(
		newPlayer(cfg.Players[0]),
		newPlayer(cfg.Players[1]),
		app.WithAnnouncer(console.NewAnnouncer(r)),
		app.WithLogger(logger.Named("match")),
	)
	if _, err := m.Play(ctx); err != nil {
		fmt.Fprintf(stderr, "tictactoe: %v\n", err)
		return 1
	}
	return 0
}

func verify(ctx context.Context, cfg config.Config, engine *computer.Engine, logger *zap.Logger, stdout io.Writer) int {
	a := arena.New(func() app.Player {
		return computer.NewPlayer(computerName, engine)
	}, cfg.Workers, logger.Named("arena"))

	loss, err := a.Run(ctx)
	fmt.Fprintf(stdout, "Stats:\n"+
		"  Tester wins: %d\n"+
		"  Draw game:   %d\n"+
		"  CPU wins:    %d\n"+
		"Total games played: %d\n",
		a.TesterWins(), a.Draws(), a.ComputerWins(), a.Total())
	if err != nil {
		fmt.Fprintf(stdout, "FAILURE: %v\n", err)
		return 1
	}
	if loss != nil {
		fmt.Fprintf(stdout, "FAILURE: Computer loses against %s!\n%s\n", loss.Tester, loss.Board)
		return 1
	}
	return 0
}
