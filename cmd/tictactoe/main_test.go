package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func runCmd(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("TICTACTOE_COLOR", "never")
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestUsageWithoutPlayers(t *testing.T) {
	code, stdout, stderr := runCmd(t, "", "alice")
	if code != 0 || stdout != "" {
		t.Fatalf("expected usage and exit 0, got %d %q", code, stdout)
	}
	if !strings.Contains(stderr, "Usage:") || !strings.Contains(stderr, `"cpu"`) {
		t.Fatalf("unexpected usage %q", stderr)
	}
}

func TestBadSettings(t *testing.T) {
	for _, args := range [][]string{
		{"-nope", "a", "b"},
		{"-color", "pink", "a", "b"},
		{"-log-level", "loud", "a", "b"},
	} {
		if code, _, _ := runCmd(t, "", args...); code != 2 {
			t.Fatalf("%v: expected exit 2, got %d", args, code)
		}
	}
}

func TestComputerAgainstComputer(t *testing.T) {
	code, stdout, stderr := runCmd(t, "", "cpu", "cpu")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if !strings.Contains(stdout, "Your turn!") || !strings.Contains(stdout, "Game over!") {
		t.Fatalf("unexpected output %q", stdout)
	}
	if strings.Contains(stdout, "\x1b[") {
		t.Fatalf("colors must be off")
	}
}

func TestHumanAgainstComputer(t *testing.T) {
	// keys are tried in order; taken tiles are rejected and the next is read
	code, stdout, stderr := runCmd(t, "1\n2\n3\n4\n5\n6\n7\n8\n9\n", "alice", "cpu")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if !strings.Contains(stdout, "alice: Your turn!") || !strings.Contains(stdout, "Which tile do you want to play?") {
		t.Fatalf("unexpected output %q", stdout)
	}
	if strings.Contains(stdout, "Congratulations, alice") {
		t.Fatalf("the computer must not lose: %q", stdout)
	}
}

func TestHumanRunsOutOfInput(t *testing.T) {
	code, stdout, _ := runCmd(t, "5\n", "alice", "bob")
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stdout, "Something went wrong during bob's turn.") {
		t.Fatalf("unexpected output %q", stdout)
	}
}

func TestVerify(t *testing.T) {
	code, stdout, stderr := runCmd(t, "", "-verify", "-workers", "2")
	if code != 0 {
		t.Fatalf("exit %d: %s%s", code, stdout, stderr)
	}
	for _, want := range []string{"Tester wins: 0\n", "Total games played: 1329\n"} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("missing %q in %q", want, stdout)
		}
	}
}
