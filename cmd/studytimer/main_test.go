package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"studytimer/internal/bootstrap"
	apperrors "studytimer/internal/platform/errors"
)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.now = c.now.Add(2 * time.Second)
	return c.now
}

type noSleep struct{}

func (noSleep) Sleep(time.Duration) {}

func newTestCmd(input string) (*bytes.Buffer, func() error) {
	out := &bytes.Buffer{}
	cmd := newRootCmd(bootstrap.Options{
		Clock:   &stepClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
		Sleeper: noSleep{},
		Runner:  func(context.Context, string, ...string) error { return errors.New("no audio") },
	})
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{})
	return out, func() error { return cmd.ExecuteContext(context.Background()) }
}

func TestRootCommandRunsInteractiveSession(t *testing.T) {
	t.Parallel()
	out, run := newTestCmd("Ada\ny\n1\n\n\n")
	if err := run(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"==== Study Timer ====",
		"Study per loop: 30 minutes",
		"Break per loop: 10 minutes",
		"--- Loop 1 of 1: STUDY ---",
		"Study: 00:30 remaining",
		"Total loops completed: 1",
		"Total elapsed time: 2s",
		"Nice work, Ada!",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in output:\n%s", want, got)
		}
	}
	if strings.Contains(got, "BREAK") {
		t.Fatalf("single loop must not break:\n%s", got)
	}
}

func TestRootCommandFailsOnClosedInput(t *testing.T) {
	t.Parallel()
	_, run := newTestCmd("")
	if err := run(); !errors.Is(err, apperrors.ErrInputClosed) {
		t.Fatalf("expected input closed, got %v", err)
	}
}

func TestRootCommandRejectsArguments(t *testing.T) {
	t.Parallel()
	cmd := newRootCmd(bootstrap.Options{})
	cmd.SetArgs([]string{"extra"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected positional arguments to be rejected")
	}
}
