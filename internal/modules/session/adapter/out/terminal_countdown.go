package out

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"studytimer/internal/modules/session/domain"
	sessionout "studytimer/internal/modules/session/port/out"
	"studytimer/internal/platform/clock"
	apperrors "studytimer/internal/platform/errors"
)

const clearWidth = 60

// TerminalCountdown rewrites a single terminal line once per second.
type TerminalCountdown struct {
	out     io.Writer
	sleeper clock.Sleeper
}

func NewTerminalCountdown(out io.Writer, sleeper clock.Sleeper) sessionout.Countdown {
	return &TerminalCountdown{out: out, sleeper: sleeper}
}

func (c *TerminalCountdown) Run(_ context.Context, totalSeconds int, label string) error {
	if totalSeconds < 0 {
		return fmt.Errorf("countdown %s for %d seconds: %w", label, totalSeconds, apperrors.ErrInvalidInput)
	}
	state := domain.NewCountdown(totalSeconds, label)
	for !state.Done() {
		if _, err := fmt.Fprint(c.out, "\r"+state.Line()); err != nil {
			return fmt.Errorf("render countdown: %w", err)
		}
		c.sleeper.Sleep(time.Second)
		state.Tick()
	}
	if _, err := fmt.Fprint(c.out, "\r"+strings.Repeat(" ", clearWidth)+"\r"); err != nil {
		return fmt.Errorf("clear countdown: %w", err)
	}
	return nil
}
