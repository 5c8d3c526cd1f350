package out

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strconv"

	sessionout "studytimer/internal/modules/session/port/out"
	"studytimer/internal/platform/ctxlog"
)

const (
	bell = "\a"

	toneFrequencyHz = 880
	toneDurationMS  = 300
)

// CommandRunner runs an external program to completion.
type CommandRunner func(ctx context.Context, name string, args ...string) error

func ExecRunner(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// NewAlerter picks the alert implementation for goos. Windows gets a real
// tone through the console beep API; every other platform gets the bell.
func NewAlerter(goos string, out io.Writer, runner CommandRunner) sessionout.Alerter {
	if goos == "windows" {
		return &ToneAlerter{out: out, runner: runner}
	}
	return &BellAlerter{out: out}
}

type BellAlerter struct {
	out io.Writer
}

func (a *BellAlerter) Alert(_ context.Context) {
	_, _ = fmt.Fprint(a.out, bell)
}

type ToneAlerter struct {
	out    io.Writer
	runner CommandRunner
}

func (a *ToneAlerter) Alert(ctx context.Context) {
	if err := a.tone(ctx); err != nil {
		ctxlog.FromContext(ctx).Debug("tone alert failed, using bell", "error", err)
		_, _ = fmt.Fprint(a.out, bell)
	}
}

func (a *ToneAlerter) tone(ctx context.Context) (err error) {
	if a.runner == nil {
		return fmt.Errorf("no command runner")
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tone runner panicked: %v", r)
		}
	}()
	script := "[console]::beep(" + strconv.Itoa(toneFrequencyHz) + "," + strconv.Itoa(toneDurationMS) + ")"
	return a.runner(ctx, "powershell", "-NoProfile", "-NonInteractive", "-Command", script)
}
