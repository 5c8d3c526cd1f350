package out_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	sessionout "studytimer/internal/modules/session/adapter/out"
	apperrors "studytimer/internal/platform/errors"
)

type fakeSleeper struct {
	calls []time.Duration
}

func (f *fakeSleeper) Sleep(d time.Duration) {
	f.calls = append(f.calls, d)
}

var clearLine = "\r" + strings.Repeat(" ", 60) + "\r"

func TestCountdownZeroOnlyClears(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	sleeper := &fakeSleeper{}
	if err := sessionout.NewTerminalCountdown(&out, sleeper).Run(context.Background(), 0, "X"); err != nil {
		t.Fatalf("countdown: %v", err)
	}
	if out.String() != clearLine {
		t.Fatalf("expected a single clear, got %q", out.String())
	}
	if len(sleeper.calls) != 0 {
		t.Fatalf("expected no pauses, got %d", len(sleeper.calls))
	}
}

func TestCountdownRendersEachSecond(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	sleeper := &fakeSleeper{}
	if err := sessionout.NewTerminalCountdown(&out, sleeper).Run(context.Background(), 62, "Study"); err != nil {
		t.Fatalf("countdown: %v", err)
	}
	if len(sleeper.calls) != 62 {
		t.Fatalf("expected 62 pauses, got %d", len(sleeper.calls))
	}
	for _, d := range sleeper.calls {
		if d != time.Second {
			t.Fatalf("expected one second pauses, got %s", d)
		}
	}

	rendered := out.String()
	if !strings.HasSuffix(rendered, clearLine) {
		t.Fatalf("expected output to end with a clear, got %q", rendered[len(rendered)-80:])
	}
	lines := strings.Split(strings.Trim(strings.TrimSuffix(rendered, clearLine), "\r"), "\r")
	if len(lines) != 62 {
		t.Fatalf("expected 62 rendered lines, got %d", len(lines))
	}
	head := []string{"Study: 01:02 remaining", "Study: 01:01 remaining", "Study: 01:00 remaining", "Study: 00:59 remaining"}
	if diff := cmp.Diff(head, lines[:4]); diff != "" {
		t.Fatalf("unexpected first lines (-want +got):\n%s", diff)
	}
	if last := lines[len(lines)-1]; last != "Study: 00:01 remaining" {
		t.Fatalf("unexpected last line %q", last)
	}
	for i := 1; i < len(lines); i++ {
		if lines[i] >= lines[i-1] {
			t.Fatalf("displayed time must strictly decrease: %q then %q", lines[i-1], lines[i])
		}
	}
}

func TestCountdownRejectsNegative(t *testing.T) {
	t.Parallel()
	err := sessionout.NewTerminalCountdown(&bytes.Buffer{}, &fakeSleeper{}).Run(context.Background(), -1, "Break")
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestCountdownPropagatesWriteFailure(t *testing.T) {
	t.Parallel()
	sleeper := &fakeSleeper{}
	if err := sessionout.NewTerminalCountdown(failingWriter{}, sleeper).Run(context.Background(), 3, "Study"); err == nil {
		t.Fatalf("expected write failure")
	}
	if len(sleeper.calls) != 0 {
		t.Fatalf("expected no pause after a failed render")
	}
}
