package out

import (
	"context"

	"studytimer/internal/modules/session/domain"
)

// Prompter reads validated answers from the user.
type Prompter interface {
	Line(ctx context.Context, prompt string) (string, error)
	Confirm(ctx context.Context, prompt string) (bool, error)
	PositiveInt(ctx context.Context, prompt string) (int, error)
	OptionalInt(ctx context.Context, prompt string, defaultValue int) (int, error)
}

// Countdown blocks for totalSeconds, rendering the remaining time.
type Countdown interface {
	Run(ctx context.Context, totalSeconds int, label string) error
}

// Alerter signals a phase transition. Failures are handled internally.
type Alerter interface {
	Alert(ctx context.Context)
}

type Presenter interface {
	Banner() error
	Plan(cfg domain.SessionConfig) error
	PhaseStarted(loop, loops int, phase domain.Phase) error
	StudyFinished(motivation string) error
	BreakFinished() error
	Summary(summary domain.SessionSummary, userName string) error
}
