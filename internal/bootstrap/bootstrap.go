package bootstrap

import (
	sessioninadapter "studytimer/internal/modules/session/adapter/in"
	sessionoutadapter "studytimer/internal/modules/session/adapter/out"
	sessionservice "studytimer/internal/modules/session/service"
	sessionusecase "studytimer/internal/modules/session/usecase"
	"studytimer/internal/platform/clock"
	"studytimer/internal/platform/config"
)

type App struct {
	SessionCLI sessioninadapter.CLIHandler
}

// Options replaces system collaborators, mainly for tests.
type Options struct {
	Clock   clock.Clock
	Sleeper clock.Sleeper
	Runner  sessionoutadapter.CommandRunner
}

// New wires the session module. Zero-valued options fall back to the
// system clock, real sleeps and exec'd alert commands.
func New(cfg config.Config, opts Options) *App {
	if opts.Clock == nil {
		opts.Clock = clock.SystemClock{}
	}
	if opts.Sleeper == nil {
		opts.Sleeper = clock.SystemSleeper{}
	}
	if opts.Runner == nil {
		opts.Runner = sessionoutadapter.ExecRunner
	}

	presenter := sessionoutadapter.NewTerminalPresenter(cfg.Out)
	svc := sessionservice.NewSessionService(
		opts.Clock,
		sessionoutadapter.NewTerminalCountdown(cfg.Out, opts.Sleeper),
		sessionoutadapter.NewAlerter(cfg.GOOS, cfg.Out, opts.Runner),
		presenter,
	)
	sessionUC := sessionusecase.NewInteractor(
		svc,
		sessionoutadapter.NewConsolePrompter(cfg.In, cfg.Out),
		presenter,
		sessionusecase.Defaults{StudyMinutes: cfg.DefaultStudyMinutes, BreakMinutes: cfg.DefaultBreakMinutes},
	)

	return &App{
		SessionCLI: sessioninadapter.NewCLIHandler(sessionUC),
	}
}
