package service

import (
	"context"
	"fmt"

	"studytimer/internal/modules/session/domain"
	sessionout "studytimer/internal/modules/session/port/out"
	"studytimer/internal/platform/clock"
	"studytimer/internal/platform/ctxlog"
)

type SessionService struct {
	clock     clock.Clock
	countdown sessionout.Countdown
	alerter   sessionout.Alerter
	presenter sessionout.Presenter
}

func NewSessionService(clock clock.Clock, countdown sessionout.Countdown, alerter sessionout.Alerter, presenter sessionout.Presenter) *SessionService {
	return &SessionService{clock: clock, countdown: countdown, alerter: alerter, presenter: presenter}
}

// Run drives the study/break loops of cfg and returns the wall-clock summary.
// The first error aborts the session without a summary.
func (s *SessionService) Run(ctx context.Context, cfg domain.SessionConfig) (domain.SessionSummary, error) {
	logger := ctxlog.FromContext(ctx)
	state := domain.NewLoopState(cfg.Loops)
	startedAt := s.clock.Now()

	for i := 1; i <= cfg.Loops; i++ {
		state.Begin(i)
		logger.Debug("phase started", "loop", i, "loops", cfg.Loops, "phase", domain.PhaseStudy, "seconds", cfg.StudySeconds())
		if err := s.presenter.PhaseStarted(i, cfg.Loops, domain.PhaseStudy); err != nil {
			return domain.SessionSummary{}, err
		}
		if err := s.countdown.Run(ctx, cfg.StudySeconds(), string(domain.PhaseStudy)); err != nil {
			return domain.SessionSummary{}, fmt.Errorf("study countdown for loop %d: %w", i, err)
		}
		s.alerter.Alert(ctx)
		if err := s.presenter.StudyFinished(domain.Motivation(i)); err != nil {
			return domain.SessionSummary{}, err
		}

		if cfg.HasBreakAfter(i) {
			logger.Debug("phase started", "loop", i, "loops", cfg.Loops, "phase", domain.PhaseBreak, "seconds", cfg.BreakSeconds())
			if err := s.presenter.PhaseStarted(i, cfg.Loops, domain.PhaseBreak); err != nil {
				return domain.SessionSummary{}, err
			}
			if err := s.countdown.Run(ctx, cfg.BreakSeconds(), string(domain.PhaseBreak)); err != nil {
				return domain.SessionSummary{}, fmt.Errorf("break countdown for loop %d: %w", i, err)
			}
			s.alerter.Alert(ctx)
			if err := s.presenter.BreakFinished(); err != nil {
				return domain.SessionSummary{}, err
			}
		}

		state.Complete()
	}

	summary := domain.SessionSummary{
		StartedAt:      startedAt,
		EndedAt:        s.clock.Now(),
		CompletedLoops: state.Completed,
	}
	logger.Debug("session finished", "completed_loops", summary.CompletedLoops, "elapsed", summary.Elapsed())
	return summary, nil
}
