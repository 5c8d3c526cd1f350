package usecase

import (
	"context"
	"fmt"

	"studytimer/internal/modules/session/domain"
	sessiondto "studytimer/internal/modules/session/dto"
	sessionin "studytimer/internal/modules/session/port/in"
	sessionout "studytimer/internal/modules/session/port/out"
	"studytimer/internal/modules/session/service"
)

type Defaults struct {
	StudyMinutes int
	BreakMinutes int
}

type Interactor struct {
	svc       *service.SessionService
	prompter  sessionout.Prompter
	presenter sessionout.Presenter
	defaults  Defaults
}

func NewInteractor(svc *service.SessionService, prompter sessionout.Prompter, presenter sessionout.Presenter, defaults Defaults) sessionin.Usecase {
	return &Interactor{svc: svc, prompter: prompter, presenter: presenter, defaults: defaults}
}

// Configure asks for the session options in a fixed order.
func (i *Interactor) Configure(ctx context.Context) (sessiondto.PlanOutput, error) {
	name, err := i.prompter.Line(ctx, "Enter your name (optional): ")
	if err != nil {
		return sessiondto.PlanOutput{}, fmt.Errorf("read name: %w", err)
	}
	testMode, err := i.prompter.Confirm(ctx, "\nTest mode runs FAST (1 minute = 1 second).\nEnable test mode? (y/n): ")
	if err != nil {
		return sessiondto.PlanOutput{}, fmt.Errorf("read test mode: %w", err)
	}
	loops, err := i.prompter.PositiveInt(ctx, "\nHow many study loops do you want to complete? ")
	if err != nil {
		return sessiondto.PlanOutput{}, fmt.Errorf("read loops: %w", err)
	}
	study, err := i.prompter.OptionalInt(ctx, "Study minutes per loop", i.defaults.StudyMinutes)
	if err != nil {
		return sessiondto.PlanOutput{}, fmt.Errorf("read study minutes: %w", err)
	}
	brk, err := i.prompter.OptionalInt(ctx, "Break minutes per loop", i.defaults.BreakMinutes)
	if err != nil {
		return sessiondto.PlanOutput{}, fmt.Errorf("read break minutes: %w", err)
	}
	return sessiondto.PlanOutput{
		UserName:     name,
		TestMode:     testMode,
		Loops:        loops,
		StudyMinutes: study,
		BreakMinutes: brk,
	}, nil
}

func (i *Interactor) Run(ctx context.Context, input sessiondto.RunInput) (sessiondto.SummaryOutput, error) {
	scale := domain.ScaleNormal
	if input.TestMode {
		scale = domain.ScaleTest
	}
	cfg, err := domain.NewSessionConfig(input.Loops, input.StudyMinutes, input.BreakMinutes, scale, input.UserName)
	if err != nil {
		return sessiondto.SummaryOutput{}, err
	}
	if err := i.presenter.Plan(cfg); err != nil {
		return sessiondto.SummaryOutput{}, err
	}
	summary, err := i.svc.Run(ctx, cfg)
	if err != nil {
		return sessiondto.SummaryOutput{}, err
	}
	if err := i.presenter.Summary(summary, cfg.UserName); err != nil {
		return sessiondto.SummaryOutput{}, err
	}
	return sessiondto.SummaryOutput{
		UserName:       cfg.UserName,
		CompletedLoops: summary.CompletedLoops,
		StartedAt:      summary.StartedAt,
		EndedAt:        summary.EndedAt,
		Elapsed:        summary.Elapsed(),
	}, nil
}

func (i *Interactor) Start(ctx context.Context) (sessiondto.SummaryOutput, error) {
	if err := i.presenter.Banner(); err != nil {
		return sessiondto.SummaryOutput{}, err
	}
	plan, err := i.Configure(ctx)
	if err != nil {
		return sessiondto.SummaryOutput{}, err
	}
	return i.Run(ctx, sessiondto.RunInput(plan))
}
