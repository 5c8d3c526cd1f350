package in

import (
	"context"

	"studytimer/internal/modules/session/dto"
)

type Usecase interface {
	Configure(ctx context.Context) (dto.PlanOutput, error)
	Run(ctx context.Context, input dto.RunInput) (dto.SummaryOutput, error)
	Start(ctx context.Context) (dto.SummaryOutput, error)
}
