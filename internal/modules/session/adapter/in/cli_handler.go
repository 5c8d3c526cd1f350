package in

import (
	"context"

	sessiondto "studytimer/internal/modules/session/dto"
	sessionin "studytimer/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

// Start runs the interactive flow: banner, prompts, loops, summary.
func (h CLIHandler) Start(ctx context.Context) (sessiondto.SummaryOutput, error) {
	return h.usecase.Start(ctx)
}
