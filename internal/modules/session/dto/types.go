package dto

import "time"

type PlanOutput struct {
	UserName     string
	TestMode     bool
	Loops        int
	StudyMinutes int
	BreakMinutes int
}

type RunInput struct {
	UserName     string
	TestMode     bool
	Loops        int
	StudyMinutes int
	BreakMinutes int
}

type SummaryOutput struct {
	UserName       string
	CompletedLoops int
	StartedAt      time.Time
	EndedAt        time.Time
	Elapsed        time.Duration
}
