package domain

import (
	"fmt"
	"time"

	apperrors "studytimer/internal/platform/errors"
)

// TimeScale is the number of real seconds that make up one configured minute.
type TimeScale int

const (
	ScaleTest   TimeScale = 1
	ScaleNormal TimeScale = 60
)

type Phase string

const (
	PhaseStudy Phase = "Study"
	PhaseBreak Phase = "Break"
)

type SessionConfig struct {
	Loops        int
	StudyMinutes int
	BreakMinutes int
	TimeScale    TimeScale
	UserName     string
}

func NewSessionConfig(loops, studyMinutes, breakMinutes int, scale TimeScale, userName string) (SessionConfig, error) {
	if loops <= 0 {
		return SessionConfig{}, fmt.Errorf("loops must be positive: %w", apperrors.ErrInvalidInput)
	}
	if studyMinutes <= 0 || breakMinutes <= 0 {
		return SessionConfig{}, fmt.Errorf("phase minutes must be positive: %w", apperrors.ErrInvalidInput)
	}
	if scale != ScaleTest && scale != ScaleNormal {
		return SessionConfig{}, fmt.Errorf("unknown time scale %d: %w", scale, apperrors.ErrInvalidInput)
	}
	return SessionConfig{
		Loops:        loops,
		StudyMinutes: studyMinutes,
		BreakMinutes: breakMinutes,
		TimeScale:    scale,
		UserName:     userName,
	}, nil
}

func (c SessionConfig) TestMode() bool {
	return c.TimeScale == ScaleTest
}

func (c SessionConfig) StudySeconds() int {
	return c.StudyMinutes * int(c.TimeScale)
}

func (c SessionConfig) BreakSeconds() int {
	return c.BreakMinutes * int(c.TimeScale)
}

// HasBreakAfter reports whether loop is followed by a break phase.
// The last loop never is.
func (c SessionConfig) HasBreakAfter(loop int) bool {
	return loop < c.Loops
}

type LoopState struct {
	Loops     int
	Current   int
	Completed int
}

func NewLoopState(loops int) LoopState {
	return LoopState{Loops: loops}
}

func (s *LoopState) Begin(loop int) {
	s.Current = loop
}

func (s *LoopState) Complete() {
	if s.Completed < s.Loops {
		s.Completed++
	}
}

type SessionSummary struct {
	StartedAt      time.Time
	EndedAt        time.Time
	CompletedLoops int
}

func (s SessionSummary) Elapsed() time.Duration {
	d := s.EndedAt.Sub(s.StartedAt)
	if d < 0 {
		return 0
	}
	return d
}
