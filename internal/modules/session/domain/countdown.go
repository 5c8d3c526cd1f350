package domain

import "fmt"

// Countdown holds the remaining seconds of a single timed phase.
type Countdown struct {
	Remaining int
	Label     string
}

func NewCountdown(totalSeconds int, label string) Countdown {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	return Countdown{Remaining: totalSeconds, Label: label}
}

func (c Countdown) Done() bool {
	return c.Remaining <= 0
}

func (c *Countdown) Tick() {
	if c.Remaining > 0 {
		c.Remaining--
	}
}

// Clock renders the remaining time as MM:SS.
func (c Countdown) Clock() string {
	return fmt.Sprintf("%02d:%02d", c.Remaining/60, c.Remaining%60)
}

func (c Countdown) Line() string {
	return fmt.Sprintf("%s: %s remaining", c.Label, c.Clock())
}
