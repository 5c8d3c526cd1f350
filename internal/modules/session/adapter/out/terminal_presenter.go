package out

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"studytimer/internal/modules/session/domain"
	sessionout "studytimer/internal/modules/session/port/out"
	"studytimer/internal/ui/theme"
)

type TerminalPresenter struct {
	out    io.Writer
	styles theme.Styles
}

func NewTerminalPresenter(out io.Writer) sessionout.Presenter {
	return &TerminalPresenter{out: out, styles: theme.NewStyles(lipgloss.NewRenderer(out))}
}

func (p *TerminalPresenter) Banner() error {
	var sb strings.Builder
	sb.WriteString(p.styles.Title.Render("==== Study Timer ====") + "\n")
	sb.WriteString(p.styles.Muted.Render("This program helps you schedule study and break sessions.") + "\n\n")
	return p.write(sb.String())
}

func (p *TerminalPresenter) Plan(cfg domain.SessionConfig) error {
	mode := "NORMAL (real time)"
	if cfg.TestMode() {
		mode = "TEST (fast)"
	}
	var sb strings.Builder
	sb.WriteString("\n" + p.styles.Title.Render("Summary of your plan:") + "\n")
	fmt.Fprintf(&sb, "  Loops: %d\n", cfg.Loops)
	fmt.Fprintf(&sb, "  Study per loop: %d minutes\n", cfg.StudyMinutes)
	fmt.Fprintf(&sb, "  Break per loop: %d minutes\n", cfg.BreakMinutes)
	fmt.Fprintf(&sb, "  Mode: %s\n\n", mode)
	return p.write(sb.String())
}

func (p *TerminalPresenter) PhaseStarted(loop, loops int, phase domain.Phase) error {
	style := p.styles.Study
	if phase == domain.PhaseBreak {
		style = p.styles.Break
	}
	header := fmt.Sprintf("--- Loop %d of %d: %s ---", loop, loops, strings.ToUpper(string(phase)))
	return p.write(style.Render(header) + "\n")
}

func (p *TerminalPresenter) StudyFinished(motivation string) error {
	return p.write("\n" + p.styles.Hot.Render("Study time is up! Take a break.") + "\n" +
		p.styles.Cheer.Render(motivation) + "\n\n")
}

func (p *TerminalPresenter) BreakFinished() error {
	return p.write("\n" + p.styles.Hot.Render("Break time is over! Get ready for the next study session.") + "\n\n")
}

func (p *TerminalPresenter) Summary(summary domain.SessionSummary, userName string) error {
	lines := []string{"All study loops complete! Great job!"}
	if userName != "" {
		lines = append(lines, fmt.Sprintf("Nice work, %s!", userName))
	}
	lines = append(lines,
		fmt.Sprintf("Total loops completed: %d", summary.CompletedLoops),
		fmt.Sprintf("Total elapsed time: %s", FormatElapsed(summary.Elapsed())),
	)
	return p.write(p.styles.Summary.Render(strings.Join(lines, "\n")) + "\n")
}

// FormatElapsed renders d to the nearest second, e.g. "1h2m5s".
func FormatElapsed(d time.Duration) string {
	return d.Round(time.Second).String()
}

func (p *TerminalPresenter) write(s string) error {
	if _, err := io.WriteString(p.out, s); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
