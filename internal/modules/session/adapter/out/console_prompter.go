package out

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"studytimer/internal/modules/session/domain"
	sessionout "studytimer/internal/modules/session/port/out"
	apperrors "studytimer/internal/platform/errors"
)

type ConsolePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsolePrompter(in io.Reader, out io.Writer) sessionout.Prompter {
	return &ConsolePrompter{in: bufio.NewReader(in), out: out}
}

func (p *ConsolePrompter) Line(_ context.Context, prompt string) (string, error) {
	_, _ = fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", apperrors.ErrInputClosed
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (p *ConsolePrompter) Confirm(ctx context.Context, prompt string) (bool, error) {
	answer, err := p.Line(ctx, prompt)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y"), nil
}

// PositiveInt asks until the answer is a whole number above zero.
func (p *ConsolePrompter) PositiveInt(ctx context.Context, prompt string) (int, error) {
	for {
		answer, err := p.Line(ctx, prompt)
		if err != nil {
			return 0, err
		}
		v, err := domain.ParsePositive(answer)
		if err == nil {
			return v, nil
		}
		if errors.Is(err, apperrors.ErrNotPositive) {
			_, _ = fmt.Fprintln(p.out, "Please enter a number greater than zero.")
			continue
		}
		_, _ = fmt.Fprintln(p.out, "That isn't a whole number. Try again.")
	}
}

// OptionalInt asks once. Empty or unusable answers yield defaultValue.
func (p *ConsolePrompter) OptionalInt(ctx context.Context, prompt string, defaultValue int) (int, error) {
	answer, err := p.Line(ctx, fmt.Sprintf("%s (press Enter for %d): ", prompt, defaultValue))
	if err != nil {
		return 0, err
	}
	if answer == "" {
		return defaultValue, nil
	}
	v, err := domain.ParsePositive(answer)
	switch {
	case err == nil:
		return v, nil
	case errors.Is(err, apperrors.ErrNotPositive):
		_, _ = fmt.Fprintln(p.out, "Using default because value must be > 0.")
	default:
		_, _ = fmt.Fprintln(p.out, "Using default because that wasn't a valid number.")
	}
	return defaultValue, nil
}
