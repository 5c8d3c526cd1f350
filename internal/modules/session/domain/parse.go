package domain

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "studytimer/internal/platform/errors"
)

// ParsePositive parses a base-10 integer strictly greater than zero.
func ParsePositive(text string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", text, apperrors.ErrNotInteger)
	}
	if v <= 0 {
		return 0, fmt.Errorf("parse %q: %w", text, apperrors.ErrNotPositive)
	}
	return v, nil
}
