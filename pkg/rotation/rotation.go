// Package rotation computes the monthly channel title.
//
// Titles follow the "<prefix> <Month> '<YY>" convention. Only the last two
// whitespace-separated tokens are rewritten, so any prefix (sponsor tags,
// emoji, several words) survives untouched.
package rotation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Months is indexed by time.Month - 1.
var Months = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// ErrTooFewTokens is returned for titles with fewer than two tokens; there is
// no month/year pair to rewrite.
var ErrTooFewTokens = errors.New("title needs at least two whitespace-separated tokens")

// ComputeDefault rewrites the month and year tokens of current for today.
func ComputeDefault(current string, today time.Time) (string, error) {
	tokens := strings.Fields(current)
	if len(tokens) < 2 {
		return "", fmt.Errorf("%w: %q", ErrTooFewTokens, current)
	}

	tokens[len(tokens)-2] = Months[today.Month()-1]
	tokens[len(tokens)-1] = fmt.Sprintf("'%02d", today.Year()%100)
	return strings.Join(tokens, " "), nil
}

// Next returns the title to apply: override verbatim when it is non-empty,
// the computed default otherwise. The default is validated either way.
func Next(current string, today time.Time, override string) (string, error) {
	computed, err := ComputeDefault(current, today)
	if err != nil {
		return "", err
	}
	if override != "" {
		return override, nil
	}
	return computed, nil
}

// OverridePrompter shows the computed title to the operator and returns their
// replacement, or "" to keep it.
type OverridePrompter interface {
	PromptOverride(ctx context.Context, computed string) (string, error)
}

// Rotate computes the default title, always asks the operator for an override
// and returns the title to apply.
func Rotate(ctx context.Context, current string, today time.Time, p OverridePrompter) (string, error) {
	computed, err := ComputeDefault(current, today)
	if err != nil {
		return "", err
	}
	override, err := p.PromptOverride(ctx, computed)
	if err != nil {
		return "", fmt.Errorf("title override: %w", err)
	}
	return Next(current, today, override)
}
