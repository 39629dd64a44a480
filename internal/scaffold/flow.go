package scaffold

import (
	"context"
	"strings"
	"time"

	"github.com/moriware/rncreate/internal/naming"
	"github.com/moriware/rncreate/internal/style"
)

// returnDelay paces the final "back to menu" line. A reporter with pacing
// turned off skips it as well.
const returnDelay = 380 * time.Millisecond

// NormalizeName trims surrounding whitespace and lower-cases the first
// letter, the form used for paths and file names.
func NormalizeName(raw string) string {
	return naming.LowercaseFirstLetter(strings.TrimSpace(raw))
}

// HandleCreation generates the artifact of the given kind for rawName. An
// unknown kind fails with *UnsupportedKindError before anything is written.
func (r *Registry) HandleCreation(ctx context.Context, kind, rawName string) (*Result, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return nil, err
	}
	g, ok := r.Lookup(k)
	if !ok {
		return nil, &UnsupportedKindError{Kind: kind}
	}

	result, err := g.Generate(ctx, NormalizeName(rawName))
	if err != nil {
		return result, err
	}

	delay := returnDelay
	if r.stage.Reporter.Delay <= 0 {
		delay = 0
	}
	r.stage.Reporter.StepWithDelay(ctx, "Returning to main menu...", style.Gray, delay)
	return result, nil
}
