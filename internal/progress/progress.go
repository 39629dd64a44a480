// Package progress prints paced status lines so a multi-step generation run
// reads as a sequence of discrete steps.
package progress

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/moriware/rncreate/internal/style"
)

// Prefix starts every progress line.
const Prefix = "› "

// DefaultDelay is the pause after each step.
const DefaultDelay = 420 * time.Millisecond

// Reporter writes styled progress lines to W and pauses after each one.
type Reporter struct {
	W     io.Writer
	Delay time.Duration
}

// New returns a Reporter writing to w with the given default pause.
func New(w io.Writer, delay time.Duration) *Reporter {
	return &Reporter{W: w, Delay: delay}
}

// Step prints style("› "+message) and waits for the reporter's delay.
func (r *Reporter) Step(ctx context.Context, message string, s style.Style) {
	r.StepWithDelay(ctx, message, s, r.Delay)
}

// StepWithDelay is Step with an explicit pause. A nil style prints the
// message unstyled.
func (r *Reporter) StepWithDelay(ctx context.Context, message string, s style.Style, delay time.Duration) {
	if s == nil {
		s = style.Plain
	}
	fmt.Fprintln(r.W, s(Prefix+message))
	Sleep(ctx, delay)
}

// Println writes a styled line without pausing.
func (r *Reporter) Println(line string, s style.Style) {
	if s == nil {
		s = style.Plain
	}
	fmt.Fprintln(r.W, s(line))
}

// Sleep blocks for d or until ctx is done, whichever comes first.
func Sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
