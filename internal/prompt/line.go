package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Line prompts with plain numbered menus over a reader/writer pair.
type Line struct {
	r *bufio.Reader
	w io.Writer
}

// NewLine returns a Line prompter reading answers from r and writing
// questions to w.
func NewLine(r io.Reader, w io.Writer) *Line {
	return &Line{r: bufio.NewReader(r), w: w}
}

// Select lists options as a numbered menu and returns the chosen Value.
// Out-of-range answers are reported and asked again.
func (l *Line) Select(ctx context.Context, message string, options []Option) (string, error) {
	if len(options) == 0 {
		return "", errors.New("no options provided")
	}

	for {
		fmt.Fprintf(l.w, "\n%s\n", message)
		for i, opt := range options {
			fmt.Fprintf(l.w, "  %d) %s\n", i+1, opt.Label)
		}
		fmt.Fprintf(l.w, "Enter number [1-%d]: ", len(options))

		line, err := l.readLine(ctx)
		if err != nil {
			return "", err
		}

		num, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || num < 1 || num > len(options) {
			fmt.Fprintf(l.w, "invalid selection %q: choose 1-%d\n", strings.TrimSpace(line), len(options))
			continue
		}
		return options[num-1].Value, nil
	}
}

// Input reads one line. A non-nil validate is applied and a rejected answer
// is asked again.
func (l *Line) Input(ctx context.Context, message string, validate Validator) (string, error) {
	for {
		fmt.Fprintf(l.w, "%s ", message)

		line, err := l.readLine(ctx)
		if err != nil {
			return "", err
		}
		if validate != nil {
			if verr := validate(line); verr != nil {
				fmt.Fprintln(l.w, verr.Error())
				continue
			}
		}
		return line, nil
	}
}

type lineResult struct {
	line string
	err  error
}

// readLine returns the next line without its terminator. EOF and context
// cancellation both surface as ErrCancelled.
func (l *Line) readLine(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ErrCancelled
	}

	ch := make(chan lineResult, 1)
	go func() {
		line, err := l.r.ReadString('\n')
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ErrCancelled
	case res := <-ch:
		if res.err != nil {
			if errors.Is(res.err, io.EOF) && res.line != "" {
				return strings.TrimRight(res.line, "\r\n"), nil
			}
			if errors.Is(res.err, io.EOF) {
				return "", ErrCancelled
			}
			return "", fmt.Errorf("reading input: %w", res.err)
		}
		return strings.TrimRight(res.line, "\r\n"), nil
	}
}
