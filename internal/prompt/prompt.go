// Package prompt asks the user to pick an option or type a value. Terminal
// drives pterm's interactive widgets; Line reads numbered answers from any
// io.Reader and is used when stdin is not a terminal.
package prompt

import (
	"context"
	"errors"
	"os"
	"strings"
)

// ErrCancelled is returned when the user aborts a prompt, e.g. with Ctrl+C
// or by closing stdin.
var ErrCancelled = errors.New("prompt cancelled by user")

// Option is one entry of a selection menu.
type Option struct {
	Label string
	Value string
}

// Validator rejects an answer by returning an error whose message is shown
// to the user before asking again.
type Validator func(string) error

// Prompter asks questions and blocks until answered or cancelled.
type Prompter interface {
	Select(ctx context.Context, message string, options []Option) (string, error)
	Input(ctx context.Context, message string, validate Validator) (string, error)
}

// NotEmpty rejects blank answers with msg.
func NotEmpty(msg string) Validator {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(msg)
		}
		return nil
	}
}

// IsTerminal reports whether f is attached to a character device.
func IsTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
