package prompt

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
)

// Terminal prompts with pterm's arrow-key select and text input. Ctrl+C is
// captured instead of exiting the process and returned as ErrCancelled.
type Terminal struct{}

// Select shows an interactive menu of option labels.
func (Terminal) Select(ctx context.Context, message string, options []Option) (string, error) {
	if ctx.Err() != nil {
		return "", ErrCancelled
	}

	labels := make([]string, len(options))
	byLabel := make(map[string]string, len(options))
	for i, opt := range options {
		labels[i] = opt.Label
		byLabel[opt.Label] = opt.Value
	}

	interrupted := false
	selected, err := pterm.DefaultInteractiveSelect.
		WithOptions(labels).
		WithMaxHeight(len(labels)).
		WithOnInterruptFunc(func() { interrupted = true }).
		Show(message)
	if interrupted {
		return "", ErrCancelled
	}
	if err != nil {
		return "", fmt.Errorf("showing menu: %w", err)
	}
	return byLabel[selected], nil
}

// Input shows a text input and repeats it until validate accepts the answer.
func (Terminal) Input(ctx context.Context, message string, validate Validator) (string, error) {
	for {
		if ctx.Err() != nil {
			return "", ErrCancelled
		}

		interrupted := false
		answer, err := pterm.DefaultInteractiveTextInput.
			WithOnInterruptFunc(func() { interrupted = true }).
			Show(message)
		if interrupted {
			return "", ErrCancelled
		}
		if err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}

		if validate != nil {
			if verr := validate(answer); verr != nil {
				pterm.Error.Println(verr.Error())
				continue
			}
		}
		return answer, nil
	}
}
