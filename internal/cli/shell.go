package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/moriware/rncreate/internal/branding"
	"github.com/moriware/rncreate/internal/logger"
	"github.com/moriware/rncreate/internal/progress"
	"github.com/moriware/rncreate/internal/prompt"
	"github.com/moriware/rncreate/internal/scaffold"
	"github.com/moriware/rncreate/internal/style"
)

const (
	exitValue     = "exit"
	welcomePause  = 600 * time.Millisecond
	separatorLine = "─────────────────────────────────────────────"
)

// runShell picks the entry mode from the positional arguments. A recognized
// kind with a name generates at once, a recognized kind alone asks for the
// name, anything else opens the menu.
func (a *App) runShell(ctx context.Context, args []string) error {
	var kind, name string
	if len(args) > 0 {
		kind = args[0]
	}
	if len(args) > 1 {
		name = args[1]
	}

	switch {
	case scaffold.IsKind(kind) && name != "":
		return a.create(ctx, kind, name)
	case scaffold.IsKind(kind):
		answer, err := a.Prompter.Input(ctx, "Enter the name:", prompt.NotEmpty(style.Red("Please enter a valid name")))
		if err != nil {
			return err
		}
		return a.create(ctx, kind, answer)
	default:
		if kind != "" {
			a.log.Debug("unrecognized kind, opening menu", zap.String(logger.FieldKind, kind))
		}
		return a.menu(ctx)
	}
}

// menu shows the welcome banner and loops until the user picks exit.
func (a *App) menu(ctx context.Context) error {
	a.welcome(ctx)

	options := a.menuOptions()
	reporter := a.registry.Reporter()
	for {
		kind, err := a.Prompter.Select(ctx, style.Bold("What do you want to create?"), options)
		if err != nil {
			return err
		}
		if kind == exitValue {
			break
		}

		name, err := a.Prompter.Input(ctx, style.Bold("What name should we use?"),
			prompt.NotEmpty(style.Red("You need to provide a valid name.")))
		if err != nil {
			return err
		}

		reporter.Step(ctx, "Hang on... getting everything ready.", style.Gray)
		if err := a.create(ctx, kind, name); err != nil {
			return err
		}
	}

	a.farewell()
	return nil
}

func (a *App) menuOptions() []prompt.Option {
	var options []prompt.Option
	for _, k := range scaffold.Kinds() {
		g, ok := a.registry.Lookup(k)
		if !ok {
			continue
		}
		options = append(options, prompt.Option{Label: g.Style()(g.Label()), Value: string(k)})
	}
	return append(options, prompt.Option{Label: style.Red("🚪 Exit"), Value: exitValue})
}

// create runs one creation flow and, with --verbose, prints a summary.
func (a *App) create(ctx context.Context, kind, name string) error {
	a.log.Debug("creation requested", zap.String(logger.FieldKind, kind), zap.String(logger.FieldName, name))

	result, err := a.registry.HandleCreation(ctx, kind, name)
	if err != nil {
		return err
	}
	if a.verbose {
		p := message.NewPrinter(language.English)
		p.Fprintf(a.Out, "%d files written to %s\n", len(result.Files), a.displayPath(result.BasePath))
	}
	return nil
}

// displayPath renders path relative to the work dir with forward slashes.
func (a *App) displayPath(path string) string {
	rel, err := filepath.Rel(a.WorkDir, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func (a *App) welcome(ctx context.Context) {
	fmt.Fprintln(a.Out, style.Gray(separatorLine))
	fmt.Fprintln(a.Out, "  "+style.Title(branding.DisplayName()))
	fmt.Fprintln(a.Out, "  "+style.Tagline(branding.Tagline()))
	fmt.Fprintln(a.Out, style.Gray(separatorLine))
	fmt.Fprintln(a.Out)

	fmt.Fprintln(a.Out, style.White("Pick an option from the menu to generate components, screens, hooks and navigation that follow the design system."))
	fmt.Fprintln(a.Out, style.Gray("Tip: use lowerCamelCase names and we take care of the rest!"))
	fmt.Fprintln(a.Out)

	if a.settings.Delay > 0 {
		progress.Sleep(ctx, welcomePause)
	}
}

func (a *App) farewell() {
	line := fmt.Sprintf("Thanks for using %s! See you next time 👋", branding.ShortName())
	fmt.Fprintln(a.Out)
	fmt.Fprintln(a.Out, style.Farewell(line))
	fmt.Fprintln(a.Out)
}
