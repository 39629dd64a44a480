package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/moriware/rncreate/internal/branding"
	"github.com/moriware/rncreate/internal/config"
	"github.com/moriware/rncreate/internal/logger"
	"github.com/moriware/rncreate/internal/progress"
	"github.com/moriware/rncreate/internal/prompt"
	"github.com/moriware/rncreate/internal/scaffold"
	"github.com/moriware/rncreate/internal/style"
)

// Flag names.
const (
	flagVerbose = "verbose"
	flagNoColor = "no-color"
	flagDelay   = "delay"
	flagSrcDir  = "src-dir"
)

// BuildInfo is injected via ldflags at build time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// App holds the I/O a command tree runs against. Execute fills it from the
// process; tests build one over an in-memory filesystem and buffers.
type App struct {
	Fs       afero.Fs
	In       io.Reader
	Out      io.Writer
	Err      io.Writer
	WorkDir  string
	Prompter prompt.Prompter // nil: line prompts over In/Out
	Build    BuildInfo

	settings config.Settings
	verbose  bool
	log      *zap.Logger
	registry *scaffold.Registry
}

// Execute runs the CLI against the real terminal and filesystem. Ctrl+C
// cancels the run through the context.
func Execute(version, commit, date string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	app := &App{
		Fs:      afero.NewOsFs(),
		In:      os.Stdin,
		Out:     os.Stdout,
		Err:     os.Stderr,
		WorkDir: wd,
		Build:   BuildInfo{Version: version, Commit: commit, Date: date},
	}
	if prompt.IsTerminal(os.Stdin) {
		app.Prompter = prompt.Terminal{}
	}
	return app.Run(ctx, os.Args[1:])
}

// Run builds a fresh command tree and executes it with args. A run the user
// aborts, at a prompt or during a pause, is reported and treated as success.
func (a *App) Run(ctx context.Context, args []string) error {
	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetIn(a.In)
	root.SetOut(a.Out)
	root.SetErr(a.Err)

	err := root.ExecuteContext(ctx)
	if errors.Is(err, prompt.ErrCancelled) || errors.Is(err, context.Canceled) {
		fmt.Fprintln(a.Out)
		fmt.Fprintln(a.Out, style.Interrupt("Program interrupted by user. Exiting..."))
		return nil
	}
	return err
}

func (a *App) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   branding.CLIName() + " [kind] [name]",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` scaffolds React Native components, screens, hooks and
navigators following a fixed folder convention.

Run it without arguments for the interactive menu, with a kind to be asked
only for the name, or with both to generate straight away:

  ` + branding.CLIName() + ` component Button`,
		Args:              cobra.MaximumNArgs(2),
		ValidArgs:         scaffold.KindNames(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return a.setup(cmd) },
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShell(cmd.Context(), args)
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolP(flagVerbose, "v", false, "Log diagnostic details to stderr")
	flags.Bool(flagNoColor, false, "Disable colored output")
	flags.Duration(flagDelay, config.DefaultDelay, "Pause between progress steps (0 disables pacing)")
	flags.String(flagSrcDir, config.DefaultSrcDir, "Source directory artifacts are written under")

	// Flags take precedence over the project file, env and user config.
	_ = viper.BindPFlag(config.KeyDelay, flags.Lookup(flagDelay))
	_ = viper.BindPFlag(config.KeySrcDir, flags.Lookup(flagSrcDir))
	_ = viper.BindPFlag(config.KeyNoColor, flags.Lookup(flagNoColor))

	cmd.AddCommand(
		a.newVersionCmd(),
		a.newConfigCmd(),
		a.newDoctorCmd(),
		a.newListCmd(),
	)
	return cmd
}

// setup resolves settings and wires the logger, reporter and registry
// before any command runs.
func (a *App) setup(cmd *cobra.Command) error {
	if a.Fs == nil {
		a.Fs = afero.NewOsFs()
	}
	if a.WorkDir == "" {
		a.WorkDir = "."
	}

	config.Load()
	merged, err := config.LoadProject(a.Fs, a.WorkDir)
	if err != nil {
		return errors.WithHintf(err, "fix or remove %s", config.ProjectFilePath(a.WorkDir))
	}
	a.settings = config.Current()
	if a.settings.NoColor {
		style.SetEnabled(false)
	}
	if !style.Enabled() {
		pterm.DisableColor()
	}

	a.verbose, _ = cmd.Flags().GetBool(flagVerbose)
	a.log = logger.New(a.Err, a.verbose)
	a.log.Debug("settings resolved",
		zap.String(logger.FieldCommand, cmd.Name()),
		zap.Duration("delay", a.settings.Delay),
		zap.String("src_dir", a.settings.SrcDir),
		zap.Bool("project_file", merged),
	)

	a.registry = scaffold.NewRegistry(scaffold.Options{
		Fs:       a.Fs,
		Reporter: progress.New(a.Out, a.settings.Delay),
		Out:      a.Out,
		WorkDir:  a.WorkDir,
		SrcDir:   a.settings.SrcDir,
		Logger:   a.log,
	})
	if a.Prompter == nil {
		a.Prompter = prompt.NewLine(a.In, a.Out)
	}
	return nil
}
