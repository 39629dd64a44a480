package scaffold

import (
	"io"
	"path"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/moriware/rncreate/internal/naming"
	"github.com/moriware/rncreate/internal/progress"
	"github.com/moriware/rncreate/internal/style"
	"github.com/moriware/rncreate/internal/templates"
)

// DefaultSrcDir is the source root artifacts are written under.
const DefaultSrcDir = "src"

// Options configures NewRegistry. Zero values fall back to the OS
// filesystem, stdout with the default pacing, the current directory and
// DefaultSrcDir.
type Options struct {
	Fs       afero.Fs
	Reporter *progress.Reporter
	Out      io.Writer
	WorkDir  string
	SrcDir   string
	Logger   *zap.Logger
}

// Registry maps each Kind to its configured Generator.
type Registry struct {
	generators map[Kind]*Generator
	stage      *Stage
}

// NewRegistry wires one Generator per Kind.
func NewRegistry(opts Options) *Registry {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Reporter == nil {
		out := opts.Out
		if out == nil {
			out = io.Discard
		}
		opts.Reporter = progress.New(out, progress.DefaultDelay)
	}
	if opts.WorkDir == "" {
		opts.WorkDir = "."
	}
	if opts.SrcDir == "" {
		opts.SrcDir = DefaultSrcDir
	}

	stage := &Stage{Fs: opts.Fs, Reporter: opts.Reporter, Log: opts.Logger}
	src := opts.SrcDir
	under := func(parts ...string) string {
		return filepath.Join(append([]string{opts.WorkDir, src}, parts...)...)
	}
	// display paths are always slash separated, relative to the work dir
	display := func(parts ...string) string {
		return path.Join(append([]string{filepath.ToSlash(src)}, parts...)...)
	}

	r := &Registry{generators: make(map[Kind]*Generator), stage: stage}

	r.register(KindComponent, Config{
		Label:           "🎨 Component",
		Style:           style.Cyan,
		ResolveBasePath: func(name string) string { return under("components", name) },
		BuildFiles:      templates.ComponentFiles,
		IndexKind:       KindComponent,
		SuccessMessage: func(name string) string {
			return "✨ Component " + naming.CapitalizeFirstLetter(name) + " ready at " + display("components", name)
		},
	})

	r.register(KindScreen, Config{
		Label:           "📱 Screen",
		Style:           style.Magenta,
		ResolveBasePath: func(name string) string { return under("screens", name) },
		BuildFiles:      templates.ScreenFiles,
		IndexKind:       KindScreen,
		SuccessMessage: func(name string) string {
			return "✨ Screen " + naming.CapitalizeFirstLetter(name) + " ready at " + display("screens", name)
		},
	})

	r.register(KindHook, Config{
		Label:           "🪝 Hook",
		Style:           style.Green,
		ResolveBasePath: func(name string) string { return under("hooks", name) },
		BuildFiles:      templates.HookFiles,
		IndexKind:       KindHook,
		SuccessMessage: func(name string) string {
			return "✨ Hook use" + naming.CapitalizeFirstLetter(name) + " ready at " + display("hooks", name)
		},
	})

	r.register(KindNavigation, Config{
		Label:           "🧭 Navigation",
		Style:           style.Yellow,
		ResolveBasePath: func(string) string { return under("navigation") },
		BuildFiles:      templates.NavigationFiles,
		SuccessMessage: func(name string) string {
			capitalized := naming.CapitalizeFirstLetter(name)
			return "✨ Navigation " + capitalized + " ready at " + display("navigation", capitalized+"Navigation.tsx")
		},
	})

	return r
}

// Lookup returns the generator registered for kind.
func (r *Registry) Lookup(kind Kind) (*Generator, bool) {
	g, ok := r.generators[kind]
	return g, ok
}

// register binds cfg to the shared stage under kind, replacing any earlier
// generator.
func (r *Registry) register(kind Kind, cfg Config) {
	r.generators[kind] = NewGenerator(cfg, r.stage)
}

// Reporter is the progress reporter shared by every generator.
func (r *Registry) Reporter() *progress.Reporter { return r.stage.Reporter }
