package scaffold

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/moriware/rncreate/internal/logger"
	"github.com/moriware/rncreate/internal/style"
	"github.com/moriware/rncreate/internal/templates"
)

// Config describes how one artifact kind is generated. It is built once and
// shared read-only.
type Config struct {
	Label           string
	Style           style.Style
	ResolveBasePath func(name string) string
	BuildFiles      func(name string) []templates.File
	IndexKind       Kind // empty: no barrel file
	SuccessMessage  func(name string) string
}

// Result lists what a Generate call wrote.
type Result struct {
	BasePath string
	Files    []string // paths relative to BasePath, in write order
}

// Generator runs the generation steps for one Config.
type Generator struct {
	cfg   Config
	stage *Stage
}

// NewGenerator binds cfg to the filesystem stage it writes through.
func NewGenerator(cfg Config, stage *Stage) *Generator {
	if cfg.Style == nil {
		cfg.Style = style.Plain
	}
	return &Generator{cfg: cfg, stage: stage}
}

// Label is the menu text for this generator.
func (g *Generator) Label() string { return g.cfg.Label }

// Style is the color used for this generator's progress lines.
func (g *Generator) Style() style.Style { return g.cfg.Style }

// BasePath returns the directory name's files are written to.
func (g *Generator) BasePath(name string) string { return g.cfg.ResolveBasePath(name) }

// Generate writes every file for name, then the barrel file when the config
// declares one, then prints the success message. Steps run in order and stop
// at the first error or once ctx is cancelled; earlier writes are not
// undone.
func (g *Generator) Generate(ctx context.Context, name string) (*Result, error) {
	basePath := g.cfg.ResolveBasePath(name)
	g.stage.logger().Debug("base path resolved", zap.String(logger.FieldName, name), zap.String(logger.FieldPath, basePath))

	if err := g.stage.EnsureDirectory(ctx, basePath, g.cfg.Style); err != nil {
		return nil, err
	}

	result := &Result{BasePath: basePath}
	for _, f := range g.cfg.BuildFiles(name) {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		path := filepath.Join(basePath, f.Filename)
		if err := g.stage.GenerateFile(ctx, path, f.Content, f.Message, g.cfg.Style); err != nil {
			return result, err
		}
		result.Files = append(result.Files, f.Filename)
	}

	if g.cfg.IndexKind != "" {
		if err := g.stage.CreateIndexFile(ctx, basePath, name, g.cfg.IndexKind, g.cfg.Style); err != nil {
			return result, err
		}
		result.Files = append(result.Files, IndexFileName)
	}

	if g.cfg.SuccessMessage != nil {
		g.stage.Reporter.Println(g.cfg.SuccessMessage(name), style.Success)
	}
	return result, nil
}
