package scaffold

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/moriware/rncreate/internal/logger"
	"github.com/moriware/rncreate/internal/progress"
	"github.com/moriware/rncreate/internal/style"
)

// IndexFileName is the barrel file written next to component, screen and
// hook artifacts.
const IndexFileName = "index.ts"

const (
	dirPerm  = 0755
	filePerm = 0644
)

// Stage performs the filesystem side of generation and reports each step.
type Stage struct {
	Fs       afero.Fs
	Reporter *progress.Reporter
	Log      *zap.Logger
}

// EnsureDirectory creates basePath and any missing parents. An existing
// directory is reported and left alone.
func (s *Stage) EnsureDirectory(ctx context.Context, basePath string, st style.Style) error {
	exists, err := afero.Exists(s.Fs, basePath)
	if err != nil {
		return fmt.Errorf("checking %s: %w", basePath, err)
	}
	if exists {
		s.Reporter.Step(ctx, "Directory found, updating files", st)
		return nil
	}

	s.Reporter.Step(ctx, "Creating base directory", st)
	if err := s.Fs.MkdirAll(basePath, dirPerm); err != nil {
		return fmt.Errorf("creating directory %s: %w", basePath, err)
	}
	s.logger().Debug("directory created", zap.String(logger.FieldPath, basePath))
	return nil
}

// GenerateFile reports message, then writes content to path, replacing any
// existing file.
func (s *Stage) GenerateFile(ctx context.Context, path, content, message string, st style.Style) error {
	s.Reporter.Step(ctx, message, st)
	if err := afero.WriteFile(s.Fs, path, []byte(content), filePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	s.logger().Debug("file written", zap.String(logger.FieldPath, path), zap.Int("bytes", len(content)))
	return nil
}

// CreateIndexFile writes the barrel file re-exporting the artifact's main
// module and its types.
func (s *Stage) CreateIndexFile(ctx context.Context, basePath, name string, kind Kind, st style.Style) error {
	content := IndexContent(name, kind)
	s.Reporter.Step(ctx, "Linking exports in "+IndexFileName, st)

	path := filepath.Join(basePath, IndexFileName)
	if err := afero.WriteFile(s.Fs, path, []byte(content), filePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	s.logger().Debug("index written", zap.String(logger.FieldPath, path), zap.String(logger.FieldKind, string(kind)))
	return nil
}

// IndexContent renders the two re-export lines of a barrel file.
func IndexContent(name string, kind Kind) string {
	return fmt.Sprintf("export * from './%s%s';\nexport * from './%sTypes';\n",
		name, indexSuffix(kind), name)
}

func (s *Stage) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}
