package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vk/cmake2bazel/internal/astgen"
	"github.com/vk/cmake2bazel/internal/cmakeparse"
	"github.com/vk/cmake2bazel/internal/ctxlog"
	"github.com/vk/cmake2bazel/internal/encode"
	"github.com/vk/cmake2bazel/internal/fsutil"
)

// Run executes the convert lifecycle for the configured input path. Each
// discovered file gets its own parser so no variable table or custom
// definition state leaks between documents.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	files, err := fsutil.FindCMakeFiles(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("discovering cmake files: %w", err)
	}
	a.logger.Debug("Discovered CMake files.", "count", len(files))

	if len(files) == 0 {
		a.logger.Warn("No CMake files found, nothing to convert.", "path", cfg.InputPath)
		return nil
	}

	out := a.outW
	if cfg.OutputPath != "" {
		f, err := os.Create(cfg.OutputPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	for _, file := range files {
		if err := a.convertFile(ctx, file, out); err != nil {
			return err
		}
	}

	a.logger.Info("Conversion finished.", "files", len(files))
	return nil
}

func (a *App) convertFile(ctx context.Context, path string, out io.Writer) error {
	parser := cmakeparse.NewWithOptions(cmakeparse.Options{
		BuiltinOverrides: a.settings.Variables,
	})

	record, err := parser.ParseFile(ctx, path)
	if err != nil {
		return err
	}

	tree, err := astgen.Generate(record)
	if err != nil {
		return fmt.Errorf("generating tree for %s: %w", path, err)
	}

	a.reportAdvisories(path, record)

	if err := encode.Tree(out, tree, a.settings.Output); err != nil {
		return fmt.Errorf("writing tree for %s: %w", path, err)
	}

	a.logger.Info("Converted CMake file.",
		"path", path,
		"project", record.Project,
		"targets", len(record.Targets),
	)
	return nil
}
