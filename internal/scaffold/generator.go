// Package scaffold materializes test class skeletons from a spec. Existing
// files are never touched: once a file exists it belongs to whoever edits it.
package scaffold

import (
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"scaffix/internal/domain"
	"scaffix/internal/fsys"
	"scaffix/internal/render"
	"scaffix/internal/spec"
)

// Generator writes header/implementation pairs for every spec entry
type Generator struct {
	fs       fsys.FS
	layout   render.Layout
	logger   *zap.Logger
	reporter domain.Reporter
	dryRun   bool
}

// Option configures a Generator
type Option func(*Generator)

// WithLayout overrides the render layout
func WithLayout(l render.Layout) Option {
	return func(g *Generator) { g.layout = l }
}

// WithLogger sets the diagnostic logger
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// WithReporter receives one outcome per file as the run progresses
func WithReporter(r domain.Reporter) Option {
	return func(g *Generator) { g.reporter = r }
}

// WithDryRun reports what would be generated without touching the file system
func WithDryRun(dryRun bool) Option {
	return func(g *Generator) { g.dryRun = dryRun }
}

// New creates a Generator over fs
func New(fs fsys.FS, opts ...Option) *Generator {
	g := &Generator{
		fs:       fs,
		layout:   render.DefaultLayout,
		logger:   zap.NewNop(),
		reporter: domain.Discard,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Result is the outcome of one generation run
type Result struct {
	Outcomes []domain.Outcome
	Summary  domain.Summary
	Warnings []string
}

// Generate validates s and writes every missing file under root. A validation
// error aborts before anything is created. Per-file failures are recorded in
// the result and do not stop the run.
func (g *Generator) Generate(s spec.Spec, root string) (*Result, error) {
	warnings, err := s.Validate()
	res := &Result{Warnings: warnings}
	for _, w := range warnings {
		g.logger.Warn("spec warning", zap.String("detail", w))
	}
	if err != nil {
		return res, err
	}

	for _, entry := range s.Entries() {
		dir := filepath.Join(root, filepath.FromSlash(string(entry.Category)))

		var mkdirErr error
		if !g.dryRun {
			mkdirErr = g.fs.MkdirAll(dir)
		}

		for _, kind := range []domain.FileKind{domain.Header, domain.Implementation} {
			path := filepath.Join(dir, render.FileName(entry.Descriptor.Name, kind))

			var o domain.Outcome
			if mkdirErr != nil {
				o = g.failed(path, fmt.Errorf("create category directory: %w", mkdirErr))
			} else {
				o = g.generateFile(path, entry.Category, entry.Descriptor, kind)
			}

			res.Outcomes = append(res.Outcomes, o)
			res.Summary.Add(o)
			g.reporter.Report(o)
		}
	}

	return res, nil
}

func (g *Generator) generateFile(path string, category domain.Category, d domain.TestClassDescriptor, kind domain.FileKind) domain.Outcome {
	file := domain.GeneratedFile{
		Category: category,
		Name:     d.Name,
		Kind:     kind,
		Content:  g.layout.Render(d, kind),
	}

	err := g.create(path, file)
	switch {
	case errors.Is(err, domain.ErrPathExists):
		g.logger.Debug("skip existing file", zap.String("path", path))
		return domain.Outcome{Path: path, Action: domain.ActionSkipped}
	case err != nil:
		return g.failed(path, err)
	}

	g.logger.Debug("generated file",
		zap.String("path", path),
		zap.Stringer("kind", kind),
		zap.Int("test_cases", len(d.Tests)),
		zap.Bool("dry_run", g.dryRun),
	)
	return domain.Outcome{Path: path, Action: domain.ActionGenerated}
}

// create writes file to path unless something is already there, in which case
// it returns domain.ErrPathExists
func (g *Generator) create(path string, file domain.GeneratedFile) error {
	exists, err := g.fs.Exists(path)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", domain.ErrPathExists, path)
	}
	if g.dryRun {
		return nil
	}
	return g.fs.WriteFile(path, []byte(file.Content))
}

func (g *Generator) failed(path string, err error) domain.Outcome {
	err = fsys.Classify(err)
	g.logger.Error("generate file failed", zap.String("path", path), zap.Error(err))
	return domain.Outcome{Path: path, Action: domain.ActionFailed, Error: err.Error()}
}
