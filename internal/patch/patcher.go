package patch

import (
	"go.uber.org/zap"

	"scaffix/internal/discovery"
	"scaffix/internal/domain"
	"scaffix/internal/fsys"
)

// Patcher applies compiled rules to every selected file under a root
type Patcher struct {
	fs       fsys.FS
	scanner  *discovery.Scanner
	rules    []Compiled
	logger   *zap.Logger
	reporter domain.Reporter
	progress func(done, total int)
	dryRun   bool
}

// Option configures a Patcher
type Option func(*Patcher)

// WithLogger sets the diagnostic logger
func WithLogger(l *zap.Logger) Option {
	return func(p *Patcher) { p.logger = l }
}

// WithReporter receives one outcome per file as the run progresses
func WithReporter(r domain.Reporter) Option {
	return func(p *Patcher) { p.reporter = r }
}

// WithProgress is called after each file with the running count
func WithProgress(fn func(done, total int)) Option {
	return func(p *Patcher) { p.progress = fn }
}

// WithDryRun computes outcomes without writing
func WithDryRun(dryRun bool) Option {
	return func(p *Patcher) { p.dryRun = dryRun }
}

// New creates a Patcher. Files are never created or deleted, only rewritten.
func New(fs fsys.FS, scanner *discovery.Scanner, rules []Compiled, opts ...Option) *Patcher {
	p := &Patcher{
		fs:       fs,
		scanner:  scanner,
		rules:    rules,
		logger:   zap.NewNop(),
		reporter: domain.Discard,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Result is the outcome of one patch run
type Result struct {
	Outcomes []domain.Outcome
	Summary  domain.Summary
}

// Run patches every file under root selected by sel. Only an unusable root is
// an error; a failure on one file or directory is recorded and the batch
// continues.
func (p *Patcher) Run(root string, sel discovery.Selector) (*Result, error) {
	scan, err := p.scanner.Walk(root, sel)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	for _, u := range scan.Unreadable {
		o := p.failed(u.Path, u.Err)
		res.Outcomes = append(res.Outcomes, o)
		res.Summary.Add(o)
		p.reporter.Report(o)
	}

	files := scan.Files
	for i, path := range files {
		o := p.patchFile(path)
		res.Outcomes = append(res.Outcomes, o)
		res.Summary.Add(o)
		p.reporter.Report(o)
		if p.progress != nil {
			p.progress(i+1, len(files))
		}
	}
	return res, nil
}

func (p *Patcher) patchFile(path string) domain.Outcome {
	content, err := p.fs.ReadFile(path)
	if err != nil {
		return p.failed(path, err)
	}

	original := string(content)
	patched := Apply(original, p.rules)
	if patched == original {
		p.logger.Debug("no changes needed", zap.String("path", path))
		return domain.Outcome{Path: path, Action: domain.ActionUnchanged}
	}

	if !p.dryRun {
		if err := p.fs.WriteFile(path, []byte(patched)); err != nil {
			return p.failed(path, err)
		}
	}

	p.logger.Debug("patched file", zap.String("path", path), zap.Bool("dry_run", p.dryRun))
	return domain.Outcome{Path: path, Action: domain.ActionFixed}
}

func (p *Patcher) failed(path string, err error) domain.Outcome {
	err = fsys.Classify(err)
	p.logger.Error("patch file failed", zap.String("path", path), zap.Error(err))
	return domain.Outcome{Path: path, Action: domain.ActionFailed, Error: err.Error()}
}
