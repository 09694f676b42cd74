package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"scaffix/internal/config"
	"scaffix/internal/domain"
	"scaffix/internal/fsys"
	"scaffix/internal/logging"
	"scaffix/internal/scaffold"
	"scaffix/internal/spec"
	"scaffix/internal/storage"
	"scaffix/internal/ui"
)

// GenerateCommand handles the generate command
type GenerateCommand struct {
	config    *config.Config
	fs        fsys.FS
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewGenerateCommand creates a new GenerateCommand
func NewGenerateCommand(cfg *config.Config, fs fsys.FS, st storage.Storage, formatter *ui.Formatter) *GenerateCommand {
	return &GenerateCommand{
		config:    cfg,
		fs:        fs,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (gc *GenerateCommand) Execute(cmd *cobra.Command, args []string) error {
	logger := logging.New(gc.config.Flags.Verbose)
	defer logger.Sync()

	s := spec.Default()
	if file := gc.config.GetSpecFile(); file != "" {
		loaded, err := spec.Load(gc.fs, file)
		if err != nil {
			return err
		}
		s = loaded
	}

	root := gc.config.GetTestRoot()
	dryRun := gc.config.Flags.DryRun
	generator := scaffold.New(gc.fs,
		scaffold.WithLogger(logger),
		scaffold.WithReporter(gc.formatter.GenerateReporter()),
		scaffold.WithDryRun(dryRun),
	)

	start := time.Now()
	res, err := generator.Generate(s, root)
	if res != nil {
		gc.formatter.PrintWarnings(res.Warnings)
	}
	if err != nil {
		return err
	}
	gc.formatter.PrintGenerateSummary(res.Summary, dryRun)

	report := domain.NewRunReport(ToolGenerate, root, res.Outcomes, time.Since(start))
	report.DryRun = dryRun
	if err := gc.storage.Save(report); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	if res.Summary.Failed > 0 {
		return fmt.Errorf("%w: %d of %d files", domain.ErrBatchFailed, res.Summary.Failed, res.Summary.Total())
	}
	return nil
}
