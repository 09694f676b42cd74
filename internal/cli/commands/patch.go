package commands

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"scaffix/internal/config"
	"scaffix/internal/discovery"
	"scaffix/internal/domain"
	"scaffix/internal/fsys"
	"scaffix/internal/logging"
	"scaffix/internal/patch"
	"scaffix/internal/storage"
	"scaffix/internal/ui"
)

// PatchCommand handles the patch command
type PatchCommand struct {
	config    *config.Config
	fs        fsys.FS
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewPatchCommand creates a new PatchCommand
func NewPatchCommand(cfg *config.Config, fs fsys.FS, st storage.Storage, formatter *ui.Formatter) *PatchCommand {
	return &PatchCommand{
		config:    cfg,
		fs:        fs,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (pc *PatchCommand) Execute(cmd *cobra.Command, args []string) error {
	logger := logging.New(pc.config.Flags.Verbose)
	defer logger.Sync()

	rules, err := pc.rules()
	if err != nil {
		return err
	}
	compiled, err := patch.Compile(rules)
	if err != nil {
		return err
	}
	logger.Debug("rules selected", zap.Int("count", len(compiled)), zap.Bool("behavioral", pc.config.Flags.AllowBehavioral))

	root := pc.config.GetTestRoot()
	dryRun := pc.config.Flags.DryRun
	opts := []patch.Option{patch.WithLogger(logger), patch.WithDryRun(dryRun)}

	var bar *ui.ProgressBar
	if pc.config.Flags.Quiet {
		bar = ui.NewProgressBar()
		opts = append(opts, patch.WithReporter(bar), patch.WithProgress(bar.Update))
	} else {
		opts = append(opts, patch.WithReporter(pc.formatter.PatchReporter()))
	}

	scanner := discovery.NewScanner(pc.fs, pc.config.PathsToIgnore)
	patcher := patch.New(pc.fs, scanner, compiled, opts...)

	start := time.Now()
	res, err := patcher.Run(root, discovery.Selector{Extensions: pc.config.Extensions, Marker: pc.config.Marker})
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}
	if res.Summary.Total() == 0 {
		color.Yellow("No test sources found under %s", root)
	}
	pc.formatter.PrintPatchSummary(res.Summary, dryRun)

	report := domain.NewRunReport(ToolPatch, root, res.Outcomes, time.Since(start))
	report.DryRun = dryRun
	if err := pc.storage.Save(report); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	if res.Summary.Failed > 0 {
		return fmt.Errorf("%w: %d of %d files", domain.ErrBatchFailed, res.Summary.Failed, res.Summary.Total())
	}
	return nil
}

// rules returns the rule list to run: the rules file if configured, the
// built-in table otherwise, filtered by the behavioral switch
func (pc *PatchCommand) rules() ([]domain.Rule, error) {
	rules := patch.AllRules()
	if file := pc.config.GetRulesFile(); file != "" {
		loaded, err := patch.LoadRules(pc.fs, file)
		if err != nil {
			return nil, err
		}
		rules = loaded
	}
	return patch.Select(rules, pc.config.Flags.AllowBehavioral), nil
}
