package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"scaffix/internal/config"
	"scaffix/internal/domain"
	"scaffix/internal/fsys"
	"scaffix/internal/logging"
	"scaffix/internal/repair"
	"scaffix/internal/storage"
	"scaffix/internal/ui"
)

// RepairCommand handles the repair command
type RepairCommand struct {
	config    *config.Config
	fs        fsys.FS
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewRepairCommand creates a new RepairCommand
func NewRepairCommand(cfg *config.Config, fs fsys.FS, st storage.Storage, formatter *ui.Formatter) *RepairCommand {
	return &RepairCommand{
		config:    cfg,
		fs:        fs,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (rc *RepairCommand) Execute(cmd *cobra.Command, args []string) error {
	logger := logging.New(rc.config.Flags.Verbose)
	defer logger.Sync()

	fix, err := rc.fix()
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := repair.Run(rc.fs, fix, logger)

	outcome := domain.Outcome{Path: fix.Path, Action: domain.ActionUnchanged}
	switch {
	case err != nil:
		outcome.Action = domain.ActionFailed
		outcome.Error = err.Error()
		rc.formatter.PrintRepairError(fix.Path, err)
	case res.Changed():
		outcome.Action = domain.ActionFixed
		rc.formatter.PrintRepairResult(res)
	default:
		rc.formatter.PrintRepairResult(res)
	}

	report := domain.NewRunReport(ToolRepair, rc.config.GetTestRoot(), []domain.Outcome{outcome}, time.Since(start))
	if saveErr := rc.storage.Save(report); saveErr != nil {
		return fmt.Errorf("failed to save report: %w", saveErr)
	}
	return err
}

// fix builds the repair to run: the built-in snippet unless snippet files are
// given, against the default file unless --file is given
func (rc *RepairCommand) fix() (repair.Fix, error) {
	fix := repair.Default(rc.config.GetTestRoot())
	if path := rc.config.Flags.RepairFile; path != "" {
		fix.Path = path
	}

	if rc.config.Flags.OldFile == "" && rc.config.Flags.NewFile == "" {
		return fix, nil
	}

	old, err := rc.fs.ReadFile(rc.config.Flags.OldFile)
	if err != nil {
		return fix, fmt.Errorf("read old snippet: %w", err)
	}
	replacement, err := rc.fs.ReadFile(rc.config.Flags.NewFile)
	if err != nil {
		return fix, fmt.Errorf("read new snippet: %w", err)
	}
	fix.Old = string(old)
	fix.New = string(replacement)
	return fix, nil
}
