package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"scaffix/internal/config"
	"scaffix/internal/storage"
	"scaffix/internal/ui"
)

// ReportCommand handles the report command
type ReportCommand struct {
	config    *config.Config
	storage   storage.Storage
	formatter *ui.Formatter
	viewer    ui.Viewer
}

// NewReportCommand creates a new ReportCommand
func NewReportCommand(cfg *config.Config, st storage.Storage, formatter *ui.Formatter, viewer ui.Viewer) *ReportCommand {
	return &ReportCommand{
		config:    cfg,
		storage:   st,
		formatter: formatter,
		viewer:    viewer,
	}
}

// Execute runs the command
func (rc *ReportCommand) Execute(cmd *cobra.Command, args []string) error {
	tool := rc.config.Flags.Tool
	switch tool {
	case ToolGenerate, ToolPatch, ToolRepair:
	default:
		return fmt.Errorf("unknown tool %q (want %s, %s or %s)", tool, ToolGenerate, ToolPatch, ToolRepair)
	}

	report, err := rc.storage.Load(tool)
	if err != nil {
		return err
	}

	if rc.config.Flags.Interactive {
		return rc.viewer.View(report)
	}
	rc.formatter.PrintReport(report)
	return nil
}
