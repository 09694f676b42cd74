package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"scaffix/internal/config"
	"scaffix/internal/discovery"
	"scaffix/internal/fsys"
	"scaffix/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	fs        fsys.FS
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	fs fsys.FS,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		fs:        fs,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	scanner := discovery.NewScanner(lc.fs, lc.config.PathsToIgnore)
	headers, err := scanner.Scan(lc.config.GetTestRoot(), discovery.Selector{
		Extensions: []string{".h"},
		Marker:     lc.config.Marker,
	})
	if err != nil {
		return err
	}

	// Filter headers
	headers = lc.filter.FilterByName(headers, lc.config.Flags.NameFilter)

	if len(headers) == 0 {
		color.Yellow("No test classes found")
		return nil
	}

	lc.formatter.PrintTestList(headers, lc.config.Flags.TestCases)
	return nil
}
