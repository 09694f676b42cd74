package commands

import (
	"scaffix/internal/cli"
	"scaffix/internal/config"
	"scaffix/internal/discovery"
	"scaffix/internal/fsys"
	"scaffix/internal/repair"
	"scaffix/internal/storage"
	"scaffix/internal/ui"

	"github.com/spf13/cobra"
)

// Tool names, also used as report file names
const (
	ToolGenerate = "generate"
	ToolPatch    = "patch"
	ToolRepair   = "repair"
)

// Commands holds all CLI commands
type Commands struct {
	Generate *GenerateCommand
	Patch    *PatchCommand
	Repair   *RepairCommand
	List     *ListCommand
	Report   *ReportCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	return newCommands(cfg, fsys.NewOS())
}

func newCommands(cfg *config.Config, files fsys.FS) *Commands {
	filter := discovery.NewFilter()
	headerParser := discovery.NewParser(files)
	jsonStorage := storage.NewJSONStorage(cfg, files)
	formatter := ui.NewFormatter(cfg, headerParser)
	reportViewer := ui.NewReportViewer()

	return &Commands{
		Generate: NewGenerateCommand(cfg, files, jsonStorage, formatter),
		Patch:    NewPatchCommand(cfg, files, jsonStorage, formatter),
		Repair:   NewRepairCommand(cfg, files, jsonStorage, formatter),
		List:     NewListCommand(cfg, files, filter, formatter),
		Report:   NewReportCommand(cfg, jsonStorage, formatter, reportViewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Config is loaded once flags are parsed: defaults, config file, .env, flags
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(flags.ToConfigFlags())
		if err != nil {
			return err
		}
		*cfg = *loaded
		return nil
	}
	rootCmd.PersistentFlags().StringVarP(&flags.TestRoot, "test-root", "t", "", "Root of the test tree (default \"tests\")")
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Print diagnostic logs to stderr")

	// Generate command
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate missing test class skeletons",
		Long:  "Create a header and an implementation file for every test class in the generation table (built-in or --spec). Existing files are never overwritten.",
		Args:  cobra.NoArgs,
		RunE:  c.Generate.Execute,
	}
	generateCmd.Flags().StringVarP(&flags.SpecFile, "spec", "s", "", "YAML spec file (default: built-in table)")
	generateCmd.Flags().BoolVarP(&flags.DryRun, "dry-run", "n", false, "Show what would be generated without writing")
	rootCmd.AddCommand(generateCmd)

	// Patch command
	patchCmd := &cobra.Command{
		Use:   "patch",
		Short: "Rewrite test sources to follow renamed APIs",
		Long:  "Apply the ordered substitution rules to every test source under the test root",
		Args:  cobra.NoArgs,
		RunE:  c.Patch.Execute,
	}
	patchCmd.Flags().StringVarP(&flags.RulesFile, "rules", "r", "", "YAML rules file (default: built-in rules)")
	patchCmd.Flags().BoolVarP(&flags.DryRun, "dry-run", "n", false, "Show what would change without writing")
	patchCmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Show a progress bar instead of one line per file")
	patchCmd.Flags().BoolVar(&flags.AllowBehavioral, "allow-behavioral", false, "Also apply rules that change behavior rather than rename")
	rootCmd.AddCommand(patchCmd)

	// Repair command
	repairCmd := &cobra.Command{
		Use:   "repair",
		Short: "Repair a known malformed snippet",
		Long:  "Replace one literal snippet in one file. Does nothing when the snippet is already gone.",
		Args:  cobra.NoArgs,
		RunE:  c.Repair.Execute,
	}
	repairCmd.Flags().StringVarP(&flags.RepairFile, "file", "f", "", "File to repair (default <test-root>/"+repair.DefaultFile+")")
	repairCmd.Flags().StringVar(&flags.OldFile, "old-file", "", "File holding the snippet to replace")
	repairCmd.Flags().StringVar(&flags.NewFile, "new-file", "", "File holding the replacement snippet")
	repairCmd.MarkFlagsRequiredTogether("old-file", "new-file")
	rootCmd.AddCommand(repairCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List test classes in the test tree",
		Long:  "Scan the test tree for test class headers without modifying anything",
		Args:  cobra.NoArgs,
		RunE:  c.List.Execute,
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter by file name pattern (supports wildcards, e.g. '*Manager*')")
	listCmd.Flags().BoolVarP(&flags.TestCases, "test-cases", "c", false, "Also list the declared test cases")
	rootCmd.AddCommand(listCmd)

	// Report command
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Show the report of the last run",
		Long:  "Display the stored report of the last generate, patch or repair run",
		Args:  cobra.NoArgs,
		RunE:  c.Report.Execute,
	}
	reportCmd.Flags().StringVar(&flags.Tool, "tool", ToolPatch, "Tool whose report to show (generate, patch, repair)")
	reportCmd.Flags().BoolVarP(&flags.Interactive, "interactive", "i", false, "Browse the outcomes in an interactive viewer")
	rootCmd.AddCommand(reportCmd)
}
