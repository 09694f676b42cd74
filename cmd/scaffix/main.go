package main

import (
	"fmt"
	"os"

	"scaffix/internal/cli"
	"scaffix/internal/cli/commands"
	"scaffix/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "scaffix",
		Short: "Test tree scaffolding and maintenance",
		Long: `Generate header/implementation test class skeletons from a declarative table,
patch generated tests to follow renamed APIs and repair known malformed snippets.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
