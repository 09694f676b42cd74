package cli

import "scaffix/internal/config"

// Flags holds command-line flags
type Flags struct {
	TestRoot        string
	SpecFile        string
	RulesFile       string
	NameFilter      string
	RepairFile      string
	OldFile         string
	NewFile         string
	Tool            string
	DryRun          bool
	Quiet           bool
	Verbose         bool
	AllowBehavioral bool
	TestCases       bool
	Interactive     bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		TestRoot:        f.TestRoot,
		SpecFile:        f.SpecFile,
		RulesFile:       f.RulesFile,
		NameFilter:      f.NameFilter,
		RepairFile:      f.RepairFile,
		OldFile:         f.OldFile,
		NewFile:         f.NewFile,
		Tool:            f.Tool,
		DryRun:          f.DryRun,
		Quiet:           f.Quiet,
		Verbose:         f.Verbose,
		AllowBehavioral: f.AllowBehavioral,
		TestCases:       f.TestCases,
		Interactive:     f.Interactive,
	}
}
