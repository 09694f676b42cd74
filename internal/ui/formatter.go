package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"

	"scaffix/internal/config"
	"scaffix/internal/discovery"
	"scaffix/internal/domain"
	"scaffix/internal/repair"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
	cyan   = color.New(color.FgCyan)
	white  = color.New(color.FgWhite)
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	parser *discovery.Parser
	out    io.Writer
}

// NewFormatter creates a new Formatter writing to stdout
func NewFormatter(cfg *config.Config, parser *discovery.Parser) *Formatter {
	return &Formatter{
		config: cfg,
		parser: parser,
		out:    os.Stdout,
	}
}

// SetOutput redirects all output to w
func (f *Formatter) SetOutput(w io.Writer) {
	f.out = w
}

// GenerateReporter prints one line per generated or skipped file
func (f *Formatter) GenerateReporter() domain.Reporter {
	return domain.ReporterFunc(func(o domain.Outcome) {
		switch o.Action {
		case domain.ActionGenerated:
			green.Fprintf(f.out, "[+] Generated: %s\n", o.Path)
		case domain.ActionSkipped:
			yellow.Fprintf(f.out, "[-] Skipped (exists): %s\n", o.Path)
		case domain.ActionFailed:
			red.Fprintf(f.out, "[!] Error writing %s: %s\n", o.Path, o.Error)
		}
	})
}

// PatchReporter prints one line per scanned file
func (f *Formatter) PatchReporter() domain.Reporter {
	return domain.ReporterFunc(func(o domain.Outcome) {
		switch o.Action {
		case domain.ActionFixed:
			green.Fprintf(f.out, "[+] Fixed %s\n", o.Path)
		case domain.ActionUnchanged:
			fmt.Fprintf(f.out, "[-] No changes needed for %s\n", o.Path)
		case domain.ActionFailed:
			red.Fprintf(f.out, "[!] Error fixing %s: %s\n", o.Path, o.Error)
		}
	})
}

// PrintWarnings prints non-fatal spec problems
func (f *Formatter) PrintWarnings(warnings []string) {
	for _, w := range warnings {
		yellow.Fprintf(f.out, "warning: %s\n", w)
	}
}

// PrintGenerateSummary prints the closing line of a generate run
func (f *Formatter) PrintGenerateSummary(s domain.Summary, dryRun bool) {
	fmt.Fprintln(f.out)
	if dryRun {
		cyan.Fprintln(f.out, "Dry run: nothing was written")
	}
	green.Fprintf(f.out, "Total files generated: %d (skipped: %d)\n", s.Generated, s.Skipped)
	if s.Failed > 0 {
		red.Fprintf(f.out, "Failed: %d\n", s.Failed)
	}
}

// PrintPatchSummary prints the closing line of a patch run
func (f *Formatter) PrintPatchSummary(s domain.Summary, dryRun bool) {
	fmt.Fprintln(f.out)
	if dryRun {
		cyan.Fprintln(f.out, "Dry run: nothing was written")
	}
	c := green
	if s.Failed > 0 {
		c = red
	}
	c.Fprintf(f.out, "Summary: Fixed %d/%d files\n", s.Fixed, s.Total())
	if s.Failed > 0 {
		red.Fprintf(f.out, "Failed: %d\n", s.Failed)
	}
}

// PrintRepairResult prints the outcome of a successful repair run
func (f *Formatter) PrintRepairResult(res repair.Result) {
	name := filepath.Base(res.Path)
	if res.Changed() {
		green.Fprintf(f.out, "✓ Repaired %s (%d replacement(s))\n", name, res.Replacements)
		return
	}
	fmt.Fprintf(f.out, "[-] No changes needed for %s\n", name)
}

// PrintRepairError prints a categorized repair failure. A locked file gets
// remediation guidance.
func (f *Formatter) PrintRepairError(path string, err error) {
	if errors.Is(err, domain.ErrAccessDenied) {
		red.Fprintf(f.out, "✗ Access denied: %s is locked or read-only\n", path)
		fmt.Fprintln(f.out, "  Close every program that has the file open (IDE, compiler, test runner) and try again")
		return
	}
	red.Fprintf(f.out, "✗ Error: %v\n", err)
}

// PrintTestList prints the given headers as a tree, optionally with the test
// cases each one declares.
func (f *Formatter) PrintTestList(headers []string, showTestCases bool) {
	green.Fprintf(f.out, "Found %d test class(es):\n\n", len(headers))

	for i, header := range headers {
		isLastFile := i == len(headers)-1
		if isLastFile {
			cyan.Fprintf(f.out, "└── %s\n", f.relative(header))
		} else {
			cyan.Fprintf(f.out, "├── %s\n", f.relative(header))
		}
		if !showTestCases {
			continue
		}

		childPrefix := "│   "
		if isLastFile {
			childPrefix = "    "
		}

		class, err := f.parser.ParseClass(header)
		if err != nil {
			fmt.Fprintf(f.out, "%s└── %s\n", childPrefix, red.Sprintf("error: %v", err))
			continue
		}
		if len(class.TestCases) == 0 {
			fmt.Fprintf(f.out, "%s└── %s\n", childPrefix, red.Sprint("(no test cases found)"))
			continue
		}
		for j, testCase := range class.TestCases {
			connector := "├── "
			if j == len(class.TestCases)-1 {
				connector = "└── "
			}
			fmt.Fprintf(f.out, "%s%s%s\n", childPrefix, connector, yellow.Sprint(testCase))
		}
	}
}

// CountTestCases returns the total number of test cases declared in headers.
func (f *Formatter) CountTestCases(headers []string) (int, error) {
	var total int
	for _, header := range headers {
		cases, err := f.parser.FindTestCases(header)
		if err != nil {
			return 0, err
		}
		total += len(cases)
	}
	return total, nil
}

// PrintReport prints a stored run report: a stats table, then the failed
// files as a directory tree.
func (f *Formatter) PrintReport(r *domain.RunReport) {
	fmt.Fprintln(f.out)
	cyan.Fprintf(f.out, "Last %s run\n\n", r.Tool)

	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")
	rows := []struct {
		label string
		value string
		c     *color.Color
	}{
		{"Root", r.Root, white},
		{"Generated", fmt.Sprint(r.Summary.Generated), green},
		{"Skipped (exists)", fmt.Sprint(r.Summary.Skipped), yellow},
		{"Fixed", fmt.Sprint(r.Summary.Fixed), green},
		{"Unchanged", fmt.Sprint(r.Summary.Unchanged), white},
		{"Failed", fmt.Sprint(r.Summary.Failed), red},
		{"Duration", r.Duration, white},
		{"Timestamp", r.Timestamp, white},
	}
	for i, row := range rows {
		fmt.Fprintf(f.out, "│ %-31s │ ", row.label)
		row.c.Fprintf(f.out, "%-27s", row.value)
		fmt.Fprintln(f.out, " │")
		if i < len(rows)-1 {
			fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
		}
	}
	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Fprintln(f.out)
	if r.DryRun {
		cyan.Fprintln(f.out, "(dry run)")
	}
	if r.Summary.Failed == 0 {
		green.Fprintln(f.out, "✓ No failures")
		return
	}
	red.Fprintf(f.out, "✗ %d file(s) failed\n", r.Summary.Failed)
	fmt.Fprintln(f.out)
	f.printFailedTree(r)
}

// TreeNode represents a node in the file tree structure
type TreeNode struct {
	Name     string
	Children map[string]*TreeNode
	Error    string
	IsFile   bool
}

func (f *Formatter) printFailedTree(r *domain.RunReport) {
	root := &TreeNode{Children: make(map[string]*TreeNode)}

	for _, o := range r.Outcomes {
		if o.Action != domain.ActionFailed {
			continue
		}
		path := o.Path
		if rel, err := filepath.Rel(r.Root, o.Path); err == nil && !strings.HasPrefix(rel, "..") {
			path = rel
		}
		parts := strings.Split(filepath.ToSlash(path), "/")
		current := root
		for i, part := range parts {
			if part == "" || part == "." {
				continue
			}
			if current.Children[part] == nil {
				current.Children[part] = &TreeNode{
					Name:     part,
					Children: make(map[string]*TreeNode),
					IsFile:   i == len(parts)-1,
				}
			}
			current = current.Children[part]
			if i == len(parts)-1 {
				current.Error = o.Error
			}
		}
	}

	f.printTreeNode(root, "")
}

func (f *Formatter) printTreeNode(node *TreeNode, prefix string) {
	keys := make([]string, 0, len(node.Children))
	for key := range node.Children {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for i, key := range keys {
		child := node.Children[key]
		isLast := i == len(keys)-1

		connector, nextPrefix := "├── ", "│   "
		if isLast {
			connector, nextPrefix = "└── ", "    "
		}

		if child.IsFile {
			yellow.Fprintf(f.out, "%s%s%s\n", prefix, connector, child.Name)
			if child.Error != "" {
				red.Fprintf(f.out, "%s%s%s\n", prefix+nextPrefix, "└── ", child.Error)
			}
		} else {
			cyan.Fprintf(f.out, "%s%s%s\n", prefix, connector, child.Name)
		}
		f.printTreeNode(child, prefix+nextPrefix)
	}
}

func (f *Formatter) relative(path string) string {
	if rel, err := filepath.Rel(f.config.ProjectPath, path); err == nil && !strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(rel)
	}
	return path
}
