package ui

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"

	"scaffix/internal/config"
	"scaffix/internal/discovery"
	"scaffix/internal/domain"
	"scaffix/internal/fsys"
	"scaffix/internal/repair"
)

func newTestFormatter(t *testing.T, m *fsys.Mem) (*Formatter, *bytes.Buffer) {
	t.Helper()
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	cfg := config.New()
	cfg.ProjectPath = "/proj"
	f := NewFormatter(cfg, discovery.NewParser(m))
	var buf bytes.Buffer
	f.SetOutput(&buf)
	return f, &buf
}

func lines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func TestGenerateReporter(t *testing.T) {
	f, buf := newTestFormatter(t, fsys.NewMem())
	r := f.GenerateReporter()

	r.Report(domain.Outcome{Path: "tests/ui/MainWindowTest.h", Action: domain.ActionGenerated})
	r.Report(domain.Outcome{Path: "tests/ui/MainWindowTest.cpp", Action: domain.ActionSkipped})
	r.Report(domain.Outcome{Path: "tests/ui/X.cpp", Action: domain.ActionFailed, Error: "i/o failure"})
	f.PrintGenerateSummary(domain.Summary{Generated: 1, Skipped: 1, Failed: 1}, false)

	want := []string{
		"[+] Generated: tests/ui/MainWindowTest.h",
		"[-] Skipped (exists): tests/ui/MainWindowTest.cpp",
		"[!] Error writing tests/ui/X.cpp: i/o failure",
		"",
		"Total files generated: 1 (skipped: 1)",
		"Failed: 1",
	}
	if diff := cmp.Diff(want, lines(buf)); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestPatchReporter(t *testing.T) {
	f, buf := newTestFormatter(t, fsys.NewMem())
	r := f.PatchReporter()

	r.Report(domain.Outcome{Path: "a/BackupTaskTest.cpp", Action: domain.ActionFixed})
	r.Report(domain.Outcome{Path: "a/ConfigTest.cpp", Action: domain.ActionUnchanged})
	r.Report(domain.Outcome{Path: "a/LockedTest.cpp", Action: domain.ActionFailed, Error: "file access denied"})
	f.PrintPatchSummary(domain.Summary{Fixed: 1, Unchanged: 1, Failed: 1}, true)

	want := []string{
		"[+] Fixed a/BackupTaskTest.cpp",
		"[-] No changes needed for a/ConfigTest.cpp",
		"[!] Error fixing a/LockedTest.cpp: file access denied",
		"",
		"Dry run: nothing was written",
		"Summary: Fixed 1/3 files",
		"Failed: 1",
	}
	if diff := cmp.Diff(want, lines(buf)); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintRepair(t *testing.T) {
	tests := []struct {
		name  string
		print func(f *Formatter)
		want  string
	}{
		{
			name:  "repaired",
			print: func(f *Formatter) { f.PrintRepairResult(repair.Result{Path: "t/BackupManagerTest.cpp", Replacements: 1}) },
			want:  "✓ Repaired BackupManagerTest.cpp (1 replacement(s))",
		},
		{
			name:  "nothing to do",
			print: func(f *Formatter) { f.PrintRepairResult(repair.Result{Path: "t/BackupManagerTest.cpp"}) },
			want:  "[-] No changes needed for BackupManagerTest.cpp",
		},
		{
			name: "locked",
			print: func(f *Formatter) {
				err := &domain.FileError{Path: "t/B.cpp", Err: fmt.Errorf("%w: busy", domain.ErrAccessDenied)}
				f.PrintRepairError("t/B.cpp", err)
			},
			want: "✗ Access denied: t/B.cpp is locked or read-only",
		},
		{
			name: "other",
			print: func(f *Formatter) {
				f.PrintRepairError("t/B.cpp", &domain.FileError{Path: "t/B.cpp", Err: domain.ErrIO})
			},
			want: "✗ Error: t/B.cpp: i/o failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, buf := newTestFormatter(t, fsys.NewMem())
			tt.print(f)
			if got := lines(buf)[0]; got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestPrintRepairError_Guidance(t *testing.T) {
	f, buf := newTestFormatter(t, fsys.NewMem())
	f.PrintRepairError("t/B.cpp", domain.ErrAccessDenied)
	if !strings.Contains(buf.String(), "Close every program") {
		t.Errorf("locked file message should tell the user what to do, got:\n%s", buf)
	}
}

func TestPrintTestList(t *testing.T) {
	m := fsys.NewMem()
	m.Put("/proj/tests/ui/MainWindowTest.h", `class MainWindowTest : public TestBase
{
    Q_OBJECT

private slots:
    void testCreate();
    void testShow();
};
`)
	m.Put("/proj/tests/ui/EmptyTest.h", "class EmptyTest {};\n")

	f, buf := newTestFormatter(t, m)
	f.PrintTestList([]string{
		filepath.FromSlash("/proj/tests/ui/EmptyTest.h"),
		filepath.FromSlash("/proj/tests/ui/MainWindowTest.h"),
	}, true)

	want := []string{
		"Found 2 test class(es):",
		"",
		"├── tests/ui/EmptyTest.h",
		"│   └── (no test cases found)",
		"└── tests/ui/MainWindowTest.h",
		"    ├── testCreate",
		"    └── testShow",
	}
	if diff := cmp.Diff(want, lines(buf)); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}

	total, err := f.CountTestCases([]string{"/proj/tests/ui/MainWindowTest.h", "/proj/tests/ui/EmptyTest.h"})
	if err != nil || total != 2 {
		t.Errorf("expected 2 test cases, got %d (%v)", total, err)
	}
}

func TestPrintReport_FailedTree(t *testing.T) {
	f, buf := newTestFormatter(t, fsys.NewMem())
	report := domain.NewRunReport("patch", "tests", []domain.Outcome{
		{Path: filepath.FromSlash("tests/unit/core/BackupManagerTest.cpp"), Action: domain.ActionFailed, Error: "file access denied"},
		{Path: filepath.FromSlash("tests/ui/MainWindowTest.cpp"), Action: domain.ActionFixed},
	}, 0)

	f.PrintReport(report)
	out := buf.String()

	for _, want := range []string{
		"Last patch run",
		"✗ 1 file(s) failed",
		"└── unit\n",
		"    └── core\n",
		"        └── BackupManagerTest.cpp\n",
		"            └── file access denied\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "MainWindowTest") {
		t.Error("successful files should not appear in the failure tree")
	}
}

func TestFilterOutcomes(t *testing.T) {
	outcomes := []domain.Outcome{
		{Path: "a", Action: domain.ActionFixed},
		{Path: "b", Action: domain.ActionFailed},
	}
	if got := filterOutcomes(outcomes, false); len(got) != 2 {
		t.Errorf("expected all outcomes, got %v", got)
	}
	got := filterOutcomes(outcomes, true)
	if len(got) != 1 || got[0].Path != "b" {
		t.Errorf("expected only the failure, got %v", got)
	}
}
