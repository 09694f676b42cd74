package patch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"scaffix/internal/domain"
	"scaffix/internal/fsys"
)

func ruleNames(rules []domain.Rule) []string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.Name
	}
	return names
}

// The order below is the contract; change it only together with the tests
// that depend on it.
func TestDefaultRules_Order(t *testing.T) {
	expected := []string{
		"restore-verify",
		"restore-include-paths",
		"restore-exclude-paths",
		"restore-verify-key",
		"restore-include-paths-key",
		"restore-exclude-paths-key",
		"task-source-paths",
		"task-exclude-patterns",
		"task-source-paths-key",
		"task-exclude-patterns-key",
		"snapshot-id",
		"fileinfo-is-dir",
		"fileinfo-mtime",
		"fileinfo-file-type",
		"schedule-qualified-type",
		"schedule-type",
		"stats-unique-size",
		"stats-compression-ratio",
		"json-to-long-long",
	}
	if diff := cmp.Diff(expected, ruleNames(DefaultRules())); diff != "" {
		t.Errorf("default rule order changed (-want +got):\n%s", diff)
	}
}

func TestAllRules_IncludesBehavioral(t *testing.T) {
	all := AllRules()
	if len(all) != len(DefaultRules())+2 {
		t.Fatalf("expected 2 behavioral rules, got %d total", len(all))
	}
	for _, r := range all {
		if (r.Name == "schedule-enable-assign" || r.Name == "schedule-enabled-check") != r.Behavioral {
			t.Errorf("unexpected behavioral flag on %s", r.Name)
		}
	}

	all[0].Name = "mutated"
	if AllRules()[0].Name == "mutated" {
		t.Error("AllRules must return a copy")
	}
}

func TestDefaultRules_PatchExample(t *testing.T) {
	input := `void BackupManagerTest::testCreateBackupTask()
{
    task.sources = {"/home"};
    int sourcesCount = 1;
    QCOMPARE(task.excludes.size(), 2);
    json["sources"] = array;
}
`
	expected := `void BackupManagerTest::testCreateBackupTask()
{
    task.sourcePaths = {"/home"};
    int sourcesCount = 1;
    QCOMPARE(task.excludePatterns.size(), 2);
    json["sourcePaths"] = array;
}
`
	got := Apply(input, MustCompile(DefaultRules()))
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("patched text mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultRules_NoDoubleSubstitution(t *testing.T) {
	rules := MustCompile(DefaultRules())

	tests := map[string]string{
		"task.excludes":                      "task.excludePatterns",
		`obj["excludes"]`:                    `obj["excludePatterns"]`,
		"Schedule::ScheduleType::Daily":      "Schedule::Daily",
		"ScheduleType::Weekly":               "Schedule::Weekly",
		"FileType::RegularFile":              "FileType::File",
		`o["size"].toLongLong()`:             `o["size"].toVariant().toLongLong()`,
		`o["size"].toVariant().toLongLong()`: `o["size"].toVariant().toLongLong()`,
		"opts.verifyData":                    "opts.verify",
		"stats.deduplicationRatio":           "stats.compressionRatio",
	}
	for input, want := range tests {
		if got := Apply(input, rules); got != want {
			t.Errorf("Apply(%q) = %q, want %q", input, got, want)
		}
	}
}

// RestoreOptions and BackupTask share the excludePatterns name, so a file
// patched twice ends up with the RestoreOptions spelling. Everything else is
// stable on the second run.
func TestDefaultRules_SecondRunRenamesExcludePatterns(t *testing.T) {
	rules := MustCompile(DefaultRules())
	input := "task.sources << a;\ntask.excludes << b;\njson[\"excludes\"] = c;\n"

	first := Apply(input, rules)
	if want := "task.sourcePaths << a;\ntask.excludePatterns << b;\njson[\"excludePatterns\"] = c;\n"; first != want {
		t.Fatalf("first run: expected %q, got %q", want, first)
	}

	second := Apply(first, rules)
	if want := "task.sourcePaths << a;\ntask.excludePaths << b;\njson[\"excludePaths\"] = c;\n"; second != want {
		t.Errorf("second run: expected %q, got %q", want, second)
	}

	if third := Apply(second, rules); third != second {
		t.Errorf("third run should change nothing, got %q", third)
	}
}

func TestDefaultRules_SkipBehavioral(t *testing.T) {
	input := "schedule.enabled = true;\nif (schedule.enabled) {}\n"

	if got := Apply(input, MustCompile(DefaultRules())); got != input {
		t.Errorf("default rules must leave enabled checks alone, got %q", got)
	}

	want := "schedule.type = Schedule::Daily;\nif (schedule.type != Schedule::None) {}\n"
	if got := Apply(input, MustCompile(AllRules())); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestParseRules(t *testing.T) {
	doc := `
rules:
  - name: rename-a
    pattern: '\.alpha\b'
    replacement: .beta
  - name: guarded
    pattern: .get()
    replacement: .value().get()
    literal: true
    not_after: .value()
`
	rules, err := ParseRules([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []domain.Rule{
		{Name: "rename-a", Pattern: `\.alpha\b`, Replacement: ".beta"},
		{Name: "guarded", Pattern: ".get()", Replacement: ".value().get()", Literal: true, NotAfter: ".value()"},
	}
	if diff := cmp.Diff(expected, rules); diff != "" {
		t.Errorf("rules mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRules_Errors(t *testing.T) {
	tests := map[string]string{
		"unknown field":  "rules:\n  - name: x\n    patern: a\n",
		"invalid regexp": "rules:\n  - name: x\n    pattern: '('\n    replacement: y\n",
		"not yaml":       "rules: [",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseRules([]byte(doc)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadRules(t *testing.T) {
	file := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(file, []byte("rules:\n  - name: a\n    pattern: A\n    replacement: B\n"), 0644); err != nil {
		t.Fatalf("failed to write rules: %v", err)
	}

	rules, err := LoadRules(fsys.NewOS(), file)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rules) != 1 {
		t.Errorf("expected 1 rule, got %d", len(rules))
	}

	if _, err := LoadRules(fsys.NewOS(), filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadRules_Mem(t *testing.T) {
	m := fsys.NewMem()
	m.Put("rules.yaml", "rules:\n  - name: rename\n    pattern: Old\n    replacement: New\n    literal: true\n")

	rules, err := LoadRules(m, "rules.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rules) != 1 || !rules[0].Literal {
		t.Errorf("unexpected rules: %+v", rules)
	}
}
