package patch

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"scaffix/internal/domain"
	"scaffix/internal/fsys"
)

// table is the built-in rule list, aligning generated tests with the current
// model API. RestoreOptions renames run before the BackupTask ones: BackupTask
// renames excludes to excludePatterns, which RestoreOptions would otherwise
// rename again to excludePaths.
var table = []domain.Rule{
	// RestoreOptions
	{Name: "restore-verify", Pattern: `\.verifyData\b`, Replacement: ".verify"},
	{Name: "restore-include-paths", Pattern: `\.includePatterns\b`, Replacement: ".includePaths"},
	{Name: "restore-exclude-paths", Pattern: `\.excludePatterns\b`, Replacement: ".excludePaths"},
	{Name: "restore-verify-key", Pattern: `"verifyData"`, Replacement: `"verify"`, Literal: true},
	{Name: "restore-include-paths-key", Pattern: `"includePatterns"`, Replacement: `"includePaths"`, Literal: true},
	{Name: "restore-exclude-paths-key", Pattern: `"excludePatterns"`, Replacement: `"excludePaths"`, Literal: true},

	// BackupTask
	{Name: "task-source-paths", Pattern: `\.sources\b`, Replacement: ".sourcePaths"},
	{Name: "task-exclude-patterns", Pattern: `\.excludes\b`, Replacement: ".excludePatterns"},
	{Name: "task-source-paths-key", Pattern: `"sources"`, Replacement: `"sourcePaths"`, Literal: true},
	{Name: "task-exclude-patterns-key", Pattern: `"excludes"`, Replacement: `"excludePatterns"`, Literal: true},

	// Snapshot
	{Name: "snapshot-id", Pattern: `\.shortId\b`, Replacement: ".id"},

	// FileInfo
	{Name: "fileinfo-is-dir", Pattern: `\.isDir\b`, Replacement: ".type == FileType::Directory"},
	{Name: "fileinfo-mtime", Pattern: `\.modTime\b`, Replacement: ".mtime"},
	{Name: "fileinfo-file-type", Pattern: `FileType::RegularFile`, Replacement: "FileType::File", Literal: true},

	// Schedule. The qualified form must go first or the short rule leaves
	// Schedule::Schedule:: behind.
	{Name: "schedule-qualified-type", Pattern: `Schedule::ScheduleType::`, Replacement: "Schedule::", Literal: true},
	{Name: "schedule-type", Pattern: `ScheduleType::`, Replacement: "Schedule::", Literal: true},
	{Name: "schedule-enable-assign", Pattern: `\.enabled\s*=\s*true`, Replacement: ".type = Schedule::Daily", Behavioral: true},
	{Name: "schedule-enabled-check", Pattern: `schedule\.enabled\b`, Replacement: "schedule.type != Schedule::None", Behavioral: true},

	// RepoStats
	{Name: "stats-unique-size", Pattern: `\.uniqueDataSize\b`, Replacement: ".uniqueSize"},
	{Name: "stats-compression-ratio", Pattern: `\.deduplicationRatio\b`, Replacement: ".compressionRatio"},

	// JSON values
	{Name: "json-to-long-long", Pattern: `.toLongLong()`, Replacement: ".toVariant().toLongLong()", Literal: true, NotAfter: ".toVariant()"},
}

// DefaultRules returns the built-in rules without the behavioral ones
func DefaultRules() []domain.Rule {
	return Select(table, false)
}

// AllRules returns the full built-in table, behavioral rules included
func AllRules() []domain.Rule {
	return append([]domain.Rule(nil), table...)
}

type rulesFile struct {
	Rules []domain.Rule `yaml:"rules"`
}

// LoadRules reads an ordered rule list from a YAML file
func LoadRules(files fsys.FS, path string) ([]domain.Rule, error) {
	data, err := files.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	return ParseRules(data)
}

// ParseRules decodes a YAML rules document. Unknown fields are rejected.
func ParseRules(data []byte) ([]domain.Rule, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f rulesFile
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse rules: %w", err)
	}
	if _, err := Compile(f.Rules); err != nil {
		return nil, err
	}
	return f.Rules, nil
}
