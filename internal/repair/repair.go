// Package repair replaces one known malformed snippet in one file. Running it
// again after the snippet is gone is a no-op.
package repair

import (
	"errors"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"scaffix/internal/domain"
	"scaffix/internal/fsys"
)

// Fix is a literal substitution in a single file
type Fix struct {
	Path string
	Old  string
	New  string
}

// Result describes what a repair did
type Result struct {
	Path         string
	Replacements int
}

// Changed reports whether the file was rewritten
func (r Result) Changed() bool {
	return r.Replacements > 0
}

var errEmptySnippet = errors.New("snippet to replace is empty")

// DefaultFile is the file the built-in fix targets, relative to the test root
const DefaultFile = "unit/core/BackupManagerTest.cpp"

const (
	brokenRunBackupTask = `void BackupManagerTest::testRunBackupTask()
{
    // *K
    // Note: This test requires actual restic repository
    // Skipping actual execution here
)

    Repository repo = createTestRepository();`

	fixedRunBackupTask = `void BackupManagerTest::testRunBackupTask()
{
    // Note: This test requires actual restic repository
    // Skipping actual execution here

    Repository repo = createTestRepository();`
)

// Default returns the built-in fix for the stray parenthesis left in
// BackupManagerTest::testRunBackupTask
func Default(root string) Fix {
	return Fix{
		Path: filepath.Join(root, filepath.FromSlash(DefaultFile)),
		Old:  brokenRunBackupTask,
		New:  fixedRunBackupTask,
	}
}

// Run applies fix. A file that no longer contains the snippet is left
// byte-identical and is not an error. Errors wrap domain.ErrAccessDenied when
// the file is locked or read-only and domain.ErrIO otherwise.
func Run(fs fsys.FS, fix Fix, logger *zap.Logger) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	res := Result{Path: fix.Path}

	if fix.Old == "" {
		return res, &domain.FileError{Path: fix.Path, Err: errEmptySnippet}
	}

	data, err := fs.ReadFile(fix.Path)
	if err != nil {
		return res, &domain.FileError{Path: fix.Path, Err: fsys.Classify(err)}
	}
	content := string(data)

	old, replacement := fix.Old, fix.New
	if !strings.Contains(content, old) && strings.Contains(content, "\r\n") && !strings.Contains(old, "\r\n") {
		// Snippets are written with \n; match files checked out with CRLF
		old = strings.ReplaceAll(old, "\n", "\r\n")
		replacement = strings.ReplaceAll(replacement, "\n", "\r\n")
	}

	res.Replacements = strings.Count(content, old)
	if res.Replacements == 0 || old == replacement {
		logger.Debug("snippet not found, nothing to repair", zap.String("path", fix.Path))
		res.Replacements = 0
		return res, nil
	}

	patched := strings.ReplaceAll(content, old, replacement)
	if err := fs.WriteFile(fix.Path, []byte(patched)); err != nil {
		return Result{Path: fix.Path}, &domain.FileError{Path: fix.Path, Err: fsys.Classify(err)}
	}

	logger.Debug("repaired file", zap.String("path", fix.Path), zap.Int("replacements", res.Replacements))
	return res, nil
}
