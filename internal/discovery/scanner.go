package discovery

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"scaffix/internal/fsys"
)

// Selector decides which file names a scan returns
type Selector struct {
	Extensions []string // e.g. ".cpp"; empty matches any extension
	Marker     string   // substring the file name must contain; empty matches all
}

// Match reports whether a base file name is selected
func (s Selector) Match(name string) bool {
	if s.Marker != "" && !strings.Contains(name, s.Marker) {
		return false
	}
	if len(s.Extensions) == 0 {
		return true
	}
	for _, ext := range s.Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Scanner scans for test sources in a directory tree
type Scanner struct {
	fs       fsys.FS
	skipDirs map[string]bool
}

// NewScanner creates a new Scanner with the given directories to skip
func NewScanner(fsys fsys.FS, skipDirs []string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{fs: fsys, skipDirs: skipMap}
}

// Unreadable is a path below the scan root that could not be read
type Unreadable struct {
	Path string
	Err  error
}

// ScanResult holds the selected files and whatever could not be read
type ScanResult struct {
	Files      []string
	Unreadable []Unreadable
}

// Scan finds all files under root selected by sel, in lexical walk order.
// Unreadable entries below root are left out; use Walk to see them.
func (s *Scanner) Scan(root string, sel Selector) ([]string, error) {
	res, err := s.Walk(root, sel)
	if err != nil {
		return nil, err
	}
	return res.Files, nil
}

// Walk is Scan that also records the entries it could not read. Only a
// missing or unreadable root is an error.
func (s *Scanner) Walk(root string, sel Selector) (*ScanResult, error) {
	res := &ScanResult{}

	// Clean and validate the root path
	root = filepath.Clean(root)
	info, err := s.fs.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("test root does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("test root is not a directory: %s", root)
	}

	err = s.fs.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			res.Unreadable = append(res.Unreadable, Unreadable{Path: path, Err: err})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			name := d.Name()
			// Skip hidden directories (starting with .)
			if strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if s.skipDirs[name] {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Type().IsRegular() && sel.Match(d.Name()) {
			res.Files = append(res.Files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
