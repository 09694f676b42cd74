package discovery

import (
	"path/filepath"
	"strings"
)

// Filter filters files by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters files by name pattern using wildcard matching.
// Supports patterns like "*ManagerTest.cpp" or "*Backup*"; a pattern without
// wildcards matches as a substring.
func (f *Filter) FilterByName(files []string, pattern string) []string {
	if pattern == "" {
		return files
	}

	var filtered []string
	for _, file := range files {
		if matchName(filepath.Base(file), pattern) {
			filtered = append(filtered, file)
		}
	}
	return filtered
}

func matchName(name, pattern string) bool {
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// filepath.Match anchors both ends; fall back to the literal pieces between
	// wildcards appearing in order, so "*User*Test" also matches "UserServiceTest.cpp"
	var parts []string
	for _, part := range strings.FieldsFunc(pattern, func(r rune) bool { return r == '*' || r == '?' }) {
		parts = append(parts, part)
	}
	if len(parts) == 0 {
		return false
	}

	rest := name
	for _, part := range parts {
		i := strings.Index(rest, part)
		if i < 0 {
			return false
		}
		rest = rest[i+len(part):]
	}
	return true
}
