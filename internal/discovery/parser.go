package discovery

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"scaffix/internal/fsys"
)

// TestClass is a test class found on disk
type TestClass struct {
	Name      string
	Header    string
	TestCases []string
}

// Parser reads generated headers back into test classes
type Parser struct {
	fs fsys.FS
}

// NewParser creates a new Parser
func NewParser(fsys fsys.FS) *Parser {
	return &Parser{fs: fsys}
}

var (
	slotsSection = regexp.MustCompile(`(?m)^\s*(?:private|protected|public)\s+(?:Q_SLOTS|slots)\s*:`)
	sectionEnd   = regexp.MustCompile(`(?m)^\s*(?:private|protected|public|signals|Q_SIGNALS)\b[^:\n]*:|^\s*};`)
	slotDecl     = regexp.MustCompile(`(?m)^\s*void\s+(\w+)\s*\(\s*\)\s*;`)
)

// FindTestCases returns the slot names declared in every slots section of a
// test header, in declaration order. Qt's init/cleanup hooks are not test cases.
func (p *Parser) FindTestCases(headerPath string) ([]string, error) {
	content, err := p.fs.ReadFile(headerPath)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", headerPath, err)
	}
	text := string(content)

	var testCases []string
	seen := make(map[string]bool)

	for _, loc := range slotsSection.FindAllStringIndex(text, -1) {
		body := text[loc[1]:]
		if end := sectionEnd.FindStringIndex(body); end != nil {
			body = body[:end[0]]
		}
		for _, m := range slotDecl.FindAllStringSubmatch(body, -1) {
			name := m[1]
			if isFixtureHook(name) || seen[name] {
				continue
			}
			seen[name] = true
			testCases = append(testCases, name)
		}
	}

	return testCases, nil
}

// ParseClass reads one header into a TestClass named after the file
func (p *Parser) ParseClass(headerPath string) (TestClass, error) {
	cases, err := p.FindTestCases(headerPath)
	if err != nil {
		return TestClass{}, err
	}
	return TestClass{
		Name:      strings.TrimSuffix(filepath.Base(headerPath), filepath.Ext(headerPath)),
		Header:    headerPath,
		TestCases: cases,
	}, nil
}

func isFixtureHook(name string) bool {
	switch name {
	case "initTestCase", "cleanupTestCase", "init", "cleanup":
		return true
	}
	return false
}
