package domain

// Category is a tree-relative directory grouping related test classes (e.g. "unit/core")
type Category string

// TestClassDescriptor declares one generated test class
type TestClassDescriptor struct {
	Name     string   `yaml:"name" json:"name"`         // Class name, file base name and header guard token
	Includes []string `yaml:"includes" json:"includes"` // Collaborator headers in include order
	Tests    []string `yaml:"tests" json:"tests"`       // Test case names in declaration order
}

// FileKind distinguishes the two files generated per test class
type FileKind int

const (
	Header FileKind = iota
	Implementation
)

// Ext returns the file extension used for the kind
func (k FileKind) Ext() string {
	if k == Header {
		return ".h"
	}
	return ".cpp"
}

func (k FileKind) String() string {
	if k == Header {
		return "header"
	}
	return "implementation"
}

// GeneratedFile is a rendered scaffold file, written at most once
type GeneratedFile struct {
	Category Category
	Name     string
	Kind     FileKind
	Content  string
}
