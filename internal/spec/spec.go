// Package spec holds the declarative description of the generated test tree:
// categories, each with an ordered list of test class descriptors.
package spec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"scaffix/internal/domain"
	"scaffix/internal/fsys"
)

// Spec is the full generation table. Order is significant and preserved.
type Spec struct {
	Categories []CategorySpec `yaml:"categories"`
}

// CategorySpec lists the test classes generated into one directory
type CategorySpec struct {
	Path    domain.Category              `yaml:"path"`
	Classes []domain.TestClassDescriptor `yaml:"classes"`
}

// Entry is one (category, descriptor) pair
type Entry struct {
	Category   domain.Category
	Descriptor domain.TestClassDescriptor
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Entries returns every (category, descriptor) pair in declaration order
func (s Spec) Entries() []Entry {
	var entries []Entry
	for _, c := range s.Categories {
		for _, d := range c.Classes {
			entries = append(entries, Entry{Category: c.Path, Descriptor: d})
		}
	}
	return entries
}

// Validate checks the whole table. Fatal problems are joined into one error
// wrapping domain.ErrValidation; warnings never stop generation.
func (s Spec) Validate() (warnings []string, err error) {
	var problems []error
	// Keyed by the upper-cased name: header guards are upper-cased and
	// case-insensitive file systems fold file names the same way
	type declared struct {
		name     string
		category domain.Category
	}
	seen := make(map[string]declared)

	for _, c := range s.Categories {
		if perr := validateCategory(c.Path); perr != nil {
			problems = append(problems, perr)
		}

		for _, d := range c.Classes {
			if !identifierPattern.MatchString(d.Name) {
				problems = append(problems, fmt.Errorf("%s: class name %q is not a valid identifier", c.Path, d.Name))
			} else if prev, dup := seen[strings.ToUpper(d.Name)]; dup {
				if prev.name == d.Name {
					problems = append(problems, fmt.Errorf("%s: class %s already declared in %s", c.Path, d.Name, prev.category))
				} else {
					problems = append(problems, fmt.Errorf("%s: class %s collides with %s in %s (same header guard and file name)", c.Path, d.Name, prev.name, prev.category))
				}
			} else {
				seen[strings.ToUpper(d.Name)] = declared{name: d.Name, category: c.Path}
			}

			for _, inc := range d.Includes {
				if strings.TrimSpace(inc) == "" {
					problems = append(problems, fmt.Errorf("%s/%s: empty include path", c.Path, d.Name))
				}
			}

			if len(d.Tests) == 0 {
				warnings = append(warnings, fmt.Sprintf("%s/%s has no test cases", c.Path, d.Name))
				continue
			}

			cases := make(map[string]bool, len(d.Tests))
			for _, tc := range d.Tests {
				switch {
				case !identifierPattern.MatchString(tc):
					problems = append(problems, fmt.Errorf("%s/%s: test case %q is not a valid identifier", c.Path, d.Name, tc))
				case cases[tc]:
					problems = append(problems, fmt.Errorf("%s/%s: duplicate test case %s", c.Path, d.Name, tc))
				default:
					cases[tc] = true
				}
			}
		}
	}

	if len(problems) > 0 {
		return warnings, fmt.Errorf("%w: %w", domain.ErrValidation, errors.Join(problems...))
	}
	return warnings, nil
}

func validateCategory(c domain.Category) error {
	p := string(c)
	if strings.TrimSpace(p) == "" {
		return errors.New("empty category path")
	}
	if filepath.IsAbs(p) || path.IsAbs(p) {
		return fmt.Errorf("category %s must be relative", p)
	}
	for _, part := range strings.FieldsFunc(p, func(r rune) bool { return r == '/' || r == '\\' }) {
		if part == ".." {
			return fmt.Errorf("category %s escapes the test root", p)
		}
	}
	return nil
}

// Load reads a YAML spec file. Unknown fields are rejected.
func Load(files fsys.FS, file string) (Spec, error) {
	data, err := files.ReadFile(file)
	if err != nil {
		return Spec{}, fmt.Errorf("read spec file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML spec document
func Parse(data []byte) (Spec, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Spec
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Spec{}, fmt.Errorf("parse spec: %w", err)
	}
	return s, nil
}
