// Package patch rewrites existing test sources with an ordered list of
// substitution rules. Rule order is part of the contract: every rule sees the
// text produced by the rules before it.
//
// Rules are mechanical. Input sources are trusted and well formed; a match
// inside a string literal or comment is rewritten like any other.
package patch

import (
	"fmt"
	"regexp"
	"strings"

	"scaffix/internal/domain"
)

// Compiled is a rule ready to apply
type Compiled struct {
	Rule domain.Rule
	re   *regexp.Regexp
}

// Compile prepares rules in order. Any invalid pattern fails the whole list.
func Compile(rules []domain.Rule) ([]Compiled, error) {
	compiled := make([]Compiled, 0, len(rules))
	for i, r := range rules {
		if r.Pattern == "" {
			return nil, fmt.Errorf("rule %d (%s): empty pattern", i+1, r.Name)
		}
		expr := r.Pattern
		if r.Literal {
			expr = regexp.QuoteMeta(expr)
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("rule %d (%s): %w", i+1, r.Name, err)
		}
		compiled = append(compiled, Compiled{Rule: r, re: re})
	}
	return compiled, nil
}

// MustCompile is Compile for built-in tables
func MustCompile(rules []domain.Rule) []Compiled {
	c, err := Compile(rules)
	if err != nil {
		panic(err)
	}
	return c
}

// Apply runs every rule over the whole text, in order
func Apply(text string, rules []Compiled) string {
	for _, r := range rules {
		text = r.Apply(text)
	}
	return text
}

// Apply replaces every accepted match of the rule in text. Regexp
// replacements expand $1 / ${name}; literal replacements are used verbatim.
func (c Compiled) Apply(text string) string {
	matches := c.re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if !c.accept(text, start, end) {
			continue
		}
		b.WriteString(text[last:start])
		if c.Rule.Literal {
			b.WriteString(c.Rule.Replacement)
		} else {
			b.Write(c.re.ExpandString(nil, c.Rule.Replacement, text, m))
		}
		last = end
	}
	if last == 0 && b.Len() == 0 {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}

// accept enforces NotAfter and whole-token scoping: a match that begins (ends)
// with an identifier character must not be preceded (followed) by another one.
func (c Compiled) accept(text string, start, end int) bool {
	if c.Rule.NotAfter != "" && strings.HasSuffix(text[:start], c.Rule.NotAfter) {
		return false
	}
	if c.Rule.Partial || start == end {
		return true
	}
	if start > 0 && isIdentByte(text[start]) && isIdentByte(text[start-1]) {
		return false
	}
	if end < len(text) && isIdentByte(text[end-1]) && isIdentByte(text[end]) {
		return false
	}
	return true
}

// Non-ASCII bytes count as identifier characters so multi-byte names are never split
func isIdentByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') ||
		b >= 0x80
}

// Select drops behavioral rules unless allowed, keeping order
func Select(rules []domain.Rule, allowBehavioral bool) []domain.Rule {
	selected := make([]domain.Rule, 0, len(rules))
	for _, r := range rules {
		if r.Behavioral && !allowBehavioral {
			continue
		}
		selected = append(selected, r)
	}
	return selected
}
