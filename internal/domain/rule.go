package domain

// Rule is one ordered pattern/replacement substitution.
// Later rules see the output of earlier rules.
type Rule struct {
	Name        string `yaml:"name" json:"name"`
	Pattern     string `yaml:"pattern" json:"pattern"`
	Replacement string `yaml:"replacement" json:"replacement"`
	// Literal treats Pattern as plain text instead of a regular expression
	Literal bool `yaml:"literal,omitempty" json:"literal,omitempty"`
	// NotAfter suppresses a match that is immediately preceded by this text
	NotAfter string `yaml:"not_after,omitempty" json:"not_after,omitempty"`
	// Partial allows matches that start or end inside an identifier
	Partial bool `yaml:"partial,omitempty" json:"partial,omitempty"`
	// Behavioral marks rules that change meaning rather than rename
	Behavioral bool `yaml:"behavioral,omitempty" json:"behavioral,omitempty"`
}
