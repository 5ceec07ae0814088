package validator

// Rules holds the tunable rule tables for descriptor validation.
// The defaults are the published skill authoring constraints; tests
// may substitute smaller tables.
type Rules struct {
	// MaxNameLength is the maximum character count for the name field.
	MaxNameLength int `json:"max_name_length" yaml:"max_name_length" toml:"max_name_length"`

	// MaxDescriptionLength is the maximum character count for the
	// description field.
	MaxDescriptionLength int `json:"max_description_length" yaml:"max_description_length" toml:"max_description_length"`

	// MaxBodyLines is the advisory limit on non-blank body lines.
	// Exceeding it produces a warning, not an error.
	MaxBodyLines int `json:"max_body_lines" yaml:"max_body_lines" toml:"max_body_lines"`

	// ReservedWords may not appear (case-insensitively) anywhere
	// inside the name field.
	ReservedWords []string `json:"reserved_words" yaml:"reserved_words" toml:"reserved_words"`

	// GuidancePhrases are the "when to use" indicators; a description
	// must contain at least one (case-insensitively).
	GuidancePhrases []string `json:"guidance_phrases" yaml:"guidance_phrases" toml:"guidance_phrases"`
}

// DefaultRules returns the standard rule tables.
func DefaultRules() Rules {
	return Rules{
		MaxNameLength:        64,
		MaxDescriptionLength: 1024,
		MaxBodyLines:         500,
		ReservedWords:        []string{"anthropic", "claude"},
		GuidancePhrases: []string{
			"use when",
			"when the user",
			"when working",
			"when creating",
			"when implementing",
			"when managing",
			"when analyzing",
		},
	}
}
