// Package skill defines the parsed form of a SKILL.md descriptor.
package skill

import "strings"

// DefaultFileName is the expected file name for a skill descriptor.
const DefaultFileName = "SKILL.md"

// Skill is a parsed skill descriptor: the well-known header fields,
// the full field map, and the markdown body.
type Skill struct {
	// Name is the value of the "name" header field, empty if absent.
	Name string

	// Description is the value of the "description" header field,
	// empty if absent.
	Description string

	// Fields is the complete header field map, including keys the
	// validator has no rules for.
	Fields map[string]string

	// Body is the markdown content after the closing header delimiter.
	Body string
}

// Field returns the value of the named header field, or the empty
// string if it is absent.
func (s *Skill) Field(name string) string {
	return s.Fields[name]
}

// BodyLineCount returns the number of non-blank body lines. Lines that
// are empty after trimming whitespace are not counted.
func (s *Skill) BodyLineCount() int {
	if s.Body == "" {
		return 0
	}
	count := 0
	for _, line := range strings.Split(s.Body, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}
