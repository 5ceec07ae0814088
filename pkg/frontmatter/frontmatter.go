// Package frontmatter extracts the delimited metadata header from a
// skill descriptor and exposes its raw key/value fields.
package frontmatter

import (
	"errors"
	"strings"
)

// Delimiter is the literal token that opens and closes a header block.
// A line counts as a delimiter when it equals this token after trimming
// surrounding whitespace.
const Delimiter = "---"

// Sentinel errors for malformed headers.
var (
	// ErrMissingOpenDelimiter is returned when the first line of the
	// document is not a delimiter line.
	ErrMissingOpenDelimiter = errors.New("missing frontmatter (must start with '---')")

	// ErrUnclosedFrontmatter is returned when the document ends before
	// a closing delimiter line is found.
	ErrUnclosedFrontmatter = errors.New("frontmatter not closed (missing closing '---')")
)

// Header is the extracted frontmatter block of a document.
type Header struct {
	// Lines are the raw header lines between the delimiters,
	// in document order, untrimmed.
	Lines []string

	// Body is everything after the closing delimiter line.
	Body string
}

// Extract slices raw document content into a Header.
//
// The first line (trimmed) must equal the delimiter token, and a later
// line must close the block. There is no recovery: on either failure
// the returned Header is nil and no field data should be trusted.
func Extract(content string) (*Header, error) {
	lines := strings.Split(content, "\n")

	if len(lines) == 0 || strings.TrimSpace(lines[0]) != Delimiter {
		return nil, ErrMissingOpenDelimiter
	}

	for i, line := range lines[1:] {
		if strings.TrimSpace(line) == Delimiter {
			return &Header{
				Lines: lines[1 : i+1],
				Body:  strings.Join(lines[i+2:], "\n"),
			}, nil
		}
	}

	return nil, ErrUnclosedFrontmatter
}

// Fields parses the header lines into a flat key/value map.
//
// Each line containing a ':' is split at the first ':'; key and value
// are trimmed. Lines without a ':' are skipped. Duplicate keys resolve
// to the last occurrence. This is deliberately not a YAML parser:
// nested structures, lists, and multi-line scalars are out of contract.
func (h *Header) Fields() map[string]string {
	fields := make(map[string]string, len(h.Lines))
	for _, line := range h.Lines {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		fields[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return fields
}
