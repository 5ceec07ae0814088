// Package frontmatter provides extraction of the metadata header from
// SKILL.md descriptor files.
//
// A header is delimited by lines containing only "---" at the start and
// end of the block. The first line of the document must be the opening
// delimiter; everything up to the next delimiter line is the header,
// and everything after it is the body.
//
// # Basic Usage
//
//	header, err := frontmatter.Extract(content)
//	if err != nil {
//		// document has no well-formed header
//	}
//	fields := header.Fields()
//	fmt.Println(fields["name"], fields["description"])
//
// # Error Handling
//
// The package defines sentinel errors for the two failure conditions:
//
//   - [ErrMissingOpenDelimiter]: document does not begin with "---"
//   - [ErrUnclosedFrontmatter]: no closing "---" before end of input
//
// These can be checked using [errors.Is]. Extraction failure is a hard
// stop; callers must not attempt field lookups without a Header.
//
// # Parsing Model
//
// Field parsing is intentionally lenient and flat. Header lines are
// treated as "key: value" pairs split at the first colon; lines without
// a colon contribute nothing, and a repeated key takes its last value.
// Full YAML semantics (nesting, lists, multi-line scalars, type
// coercion) are out of scope.
package frontmatter
