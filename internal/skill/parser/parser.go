// Package parser builds Skill values from SKILL.md descriptor content.
// It extracts the frontmatter header and resolves the flat field map;
// it does not judge field values, that is the validator's job.
package parser

import (
	"io"

	"github.com/tmorrison/skillcheck/internal/skill"
	"github.com/tmorrison/skillcheck/pkg/fileutil"
	"github.com/tmorrison/skillcheck/pkg/frontmatter"
)

// Parser handles SKILL.md parsing operations.
type Parser struct{}

// New creates a new Parser instance.
func New() *Parser {
	return &Parser{}
}

// ParseFile reads and parses a SKILL.md file from the given path.
func (p *Parser) ParseFile(path string) (*skill.Skill, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	s, err := p.ParseContent(string(data))
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return s, nil
}

// Parse reads and parses a SKILL.md from the given reader.
// The path parameter is used for error context only.
func (p *Parser) Parse(r io.Reader, path string) (*skill.Skill, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	s, err := p.ParseContent(string(data))
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return s, nil
}

// ParseContent parses raw descriptor content.
//
// Extraction failure (no opening delimiter on the first line, or no
// closing delimiter) is the only way this can fail; malformed header
// lines are skipped, not rejected.
func (p *Parser) ParseContent(content string) (*skill.Skill, error) {
	header, err := frontmatter.Extract(content)
	if err != nil {
		return nil, err
	}

	fields := header.Fields()
	return &skill.Skill{
		Name:        fields["name"],
		Description: fields["description"],
		Fields:      fields,
		Body:        header.Body,
	}, nil
}
