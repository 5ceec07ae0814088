package parser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tmorrison/skillcheck/pkg/frontmatter"
)

func TestParser_ParseContent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		wantDesc string
		wantBody string
		wantErr  error
	}{
		{
			name: "complete descriptor",
			input: `---
name: pdf-tools
description: Extracts text from PDF files. Use when working with PDF documents.
license: MIT
---
# PDF Tools

Instructions here.
`,
			wantName: "pdf-tools",
			wantDesc: "Extracts text from PDF files. Use when working with PDF documents.",
			wantBody: "# PDF Tools\n\nInstructions here.\n",
		},
		{
			name:     "missing fields default to empty",
			input:    "---\nlicense: MIT\n---\nbody",
			wantName: "",
			wantDesc: "",
			wantBody: "body",
		},
		{
			name:     "duplicate key resolves to last occurrence",
			input:    "---\nname: first\nname: second\n---\n",
			wantName: "second",
		},
		{
			name:     "malformed header lines are skipped",
			input:    "---\nname: ok\nnot a field line\n---\n",
			wantName: "ok",
		},
		{
			name:    "no opening delimiter",
			input:   "# Markdown only\n",
			wantErr: frontmatter.ErrMissingOpenDelimiter,
		},
		{
			name:    "unclosed header",
			input:   "---\nname: skill\n",
			wantErr: frontmatter.ErrUnclosedFrontmatter,
		},
	}

	p := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := p.ParseContent(tt.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseContent() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseContent() unexpected error: %v", err)
			}
			if s.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", s.Name, tt.wantName)
			}
			if s.Description != tt.wantDesc {
				t.Errorf("Description = %q, want %q", s.Description, tt.wantDesc)
			}
			if tt.wantBody != "" && s.Body != tt.wantBody {
				t.Errorf("Body = %q, want %q", s.Body, tt.wantBody)
			}
		})
	}
}

func TestParser_ParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "SKILL.md")
	content := "---\nname: file-skill\ndescription: Parsed from disk.\n---\nBody.\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	p := New()
	s, err := p.ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() unexpected error: %v", err)
	}
	if s.Name != "file-skill" {
		t.Errorf("Name = %q, want file-skill", s.Name)
	}
}

func TestParser_ParseFile_NotFound(t *testing.T) {
	p := New()
	_, err := p.ParseFile(filepath.Join(t.TempDir(), "SKILL.md"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %T, want *ParseError", err)
	}
	if !strings.Contains(parseErr.Error(), "SKILL.md") {
		t.Errorf("error should name the path: %v", parseErr)
	}
}

func TestParser_Parse_Reader(t *testing.T) {
	p := New()
	s, err := p.Parse(strings.NewReader("---\nname: from-reader\n---\n"), "in-memory")
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if s.Name != "from-reader" {
		t.Errorf("Name = %q, want from-reader", s.Name)
	}
}
