// Package discovery finds skill descriptor files under a directory tree.
package discovery

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"

	"github.com/tmorrison/skillcheck/internal/skill"
	"github.com/tmorrison/skillcheck/internal/skill/parser"
)

// Entry is one discovered skill descriptor.
type Entry struct {
	// Path is the location of the SKILL.md file.
	Path string

	// Skill is the parsed descriptor. Nil when parsing failed; the
	// entry is still listed so a broken descriptor stays visible.
	Skill *skill.Skill

	// ParseErr records why parsing failed, if it did.
	ParseErr error
}

// Scanner walks directory trees looking for SKILL.md files.
type Scanner struct {
	parser *parser.Parser
	logger *slog.Logger
}

// NewScanner creates a Scanner that logs skipped paths at warn level.
func NewScanner(logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{
		parser: parser.New(),
		logger: logger,
	}
}

// Scan walks root and returns an entry for every SKILL.md found,
// sorted by path. Unreadable directories are skipped with a warning,
// not treated as fatal.
func (s *Scanner) Scan(root string) ([]Entry, error) {
	var entries []Entry

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.logger.Warn("skipping unreadable path", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || d.Name() != skill.DefaultFileName {
			return nil
		}

		entry := Entry{Path: path}
		entry.Skill, entry.ParseErr = s.parser.ParseFile(path)
		if entry.ParseErr != nil {
			s.logger.Warn("descriptor failed to parse", "path", path, "error", entry.ParseErr)
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries, nil
}
