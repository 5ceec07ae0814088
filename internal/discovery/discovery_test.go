package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tmorrison/skillcheck/internal/logging"
)

func writeSkill(t *testing.T, root, dir, content string) string {
	t.Helper()
	skillDir := filepath.Join(root, dir)
	if err := os.MkdirAll(skillDir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(skillDir, "SKILL.md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestScanner_Scan(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "skills/alpha", "---\nname: alpha\ndescription: First skill.\n---\nBody.\n")
	writeSkill(t, root, "skills/beta", "---\nname: beta\ndescription: Second skill.\n---\nBody.\n")

	// A markdown file with a different name must be ignored.
	if err := os.WriteFile(filepath.Join(root, "README.md"), []byte("readme"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewScanner(logging.ForTest(t))
	entries, err := s.Scan(root)
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	// Sorted by path: alpha before beta.
	if entries[0].Skill.Name != "alpha" || entries[1].Skill.Name != "beta" {
		t.Errorf("entries = [%v, %v], want [alpha, beta]", entries[0].Skill, entries[1].Skill)
	}
}

func TestScanner_Scan_BrokenDescriptorStaysListed(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "broken", "no frontmatter here\n")

	s := NewScanner(logging.ForTest(t))
	entries, err := s.Scan(root)
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].ParseErr == nil {
		t.Error("broken descriptor should carry a parse error")
	}
	if entries[0].Skill != nil {
		t.Error("broken descriptor should have nil Skill")
	}
}

func TestScanner_Scan_EmptyTree(t *testing.T) {
	s := NewScanner(logging.ForTest(t))
	entries, err := s.Scan(t.TempDir())
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("entries = %d, want 0", len(entries))
	}
}
