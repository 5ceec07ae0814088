package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCommand(t *testing.T) {
	root := t.TempDir()
	for _, s := range []struct{ dir, name string }{
		{"skills/alpha", "alpha"},
		{"skills/beta", "beta"},
	} {
		dir := filepath.Join(root, s.dir)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		content := "---\nname: " + s.name + "\ndescription: Does " + s.name + " things. Use when working.\n---\nBody.\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte(content), 0o644))
	}

	var execErr error
	output := captureStdout(t, func() {
		rootCmd.SetArgs([]string{"list", root})
		execErr = rootCmd.Execute()
	})
	listInteractive = false

	require.NoError(t, execErr)
	assert.Contains(t, output, "NAME")
	assert.Contains(t, output, "alpha")
	assert.Contains(t, output, "beta")
}

func TestListCommand_MarksInvalidDescriptors(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "broken")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte("no header\n"), 0o644))

	var execErr error
	output := captureStdout(t, func() {
		rootCmd.SetArgs([]string{"list", root})
		execErr = rootCmd.Execute()
	})

	require.NoError(t, execErr)
	assert.Contains(t, output, "(invalid)")
}

func TestListCommand_EmptyTree(t *testing.T) {
	var execErr error
	output := captureStdout(t, func() {
		rootCmd.SetArgs([]string{"list", t.TempDir()})
		execErr = rootCmd.Execute()
	})

	require.NoError(t, execErr)
	if !strings.Contains(output, "No skills found.") {
		t.Errorf("expected empty message, got:\n%s", output)
	}
}
