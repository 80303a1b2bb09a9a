package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"dices/internal/commands"
	"dices/pkg/dicetypes"
)

// NewTestRegistry returns the builtin table plus the default doom macro and roll alias.
func NewTestRegistry(extra ...dicetypes.Command) *commands.Registry {
	r := commands.NewBuiltinRegistry()
	r.Merge([]dicetypes.Command{
		dicetypes.NewMacro("doom", "dice 2D6"),
		dicetypes.NewAlias("roll", "dice"),
	})
	r.Merge(extra)
	return r
}

// WriteFile writes content to name inside a per-test temporary directory and returns its path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}
