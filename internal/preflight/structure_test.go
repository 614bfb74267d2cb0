package preflight

// SPDX-License-Identifier: GPL-3.0-or-later

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte{}, 0o644))
}

func TestCheckFrontendDir(t *testing.T) {
	root := t.TempDir()
	frontendDir := filepath.Join(root, "react-frontend")

	err := CheckFrontendDir(frontendDir)
	require.ErrorIs(t, err, ErrFrontendDirMissing)
	assert.Contains(t, err.Error(), "react-frontend")

	touch(t, frontendDir)
	assert.ErrorIs(t, CheckFrontendDir(frontendDir), ErrNotADirectory)

	require.NoError(t, os.Remove(frontendDir))
	require.NoError(t, os.Mkdir(frontendDir, 0o755))
	assert.NoError(t, CheckFrontendDir(frontendDir))
}

func TestCheckStructure(t *testing.T) {
	root := t.TempDir()
	files := []string{"package.json", "src/main.tsx", "vite.config.ts"}

	touch(t, filepath.Join(root, "package.json"))

	missing, err := CheckStructure(root, files)
	require.ErrorIs(t, err, ErrRequiredFileMissing)
	assert.Contains(t, err.Error(), filepath.Join(root, "src", "main.tsx"),
		"the error should name the first missing file")
	assert.Equal(t, []string{
		filepath.Join(root, "src", "main.tsx"),
		filepath.Join(root, "vite.config.ts"),
	}, missing)

	touch(t, filepath.Join(root, "src", "main.tsx"))
	touch(t, filepath.Join(root, "vite.config.ts"))

	missing, err = CheckStructure(root, files)
	require.NoError(t, err)
	assert.Empty(t, missing)
}
