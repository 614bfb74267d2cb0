//go:build mage

package main

// SPDX-License-Identifier: GPL-3.0-or-later

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"projects.blender.org/studio/devlaunch/internal/config"
)

func TestFrontendDirDefault(t *testing.T) {
	t.Setenv("DEVLAUNCH_FRONTEND_DIR", "")
	assert.Equal(t, config.DefaultConfig().FrontendDir, frontendDir(),
		"mage targets should use the same frontend directory as devlaunch")
}

func TestFrontendDirFromEnvironment(t *testing.T) {
	t.Setenv("DEVLAUNCH_FRONTEND_DIR", "web/app")
	assert.Equal(t, "web/app", frontendDir())
}

func TestInstallDepsFrontendWithoutProject(t *testing.T) {
	t.Setenv("DEVLAUNCH_FRONTEND_DIR", filepath.Join(t.TempDir(), "nonexistent"))

	// This should fail before npm is ever run.
	err := InstallDepsFrontend()
	assert.ErrorContains(t, err, "DEVLAUNCH_FRONTEND_DIR")
}
