//go:build mage

package main

// SPDX-License-Identifier: GPL-3.0-or-later

import (
	"os"

	"projects.blender.org/studio/devlaunch/internal/config"
)

// frontendDir returns the frontend project the mage targets work on. It
// defaults to the directory devlaunch itself looks for, and can be overridden
// with the DEVLAUNCH_FRONTEND_DIR environment variable.
func frontendDir() string {
	if dir := os.Getenv("DEVLAUNCH_FRONTEND_DIR"); dir != "" {
		return dir
	}
	return config.DefaultConfig().FrontendDir
}
