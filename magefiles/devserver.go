//go:build mage

package main

// SPDX-License-Identifier: GPL-3.0-or-later

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Build devlaunch and use it to start the frontend dev server in $DEVLAUNCH_FRONTEND_DIR
func DevServer() error {
	mg.Deps(Devlaunch)
	return sh.RunV("./devlaunch"+exeSuffix(), "-frontend-dir", frontendDir())
}
