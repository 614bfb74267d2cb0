//go:build mage

package main

// SPDX-License-Identifier: GPL-3.0-or-later

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
	"github.com/magefile/mage/target"
)

// Install build-time dependencies: the code generators.
func InstallDeps() {
	mg.Deps(InstallGenerators)
}

// Install the code generators that `mage generate` uses
func InstallGenerators() error {
	return sh.RunV(mg.GoCmd(), "install", "github.com/golang/mock/mockgen")
}

// Use NPM to install the NodeJS dependencies of the frontend in $DEVLAUNCH_FRONTEND_DIR, when they're out of date
func InstallDepsFrontend() error {
	dir := frontendDir()
	manifest := filepath.Join(dir, "package.json")
	if _, err := os.Stat(manifest); err != nil {
		return fmt.Errorf("no frontend project found, set DEVLAUNCH_FRONTEND_DIR: %w", err)
	}

	stale, err := target.Path(filepath.Join(dir, "node_modules"), manifest)
	if err != nil {
		return err
	}
	if !stale {
		fmt.Printf("Dependencies in %s are up to date\n", dir)
		return nil
	}

	env := map[string]string{
		"MSYS2_ARG_CONV_EXCL": "*",
	}
	return sh.RunWithV(env, "npm", "--prefix", dir, "install")
}
