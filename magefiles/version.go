//go:build mage

package main

// SPDX-License-Identifier: GPL-3.0-or-later

import (
	"fmt"
	"runtime"

	"github.com/magefile/mage/sh"
)

const (
	version      = "1.0-alpha0"
	releaseCycle = "alpha"
)

func exeSuffix() string {
	if runtime.GOOS == "windows" {
		return ".exe"
	}
	return ""
}

func gitHash() (string, error) {
	return sh.Output("git", "rev-parse", "--short", "HEAD")
}

// Show which version information would be embedded in executables
func Version() error {
	fmt.Printf("Package     : %s\n", goPkg)
	fmt.Printf("Version     : %s\n", version)
	fmt.Printf("Cycle       : %s\n", releaseCycle)

	hash, err := gitHash()
	if err != nil {
		return err
	}
	fmt.Printf("Git Hash    : %s\n", hash)
	return nil
}
