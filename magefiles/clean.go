//go:build mage

package main

// SPDX-License-Identifier: GPL-3.0-or-later

import (
	"github.com/magefile/mage/sh"
)

// Remove executables and other build output
func Clean() error {
	if err := sh.Run("go", "clean"); err != nil {
		return err
	}

	if err := rm(
		"devlaunch", "devlaunch.exe",
		"devlaunch_race", "devlaunch_race.exe",
	); err != nil {
		return err
	}
	return nil
}

func rm(path ...string) error {
	for _, p := range path {
		if err := sh.Rm(p); err != nil {
			return err
		}
	}
	return nil
}
