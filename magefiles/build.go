//go:build mage

package main

// SPDX-License-Identifier: GPL-3.0-or-later

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	goPkg = "projects.blender.org/studio/devlaunch"
)

// Build the devlaunch executable
func Build() {
	mg.Deps(Devlaunch)
}

// Build the devlaunch executable
func Devlaunch() error {
	return build("./cmd/devlaunch")
}

// Build the devlaunch executable with the race condition detector enabled
func DevlaunchRace() error {
	return build("./cmd/devlaunch", "-race", "-o", "devlaunch_race")
}

func build(exePackage string, extraArgs ...string) error {
	flags, err := buildFlags()
	if err != nil {
		return err
	}

	args := []string{"build", "-v"}
	args = append(args, flags...)
	args = append(args, extraArgs...)
	args = append(args, exePackage)
	return sh.RunV(mg.GoCmd(), args...)
}

func buildFlags() ([]string, error) {
	hash, err := gitHash()
	if err != nil {
		return nil, err
	}

	ldflags := "" +
		fmt.Sprintf(" -X %s/internal/appinfo.ApplicationVersion=%s", goPkg, version) +
		fmt.Sprintf(" -X %s/internal/appinfo.ApplicationGitHash=%s", goPkg, hash) +
		fmt.Sprintf(" -X %s/internal/appinfo.ReleaseCycle=%s", goPkg, releaseCycle)

	flags := []string{
		"-ldflags=" + ldflags,
	}
	return flags, nil
}
