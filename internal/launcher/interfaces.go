package launcher

// SPDX-License-Identifier: GPL-3.0-or-later

import (
	"context"

	"projects.blender.org/studio/devlaunch/internal/preflight"
	"projects.blender.org/studio/devlaunch/internal/shell"
)

// Generate mock implementations of these interfaces.
//go:generate go run github.com/golang/mock/mockgen -destination mocks/interfaces_mock.gen.go -package mocks projects.blender.org/studio/devlaunch/internal/launcher CommandRunner

// CommandRunner runs the external commands of the launch sequence.
type CommandRunner interface {
	preflight.VersionProber

	// Run runs a command with inherited standard streams, and blocks until it exits.
	Run(ctx context.Context, name string, args ...string) shell.Result
}

var _ CommandRunner = preflight.ExecProber{}

// BrowserOpener opens a URL in the user's web browser.
type BrowserOpener func(url string) error
