package preflight

// SPDX-License-Identifier: GPL-3.0-or-later

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"projects.blender.org/studio/devlaunch/internal/shell"
)

var (
	ErrToolNotFound = errors.New("not found")
	ErrToolFailed   = errors.New("found, but not working")
)

// ToolError indicates a tool from the toolchain is not available.
type ToolError struct {
	Tool string
	Path string // Empty when the tool could not be found.
	Code int    // Exit code of the version command.
	Err  error
}

func (e *ToolError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Tool, e.Err)
	}
	return fmt.Sprintf("%s (%s): %v, exit code %d", e.Tool, e.Path, e.Err, e.Code)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// ToolVersion is the result of a successful version check.
type ToolVersion struct {
	Tool    string
	Path    string
	Version string
}

// VersionProber can find executables and get their version.
type VersionProber interface {
	LookPath(file string) (string, error)
	Output(ctx context.Context, name string, args ...string) (string, shell.Result)
}

// ExecProber is the VersionProber for real executables.
type ExecProber struct {
	*shell.Runner
}

var _ VersionProber = ExecProber{}

func (p ExecProber) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// CheckToolchain runs `<tool> --version` for each tool, in order. It stops at
// the first tool that is not available, and returns a *ToolError for it.
func CheckToolchain(ctx context.Context, prober VersionProber, tools ...string) ([]ToolVersion, error) {
	versions := make([]ToolVersion, 0, len(tools))

	for _, tool := range tools {
		path, err := prober.LookPath(tool)
		switch {
		case errors.Is(err, exec.ErrNotFound):
			return versions, &ToolError{Tool: tool, Err: ErrToolNotFound}
		case err != nil:
			// For example a permission error, or an executable that was found
			// relative to the current directory.
			return versions, &ToolError{Tool: tool, Err: fmt.Errorf("%w: %w", ErrToolNotFound, err)}
		}

		version, result := prober.Output(ctx, tool, "--version")
		if ctxErr := ctx.Err(); ctxErr != nil {
			return versions, ctxErr
		}
		if !result.Success() {
			return versions, &ToolError{Tool: tool, Path: path, Code: result.Code, Err: ErrToolFailed}
		}

		versions = append(versions, ToolVersion{Tool: tool, Path: path, Version: version})
	}

	return versions, nil
}
