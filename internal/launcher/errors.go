package launcher

// SPDX-License-Identifier: GPL-3.0-or-later

import (
	"errors"
	"fmt"
)

// ErrInterrupted is returned when the launcher was interrupted, typically by
// the user pressing Ctrl+C. It is not an application error.
var ErrInterrupted = errors.New("interrupted")

// Gate identifies a mandatory step of the launch sequence.
type Gate string

const (
	GateFrontendDir Gate = "frontend-dir"
	GateToolchain   Gate = "toolchain"
	GateStructure   Gate = "structure"
	GateChdir       Gate = "chdir"
	GateInstall     Gate = "install"
	GateDevServer   Gate = "dev-server"
)

// GateError is returned when a mandatory step of the launch sequence failed.
type GateError struct {
	Gate Gate
	Err  error
}

func (e *GateError) Error() string {
	return fmt.Sprintf("%s: %v", e.Gate, e.Err)
}

func (e *GateError) Unwrap() error {
	return e.Err
}

// ExitStatus returns the process exit status for this error. This is
// understood by mage's sh.ExitStatus().
func (e *GateError) ExitStatus() int {
	return 1
}

func gateError(gate Gate, err error) error {
	return &GateError{Gate: gate, Err: err}
}
