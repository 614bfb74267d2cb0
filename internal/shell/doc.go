// Package shell runs external commands for the launcher.
//
// Commands are never run through a shell. Their outcome is returned as a
// Result value, because a tool that is missing or a command that exits with a
// non-zero status is an expected situation that the caller reports on, rather
// than an exceptional one.
package shell

// SPDX-License-Identifier: GPL-3.0-or-later
