//go:build !linux && !darwin

package sysinfo

// SPDX-License-Identifier: GPL-3.0-or-later

import "runtime"

func description() (string, error) {
	return runtime.GOOS, nil
}
