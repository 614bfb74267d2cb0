package sysinfo

// SPDX-License-Identifier: GPL-3.0-or-later

import (
	"fmt"

	"github.com/zcalusic/sysinfo"
)

func description() (string, error) {
	var si sysinfo.SysInfo
	si.GetSysInfo()
	return formatDescription(si.OS.Name, si.Kernel.Release), nil
}

func formatDescription(osName, kernelRelease string) string {
	if osName == "" {
		osName = "Linux"
	}
	if kernelRelease == "" {
		return osName
	}
	return fmt.Sprintf("%s (kernel %s)", osName, kernelRelease)
}
