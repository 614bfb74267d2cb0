package sysinfo

// SPDX-License-Identifier: GPL-3.0-or-later

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"
)

const systemVersionPlist = "/System/Library/CoreServices/SystemVersion.plist"

type plistDict struct {
	Keys    []string `xml:"dict>key"`
	Strings []string `xml:"dict>string"`
}

func description() (string, error) {
	values, err := readPlistStrings(systemVersionPlist)
	if err != nil {
		return "macOS", err
	}
	return formatMacOSVersion(values), nil
}

// readPlistStrings returns the string values of a flat property list.
func readPlistStrings(filename string) (map[string]string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}

	var plist plistDict
	if err := xml.Unmarshal(data, &plist); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}

	values := make(map[string]string, len(plist.Keys))
	for i, key := range plist.Keys {
		if i >= len(plist.Strings) {
			break
		}
		values[key] = plist.Strings[i]
	}
	return values, nil
}

func formatMacOSVersion(values map[string]string) string {
	parts := []string{"macOS"}
	if name := values["ProductName"]; name != "" {
		parts[0] = name
	}
	if version := values["ProductVersion"]; version != "" {
		parts = append(parts, version)
	}
	if build := values["ProductBuildVersion"]; build != "" {
		parts = append(parts, "(Build "+build+")")
	}
	return strings.Join(parts, " ")
}
