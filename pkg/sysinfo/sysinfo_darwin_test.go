package sysinfo

// SPDX-License-Identifier: GPL-3.0-or-later

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPlistStrings(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "SystemVersion.plist")
	require.NoError(t, os.WriteFile(filename, []byte(`<?xml version="1.0" encoding="UTF-8"?>
	<plist version="1.0">
		<dict>
			<key>ProductName</key>
			<string>macOS</string>
			<key>ProductVersion</key>
			<string>15.3.1</string>
			<key>ProductBuildVersion</key>
			<string>24D70</string>
		</dict>
	</plist>`), 0o644))

	values, err := readPlistStrings(filename)
	require.NoError(t, err)
	assert.Equal(t, "macOS 15.3.1 (Build 24D70)", formatMacOSVersion(values))
}

func TestReadPlistStringsErrors(t *testing.T) {
	_, err := readPlistStrings(filepath.Join(t.TempDir(), "nonexistent.plist"))
	assert.Error(t, err)

	filename := filepath.Join(t.TempDir(), "invalid.plist")
	require.NoError(t, os.WriteFile(filename, []byte("INVALID_XML_DATA"), 0o644))
	_, err = readPlistStrings(filename)
	assert.Error(t, err)
}

func TestFormatMacOSVersion(t *testing.T) {
	assert.Equal(t, "macOS", formatMacOSVersion(nil))
	assert.Equal(t, "macOS Custom", formatMacOSVersion(map[string]string{"ProductName": "macOS Custom"}))
}
