package appinfo

// SPDX-License-Identifier: GPL-3.0-or-later

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtendedVersion(t *testing.T) {
	origVersion, origHash, origCycle := ApplicationVersion, ApplicationGitHash, ReleaseCycle
	defer func() {
		ApplicationVersion, ApplicationGitHash, ReleaseCycle = origVersion, origHash, origCycle
	}()

	ApplicationVersion = "1.2"
	ApplicationGitHash = "abc123"

	ReleaseCycle = "release"
	assert.Equal(t, "1.2", ExtendedVersion())
	assert.Equal(t, "Devlaunch 1.2", FormattedApplicationInfo())

	ReleaseCycle = "alpha"
	assert.Equal(t, "1.2-abc123", ExtendedVersion())
}
