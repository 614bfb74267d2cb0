package sysinfo

// SPDX-License-Identifier: GPL-3.0-or-later

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDescription(t *testing.T) {
	assert.Equal(t, "Ubuntu 24.04 LTS (kernel 6.8.0-45-generic)",
		formatDescription("Ubuntu 24.04 LTS", "6.8.0-45-generic"))
	assert.Equal(t, "Linux (kernel 6.8.0)", formatDescription("", "6.8.0"))
	assert.Equal(t, "Arch Linux", formatDescription("Arch Linux", ""))
}

func TestDescription(t *testing.T) {
	desc, err := Description()
	assert.NoError(t, err)
	assert.NotEmpty(t, desc)
}
