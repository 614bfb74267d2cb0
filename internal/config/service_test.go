package config

// SPDX-License-Identifier: GPL-3.0-or-later

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	filename := filepath.Join(t.TempDir(), "devlaunch-test.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(contents), 0o644))
	return filename
}

func TestService_LoadExplicitFile(t *testing.T) {
	filename := writeConfigFile(t, `
frontend_dir: web/app
dev_server_port: 8080
backend_timeout: 2s
dev_command: "yarn run dev --host"
`)

	s := NewService()
	s.SetFilename(filename)
	found, err := s.Load()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, filename, s.ConfigFilename())

	conf := s.Get()
	assert.Equal(t, "web/app", conf.FrontendDir)
	assert.Equal(t, 8080, conf.DevServerPort)
	assert.Equal(t, 2*time.Second, conf.BackendTimeout.Std())

	// Values not in the file should retain their default.
	assert.Equal(t, "npm install", conf.InstallCommand)
	assert.Equal(t, DefaultConfig().RequiredFiles, conf.RequiredFiles)

	argv, err := conf.DevArgv()
	require.NoError(t, err)
	assert.Equal(t, []string{"yarn", "run", "dev", "--host"}, argv)
	assert.NoError(t, conf.Validate())
}

func TestService_LoadMissingExplicitFile(t *testing.T) {
	s := NewService()
	s.SetFilename(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	found, err := s.Load()
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.False(t, found)
}

func TestService_LoadUnknownKey(t *testing.T) {
	filename := writeConfigFile(t, "frontend_directory: web\n")

	s := NewService()
	s.SetFilename(filename)
	_, err := s.Load()
	assert.Error(t, err, "typos in the config file should not be silently ignored")
	assert.Equal(t, DefaultConfig(), *s.Get())
}

func TestService_LoadFromWorkingDirectory(t *testing.T) {
	oldWD, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(oldWD) })
	t.Cleanup(xdg.Reload) // Runs after the environment has been restored.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	xdg.Reload()

	s := NewService()
	found, err := s.Load()
	require.NoError(t, err)
	assert.False(t, found, "no config file should use the defaults")
	assert.Equal(t, DefaultConfig(), *s.Get())

	require.NoError(t, os.WriteFile(configFilename, []byte("open_browser: true\n"), 0o644))
	found, err = s.Load()
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, s.Get().OpenBrowser)
}
