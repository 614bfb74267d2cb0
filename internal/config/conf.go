package config

// SPDX-License-Identifier: GPL-3.0-or-later

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/google/shlex"
	yaml "gopkg.in/yaml.v2"
)

const configFilename = "devlaunch.yaml"

// Conf is the launcher configuration.
type Conf struct {
	// FrontendDir is the frontend project directory, relative to the directory
	// the launcher is started from.
	FrontendDir string `yaml:"frontend_dir" json:"frontend_dir"`
	// RequiredFiles are relative to FrontendDir.
	RequiredFiles []string `yaml:"required_files" json:"required_files"`

	Runtime        string `yaml:"runtime" json:"runtime"`
	PackageManager string `yaml:"package_manager" json:"package_manager"`
	InstallCommand string `yaml:"install_command" json:"install_command"`
	DevCommand     string `yaml:"dev_command" json:"dev_command"`

	// DependencyMarker is the directory whose existence means "dependencies
	// are installed". Relative to FrontendDir.
	DependencyMarker string `yaml:"dependency_marker" json:"dependency_marker"`
	// Manifest is only used when InstallWhenStale is enabled.
	Manifest         string `yaml:"manifest" json:"manifest"`
	InstallWhenStale bool   `yaml:"install_when_stale" json:"install_when_stale"`

	BackendURL       string   `yaml:"backend_url" json:"backend_url"`
	BackendTimeout   Duration `yaml:"backend_timeout" json:"backend_timeout"`
	BackendStartHint string   `yaml:"backend_start_hint" json:"backend_start_hint"`

	DevServerHost string `yaml:"dev_server_host" json:"dev_server_host"`
	DevServerPort int    `yaml:"dev_server_port" json:"dev_server_port"`
	OpenBrowser   bool   `yaml:"open_browser" json:"open_browser"`
}

// DefaultConfig returns the configuration for a Vite + React frontend in
// `react-frontend`, talking to a backend on port 8001.
func DefaultConfig() Conf {
	return Conf{
		FrontendDir: "react-frontend",
		RequiredFiles: []string{
			"package.json",
			"src/main.tsx",
			"vite.config.ts",
		},

		Runtime:        "node",
		PackageManager: "npm",
		InstallCommand: "npm install",
		DevCommand:     "npm run dev",

		DependencyMarker: "node_modules",
		Manifest:         "package.json",
		InstallWhenStale: false,

		BackendURL:       "http://localhost:8001/",
		BackendTimeout:   Duration(5 * time.Second),
		BackendStartHint: "python3 run_backend.py",

		DevServerHost: "localhost",
		DevServerPort: 5173,
	}
}

// loadConf parses the given file, on top of the default configuration.
// When the file cannot be read, the default configuration is returned along
// with the error.
func loadConf(filename string) (Conf, error) {
	config := DefaultConfig()

	yamlFile, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}

	if err := yaml.UnmarshalStrict(yamlFile, &config); err != nil {
		return DefaultConfig(), fmt.Errorf("unmarshal YAML from %s: %w", filename, err)
	}
	return config, nil
}

// Validate checks the configuration for values the launcher cannot work with.
func (c *Conf) Validate() error {
	var errs []error

	if c.FrontendDir == "" {
		errs = append(errs, errors.New("frontend_dir cannot be empty"))
	}
	if c.Runtime == "" {
		errs = append(errs, errors.New("runtime cannot be empty"))
	}
	if c.PackageManager == "" {
		errs = append(errs, errors.New("package_manager cannot be empty"))
	}
	if c.DependencyMarker == "" {
		errs = append(errs, errors.New("dependency_marker cannot be empty"))
	}
	if c.InstallWhenStale && c.Manifest == "" {
		errs = append(errs, errors.New("manifest is required when install_when_stale is enabled"))
	}
	if _, err := c.InstallArgv(); err != nil {
		errs = append(errs, fmt.Errorf("install_command: %w", err))
	}
	if _, err := c.DevArgv(); err != nil {
		errs = append(errs, fmt.Errorf("dev_command: %w", err))
	}
	if c.DevServerPort < 1 || c.DevServerPort > 65535 {
		errs = append(errs, fmt.Errorf("dev_server_port %d is not a valid TCP port", c.DevServerPort))
	}
	if c.BackendTimeout <= 0 {
		errs = append(errs, fmt.Errorf("backend_timeout must be positive, not %v", c.BackendTimeout))
	}
	if u, err := url.Parse(c.BackendURL); err != nil {
		errs = append(errs, fmt.Errorf("backend_url: %w", err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errs = append(errs, fmt.Errorf("backend_url %q should be an http:// or https:// URL", c.BackendURL))
	}

	return errors.Join(errs...)
}

// InstallArgv returns the dependency installation command, split into arguments.
func (c *Conf) InstallArgv() ([]string, error) {
	return splitCommand(c.InstallCommand)
}

// DevArgv returns the dev server command, split into arguments.
func (c *Conf) DevArgv() ([]string, error) {
	return splitCommand(c.DevCommand)
}

// DevServerAddr returns the host:port the dev server is expected to listen on.
func (c *Conf) DevServerAddr() string {
	return net.JoinHostPort(c.DevServerHost, strconv.Itoa(c.DevServerPort))
}

// DevServerURL returns the URL at which the frontend is expected to be served.
func (c *Conf) DevServerURL() string {
	return (&url.URL{Scheme: "http", Host: c.DevServerAddr(), Path: "/"}).String()
}

func splitCommand(command string) ([]string, error) {
	argv, err := shlex.Split(command)
	if err != nil {
		return nil, err
	}
	if len(argv) == 0 {
		return nil, errors.New("command cannot be empty")
	}
	return argv, nil
}
