package config

// SPDX-License-Identifier: GPL-3.0-or-later

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog/log"
)

// Service provides access to the launcher configuration.
type Service struct {
	config   Conf
	filename string
}

// NewService returns a configuration service that searches for the
// configuration file. Use SetFilename() to load a specific file instead.
func NewService() *Service {
	return &Service{
		config: DefaultConfig(),
	}
}

// SetFilename makes Load() read this file. Unlike a searched-for file, an
// explicitly given file must exist.
func (s *Service) SetFilename(filename string) {
	s.filename = filename
}

// Load reads the configuration file, and returns whether one was found.
// Without a configuration file the defaults are used.
func (s *Service) Load() (bool, error) {
	filename := s.filename
	explicit := filename != ""
	if !explicit {
		filename = FindConfigFile()
		if filename == "" {
			log.Debug().Msg("no configuration file found, using defaults")
			s.config = DefaultConfig()
			return false, nil
		}
	}

	config, err := loadConf(filename)
	s.config = config

	switch {
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		return false, nil
	case err != nil:
		return false, fmt.Errorf("loading %s: %w", filename, err)
	}

	s.filename = filename
	log.Debug().Str("filename", filename).Msg("configuration file loaded")
	return true, nil
}

// ConfigFilename returns the filename of the loaded configuration file, or an
// empty string if the defaults are used.
func (s *Service) ConfigFilename() string {
	return s.filename
}

func (s *Service) Get() *Conf {
	return &s.config
}

// FindConfigFile returns the configuration file to use, or an empty string if
// there is none. The current directory takes precedence over the XDG
// configuration directories.
func FindConfigFile() string {
	if stat, err := os.Stat(configFilename); err == nil && !stat.IsDir() {
		return configFilename
	}

	found, err := xdg.SearchConfigFile(filepath.Join("devlaunch", configFilename))
	if err != nil {
		// xdg returns an error when the file cannot be found, which is fine.
		return ""
	}
	return found
}
