package main

// SPDX-License-Identifier: GPL-3.0-or-later

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/magefile/mage/sh"
	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	slogzerolog "github.com/samber/slog-zerolog/v2"

	"projects.blender.org/studio/devlaunch/internal/appinfo"
	"projects.blender.org/studio/devlaunch/internal/config"
	"projects.blender.org/studio/devlaunch/internal/launcher"
	"projects.blender.org/studio/devlaunch/internal/preflight"
	"projects.blender.org/studio/devlaunch/internal/shell"
	"projects.blender.org/studio/devlaunch/pkg/sysinfo"
)

// Exit codes. Failures of the launch sequence itself are reported with the
// exit status of the returned error.
const (
	exitOK    = 0
	exitUsage = 2
)

var cliArgs struct {
	quiet, debug, trace bool
	version             bool

	configFile  string
	frontendDir string
	backendURL  string
	port        int
	openBrowser bool
}

func main() {
	os.Exit(run())
}

func run() int {
	output := zerolog.ConsoleWriter{Out: colorable.NewColorableStdout(), TimeFormat: time.RFC3339}
	log.Logger = log.Output(output)

	parseCliArgs()
	if cliArgs.version {
		fmt.Println(appinfo.FormattedApplicationInfo())
		return exitOK
	}

	// Handle Ctrl+C before anything else runs.
	mainCtx, mainCtxCancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer mainCtxCancel()

	osDetail, err := sysinfo.Description()
	if err != nil {
		osDetail = err.Error()
	}
	log.Info().
		Str("version", appinfo.ExtendedVersion()).
		Str("os", runtime.GOOS).
		Str("osDetail", osDetail).
		Str("arch", runtime.GOARCH).
		Msgf("starting %v frontend launcher", appinfo.ApplicationName)

	conf, err := loadConfig()
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return exitUsage
	}

	runner := preflight.ExecProber{Runner: shell.NewRunner()}
	err = launcher.New(*conf, runner).Run(mainCtx)
	return exitStatus(err)
}

// exitStatus logs how the launcher stopped, and returns the process exit status
// for it. Being interrupted by the user is a normal way to stop.
func exitStatus(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, launcher.ErrInterrupted):
		log.Info().Msg("shutting down frontend launcher")
		return exitOK
	default:
		log.Error().Err(err).Msg("frontend launcher stopped")
		return sh.ExitStatus(err)
	}
}

func parseCliArgs() {
	flag.BoolVar(&cliArgs.quiet, "quiet", false, "Only log warning-level and worse.")
	flag.BoolVar(&cliArgs.debug, "debug", false, "Enable debug-level logging.")
	flag.BoolVar(&cliArgs.trace, "trace", false, "Enable trace-level logging.")
	flag.BoolVar(&cliArgs.version, "version", false, "Shows the application version, then exits.")

	flag.StringVar(&cliArgs.configFile, "config", "",
		"Configuration file; by default devlaunch.yaml is searched for in the current directory and the XDG config directories.")
	flag.StringVar(&cliArgs.frontendDir, "frontend-dir", "", "Frontend project directory, overrides the configuration file.")
	flag.StringVar(&cliArgs.backendURL, "backend-url", "", "Backend URL to check, overrides the configuration file.")
	flag.IntVar(&cliArgs.port, "port", 0, "Dev server port to check, overrides the configuration file.")
	flag.BoolVar(&cliArgs.openBrowser, "open", false, "Open the frontend in a web browser once the dev server is running.")

	flag.Parse()

	var logLevel zerolog.Level
	var slogLevel slog.Level
	switch {
	case cliArgs.trace:
		logLevel = zerolog.TraceLevel
		slogLevel = slog.LevelDebug
	case cliArgs.debug:
		logLevel = zerolog.DebugLevel
		slogLevel = slog.LevelDebug
	case cliArgs.quiet:
		logLevel = zerolog.WarnLevel
		slogLevel = slog.LevelWarn
	default:
		logLevel = zerolog.InfoLevel
		slogLevel = slog.LevelInfo
	}
	zerolog.SetGlobalLevel(logLevel)

	// Hook up slog to zerolog.
	slogLogger := slog.New(slogzerolog.Option{
		Level:  slogLevel,
		Logger: &log.Logger}.NewZerologHandler())
	slog.SetDefault(slogLogger)
}

// loadConfig loads the configuration file, and applies the CLI arguments on top.
func loadConfig() (*config.Conf, error) {
	configService := config.NewService()
	if cliArgs.configFile != "" {
		configService.SetFilename(cliArgs.configFile)
	}

	found, err := configService.Load()
	if err != nil {
		return nil, err
	}
	if found {
		log.Info().Str("filename", configService.ConfigFilename()).Msg("configuration file loaded")
	}

	conf := configService.Get()
	if cliArgs.frontendDir != "" {
		conf.FrontendDir = cliArgs.frontendDir
	}
	if cliArgs.backendURL != "" {
		conf.BackendURL = cliArgs.backendURL
	}
	if cliArgs.port != 0 {
		conf.DevServerPort = cliArgs.port
	}
	if cliArgs.openBrowser {
		conf.OpenBrowser = true
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}
