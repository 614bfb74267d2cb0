// package launcher checks that the environment is ready to run the frontend
// dev server, and then runs it.
package launcher

// SPDX-License-Identifier: GPL-3.0-or-later

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gertd/go-pluralize"
	"github.com/magefile/mage/target"
	"github.com/pkg/browser"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"projects.blender.org/studio/devlaunch/internal/config"
	"projects.blender.org/studio/devlaunch/internal/preflight"
	"projects.blender.org/studio/devlaunch/internal/shell"
	"projects.blender.org/studio/devlaunch/pkg/website"
)

// browserPollInterval determines how often the dev server port is checked,
// when waiting for it to come up before opening the browser.
const browserPollInterval = 500 * time.Millisecond

// Launcher runs the launch sequence: a series of checks, followed by running
// the dev server. The checks are either mandatory, in which case a failure
// stops the sequence, or advisory, in which case a failure is only logged.
type Launcher struct {
	conf        config.Conf
	runner      CommandRunner
	clock       clock.Clock
	httpClient  *http.Client
	openBrowser BrowserOpener
	pluralizer  *pluralize.Client

	// portAvailable is set by the port check. The browser is only opened when
	// nothing else was listening on the dev server port.
	portAvailable bool
}

type Option func(*Launcher)

func WithClock(clk clock.Clock) Option {
	return func(l *Launcher) { l.clock = clk }
}

func WithHTTPClient(client *http.Client) Option {
	return func(l *Launcher) { l.httpClient = client }
}

func WithBrowserOpener(opener BrowserOpener) Option {
	return func(l *Launcher) { l.openBrowser = opener }
}

func New(conf config.Conf, runner CommandRunner, options ...Option) *Launcher {
	l := &Launcher{
		conf:        conf,
		runner:      runner,
		clock:       clock.New(),
		httpClient:  &http.Client{},
		openBrowser: browser.OpenURL,
		pluralizer:  pluralize.NewClient(),
	}
	for _, option := range options {
		option(l)
	}
	return l
}

type step struct {
	name string
	run  func(ctx context.Context) error
}

func (l *Launcher) steps() []step {
	return []step{
		{"frontend directory", l.checkFrontendDir},
		{"toolchain", l.checkToolchain},
		{"project structure", l.checkStructure},
		{"backend", l.checkBackend},
		{"port", l.checkPort},
		{"change directory", l.changeDir},
		{"dependencies", l.installDependencies},
		{"dev server", l.runDevServer},
	}
}

// Run performs the launch sequence. It blocks until the dev server stops.
//
// It returns nil when the dev server exited normally, ErrInterrupted when the
// context was cancelled, and a *GateError when a mandatory step failed.
func (l *Launcher) Run(ctx context.Context) error {
	for _, step := range l.steps() {
		if ctx.Err() != nil {
			return ErrInterrupted
		}

		log.Trace().Str("step", step.name).Msg("launcher: running step")
		err := step.run(ctx)

		switch {
		case errors.Is(err, ErrInterrupted):
			return err
		case err != nil && ctx.Err() != nil:
			// Most likely the step failed because of the interruption.
			log.Debug().Str("step", step.name).AnErr("cause", err).Msg("launcher: step failed after interruption")
			return ErrInterrupted
		case err != nil:
			return err
		}
	}
	return nil
}

func (l *Launcher) checkFrontendDir(ctx context.Context) error {
	err := preflight.CheckFrontendDir(l.conf.FrontendDir)
	if err != nil {
		log.Error().
			AnErr("cause", err).
			Str("dir", l.conf.FrontendDir).
			Msg("frontend directory not found, please run this from the project root directory")
		return gateError(GateFrontendDir, err)
	}
	return nil
}

func (l *Launcher) checkToolchain(ctx context.Context) error {
	versions, err := preflight.CheckToolchain(ctx, l.runner, l.conf.Runtime, l.conf.PackageManager)

	for _, version := range versions {
		log.Info().
			Str("version", version.Version).
			Str("path", version.Path).
			Msgf("%s found", version.Tool)
	}

	var toolErr *preflight.ToolError
	switch {
	case err == nil:
		return nil
	case !errors.As(err, &toolErr):
		return gateError(GateToolchain, err)
	case errors.Is(err, preflight.ErrToolNotFound):
		logger := log.Error().AnErr("cause", toolErr.Err).Str("tool", toolErr.Tool)
		if toolErr.Tool == "node" || toolErr.Tool == "npm" {
			logger.Msgf("%s not found, please install Node.js from %s", toolErr.Tool, website.NodeJSDownloadURL)
		} else {
			logger.Msgf("%s not found, please install it and make sure it can be found on $PATH", toolErr.Tool)
		}
	default:
		log.Error().
			Str("tool", toolErr.Tool).
			Str("path", toolErr.Path).
			Int("exitCode", toolErr.Code).
			Msgf("%s was found, but `%s --version` failed", toolErr.Tool, toolErr.Tool)
	}
	return gateError(GateToolchain, err)
}

func (l *Launcher) checkStructure(ctx context.Context) error {
	missing, err := preflight.CheckStructure(l.conf.FrontendDir, l.conf.RequiredFiles)
	if err != nil {
		for _, path := range missing {
			log.Error().Str("path", path).Msg("missing required file")
		}
		return gateError(GateStructure, err)
	}

	numFiles := len(l.conf.RequiredFiles)
	log.Info().
		Str("dir", l.conf.FrontendDir).
		Msgf("frontend structure verified, %d required %s present",
			numFiles, l.pluralizer.Pluralize("file", numFiles, false))
	return nil
}

// checkBackend is advisory; it never returns an error.
func (l *Launcher) checkBackend(ctx context.Context) error {
	status := preflight.ProbeBackend(ctx, l.httpClient, l.conf.BackendURL, l.conf.BackendTimeout.Std())
	logger := log.With().Str("url", status.URL).Logger()

	switch {
	case ctx.Err() != nil:
		return nil
	case status.OK():
		logger.Info().Msg("backend is running and accessible")
		return nil
	case status.Reachable:
		logger.Warn().Int("status", status.StatusCode).Msg("backend responded with unexpected status")
	case status.TimedOut():
		logger.Warn().Stringer("timeout", l.conf.BackendTimeout).Msg("backend did not respond in time")
	default:
		logger.Warn().AnErr("cause", status.Err).Msg("backend is not running or not accessible")
	}

	if l.conf.BackendStartHint != "" {
		logger.Warn().Msgf("start the backend with: %s", l.conf.BackendStartHint)
	}
	return nil
}

// checkPort is advisory; it never returns an error.
func (l *Launcher) checkPort(ctx context.Context) error {
	status := preflight.ProbePort(l.conf.DevServerAddr())
	l.portAvailable = status.Available

	logger := log.With().Str("addr", status.Addr).Logger()
	switch {
	case status.Available:
		logger.Info().Msg("port is available")
	case status.InUse():
		logger.Warn().Msgf("port is in use, the dev server will likely pick another port, see %s", website.ViteServerOptions)
	default:
		logger.Warn().AnErr("cause", status.Err).Msg("could not check port, the dev server may pick another port")
	}
	return nil
}

func (l *Launcher) changeDir(ctx context.Context) error {
	if err := os.Chdir(l.conf.FrontendDir); err != nil {
		log.Error().AnErr("cause", err).Str("dir", l.conf.FrontendDir).Msg("could not change to frontend directory")
		return gateError(GateChdir, err)
	}
	log.Debug().Str("dir", l.conf.FrontendDir).Msg("changed working directory")
	return nil
}

// needsInstall determines whether the dependencies should be installed. This
// is a check on the existence of the marker directory, and when
// InstallWhenStale is enabled, whether the manifest is newer than the marker.
func (l *Launcher) needsInstall() (bool, error) {
	marker := l.conf.DependencyMarker

	if l.conf.InstallWhenStale {
		stale, err := target.Path(marker, l.conf.Manifest)
		if err != nil {
			return false, fmt.Errorf("comparing %s with %s: %w", l.conf.Manifest, marker, err)
		}
		return stale, nil
	}

	stat, err := os.Stat(marker)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return true, nil
	case err != nil:
		return false, fmt.Errorf("checking %s: %w", marker, err)
	case !stat.IsDir():
		return false, fmt.Errorf("%s: %w", marker, preflight.ErrNotADirectory)
	}
	return false, nil
}

func (l *Launcher) installDependencies(ctx context.Context) error {
	needsInstall, err := l.needsInstall()
	if err != nil {
		log.Error().AnErr("cause", err).Msg("could not determine whether dependencies are installed")
		return gateError(GateInstall, err)
	}
	if !needsInstall {
		log.Info().Str("marker", l.conf.DependencyMarker).Msg("dependencies already installed")
		return nil
	}

	argv, err := l.conf.InstallArgv()
	if err != nil {
		return gateError(GateInstall, err)
	}
	command := shell.QuoteCommand(argv...)

	log.Info().Str("cmd", command).Msg("installing dependencies")
	result := l.runner.Run(ctx, argv[0], argv[1:]...)
	if ctx.Err() != nil {
		return ErrInterrupted
	}
	if !result.Success() {
		log.Error().
			Str("cmd", command).
			Int("exitCode", result.Code).
			AnErr("cause", result.Err).
			Msg("error installing dependencies")
		return gateError(GateInstall, commandError(command, result))
	}

	if l.conf.InstallWhenStale {
		// The package manager does not necessarily touch the marker directory
		// when only updating packages.
		now := l.clock.Now()
		if err := os.Chtimes(l.conf.DependencyMarker, now, now); err != nil {
			log.Warn().AnErr("cause", err).Str("marker", l.conf.DependencyMarker).
				Msg("could not update modification time, dependencies may be installed again next time")
		}
	}

	log.Info().Msg("dependencies installed successfully")
	return nil
}

func (l *Launcher) runDevServer(ctx context.Context) error {
	argv, err := l.conf.DevArgv()
	if err != nil {
		return gateError(GateDevServer, err)
	}
	command := shell.QuoteCommand(argv...)

	log.Info().Msgf("frontend will be available at: %s", l.conf.DevServerURL())
	log.Info().Msgf("backend should be running on: %s", l.conf.BackendURL)
	log.Info().Msg("auto-reload: enabled")
	log.Info().Msg("press Ctrl+C to stop the server")

	openerCtx, cancelOpener := context.WithCancel(ctx)
	defer cancelOpener()
	group := errgroup.Group{}
	if l.conf.OpenBrowser {
		group.Go(func() error {
			l.openBrowserWhenReady(openerCtx)
			return nil
		})
	}

	log.Info().Str("cmd", command).Msg("starting dev server")
	startTime := l.clock.Now()
	result := l.runner.Run(ctx, argv[0], argv[1:]...)
	uptime := l.clock.Since(startTime).Round(time.Second)

	cancelOpener()
	_ = group.Wait()

	switch {
	case ctx.Err() != nil:
		log.Info().Stringer("uptime", uptime).Msg("frontend dev server stopped by user")
		return ErrInterrupted
	case result.Success():
		log.Info().Stringer("uptime", uptime).Msg("frontend dev server stopped")
		return nil
	}

	log.Error().
		Str("cmd", command).
		Int("exitCode", result.Code).
		AnErr("cause", result.Err).
		Msg("error running the frontend dev server")
	log.Info().Msgf("try running: cd %s && %s", shell.QuoteCommand(l.conf.FrontendDir), command)
	return gateError(GateDevServer, commandError(command, result))
}

func (l *Launcher) openBrowserWhenReady(ctx context.Context) {
	url := l.conf.DevServerURL()
	logger := log.With().Str("url", url).Logger()

	if !l.portAvailable {
		logger.Warn().Msg("not opening web browser, as the dev server port was already in use")
		return
	}

	if err := preflight.WaitForPort(ctx, l.clock, l.conf.DevServerAddr(), browserPollInterval); err != nil {
		logger.Debug().AnErr("cause", err).Msg("stopped waiting for the dev server")
		return
	}

	if err := l.openBrowser(url); err != nil {
		logger.Warn().AnErr("cause", err).Msg("could not open web browser")
		return
	}
	logger.Info().Msg("opened frontend in web browser")
}

func commandError(command string, result shell.Result) error {
	if result.Err != nil {
		return fmt.Errorf("%s: %w", command, result.Err)
	}
	return fmt.Errorf("%s: exit code %d", command, result.Code)
}
