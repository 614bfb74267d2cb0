package shell

// SPDX-License-Identifier: GPL-3.0-or-later

import (
	"bytes"
	"context"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipOnWindows(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("these tests use a POSIX shell")
	}
}

func testRunner(stdout *bytes.Buffer) *Runner {
	return &Runner{
		Stdin:     strings.NewReader(""),
		Stdout:    stdout,
		Stderr:    stdout,
		WaitDelay: 2 * time.Second,
	}
}

func TestOutput(t *testing.T) {
	skipOnWindows(t)
	r := testRunner(&bytes.Buffer{})

	version, result := r.Output(context.Background(), "sh", "-c", "echo '  v20.11.1 '; echo noise >&2")
	assert.True(t, result.Success())
	assert.Equal(t, "v20.11.1", version)
}

func TestOutputNonZeroExit(t *testing.T) {
	skipOnWindows(t)
	r := testRunner(&bytes.Buffer{})

	_, result := r.Output(context.Background(), "sh", "-c", "exit 3")
	assert.False(t, result.Success())
	assert.True(t, result.Ran)
	assert.Equal(t, 3, result.Code)
	assert.Error(t, result.Err)
}

func TestOutputMissingExecutable(t *testing.T) {
	r := testRunner(&bytes.Buffer{})

	_, result := r.Output(context.Background(), "devlaunch-test-this-tool-does-not-exist", "--version")
	assert.False(t, result.Success())
	assert.False(t, result.Ran)
	assert.Error(t, result.Err)
}

func TestOutputCancelledContext(t *testing.T) {
	r := testRunner(&bytes.Buffer{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, result := r.Output(ctx, "sh", "-c", "echo should not run")
	assert.False(t, result.Ran)
	assert.ErrorIs(t, result.Err, context.Canceled)
}

func TestRunStreamsOutput(t *testing.T) {
	skipOnWindows(t)
	stdout := bytes.Buffer{}
	r := testRunner(&stdout)

	result := r.Run(context.Background(), "sh", "-c", "echo hello; exit 2")
	assert.True(t, result.Ran)
	assert.Equal(t, 2, result.Code)
	assert.Equal(t, "hello\n", stdout.String())
}

func TestRunInterrupted(t *testing.T) {
	skipOnWindows(t)
	r := testRunner(&bytes.Buffer{})

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(100*time.Millisecond, cancel)

	startTime := time.Now()
	result := r.Run(ctx, "sleep", "30")
	assert.Less(t, time.Since(startTime), 10*time.Second, "the command should have been interrupted")
	assert.True(t, result.Ran)
	assert.False(t, result.Success())
	assert.Error(t, result.Err)
}

func TestRunTimeout(t *testing.T) {
	skipOnWindows(t)
	r := testRunner(&bytes.Buffer{})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	result := r.Run(ctx, "sleep", "30")
	assert.Equal(t, ExitCodeTimeout, result.Code)
}

func TestRunMissingExecutable(t *testing.T) {
	r := testRunner(&bytes.Buffer{})

	result := r.Run(context.Background(), "devlaunch-test-this-tool-does-not-exist")
	assert.False(t, result.Ran)
	require.Error(t, result.Err)
}

func TestQuoteCommand(t *testing.T) {
	assert.Equal(t, "npm run dev", QuoteCommand("npm", "run", "dev"))
	assert.Equal(t, "cd 'my frontend' && npm run dev",
		"cd "+QuoteCommand("my frontend")+" && "+QuoteCommand("npm", "run", "dev"))
}
