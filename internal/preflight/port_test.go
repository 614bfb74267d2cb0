package preflight

// SPDX-License-Identifier: GPL-3.0-or-later

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// freeAddr returns an address on which nothing is listening.
func freeAddr(t *testing.T) string {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())
	return addr
}

func TestProbePort(t *testing.T) {
	addr := freeAddr(t)

	status := ProbePort(addr)
	require.NoError(t, status.Err)
	assert.True(t, status.Available)

	// The probe must have released the port again.
	listener, err := net.Listen("tcp", addr)
	require.NoError(t, err)
	defer listener.Close()

	status = ProbePort(addr)
	assert.False(t, status.Available)
	assert.True(t, status.InUse())
}

func TestWaitForPortAlreadyListening(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	err = WaitForPort(context.Background(), clock.NewMock(), listener.Addr().String(), time.Second)
	assert.NoError(t, err)
}

func TestWaitForPortEventuallyListening(t *testing.T) {
	addr := freeAddr(t)
	mockClock := clock.NewMock()

	done := make(chan error, 1)
	go func() {
		done <- WaitForPort(context.Background(), mockClock, addr, time.Second)
	}()

	listener, err := net.Listen("tcp", addr)
	require.NoError(t, err)
	defer listener.Close()

	assert.Eventually(t, func() bool {
		mockClock.Add(time.Second)
		select {
		case err := <-done:
			return assert.NoError(t, err)
		default:
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)
}

func TestWaitForPortCancelled(t *testing.T) {
	addr := freeAddr(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- WaitForPort(ctx, clock.NewMock(), addr, time.Second)
	}()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("WaitForPort did not stop after the context was cancelled")
	}
}
