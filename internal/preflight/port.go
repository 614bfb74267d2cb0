package preflight

// SPDX-License-Identifier: GPL-3.0-or-later

import (
	"context"
	"errors"
	"net"
	"syscall"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog/log"
)

// PortStatus is the result of probing a TCP port.
type PortStatus struct {
	Addr      string
	Available bool
	Err       error
}

// InUse returns whether the port could not be bound because something else is
// already listening on it.
func (s PortStatus) InUse() bool {
	return errors.Is(s.Err, syscall.EADDRINUSE)
}

// ProbePort checks whether a TCP listener can be created on addr. The listener
// is closed immediately, so there is no guarantee the port is still available
// when it is actually used.
func ProbePort(addr string) PortStatus {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return PortStatus{Addr: addr, Err: err}
	}

	if err := listener.Close(); err != nil {
		log.Debug().Err(err).Str("addr", addr).Msg("closing port probe listener")
	}
	return PortStatus{Addr: addr, Available: true}
}

// WaitForPort blocks until a TCP connection to addr can be made, trying every
// interval. It returns the context error if the context is done first.
func WaitForPort(ctx context.Context, clk clock.Clock, addr string, interval time.Duration) error {
	dialer := net.Dialer{Timeout: interval}

	for {
		conn, err := dialer.DialContext(ctx, "tcp", addr)
		if err == nil {
			_ = conn.Close()
			return nil
		}
		log.Trace().Err(err).Str("addr", addr).Msg("port not accepting connections yet")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-clk.After(interval):
		}
	}
}
