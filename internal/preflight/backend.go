package preflight

// SPDX-License-Identifier: GPL-3.0-or-later

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"projects.blender.org/studio/devlaunch/internal/appinfo"
)

// Only this much of the response body is read, to allow connection reuse
// without downloading an entire web page.
const maxBodyDrain = 64 * 1024

// BackendStatus is the result of probing the backend.
type BackendStatus struct {
	URL string
	// Reachable indicates that the backend sent a response, regardless of its status code.
	Reachable  bool
	StatusCode int
	Err        error
}

// OK returns whether the backend responded with "200 OK".
func (s BackendStatus) OK() bool {
	return s.Reachable && s.StatusCode == http.StatusOK
}

// TimedOut returns whether the backend did not respond in time.
func (s BackendStatus) TimedOut() bool {
	return errors.Is(s.Err, context.DeadlineExceeded)
}

// ProbeBackend performs a single GET request on the URL. Any failure is
// reported in the returned status.
func ProbeBackend(ctx context.Context, client *http.Client, url string, timeout time.Duration) BackendStatus {
	status := BackendStatus{URL: url}

	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(probeCtx, http.MethodGet, url, nil)
	if err != nil {
		status.Err = err
		return status
	}
	req.Header.Set("User-Agent", appinfo.UserAgent())

	resp, err := client.Do(req)
	if err != nil {
		status.Err = err
		return status
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyDrain))

	status.Reachable = true
	status.StatusCode = resp.StatusCode
	return status
}
