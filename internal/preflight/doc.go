// package preflight contains the environment checks that are performed before
// the frontend dev server is started.
//
// The checks do not log anything themselves; they return their findings, and
// it is up to the caller to decide whether a failing check is fatal.
package preflight

// SPDX-License-Identifier: GPL-3.0-or-later
