// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package listener implements a suspendable HTTP consumer endpoint.
//
// A [Listener] binds a socket once and serves a fixed table of routes. The
// [Handle] returned by [Listener.Start] is the only way to change its state:
//
//	RUNNING ⇄ SUSPENDED → STOPPING → STOPPED
//
// While suspended the socket stays open and every request is answered with
// 503 Service Unavailable without reaching the route pipeline. Resuming does
// not re-bind. Stopping closes the acceptor, waits up to a timeout for
// in-flight requests (see [ShutdownCoordinator]) and then force-closes the
// remaining connections.
package listener
