// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// control API handlers and the operator CLI.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or printed by the CLI to describe the outcome of an
// operation. Keeping them in one place keeps the wording identical on both
// sides of the control API.
package app

const (
	// MsgInvalidJSON is returned when a control request body cannot be
	// decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgListenerSuspended is printed after a successful suspend, followed
	// by the token needed to resume.
	MsgListenerSuspended = "listener suspended, token"

	// MsgListenerResumed is printed after a successful resume.
	MsgListenerResumed = "listener resumed"

	// MsgDrainCompleted is printed when every in-flight request finished
	// before the stop deadline.
	MsgDrainCompleted = "listener stopped, drain completed"

	// MsgDrainTimedOut is printed when the stop deadline passed with
	// requests still in flight.
	MsgDrainTimedOut = "listener stopped, drain timed out with requests in flight"

	// MsgUnknownCommand is printed when the CLI does not recognise the
	// command.
	MsgUnknownCommand = "unknown command"

	// MsgUsage lists the CLI commands.
	MsgUsage = "usage: client [flags] state | suspend | resume <token> | stop [timeout] | verify [PARAMETERS|CONNECTIVITY] | version"
)
