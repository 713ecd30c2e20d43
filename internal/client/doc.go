// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the operator command-line runtime.
//
// It turns positional arguments into control API calls against a running
// consumer and prints a human-readable outcome for each command.
package client
