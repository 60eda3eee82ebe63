// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores the previous session and intake snapshot, follows backend
// session changes, runs the background refresh job and hands control to the
// terminal UI for the rest of the process lifetime.
package client
