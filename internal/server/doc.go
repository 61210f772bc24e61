// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP server of the underground backend: start-up,
// signal handling and graceful shutdown, followed by the shutdown hooks
// that let background work such as mail delivery settle.
package server
