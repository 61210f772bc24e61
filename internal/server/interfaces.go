// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle of the process' transport server.
//
// RunServer blocks until a stop signal arrives or Shutdown is called, and
// returns once the shutdown hooks have run.
type Server interface {
	RunServer()
	Shutdown()
}

// ShutdownHook finishes background work after the listener has stopped.
// It must return when ctx ends.
type ShutdownHook func(ctx context.Context) error
