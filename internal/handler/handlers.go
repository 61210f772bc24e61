// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"fmt"

	"github.com/lerkeveld/underground/internal/config"
	"github.com/lerkeveld/underground/internal/handler/http"
	"github.com/lerkeveld/underground/internal/logger"
	"github.com/lerkeveld/underground/internal/render"
	"github.com/lerkeveld/underground/internal/service"
	"github.com/lerkeveld/underground/internal/validators"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers enabled in cfg. The server
// pages are parsed here so a broken template stops the start-up.
func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	pages, err := render.NewPages()
	if err != nil {
		return nil, fmt.Errorf("error parsing page templates: %w", err)
	}

	return &Handlers{
		HTTP: http.NewHandler(services, validators.NewRequestValidator(), pages, cfg, logger),
	}, nil
}
