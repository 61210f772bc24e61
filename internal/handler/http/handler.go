// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"strings"

	"github.com/lerkeveld/underground/internal/config"
	"github.com/lerkeveld/underground/internal/logger"
	"github.com/lerkeveld/underground/internal/render"
	"github.com/lerkeveld/underground/internal/service"
	"github.com/lerkeveld/underground/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator
	pages     *render.Pages

	cookies     cookieSettings
	corsOrigins []string
	baseURL     string

	logger *logger.Logger
}

func NewHandler(
	services *service.Services,
	validator validators.Validator,
	pages *render.Pages,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		validator:   validator,
		pages:       pages,
		cookies:     cookieSettings{secure: !cfg.Auth.InsecureCookies},
		corsOrigins: cfg.Server.CORSOrigins,
		baseURL:     strings.TrimRight(cfg.App.BaseURL, "/"),
		logger:      logger,
	}
}
