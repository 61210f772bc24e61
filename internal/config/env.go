// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the layer of configuration that comes from the process
// environment. Variable names follow the `env` and `envPrefix` tags, so the
// database DSN is STORAGE_DB_DATABASE_URI and the SMTP host MAIL_HOST.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
