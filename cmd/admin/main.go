// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command admin maintains the residence hall data that has no web
// interface: accounts, groups, the bread calendar and the catalogs.
//
//	admin user-add -email jan@example.com -first Jan -last Peeters -corridor 2B -room 12
//	admin orderdate-add -date 2025-10-21
package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/lerkeveld/underground/internal/config"
	"github.com/lerkeveld/underground/internal/logger"
	"github.com/lerkeveld/underground/internal/service"
	"github.com/lerkeveld/underground/internal/store"
	"github.com/lerkeveld/underground/internal/validators"
)

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	cfg, err := config.GetStorageConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger("underground-admin", cfg.App.LogLevel)

	ctx := context.Background()
	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	// no mailing: the CLI never triggers notifications
	services, err := service.NewServices(storages, *cfg, service.Mailing{}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	a := newApp(services, validators.NewRequestValidator(), os.Stdout)
	if err = a.run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", os.Args[1], err)
		storages.Close()
		os.Exit(1)
	}
}
