// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	_ "go.uber.org/automaxprocs"

	"github.com/lerkeveld/underground/internal/config"
	"github.com/lerkeveld/underground/internal/handler"
	"github.com/lerkeveld/underground/internal/logger"
	"github.com/lerkeveld/underground/internal/mailer"
	"github.com/lerkeveld/underground/internal/render"
	"github.com/lerkeveld/underground/internal/server"
	"github.com/lerkeveld/underground/internal/service"
	"github.com/lerkeveld/underground/internal/store"
	"github.com/lerkeveld/underground/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger("underground-server", cfg.App.LogLevel)

	ctx := context.Background()
	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	sender, err := mailer.NewSender(cfg.Mail, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mail sender")
	}
	attachment, err := mailer.LoadAttachment(cfg.Mail.AttachmentPath, cfg.Mail.AttachmentName)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading mail attachment")
	}
	emails, err := render.NewEmails()
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing mail templates")
	}

	queue := workers.NewMailQueue(cfg.Workers.MailQueueSize)
	mailWorkers := workers.NewWorkers(workers.NewMailWorker(queue, sender, cfg.Workers.MailWorkers, log))
	workersCtx, stopWorkers := context.WithCancel(ctx)
	defer stopWorkers()
	mailWorkers.Run(workersCtx)

	services, err := service.NewServices(storages, *cfg, service.Mailing{
		Renderer:   emails,
		Queue:      queue,
		Attachment: attachment,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	// queued mails are still delivered after the listener stops
	drainMails := func(ctx context.Context) error {
		queue.Close()
		defer stopWorkers()
		return mailWorkers.WaitContext(ctx)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log, drainMails)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
