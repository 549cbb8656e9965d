package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"auja/internal/clients"
	"auja/internal/config"
	"auja/internal/domain"
	"auja/internal/service"
)

const (
	appName    = "AUJA (Automatic Unassigned Jira Announcer)"
	appVersion = "1.0.0"

	exitFailure  = 1
	exitConfig   = 2
	exitFetch    = 3
	exitDelivery = 4
)

func main() {
	printBanner()

	log.SetOutput(os.Stdout)
	log.SetLevel(log.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Error("configuration validation failed")
		os.Exit(exitCode(err))
	}

	reporter := service.NewReporter(
		clients.NewJiraClient(cfg),
		clients.NewSMTPNotifier(cfg),
	)

	if err := reporter.Run(context.Background()); err != nil {
		log.WithError(err).Error("report run failed")
		os.Exit(exitCode(err))
	}
}

func printBanner() {
	line := strings.Repeat("═", 51)
	fmt.Printf("\n%s\n%s\nVersion %s\n%s\n\n", line, appName, appVersion, line)
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrConfig):
		return exitConfig
	case errors.Is(err, domain.ErrFetch):
		return exitFetch
	case errors.Is(err, domain.ErrDelivery):
		return exitDelivery
	default:
		return exitFailure
	}
}
