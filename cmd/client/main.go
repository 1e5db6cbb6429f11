package main

import (
	"fmt"

	"github.com/savasana/yoga-client/internal/adapter"
	"github.com/savasana/yoga-client/internal/client"
	"github.com/savasana/yoga-client/internal/config"
	"github.com/savasana/yoga-client/internal/logger"
	"github.com/savasana/yoga-client/internal/service"
	"github.com/savasana/yoga-client/internal/session"
	"github.com/savasana/yoga-client/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		panic(fmt.Sprintf("error getting configs: %v", err))
	}

	log := logger.NewClientLogger("yoga-client", cfg.Logs.Path)

	gateway, err := adapter.NewHTTPResourceGateway(cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create resource gateway")
	}

	store := session.NewStore()
	services := service.NewClientServices(gateway, store, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
