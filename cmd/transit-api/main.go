package main

import (
	"flag"
	"log"

	transitapi "github.com/freiburg-mobility/transit-api"
	"github.com/freiburg-mobility/transit-api/config"
	"github.com/freiburg-mobility/transit-api/dbrest"
	"github.com/freiburg-mobility/transit-api/transit"
)

func main() {
	configPath := flag.String("config", "", "path to config.yml (optional)")
	flag.Parse()

	transitapi.InitLogging()

	var paths []string
	if *configPath != "" {
		paths = append(paths, *configPath)
	}
	cfg, err := config.Load(paths...)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	client := dbrest.NewClientWithTimeout(cfg.Upstream.BaseURL, cfg.Upstream.Timeout())
	service := transit.NewService(client)
	api := transitapi.NewAPI(service)

	log.Printf("upstream: %s", cfg.Upstream.BaseURL)
	server := api.StartServer(cfg.Server.Port)
	transitapi.HandleGracefulShutdown(server)
}
