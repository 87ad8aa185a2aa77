package main

import (
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/freiburg-mobility/transit-api/config"
	"github.com/freiburg-mobility/transit-api/dbrest"
	"github.com/freiburg-mobility/transit-api/mcptool"
	"github.com/freiburg-mobility/transit-api/transit"
)

func main() {
	configPath := flag.String("config", "", "path to config.yml (optional)")
	flag.Parse()

	// stdout belongs to the stdio transport
	log.SetOutput(os.Stderr)

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

	s := mcptool.NewServer(service)
	if err := server.ServeStdio(s); err != nil {
		log.Fatalf("mcp server error: %v", err)
	}
}
