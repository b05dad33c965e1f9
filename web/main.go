package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/df07/diorama-raytracer/pkg/config"
	"github.com/df07/diorama-raytracer/pkg/logging"
	"github.com/df07/diorama-raytracer/web/server"
)

func main() {
	envFile := flag.String("env", config.DefaultEnvFile, "Environment file to load before reading configuration")
	addr := flag.String("addr", "", "Address to listen on (overrides DIORAMA_ADDR)")
	staticDir := flag.String("static", "static", "Directory holding the browser viewer")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	logger, err := logging.NewFromConfig(cfg.LogLevel, "diorama-web")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level: %v\n", err)
		os.Exit(1)
	}

	webServer := server.NewServer(cfg, *staticDir, logger)
	logger.Info("diorama web viewer", logging.String("url", "http://localhost"+cfg.Addr))

	if err := webServer.Start(); err != nil {
		logger.Error("server stopped", logging.Error(err))
		os.Exit(1)
	}
}
