package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/pfrederiksen/luma-events/internal/config"
	"github.com/pfrederiksen/luma-events/internal/logger"
	"github.com/pfrederiksen/luma-events/internal/scraper"
	"github.com/pfrederiksen/luma-events/internal/server"
)

// options holds the parsed command line. Env-derived defaults are resolved
// inside parseOptions so they pick up anything a .env file loaded first.
type options struct {
	addr       string
	configPath string
	verbose    bool
}

func parseOptions(args []string) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("luma-events-server", flag.ContinueOnError)
	fs.StringVar(&opts.addr, "addr", envOr("LUMA_EVENTS_ADDR", ":3001"), "Listen address (or env: LUMA_EVENTS_ADDR)")
	fs.StringVar(&opts.configPath, "config", os.Getenv("LUMA_EVENTS_CONFIG"), "Path to heuristics YAML file (or env: LUMA_EVENTS_CONFIG)")
	fs.BoolVar(&opts.verbose, "verbose", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	// Optional .env file for local development. Must load before the flag
	// defaults are resolved or its values could never take effect.
	_ = godotenv.Load()

	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	if opts.verbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	srv := server.New(scraper.NewWithConfig(cfg))

	logger.Info("Starting scrape API", logger.Fields{"addr": opts.addr})
	if err := http.ListenAndServe(opts.addr, srv.Handler()); err != nil {
		logger.Error("Server stopped", nil, err)
		os.Exit(1)
	}
}
