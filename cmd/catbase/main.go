// Command catbase starts the cat database MCP server on stdio (default) or
// HTTP.
package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/purrstack/catbase/internal/catdb"
	"github.com/purrstack/catbase/internal/config"
	"github.com/purrstack/catbase/internal/engine"
	"github.com/purrstack/catbase/internal/logging"
	"github.com/purrstack/catbase/internal/transport"
)

const (
	serverName    = "cat-database-server"
	serverVersion = "1.0.0"

	serverInstructions = "A Cat Database MCP Server that provides tools to manage and query cat data. " +
		"Use the available tools to list all cats, get specific cat information by ID, " +
		"search by breed, or filter for indoor cats only."
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := logging.NewSlogLogger(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat, os.Stderr)

	store, err := buildStore(cfg, logger)
	if err != nil {
		log.Fatalf("store error: %v", err)
	}

	eng, err := engine.New(
		engine.ServerInfo{Name: serverName, Version: serverVersion, Instructions: serverInstructions},
		engine.CatTools(store),
		engine.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("engine error: %v", err)
	}

	switch cfg.Transport {
	case config.TransportHTTP:
		srv := transport.NewHTTPServer(eng, logger)
		logger.Info("starting http server", "port", cfg.Port)
		if err := http.ListenAndServe(":"+cfg.Port, srv.Router()); err != nil {
			log.Fatalf("server error: %v", err)
		}
	default:
		logger.Info("starting stdio server", "name", serverName, "version", serverVersion)
		if err := transport.ServeStdio(transport.NewStdioServer(eng)); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}
}

func buildStore(cfg config.Config, logger logging.Logger) (catdb.Store, error) {
	cats := catdb.SampleCats()
	if cfg.RedisAddr == "" {
		return catdb.NewInMemoryStore(cats...), nil
	}

	store, err := catdb.NewRedisStore(catdb.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, err
	}
	if err := store.Seed(context.Background(), cats); err != nil {
		return nil, err
	}
	logger.Info("using redis store", "addr", cfg.RedisAddr)
	return store, nil
}
