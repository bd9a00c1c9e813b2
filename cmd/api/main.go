package main

import (
	"context"
	"dealership/cmd/internal/config"
	"dealership/cmd/internal/domain/sqlite"
	"dealership/cmd/internal/metrics"
	"errors"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	if err := config.LoadEnvFiles(".env"); err != nil {
		log.Fatal("failed to load .env file", err)
	}

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal("failed to load configuration", err)
	}
	log.SetLevel(logLevel(cfg.Logs.Level))

	// Init SQLite
	db, err := sqlite.Init(cfg.Database.DSN)
	if err != nil {
		log.Fatal("failed to initialize database", err)
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(prometheus.DefaultRegisterer)
	}

	e, err := newServer(cfg, db, m, nil)
	if err != nil {
		log.Fatal("failed to build server", err)
	}

	go func() {
		if err := e.Start(cfg.Server.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("graceful shutdown failed: %v", err)
	}
}

func logLevel(level string) log.Lvl {
	switch level {
	case "DEBUG":
		return log.DEBUG
	case "WARN":
		return log.WARN
	case "ERROR":
		return log.ERROR
	case "OFF":
		return log.OFF
	}
	return log.INFO
}
