package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	flag "github.com/spf13/pflag"

	"github.com/FoxaxeWasTaken/Awkward-Legacy-sub000/internal/api"
	"github.com/FoxaxeWasTaken/Awkward-Legacy-sub000/internal/config"
	"github.com/FoxaxeWasTaken/Awkward-Legacy-sub000/internal/provider"
	"github.com/FoxaxeWasTaken/Awkward-Legacy-sub000/internal/service"
	"github.com/FoxaxeWasTaken/Awkward-Legacy-sub000/internal/tree"
	"github.com/FoxaxeWasTaken/Awkward-Legacy-sub000/pkg/logger"
)

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	providerURL := flag.String("provider-url", "", "family-data provider base URL (overrides PROVIDER_URL)")
	port := flag.String("port", "", "HTTP listen port (overrides PORT)")
	logLevel := flag.String("log-level", "", "log level (overrides LOG_LEVEL)")
	flag.Parse()

	cfg, err := loadConfig(*providerURL, *port, *logLevel)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	l := logger.New(cfg.LogLevel)
	l.Info("Starting treeview...")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := service.NewMetrics(registry)

	client := provider.NewClient(cfg.ProviderURL, cfg.ProviderTimeout, l)
	loader := tree.NewLoader(client, l)
	svc := service.New(loader, l, metrics, cfg.FitSettle)

	apiServer := api.NewServer(svc, l, registry)
	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: apiServer.Handler(),
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		l.Info("Received shutdown signal...")
		cancel()
	}()

	go func() {
		l.Infof("HTTP server listening on :%s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Errorf("HTTP server error: %v", err)
		}
	}()

	l.Info("treeview started successfully")

	<-ctx.Done()

	l.Info("Shutting down HTTP server...")
	httpServer.Close()

	l.Info("treeview stopped")
}

// loadConfig layers command-line overrides on top of the environment.
func loadConfig(providerURL, port, logLevel string) (*config.Config, error) {
	if providerURL != "" {
		os.Setenv("PROVIDER_URL", providerURL)
	}
	if port != "" {
		os.Setenv("PORT", port)
	}
	if logLevel != "" {
		os.Setenv("LOG_LEVEL", logLevel)
	}
	return config.Load()
}
