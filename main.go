package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mrops-br/produto-api/internal/app/service"
	"github.com/mrops-br/produto-api/internal/domain"
	"github.com/mrops-br/produto-api/internal/infrastructure/config"
	"github.com/mrops-br/produto-api/internal/infrastructure/http"
	"github.com/mrops-br/produto-api/internal/infrastructure/http/handler"
	"github.com/mrops-br/produto-api/internal/infrastructure/repository/memory"
	"github.com/mrops-br/produto-api/internal/infrastructure/repository/postgres"
	"github.com/mrops-br/produto-api/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/trace"
)

func main() {
	cfg := config.LoadConfig(".env")

	var telem *telemetry.Telemetry
	if cfg.OTLP.Enabled {
		var err error
		telem, err = telemetry.NewTelemetry(&cfg.OTLP, cfg.Log.Level)
		if err != nil {
			log.Fatalf("Failed to initialize telemetry: %v", err)
		}
	} else {
		telem = telemetry.NewNoOpTelemetry(&cfg.OTLP, cfg.Log.Level)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := telem.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	tracer := telem.TracerProvider.Tracer("produtos-api")
	meter := telem.MeterProvider.Meter("produtos-api")
	logger := telem.Logger

	logger.Info("Starting Produtos API",
		slog.String("repository", cfg.Repository.Driver),
	)

	repo, closeRepo, err := newRepository(ctx, &cfg.Repository, tracer, logger)
	if err != nil {
		logger.Error("Failed to initialize repository", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeRepo()

	produtoService := service.NewProdutoService(repo, tracer, meter, logger)
	produtoHandler := handler.NewProdutoHandler(produtoService, logger)
	server := http.NewServer(&cfg.Server, produtoHandler, logger, telem)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down server...")
	case err := <-errCh:
		if err != nil {
			logger.Error("Server error", slog.String("error", err.Error()))
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}

	logger.Info("Server stopped")
}

// newRepository builds the storage backend selected by cfg.Driver
func newRepository(ctx context.Context, cfg *config.RepositoryConfig, tracer trace.Tracer, logger *slog.Logger) (domain.ProdutoRepository, func(), error) {
	switch cfg.Driver {
	case "memory":
		return memory.NewProdutoRepository(tracer, logger), func() {}, nil
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, nil, fmt.Errorf("DATABASE_URL is required for the postgres repository")
		}
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return postgres.NewProdutoRepository(pool, tracer, logger), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown repository driver %q", cfg.Driver)
	}
}
