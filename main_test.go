package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/mrops-br/produto-api/internal/infrastructure/config"
	"github.com/mrops-br/produto-api/internal/infrastructure/repository/memory"
)

func TestNewRepository(t *testing.T) {
	tracer := noop.NewTracerProvider().Tracer("test")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		repo, closeRepo, err := newRepository(ctx, &config.RepositoryConfig{Driver: "memory"}, tracer, logger)
		require.NoError(t, err)
		defer closeRepo()
		assert.IsType(t, &memory.ProdutoRepository{}, repo)
	})

	t.Run("postgres without url", func(t *testing.T) {
		_, _, err := newRepository(ctx, &config.RepositoryConfig{Driver: "postgres"}, tracer, logger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DATABASE_URL")
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, _, err := newRepository(ctx, &config.RepositoryConfig{Driver: "mongo"}, tracer, logger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mongo")
	})
}
