package memory_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/mrops-br/produto-api/internal/domain"
	"github.com/mrops-br/produto-api/internal/infrastructure/repository/memory"
)

func newRepo(t *testing.T) *memory.ProdutoRepository {
	t.Helper()
	return memory.NewProdutoRepository(noop.NewTracerProvider().Tracer("test"), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestProdutoRepo_SaveAndGetByID(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &domain.Produto{ID: 1, Nome: "Café Pelé", Preco: 19.50}))

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, &domain.Produto{ID: 1, Nome: "Café Pelé", Preco: 19.50}, got)
}

func TestProdutoRepo_GetByID_NotFound(t *testing.T) {
	repo := newRepo(t)

	got, err := repo.GetByID(context.Background(), 42)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrProdutoNaoEncontrado)
}

func TestProdutoRepo_Save(t *testing.T) {
	t.Run("assigns sequence to zero id", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		require.NoError(t, repo.Save(ctx, &domain.Produto{ID: 1, Nome: "Café Pelé", Preco: 19.50}))
		p := &domain.Produto{Nome: "Café Pilão", Preco: 20.49}
		require.NoError(t, repo.Save(ctx, p))
		assert.Equal(t, 2, p.ID)
	})

	t.Run("duplicate id", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		require.NoError(t, repo.Save(ctx, &domain.Produto{ID: 5, Nome: "Café Pelé", Preco: 19.50}))
		err := repo.Save(ctx, &domain.Produto{ID: 5, Nome: "Café Melita", Preco: 18.13})
		assert.ErrorIs(t, err, domain.ErrProdutoJaExiste)
	})

	t.Run("stored copy is isolated from caller", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		p := &domain.Produto{ID: 1, Nome: "Café Pelé", Preco: 19.50}
		require.NoError(t, repo.Save(ctx, p))
		p.Nome = "changed"

		got, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Café Pelé", got.Nome)
	})
}

func TestProdutoRepo_GetAll_OrderedByID(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	for _, p := range []*domain.Produto{
		{ID: 3, Nome: "Café Melita", Preco: 18.13},
		{ID: 1, Nome: "Café Pelé", Preco: 19.50},
		{ID: 2, Nome: "Café Pilão", Preco: 20.49},
	} {
		require.NoError(t, repo.Save(ctx, p))
	}

	got, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, p := range got {
		assert.Equal(t, i+1, p.ID)
	}
}

func TestProdutoRepo_Update(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	err := repo.Update(ctx, &domain.Produto{ID: 1, Nome: "Café Pelé", Preco: 19.50})
	assert.ErrorIs(t, err, domain.ErrProdutoNaoEncontrado)

	require.NoError(t, repo.Save(ctx, &domain.Produto{ID: 1, Nome: "Café Pelé", Preco: 19.50}))
	require.NoError(t, repo.Update(ctx, &domain.Produto{ID: 1, Nome: "Café Pelé Extra Forte", Preco: 22.90}))

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Café Pelé Extra Forte", got.Nome)
	assert.Equal(t, 22.90, got.Preco)
}

func TestProdutoRepo_Delete(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	assert.ErrorIs(t, repo.Delete(ctx, 1), domain.ErrProdutoNaoEncontrado)

	require.NoError(t, repo.Save(ctx, &domain.Produto{ID: 1, Nome: "Café Pelé", Preco: 19.50}))
	require.NoError(t, repo.Delete(ctx, 1))

	_, err := repo.GetByID(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrProdutoNaoEncontrado)
}

func TestProdutoRepo_ConcurrentSave(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.Save(ctx, &domain.Produto{Nome: "Café", Preco: 10}))
		}()
	}
	wg.Wait()

	got, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 50)
}
