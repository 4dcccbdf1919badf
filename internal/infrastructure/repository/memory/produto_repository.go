package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/mrops-br/produto-api/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var _ domain.ProdutoRepository = (*ProdutoRepository)(nil)

// ProdutoRepository is an in-memory implementation of domain.ProdutoRepository
type ProdutoRepository struct {
	mu       sync.RWMutex
	produtos map[int]domain.Produto
	nextID   int
	tracer   trace.Tracer
	logger   *slog.Logger
}

// NewProdutoRepository creates a new in-memory product repository
func NewProdutoRepository(tracer trace.Tracer, logger *slog.Logger) *ProdutoRepository {
	return &ProdutoRepository{
		produtos: make(map[int]domain.Produto),
		nextID:   1,
		tracer:   tracer,
		logger:   logger,
	}
}

// GetByID retrieves a product by ID
func (r *ProdutoRepository) GetByID(ctx context.Context, id int) (*domain.Produto, error) {
	ctx, span := r.tracer.Start(ctx, "ProdutoRepository.GetByID")
	defer span.End()

	span.SetAttributes(attribute.Int("produto.id", id))

	r.mu.RLock()
	defer r.mu.RUnlock()

	produto, exists := r.produtos[id]
	if !exists {
		span.RecordError(domain.ErrProdutoNaoEncontrado)
		span.SetStatus(codes.Error, "Product not found")
		r.logger.WarnContext(ctx, "Product not found",
			slog.Int("produto_id", id),
		)
		return nil, domain.ErrProdutoNaoEncontrado
	}

	r.logger.DebugContext(ctx, "Product found in repository",
		slog.Int("produto_id", id),
		slog.String("produto_nome", produto.Nome),
	)

	span.SetStatus(codes.Ok, "Product found")
	return &produto, nil
}

// GetAll retrieves all products ordered by ID
func (r *ProdutoRepository) GetAll(ctx context.Context) ([]*domain.Produto, error) {
	ctx, span := r.tracer.Start(ctx, "ProdutoRepository.GetAll")
	defer span.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	produtos := make([]*domain.Produto, 0, len(r.produtos))
	for _, produto := range r.produtos {
		produtos = append(produtos, &produto)
	}
	sort.Slice(produtos, func(i, j int) bool { return produtos[i].ID < produtos[j].ID })

	span.SetAttributes(attribute.Int("produto.count", len(produtos)))

	r.logger.InfoContext(ctx, "Products retrieved from repository",
		slog.Int("count", len(produtos)),
	)

	span.SetStatus(codes.Ok, "Products retrieved successfully")
	return produtos, nil
}

// Save stores a new product. A zero ID is replaced by the next free sequence value.
func (r *ProdutoRepository) Save(ctx context.Context, produto *domain.Produto) error {
	ctx, span := r.tracer.Start(ctx, "ProdutoRepository.Save")
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	if produto.ID == 0 {
		for {
			if _, taken := r.produtos[r.nextID]; !taken {
				break
			}
			r.nextID++
		}
		produto.ID = r.nextID
		r.nextID++
	}

	span.SetAttributes(
		attribute.Int("produto.id", produto.ID),
		attribute.String("produto.nome", produto.Nome),
	)

	if _, exists := r.produtos[produto.ID]; exists {
		span.RecordError(domain.ErrProdutoJaExiste)
		span.SetStatus(codes.Error, "Product already exists")
		return domain.ErrProdutoJaExiste
	}

	r.produtos[produto.ID] = *produto

	r.logger.InfoContext(ctx, "Product saved in repository",
		slog.Int("produto_id", produto.ID),
		slog.String("produto_nome", produto.Nome),
	)

	span.SetStatus(codes.Ok, "Product saved successfully")
	return nil
}

// Update replaces an existing product
func (r *ProdutoRepository) Update(ctx context.Context, produto *domain.Produto) error {
	ctx, span := r.tracer.Start(ctx, "ProdutoRepository.Update")
	defer span.End()

	span.SetAttributes(attribute.Int("produto.id", produto.ID))

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.produtos[produto.ID]; !exists {
		span.RecordError(domain.ErrProdutoNaoEncontrado)
		span.SetStatus(codes.Error, "Product not found")
		return domain.ErrProdutoNaoEncontrado
	}

	r.produtos[produto.ID] = *produto

	r.logger.InfoContext(ctx, "Product updated in repository",
		slog.Int("produto_id", produto.ID),
	)

	span.SetStatus(codes.Ok, "Product updated successfully")
	return nil
}

// Delete removes a product by ID
func (r *ProdutoRepository) Delete(ctx context.Context, id int) error {
	ctx, span := r.tracer.Start(ctx, "ProdutoRepository.Delete")
	defer span.End()

	span.SetAttributes(attribute.Int("produto.id", id))

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.produtos[id]; !exists {
		span.RecordError(domain.ErrProdutoNaoEncontrado)
		span.SetStatus(codes.Error, "Product not found")
		return domain.ErrProdutoNaoEncontrado
	}

	delete(r.produtos, id)

	r.logger.InfoContext(ctx, "Product deleted from repository",
		slog.Int("produto_id", id),
	)

	span.SetStatus(codes.Ok, "Product deleted successfully")
	return nil
}
