package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mrops-br/produto-api/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// ProdutoService validates products and delegates persistence to the repository
type ProdutoService struct {
	repo                  domain.ProdutoRepository
	tracer                trace.Tracer
	logger                *slog.Logger
	produtoCreatedCounter metric.Int64Counter
	produtoOperations     metric.Int64Counter
}

// NewProdutoService creates a new product service
func NewProdutoService(
	repo domain.ProdutoRepository,
	tracer trace.Tracer,
	meter metric.Meter,
	logger *slog.Logger,
) *ProdutoService {
	produtoCreatedCounter, _ := meter.Int64Counter(
		"produtos.created.total",
		metric.WithDescription("Total number of products created"),
	)

	produtoOperations, _ := meter.Int64Counter(
		"produtos.operations",
		metric.WithDescription("Total number of product operations"),
	)

	return &ProdutoService{
		repo:                  repo,
		tracer:                tracer,
		logger:                logger,
		produtoCreatedCounter: produtoCreatedCounter,
		produtoOperations:     produtoOperations,
	}
}

// GetProduto returns whatever the repository holds for id
func (s *ProdutoService) GetProduto(ctx context.Context, id int) (*domain.Produto, error) {
	ctx, span := s.tracer.Start(ctx, "ProdutoService.GetProduto")
	defer span.End()

	span.SetAttributes(attribute.Int("produto.id", id))

	s.logger.InfoContext(ctx, "Getting product by ID",
		slog.Int("produto_id", id),
	)

	produto, err := s.repo.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to get product")
		s.logger.WarnContext(ctx, "Failed to get product",
			slog.Int("produto_id", id),
			slog.String("error", err.Error()),
		)
		s.recordOperation(ctx, "read", resultOf(err))
		return nil, err
	}

	s.recordOperation(ctx, "read", "success")
	span.SetStatus(codes.Ok, "Product retrieved")
	return produto, nil
}

// ObterTodosProdutos returns the repository's full collection unchanged
func (s *ProdutoService) ObterTodosProdutos(ctx context.Context) ([]*domain.Produto, error) {
	ctx, span := s.tracer.Start(ctx, "ProdutoService.ObterTodosProdutos")
	defer span.End()

	s.logger.InfoContext(ctx, "Listing all products")

	produtos, err := s.repo.GetAll(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to list products")
		s.logger.ErrorContext(ctx, "Failed to list products",
			slog.String("error", err.Error()),
		)
		s.recordOperation(ctx, "list", "failure")
		return nil, fmt.Errorf("listar produtos: %w", err)
	}

	span.SetAttributes(attribute.Int("produto.count", len(produtos)))
	s.recordOperation(ctx, "list", "success")

	s.logger.InfoContext(ctx, "Products listed successfully",
		slog.Int("count", len(produtos)),
	)

	span.SetStatus(codes.Ok, "Products listed successfully")
	return produtos, nil
}

// SalvarProduto validates produto and saves it
func (s *ProdutoService) SalvarProduto(ctx context.Context, produto *domain.Produto) error {
	ctx, span := s.tracer.Start(ctx, "ProdutoService.SalvarProduto")
	defer span.End()

	if err := produto.Validate(); err != nil {
		return s.fail(ctx, span, "create", err)
	}

	span.SetAttributes(
		attribute.String("produto.nome", produto.Nome),
		attribute.Float64("produto.preco", produto.Preco),
	)

	s.logger.InfoContext(ctx, "Saving product",
		slog.String("nome", produto.Nome),
		slog.Float64("preco", produto.Preco),
	)

	if err := s.repo.Save(ctx, produto); err != nil {
		return s.fail(ctx, span, "create", fmt.Errorf("salvar produto: %w", err))
	}

	s.produtoCreatedCounter.Add(ctx, 1)
	s.recordOperation(ctx, "create", "success")

	s.logger.InfoContext(ctx, "Product saved successfully",
		slog.Int("produto_id", produto.ID),
	)

	span.SetStatus(codes.Ok, "Product saved successfully")
	return nil
}

// AtualizarProduto validates produto and updates it if it already exists
func (s *ProdutoService) AtualizarProduto(ctx context.Context, produto *domain.Produto) error {
	ctx, span := s.tracer.Start(ctx, "ProdutoService.AtualizarProduto")
	defer span.End()

	if err := produto.Validate(); err != nil {
		return s.fail(ctx, span, "update", err)
	}

	span.SetAttributes(attribute.Int("produto.id", produto.ID))

	existe, err := s.existe(ctx, produto.ID)
	if err != nil {
		return s.fail(ctx, span, "update", err)
	}
	if !existe {
		return s.fail(ctx, span, "update", domain.NovaOperacaoInvalida(
			fmt.Sprintf("Não é possível atualizar o produto %d: produto inexistente", produto.ID),
		))
	}

	if err := s.repo.Update(ctx, produto); err != nil {
		return s.fail(ctx, span, "update", fmt.Errorf("atualizar produto: %w", err))
	}

	s.recordOperation(ctx, "update", "success")

	s.logger.InfoContext(ctx, "Product updated successfully",
		slog.Int("produto_id", produto.ID),
	)

	span.SetStatus(codes.Ok, "Product updated successfully")
	return nil
}

// ExcluirProduto deletes the product with id if it exists
func (s *ProdutoService) ExcluirProduto(ctx context.Context, id int) error {
	ctx, span := s.tracer.Start(ctx, "ProdutoService.ExcluirProduto")
	defer span.End()

	span.SetAttributes(attribute.Int("produto.id", id))

	existe, err := s.existe(ctx, id)
	if err != nil {
		return s.fail(ctx, span, "delete", err)
	}
	if !existe {
		return s.fail(ctx, span, "delete", domain.NovaOperacaoInvalida(
			fmt.Sprintf("Não é possível excluir o produto %d: produto inexistente", id),
		))
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return s.fail(ctx, span, "delete", fmt.Errorf("excluir produto: %w", err))
	}

	s.recordOperation(ctx, "delete", "success")

	s.logger.InfoContext(ctx, "Product deleted successfully",
		slog.Int("produto_id", id),
	)

	span.SetStatus(codes.Ok, "Product deleted successfully")
	return nil
}

// existe reports whether the repository holds a record matching id
func (s *ProdutoService) existe(ctx context.Context, id int) (bool, error) {
	produto, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrProdutoNaoEncontrado) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("buscar produto %d: %w", id, err)
	}
	return produto != nil && produto.ID == id, nil
}

func (s *ProdutoService) fail(ctx context.Context, span trace.Span, operation string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	result := resultOf(err)
	if result == "failure" {
		s.logger.ErrorContext(ctx, "Product operation failed",
			slog.String("operation", operation),
			slog.String("error", err.Error()),
		)
	} else {
		s.logger.WarnContext(ctx, "Product operation rejected",
			slog.String("operation", operation),
			slog.String("result", result),
			slog.String("error", err.Error()),
		)
	}

	s.recordOperation(ctx, operation, result)
	return err
}

func (s *ProdutoService) recordOperation(ctx context.Context, operation, result string) {
	s.produtoOperations.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("result", result),
		),
	)
}

func resultOf(err error) string {
	switch {
	case errors.Is(err, domain.ErrArgumentoNulo), errors.Is(err, domain.ErrArgumentoInvalido):
		return "invalid"
	case errors.Is(err, domain.ErrOperacaoInvalida), errors.Is(err, domain.ErrProdutoNaoEncontrado):
		return "not_found"
	default:
		return "failure"
	}
}
