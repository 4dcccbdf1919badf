package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mrops-br/produto-api/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const uniqueViolation = "23505"

var _ domain.ProdutoRepository = (*ProdutoRepository)(nil)

// ProdutoRepository stores products in the produtos table
type ProdutoRepository struct {
	pool   *pgxpool.Pool
	tracer trace.Tracer
	logger *slog.Logger
}

func NewProdutoRepository(pool *pgxpool.Pool, tracer trace.Tracer, logger *slog.Logger) *ProdutoRepository {
	return &ProdutoRepository{pool: pool, tracer: tracer, logger: logger}
}

func (r *ProdutoRepository) GetByID(ctx context.Context, id int) (*domain.Produto, error) {
	ctx, span := r.tracer.Start(ctx, "ProdutoRepository.GetByID",
		trace.WithAttributes(attribute.String("db.system", "postgresql")))
	defer span.End()

	span.SetAttributes(attribute.Int("produto.id", id))

	row := r.pool.QueryRow(ctx, `SELECT id, nome, preco FROM produtos WHERE id = $1`, id)

	var out domain.Produto
	if err := row.Scan(&out.ID, &out.Nome, &out.Preco); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "Product not found")
			r.logger.WarnContext(ctx, "Product not found",
				slog.Int("produto_id", id),
			)
			return nil, domain.ErrProdutoNaoEncontrado
		}
		return nil, r.fail(span, fmt.Errorf("get produto: %w", err))
	}

	span.SetStatus(codes.Ok, "Product found")
	return &out, nil
}

func (r *ProdutoRepository) GetAll(ctx context.Context) ([]*domain.Produto, error) {
	ctx, span := r.tracer.Start(ctx, "ProdutoRepository.GetAll",
		trace.WithAttributes(attribute.String("db.system", "postgresql")))
	defer span.End()

	rows, err := r.pool.Query(ctx, `SELECT id, nome, preco FROM produtos ORDER BY id`)
	if err != nil {
		return nil, r.fail(span, fmt.Errorf("list produtos: %w", err))
	}
	defer rows.Close()

	produtos := []*domain.Produto{}
	for rows.Next() {
		var p domain.Produto
		if err := rows.Scan(&p.ID, &p.Nome, &p.Preco); err != nil {
			return nil, r.fail(span, fmt.Errorf("scan produto: %w", err))
		}
		produtos = append(produtos, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, r.fail(span, fmt.Errorf("list produtos: %w", err))
	}

	span.SetAttributes(attribute.Int("produto.count", len(produtos)))
	r.logger.InfoContext(ctx, "Products retrieved from database",
		slog.Int("count", len(produtos)),
	)

	span.SetStatus(codes.Ok, "Products retrieved successfully")
	return produtos, nil
}

// Save inserts produto. A zero ID lets the table sequence pick one and writes it back.
func (r *ProdutoRepository) Save(ctx context.Context, produto *domain.Produto) error {
	ctx, span := r.tracer.Start(ctx, "ProdutoRepository.Save",
		trace.WithAttributes(attribute.String("db.system", "postgresql")))
	defer span.End()

	var row pgx.Row
	if produto.ID == 0 {
		row = r.pool.QueryRow(ctx,
			`INSERT INTO produtos (nome, preco) VALUES ($1, $2) RETURNING id`,
			produto.Nome, produto.Preco,
		)
	} else {
		row = r.pool.QueryRow(ctx,
			`INSERT INTO produtos (id, nome, preco) VALUES ($1, $2, $3) RETURNING id`,
			produto.ID, produto.Nome, produto.Preco,
		)
	}

	if err := row.Scan(&produto.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return r.fail(span, domain.ErrProdutoJaExiste)
		}
		return r.fail(span, fmt.Errorf("insert produto: %w", err))
	}

	span.SetAttributes(attribute.Int("produto.id", produto.ID))
	r.logger.InfoContext(ctx, "Product saved in database",
		slog.Int("produto_id", produto.ID),
		slog.String("produto_nome", produto.Nome),
	)

	span.SetStatus(codes.Ok, "Product saved successfully")
	return nil
}

func (r *ProdutoRepository) Update(ctx context.Context, produto *domain.Produto) error {
	ctx, span := r.tracer.Start(ctx, "ProdutoRepository.Update",
		trace.WithAttributes(attribute.String("db.system", "postgresql")))
	defer span.End()

	span.SetAttributes(attribute.Int("produto.id", produto.ID))

	tag, err := r.pool.Exec(ctx,
		`UPDATE produtos SET nome = $2, preco = $3 WHERE id = $1`,
		produto.ID, produto.Nome, produto.Preco,
	)
	if err != nil {
		return r.fail(span, fmt.Errorf("update produto: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return r.fail(span, domain.ErrProdutoNaoEncontrado)
	}

	r.logger.InfoContext(ctx, "Product updated in database",
		slog.Int("produto_id", produto.ID),
	)

	span.SetStatus(codes.Ok, "Product updated successfully")
	return nil
}

func (r *ProdutoRepository) Delete(ctx context.Context, id int) error {
	ctx, span := r.tracer.Start(ctx, "ProdutoRepository.Delete",
		trace.WithAttributes(attribute.String("db.system", "postgresql")))
	defer span.End()

	span.SetAttributes(attribute.Int("produto.id", id))

	tag, err := r.pool.Exec(ctx, `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		return r.fail(span, fmt.Errorf("delete produto: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return r.fail(span, domain.ErrProdutoNaoEncontrado)
	}

	r.logger.InfoContext(ctx, "Product deleted from database",
		slog.Int("produto_id", id),
	)

	span.SetStatus(codes.Ok, "Product deleted successfully")
	return nil
}

func (r *ProdutoRepository) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
