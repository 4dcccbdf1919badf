package domain

//go:generate mockgen -source=repository.go -destination=../mocks/mock_produto_repository.go -package=mocks

import (
	"context"
	"errors"
)

var (
	ErrProdutoNaoEncontrado = errors.New("produto não encontrado")
	ErrProdutoJaExiste      = errors.New("produto já existe")
)

// ProdutoRepository defines the contract for product storage.
// GetByID reports an absent product as (nil, ErrProdutoNaoEncontrado) or (nil, nil).
type ProdutoRepository interface {
	GetByID(ctx context.Context, id int) (*Produto, error)
	GetAll(ctx context.Context) ([]*Produto, error)
	Save(ctx context.Context, produto *Produto) error
	Update(ctx context.Context, produto *Produto) error
	Delete(ctx context.Context, id int) error
}
