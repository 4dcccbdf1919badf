package dto

import "github.com/mrops-br/produto-api/internal/domain"

// ProdutoRequest is the body of create and update requests
type ProdutoRequest struct {
	ID    int     `json:"id,omitempty"`
	Nome  string  `json:"nome"`
	Preco float64 `json:"preco"`
}

// ProdutoResponse represents the product response
type ProdutoResponse struct {
	ID    int     `json:"id"`
	Nome  string  `json:"nome"`
	Preco float64 `json:"preco"`
}

// ToDomain converts the request to a domain Produto. A nil request yields a nil product.
func (r *ProdutoRequest) ToDomain() *domain.Produto {
	if r == nil {
		return nil
	}
	return &domain.Produto{ID: r.ID, Nome: r.Nome, Preco: r.Preco}
}

// ToProdutoResponse converts a domain Produto to ProdutoResponse
func ToProdutoResponse(p *domain.Produto) *ProdutoResponse {
	return &ProdutoResponse{
		ID:    p.ID,
		Nome:  p.Nome,
		Preco: p.Preco,
	}
}

// ToProdutoResponseList converts a list of domain Produtos preserving order
func ToProdutoResponseList(produtos []*domain.Produto) []*ProdutoResponse {
	responses := make([]*ProdutoResponse, len(produtos))
	for i, p := range produtos {
		responses[i] = ToProdutoResponse(p)
	}
	return responses
}
