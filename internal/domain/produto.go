package domain

import "strings"

// Produto represents the product entity
type Produto struct {
	ID    int
	Nome  string
	Preco float64
}

// Validate checks the invariants a product must hold before being persisted.
// A nil product is reported as ErrArgumentoNulo.
func (p *Produto) Validate() error {
	if p == nil {
		return novoErro(ErrArgumentoNulo, "O produto não pode ser nulo")
	}
	if strings.TrimSpace(p.Nome) == "" {
		return novoErro(ErrArgumentoInvalido, "O nome do produto não pode ser nulo ou vazio")
	}
	if p.Preco <= 0 {
		return novoErro(ErrArgumentoInvalido, "O preço do produto deve ser maior que zero")
	}
	return nil
}
