package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrops-br/produto-api/internal/domain"
)

func TestProduto_Validate(t *testing.T) {
	tests := []struct {
		name    string
		produto *domain.Produto
		kind    error
		message string
	}{
		{"nil product", nil, domain.ErrArgumentoNulo, "O produto não pode ser nulo"},
		{"empty name", &domain.Produto{ID: 1, Preco: 19.50}, domain.ErrArgumentoInvalido, "O nome do produto não pode ser nulo ou vazio"},
		{"blank name", &domain.Produto{ID: 1, Nome: "   ", Preco: 19.50}, domain.ErrArgumentoInvalido, "O nome do produto não pode ser nulo ou vazio"},
		{"zero price", &domain.Produto{ID: 1, Nome: "Café Pelé"}, domain.ErrArgumentoInvalido, "O preço do produto deve ser maior que zero"},
		{"negative price", &domain.Produto{ID: 1, Nome: "Café Pelé", Preco: -1}, domain.ErrArgumentoInvalido, "O preço do produto deve ser maior que zero"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.produto.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)
			assert.EqualError(t, err, tt.message)

			var erro *domain.Erro
			require.True(t, errors.As(err, &erro))
			assert.Equal(t, tt.kind, erro.Tipo)
		})
	}
}

func TestProduto_Validate_Valid(t *testing.T) {
	p := &domain.Produto{ID: 1, Nome: "Café Pelé", Preco: 19.50}
	assert.NoError(t, p.Validate())
}

func TestNovaOperacaoInvalida(t *testing.T) {
	err := domain.NovaOperacaoInvalida("Não é possível excluir o produto 3")
	assert.ErrorIs(t, err, domain.ErrOperacaoInvalida)
	assert.NotErrorIs(t, err, domain.ErrArgumentoInvalido)
	assert.EqualError(t, err, "Não é possível excluir o produto 3")
}
