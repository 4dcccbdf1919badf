package domain

import "errors"

// Error kinds returned by the service layer. Match with errors.Is.
var (
	ErrArgumentoNulo     = errors.New("argumento nulo")
	ErrArgumentoInvalido = errors.New("argumento inválido")
	ErrOperacaoInvalida  = errors.New("operação inválida")
)

// Erro carries a caller-facing message together with its kind.
// Error returns the message unchanged so callers may match on its prefix.
type Erro struct {
	Tipo     error
	Mensagem string
}

func (e *Erro) Error() string {
	return e.Mensagem
}

func (e *Erro) Unwrap() error {
	return e.Tipo
}

func novoErro(tipo error, mensagem string) error {
	return &Erro{Tipo: tipo, Mensagem: mensagem}
}

// NovaOperacaoInvalida builds an ErrOperacaoInvalida error with the given message.
func NovaOperacaoInvalida(mensagem string) error {
	return novoErro(ErrOperacaoInvalida, mensagem)
}
