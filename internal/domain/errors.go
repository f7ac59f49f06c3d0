package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("registro não encontrado")
	ErrDuplicate         = errors.New("registro duplicado")
	ErrInvalidReference  = errors.New("referência inválida")
	ErrInvalidTransition = errors.New("transição de status inválida")
	ErrForeignEntity     = errors.New("registro pertence a outra entidade")
)

// ValidationError descreve a primeira violação encontrada ao validar um campo
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsValidationError verifica se o erro (ou algum erro encadeado) é de validação
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}
