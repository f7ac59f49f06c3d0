// Package usecases reúne o que é comum aos serviços de aplicação
package usecases

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/growth-insights-api/internal/domain"
	"github.com/vfg2006/growth-insights-api/pkg/apiErrors"
)

// ServiceError é um erro com o código de API já resolvido
type ServiceError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes para o cliente
}

func (e *ServiceError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func (e *ServiceError) ErrorCode() string {
	return e.Code
}

func (e *ServiceError) ErrorDetails() string {
	if e.Details != "" {
		return e.Details
	}
	return e.Err.Error()
}

func NewServiceError(err error, code string, details string) *ServiceError {
	return &ServiceError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NotFound monta o erro de registro inexistente
func NotFound(details string) *ServiceError {
	return NewServiceError(domain.ErrNotFound, apiErrors.ErrResourceNotFound, details)
}

// Forbidden monta o erro de acesso aos dados de outra entidade
func Forbidden(details string) *ServiceError {
	return NewServiceError(domain.ErrForeignEntity, apiErrors.ErrInsufficientPrivilege, details)
}

// FromRepository classifica um erro vindo da camada de dados.
// details descreve a operação e é usado quando a classe do erro não tem mensagem própria.
func FromRepository(err error, details string) error {
	if err == nil {
		return nil
	}

	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return serviceErr
	}

	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return NewServiceError(err, apiErrors.ErrInvalidFormat, validationErr.Error())
	case errors.Is(err, domain.ErrDuplicate):
		return NewServiceError(err, apiErrors.ErrResourceConflict, "Registro já cadastrado")
	case errors.Is(err, domain.ErrInvalidReference):
		return NewServiceError(err, apiErrors.ErrInvalidReference, "Registro relacionado não existe")
	case errors.Is(err, domain.ErrNotFound):
		return NewServiceError(err, apiErrors.ErrResourceNotFound, details)
	case errors.Is(err, domain.ErrInvalidTransition):
		return NewServiceError(err, apiErrors.ErrInvalidTransition, details)
	}

	logrus.WithError(err).Error(details)
	return NewServiceError(err, apiErrors.ErrDatabaseOperation, details)
}
