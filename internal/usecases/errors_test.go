package usecases

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/growth-insights-api/internal/domain"
	"github.com/vfg2006/growth-insights-api/pkg/apiErrors"
)

func TestFromRepository(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode string
	}{
		{
			name:         "Validação",
			err:          domain.NewValidationError("language", "código de idioma inválido"),
			expectedCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:         "Duplicado encapsulado",
			err:          fmt.Errorf("%w: channels_name_key", domain.ErrDuplicate),
			expectedCode: apiErrors.ErrResourceConflict,
		},
		{
			name:         "Referência inválida",
			err:          fmt.Errorf("%w: keywords_site_id_fkey", domain.ErrInvalidReference),
			expectedCode: apiErrors.ErrInvalidReference,
		},
		{
			name:         "Não encontrado",
			err:          domain.ErrNotFound,
			expectedCode: apiErrors.ErrResourceNotFound,
		},
		{
			name:         "Transição inválida",
			err:          domain.ErrInvalidTransition,
			expectedCode: apiErrors.ErrInvalidTransition,
		},
		{
			name:         "Falha de banco",
			err:          errors.New("connection refused"),
			expectedCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromRepository(tt.err, "erro ao salvar")

			var serviceErr *ServiceError
			require.True(t, errors.As(err, &serviceErr))
			assert.Equal(t, tt.expectedCode, serviceErr.ErrorCode())
			assert.ErrorIs(t, err, tt.err)
		})
	}

	assert.NoError(t, FromRepository(nil, "nada"))
}

func TestServiceError_ErrorDetails(t *testing.T) {
	withDetails := NewServiceError(domain.ErrNotFound, apiErrors.ErrResourceNotFound, "site não encontrado")
	assert.Equal(t, "site não encontrado", withDetails.ErrorDetails())
	assert.Equal(t, "registro não encontrado: site não encontrado", withDetails.Error())

	withoutDetails := NewServiceError(domain.ErrNotFound, apiErrors.ErrResourceNotFound, "")
	assert.Equal(t, "registro não encontrado", withoutDetails.ErrorDetails())
}
