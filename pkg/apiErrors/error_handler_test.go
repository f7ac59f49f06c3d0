package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codedErr struct{}

func (codedErr) Error() string        { return "duplicado" }
func (codedErr) ErrorCode() string    { return ErrResourceConflict }
func (codedErr) ErrorDetails() string { return "site já cadastrado" }

func TestWriteError(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{ErrInvalidFormat, http.StatusBadRequest},
		{ErrResourceNotFound, http.StatusNotFound},
		{ErrResourceConflict, http.StatusConflict},
		{ErrInvalidReference, http.StatusUnprocessableEntity},
		{ErrDatabaseOperation, http.StatusInternalServerError},
		{"XYZ_999", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "mensagem", nil)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrDatabaseOperation).Code)

	plain := FromError(errors.New("falhou"), ErrDatabaseOperation)
	assert.Equal(t, ErrDatabaseOperation, plain.Code)
	assert.Equal(t, "falhou", plain.Message)

	coded := FromError(codedErr{}, ErrDatabaseOperation)
	assert.Equal(t, ErrResourceConflict, coded.Code)
	assert.Equal(t, "site já cadastrado", coded.Message)
}
