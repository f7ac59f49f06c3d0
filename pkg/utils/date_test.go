package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, date)

	date, err = ParseDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *date)

	_, err = ParseDate("01/03/2024")
	assert.Error(t, err)
}

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		wantErr  bool
		wantTo   *time.Time
	}{
		{name: "intervalo aberto", from: "", to: ""},
		{
			name:   "fim inclui o dia inteiro",
			from:   "2024-03-01",
			to:     "2024-03-31",
			wantTo: ptr(time.Date(2024, 3, 31, 23, 59, 59, 999999999, time.UTC)),
		},
		{name: "início depois do fim", from: "2024-04-01", to: "2024-03-01", wantErr: true},
		{name: "formato inválido", from: "março", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, to, err := ParseDateRange(tt.from, tt.to)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTo, to)
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
