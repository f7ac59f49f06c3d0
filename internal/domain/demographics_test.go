package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDemographicModifiers(t *testing.T) {
	tests := []struct {
		name      string
		value     any
		wantField string
	}{
		{name: "nulo", value: nil},
		{name: "objeto vazio", value: JSONMap{}},
		{name: "idioma com região", value: map[string]any{"language": "en-US"}},
		{name: "idioma simples", value: map[string]any{"language": "pt"}},
		{
			name: "objeto completo",
			value: JSONMap{
				"age_range": map[string]any{"min": 18, "max": 65.0},
				"gender":    []any{"female", "male"},
				"interests": []string{"tecnologia"},
				"location":  map[string]any{"country": "BR", "city": "Recife"},
				"income":    map[string]any{"min": 1000, "max": 5000},
				"education": "bachelor",
				"language":  "pt-BR",
			},
		},
		{name: "não é objeto", value: []any{"x"}, wantField: "demographic_modifiers"},
		{name: "idioma malformado", value: map[string]any{"language": "xyz"}, wantField: "language"},
		{name: "idioma com região minúscula", value: map[string]any{"language": "en-us"}, wantField: "language"},
		{name: "idioma não textual", value: map[string]any{"language": 10}, wantField: "language"},
		{name: "age_range não é objeto", value: map[string]any{"age_range": "18-65"}, wantField: "age_range"},
		{name: "age_range não numérico", value: map[string]any{"age_range": map[string]any{"min": "18"}}, wantField: "age_range"},
		{name: "age_range invertido", value: map[string]any{"age_range": map[string]any{"min": 40, "max": 20}}, wantField: "age_range"},
		{name: "age_range fora do limite", value: map[string]any{"age_range": map[string]any{"min": 18, "max": 200}}, wantField: "age_range"},
		{name: "age_range só com max negativo", value: map[string]any{"age_range": map[string]any{"max": -5}}, wantField: "age_range"},
		{name: "age_range só com min acima do limite", value: map[string]any{"age_range": map[string]any{"min": 130}}, wantField: "age_range"},
		{name: "age_range com min negativo", value: map[string]any{"age_range": map[string]any{"min": -1, "max": 30}}, wantField: "age_range"},
		{name: "age_range nos extremos", value: map[string]any{"age_range": map[string]any{"min": 0, "max": 120}}},
		{name: "gender não é array", value: map[string]any{"gender": "female"}, wantField: "gender"},
		{name: "interests com número", value: map[string]any{"interests": []any{"esporte", 3}}, wantField: "interests"},
		{name: "location não é objeto", value: map[string]any{"location": "BR"}, wantField: "location"},
		{name: "país inválido", value: map[string]any{"location": map[string]any{"country": "Brasil"}}, wantField: "location"},
		{name: "renda negativa", value: map[string]any{"income": map[string]any{"min": -1}}, wantField: "income"},
		{name: "renda só com max negativo", value: map[string]any{"income": map[string]any{"max": -100}}, wantField: "income"},
		{name: "renda invertida", value: map[string]any{"income": map[string]any{"min": 5000, "max": 1000}}, wantField: "income"},
		{name: "renda só com max", value: map[string]any{"income": map[string]any{"max": 8000}}},
		{name: "renda não numérica", value: map[string]any{"income": map[string]any{"max": "muito"}}, wantField: "income"},
		{name: "escolaridade inválida", value: map[string]any{"education": "phd"}, wantField: "education"},
		{name: "escolaridade não textual", value: map[string]any{"education": 3}, wantField: "education"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDemographicModifiers(tt.value)

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestValidateDemographicModifiers_FirstViolation(t *testing.T) {
	err := ValidateDemographicModifiers(map[string]any{
		"age_range": "x",
		"language":  "xyz",
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "age_range", validationErr.Field)
}
