package domain

import (
	"fmt"
	"math"
	"regexp"
)

const maxAge = 120

var (
	languagePattern    = regexp.MustCompile(`^[a-z]{2}(-[A-Z]{2})?$`)
	countryCodePattern = regexp.MustCompile(`^[A-Z]{2}$`)

	educationLevels = map[string]struct{}{
		"high_school":  {},
		"some_college": {},
		"associate":    {},
		"bachelor":     {},
		"master":       {},
		"doctorate":    {},
	}
)

// ValidateDemographicModifiers confere a forma do JSON de segmentação demográfica
// campo a campo e retorna a primeira violação encontrada.
func ValidateDemographicModifiers(value any) error {
	if value == nil {
		return nil
	}

	modifiers, ok := asObject(value)
	if !ok {
		return NewValidationError("demographic_modifiers", "deve ser um objeto JSON")
	}
	if modifiers == nil {
		return nil
	}

	if raw, exists := modifiers["age_range"]; exists {
		if err := validateBounds("age_range", raw, 0, maxAge); err != nil {
			return err
		}
	}

	for _, field := range []string{"gender", "interests"} {
		if raw, exists := modifiers[field]; exists {
			if err := validateStringArray(field, raw); err != nil {
				return err
			}
		}
	}

	if raw, exists := modifiers["location"]; exists {
		if err := validateLocation(raw); err != nil {
			return err
		}
	}

	if raw, exists := modifiers["income"]; exists {
		if err := validateBounds("income", raw, 0, math.Inf(1)); err != nil {
			return err
		}
	}

	if raw, exists := modifiers["education"]; exists {
		education, ok := raw.(string)
		if !ok {
			return NewValidationError("education", "deve ser texto")
		}
		if _, valid := educationLevels[education]; !valid {
			return NewValidationError("education", "valor inválido %q", education)
		}
	}

	if raw, exists := modifiers["language"]; exists {
		language, ok := raw.(string)
		if !ok {
			return NewValidationError("language", "deve ser texto")
		}
		if !languagePattern.MatchString(language) {
			return NewValidationError("language", "código de idioma inválido %q, use o formato 'en' ou 'en-US'", language)
		}
	}

	return nil
}

// validateBounds valida objetos {min, max} numéricos. Cada limite informado
// precisa estar em [lower, upper] e, com os dois presentes, min <= max.
func validateBounds(field string, raw any, lower, upper float64) error {
	bounds, ok := asObject(raw)
	if !ok || bounds == nil {
		return NewValidationError(field, "deve ser um objeto com min e max")
	}

	values := make(map[string]float64, 2)
	for _, key := range []string{"min", "max"} {
		v, exists := bounds[key]
		if !exists {
			continue
		}
		n, ok := asNumber(v)
		if !ok {
			return NewValidationError(field, "%s deve ser numérico", key)
		}
		if n < lower || n > upper {
			return NewValidationError(field, "%s fora do intervalo permitido (%s)", key, boundsRange(lower, upper))
		}
		values[key] = n
	}

	min, hasMin := values["min"]
	max, hasMax := values["max"]
	if hasMin && hasMax && min > max {
		return NewValidationError(field, "min (%v) maior que max (%v)", min, max)
	}

	return nil
}

func boundsRange(lower, upper float64) string {
	if math.IsInf(upper, 1) {
		return fmt.Sprintf(">= %v", lower)
	}
	return fmt.Sprintf("%v a %v", lower, upper)
}

func validateStringArray(field string, raw any) error {
	switch values := raw.(type) {
	case []string:
		return nil
	case []any:
		for i, v := range values {
			if _, ok := v.(string); !ok {
				return NewValidationError(field, "elemento %d deve ser texto", i)
			}
		}
		return nil
	default:
		return NewValidationError(field, "deve ser um array de textos")
	}
}

func validateLocation(raw any) error {
	location, ok := asObject(raw)
	if !ok || location == nil {
		return NewValidationError("location", "deve ser um objeto")
	}

	for _, key := range []string{"country", "region", "city"} {
		v, exists := location[key]
		if !exists {
			continue
		}
		text, ok := v.(string)
		if !ok {
			return NewValidationError("location", "%s deve ser texto", key)
		}
		if key == "country" && !countryCodePattern.MatchString(text) {
			return NewValidationError("location", "país deve ser um código ISO de duas letras, recebido %q", text)
		}
	}

	return nil
}

func asObject(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, true
	case JSONMap:
		return map[string]any(v), true
	default:
		return nil, false
	}
}

func asNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}
