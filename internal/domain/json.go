package domain

import (
	"database/sql/driver"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONMap representa uma coluna JSONB com um objeto livre
type JSONMap map[string]any

// Value grava mapas nulos como objeto vazio, já que as colunas são NOT NULL
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(value any) error {
	data, err := jsonBytes(value)
	if err != nil {
		return err
	}
	if data == nil {
		*m = nil
		return nil
	}

	result := make(map[string]any)
	if err := json.Unmarshal(data, &result); err != nil {
		return fmt.Errorf("erro ao decodificar objeto JSON: %w", err)
	}
	*m = result
	return nil
}

// JSONList representa uma coluna JSONB com um array livre
type JSONList []any

func (l JSONList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

func (l *JSONList) Scan(value any) error {
	data, err := jsonBytes(value)
	if err != nil {
		return err
	}
	if data == nil {
		*l = nil
		return nil
	}

	result := make([]any, 0)
	if err := json.Unmarshal(data, &result); err != nil {
		return fmt.Errorf("erro ao decodificar array JSON: %w", err)
	}
	*l = result
	return nil
}

func jsonBytes(value any) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("tipo não suportado para coluna JSON: %T", value)
	}
}
