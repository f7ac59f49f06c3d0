package domain

import (
	"strings"
	"time"
)

// Benchmark guarda métricas de referência de um setor
type Benchmark struct {
	ID        uint      `json:"id"`
	Industry  string    `json:"industry"`
	Metrics   JSONMap   `json:"metrics"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Benchmark) Validate() error {
	b.Industry = strings.TrimSpace(b.Industry)
	if b.Industry == "" {
		return NewValidationError("industry", "setor é obrigatório")
	}
	return nil
}

type BenchmarkFilter struct {
	ListFilter
	Industry string
}
