package domain

import "time"

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

type ListFilter struct {
	Limit  int
	Offset int
}

// Normalize aplica os limites padrão de paginação
func (f ListFilter) Normalize() ListFilter {
	if f.Limit <= 0 {
		f.Limit = DefaultListLimit
	}
	if f.Limit > MaxListLimit {
		f.Limit = MaxListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

// DateRange filtra séries temporais; limites nulos ficam em aberto
type DateRange struct {
	From *time.Time
	To   *time.Time
}
