package domain

import (
	"strings"
	"time"
)

type Site struct {
	ID        uint      `json:"id"`
	EntityID  uint      `json:"entity_id"`
	Domain    string    `json:"domain"`
	Name      *string   `json:"name"`
	Metadata  JSONMap   `json:"metadata"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Site) Validate() error {
	if s.EntityID == 0 {
		return NewValidationError("entity_id", "entidade é obrigatória")
	}
	s.Domain = NormalizeDomain(s.Domain)
	if s.Domain == "" {
		return NewValidationError("domain", "domínio é obrigatório")
	}
	return nil
}

type SiteFilter struct {
	ListFilter
	EntityID uint
}

// NormalizeDomain remove esquema, barra final e caixa alta de um domínio
func NormalizeDomain(domain string) string {
	domain = strings.ToLower(strings.TrimSpace(domain))
	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.TrimPrefix(domain, "http://")
	domain = strings.TrimPrefix(domain, "www.")
	return strings.TrimRight(domain, "/")
}

func requireID(field string, id uint) error {
	if id == 0 {
		return NewValidationError(field, "identificador é obrigatório")
	}
	return nil
}
