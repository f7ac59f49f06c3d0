package domain

import (
	"strings"
	"time"
)

type Keyword struct {
	ID           uint      `json:"id"`
	SiteID       uint      `json:"site_id"`
	Keyword      string    `json:"keyword"`
	SearchVolume int       `json:"search_volume"`
	Difficulty   *float64  `json:"difficulty"`
	Intent       *string   `json:"intent"`
	Metadata     JSONMap   `json:"metadata"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (k *Keyword) Validate() error {
	if err := requireID("site_id", k.SiteID); err != nil {
		return err
	}
	k.Keyword = NormalizeKeyword(k.Keyword)
	if k.Keyword == "" {
		return NewValidationError("keyword", "palavra-chave é obrigatória")
	}
	if k.SearchVolume < 0 {
		return NewValidationError("search_volume", "volume de busca não pode ser negativo")
	}
	if k.Difficulty != nil && (*k.Difficulty < 0 || *k.Difficulty > 100) {
		return NewValidationError("difficulty", "dificuldade deve estar entre 0 e 100")
	}
	return nil
}

// NormalizeKeyword colapsa espaços e usa caixa baixa
func NormalizeKeyword(keyword string) string {
	return strings.ToLower(strings.Join(strings.Fields(keyword), " "))
}

// KeywordSnapshot registra as métricas de uma palavra-chave num momento
type KeywordSnapshot struct {
	ID           uint      `json:"id"`
	KeywordID    uint      `json:"keyword_id"`
	Position     *int      `json:"position"`
	SearchVolume int       `json:"search_volume"`
	CPC          *float64  `json:"cpc"`
	Metadata     JSONMap   `json:"metadata"`
	CapturedAt   time.Time `json:"captured_at"`
	CreatedAt    time.Time `json:"created_at"`
}

func (s *KeywordSnapshot) Validate() error {
	if err := requireID("keyword_id", s.KeywordID); err != nil {
		return err
	}
	if s.Position != nil && *s.Position < 1 {
		return NewValidationError("position", "posição deve ser maior que zero")
	}
	if s.CapturedAt.IsZero() {
		s.CapturedAt = time.Now()
	}
	return nil
}

// RankRecord registra a posição de um site para uma palavra-chave
type RankRecord struct {
	ID         uint      `json:"id"`
	SiteID     uint      `json:"site_id"`
	KeywordID  uint      `json:"keyword_id"`
	Position   *int      `json:"position"`
	URL        *string   `json:"url"`
	Metadata   JSONMap   `json:"metadata"`
	RecordedAt time.Time `json:"recorded_at"`
	CreatedAt  time.Time `json:"created_at"`
}

func (r *RankRecord) Validate() error {
	if err := requireID("site_id", r.SiteID); err != nil {
		return err
	}
	if err := requireID("keyword_id", r.KeywordID); err != nil {
		return err
	}
	if r.Position != nil && *r.Position < 1 {
		return NewValidationError("position", "posição deve ser maior que zero")
	}
	if r.RecordedAt.IsZero() {
		r.RecordedAt = time.Now()
	}
	return nil
}
