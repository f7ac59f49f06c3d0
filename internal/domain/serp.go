package domain

import (
	"strings"
	"time"
)

const (
	DefaultSearchEngine = "google"
	DefaultDevice       = "desktop"
	DefaultResultType   = "organic"
)

// SerpSnapshot captura a página de resultados de uma palavra-chave
type SerpSnapshot struct {
	ID           uint         `json:"id"`
	KeywordID    uint         `json:"keyword_id"`
	SearchEngine string       `json:"search_engine"`
	Location     *string      `json:"location"`
	Device       string       `json:"device"`
	TotalResults *int64       `json:"total_results"`
	Features     JSONList     `json:"features"`
	Metadata     JSONMap      `json:"metadata"`
	CapturedAt   time.Time    `json:"captured_at"`
	CreatedAt    time.Time    `json:"created_at"`
	Results      []*SerpResult `json:"results,omitempty"`
}

func (s *SerpSnapshot) Validate() error {
	if err := requireID("keyword_id", s.KeywordID); err != nil {
		return err
	}
	if s.SearchEngine == "" {
		s.SearchEngine = DefaultSearchEngine
	}
	if s.Device == "" {
		s.Device = DefaultDevice
	}
	if s.CapturedAt.IsZero() {
		s.CapturedAt = time.Now()
	}

	seen := make(map[int]struct{}, len(s.Results))
	for _, result := range s.Results {
		if err := result.validateContent(); err != nil {
			return err
		}
		if _, duplicated := seen[result.Position]; duplicated {
			return NewValidationError("results", "posição %d repetida no snapshot", result.Position)
		}
		seen[result.Position] = struct{}{}
	}
	return nil
}

type SerpResult struct {
	ID             uint      `json:"id"`
	SerpSnapshotID uint      `json:"serp_snapshot_id"`
	Position       int       `json:"position"`
	URL            string    `json:"url"`
	Domain         *string   `json:"domain"`
	Title          *string   `json:"title"`
	Snippet        *string   `json:"snippet"`
	ResultType     string    `json:"result_type"`
	Metadata       JSONMap   `json:"metadata"`
	CreatedAt      time.Time `json:"created_at"`
}

func (r *SerpResult) Validate() error {
	if err := requireID("serp_snapshot_id", r.SerpSnapshotID); err != nil {
		return err
	}
	return r.validateContent()
}

// validateContent valida o resultado sem exigir o snapshot, que pode ainda não existir
func (r *SerpResult) validateContent() error {
	if r.Position < 1 {
		return NewValidationError("position", "posição deve ser maior que zero")
	}
	r.URL = strings.TrimSpace(r.URL)
	if r.URL == "" {
		return NewValidationError("url", "url é obrigatória")
	}
	if r.ResultType == "" {
		r.ResultType = DefaultResultType
	}
	return nil
}
