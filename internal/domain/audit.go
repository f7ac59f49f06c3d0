package domain

import (
	"strings"
	"time"
)

type AuditStatus string

const (
	AuditStatusPending   AuditStatus = "pending"
	AuditStatusRunning   AuditStatus = "running"
	AuditStatusCompleted AuditStatus = "completed"
	AuditStatusFailed    AuditStatus = "failed"
)

var auditTransitions = map[AuditStatus][]AuditStatus{
	AuditStatusPending: {AuditStatusRunning, AuditStatusFailed},
	AuditStatusRunning: {AuditStatusCompleted, AuditStatusFailed},
}

func (s AuditStatus) IsValid() bool {
	switch s {
	case AuditStatusPending, AuditStatusRunning, AuditStatusCompleted, AuditStatusFailed:
		return true
	}
	return false
}

// CanTransitionTo indica se a auditoria pode sair do status atual para o próximo
func (s AuditStatus) CanTransitionTo(next AuditStatus) bool {
	for _, allowed := range auditTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// SiteAudit é uma avaliação técnica/SEO de um site num momento
type SiteAudit struct {
	ID          uint        `json:"id"`
	SiteID      uint        `json:"site_id"`
	Status      AuditStatus `json:"status"`
	Score       *float64    `json:"score"`
	IssuesCount int         `json:"issues_count"`
	Summary     JSONMap     `json:"summary"`
	Metadata    JSONMap     `json:"metadata"`
	StartedAt   *time.Time  `json:"started_at"`
	CompletedAt *time.Time  `json:"completed_at"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (a *SiteAudit) Validate() error {
	if err := requireID("site_id", a.SiteID); err != nil {
		return err
	}
	if a.Status == "" {
		a.Status = AuditStatusPending
	}
	if !a.Status.IsValid() {
		return NewValidationError("status", "status inválido %q", a.Status)
	}
	if a.Score != nil && (*a.Score < 0 || *a.Score > 100) {
		return NewValidationError("score", "nota deve estar entre 0 e 100")
	}
	if a.IssuesCount < 0 {
		return NewValidationError("issues_count", "não pode ser negativo")
	}
	return nil
}

type UpdateAuditStatusRequest struct {
	Status      AuditStatus `json:"status"`
	Score       *float64    `json:"score,omitempty"`
	IssuesCount *int        `json:"issues_count,omitempty"`
	Summary     JSONMap     `json:"summary,omitempty"`
}

// PageInsight guarda o resultado da auditoria de uma URL
type PageInsight struct {
	ID              uint      `json:"id"`
	SiteID          uint      `json:"site_id"`
	AuditID         uint      `json:"audit_id"`
	URL             string    `json:"url"`
	StatusCode      *int      `json:"status_code"`
	Title           *string   `json:"title"`
	MetaDescription *string   `json:"meta_description"`
	WordCount       int       `json:"word_count"`
	LoadTimeMs      int       `json:"load_time_ms"`
	Score           *float64  `json:"score"`
	Issues          JSONList  `json:"issues"`
	Metadata        JSONMap   `json:"metadata"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (p *PageInsight) Validate() error {
	if err := requireID("site_id", p.SiteID); err != nil {
		return err
	}
	if err := requireID("audit_id", p.AuditID); err != nil {
		return err
	}
	p.URL = strings.TrimSpace(p.URL)
	if p.URL == "" {
		return NewValidationError("url", "url é obrigatória")
	}
	if p.WordCount < 0 || p.LoadTimeMs < 0 {
		return NewValidationError("word_count", "contadores não podem ser negativos")
	}
	return nil
}
