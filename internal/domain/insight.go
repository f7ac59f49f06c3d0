package domain

import (
	"strings"
	"time"
)

type EventSeverity string

const (
	EventSeverityInfo     EventSeverity = "info"
	EventSeverityWarning  EventSeverity = "warning"
	EventSeverityCritical EventSeverity = "critical"
)

func (s EventSeverity) IsValid() bool {
	switch s {
	case EventSeverityInfo, EventSeverityWarning, EventSeverityCritical:
		return true
	}
	return false
}

// InsightEvent é um acontecimento relevante num site (queda de posição, erro novo etc.)
type InsightEvent struct {
	ID         uint          `json:"id"`
	SiteID     uint          `json:"site_id"`
	EventType  string        `json:"event_type"`
	Severity   EventSeverity `json:"severity"`
	Message    *string       `json:"message"`
	Payload    JSONMap       `json:"payload"`
	OccurredAt time.Time     `json:"occurred_at"`
	CreatedAt  time.Time     `json:"created_at"`
}

func (e *InsightEvent) Validate() error {
	if err := requireID("site_id", e.SiteID); err != nil {
		return err
	}
	e.EventType = strings.TrimSpace(e.EventType)
	if e.EventType == "" {
		return NewValidationError("event_type", "tipo do evento é obrigatório")
	}
	if e.Severity == "" {
		e.Severity = EventSeverityInfo
	}
	if !e.Severity.IsValid() {
		return NewValidationError("severity", "severidade inválida %q", e.Severity)
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now()
	}
	return nil
}

type InsightEventFilter struct {
	ListFilter
	DateRange
	Severity *EventSeverity
}

// AIInsight guarda a narrativa gerada externamente para uma entidade ou site
type AIInsight struct {
	ID          uint      `json:"id"`
	EntityID    uint      `json:"entity_id"`
	SiteID      *uint     `json:"site_id"`
	InsightType string    `json:"insight_type"`
	Title       *string   `json:"title"`
	Narrative   *string   `json:"narrative"`
	Confidence  *float64  `json:"confidence"`
	Metadata    JSONMap   `json:"metadata"`
	GeneratedAt time.Time `json:"generated_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (i *AIInsight) Validate() error {
	if err := requireID("entity_id", i.EntityID); err != nil {
		return err
	}
	if i.SiteID != nil && *i.SiteID == 0 {
		i.SiteID = nil
	}
	i.InsightType = strings.TrimSpace(i.InsightType)
	if i.InsightType == "" {
		return NewValidationError("insight_type", "tipo do insight é obrigatório")
	}
	if i.Confidence != nil && (*i.Confidence < 0 || *i.Confidence > 1) {
		return NewValidationError("confidence", "confiança deve estar entre 0 e 1")
	}
	if i.GeneratedAt.IsZero() {
		i.GeneratedAt = time.Now()
	}
	return nil
}

type AIInsightFilter struct {
	ListFilter
	SiteID      *uint
	InsightType string
}
