package domain

import "time"

type Recommendation struct {
	ID                  uint      `json:"id"`
	EntityID            uint      `json:"entity_id"`
	RecommendedChannels JSONList  `json:"recommended_channels"`
	SuggestedBudgets    JSONMap   `json:"suggested_budgets"`
	EstimatedOutcomes   JSONMap   `json:"estimated_outcomes"`
	Narrative           *string   `json:"narrative"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (r *Recommendation) Validate() error {
	if r.EntityID == 0 {
		return NewValidationError("entity_id", "entidade é obrigatória")
	}
	return nil
}
