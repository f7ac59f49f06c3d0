package domain

import (
	"strings"
	"time"
)

type ChannelCategory string

const (
	ChannelCategoryPaid   ChannelCategory = "paid"
	ChannelCategoryOwned  ChannelCategory = "owned"
	ChannelCategoryEarned ChannelCategory = "earned"
)

func (c ChannelCategory) IsValid() bool {
	switch c {
	case ChannelCategoryPaid, ChannelCategoryOwned, ChannelCategoryEarned:
		return true
	}
	return false
}

// Channel é um meio de distribuição de marketing com médias históricas de desempenho
type Channel struct {
	ID                   uint            `json:"id"`
	Name                 string          `json:"name"`
	Category             ChannelCategory `json:"category"`
	Description          *string         `json:"description"`
	AvgCPM               float64         `json:"avg_cpm"`
	AvgCPC               float64         `json:"avg_cpc"`
	AvgCTR               float64         `json:"avg_ctr"`
	AvgConversionRate    float64         `json:"avg_conversion_rate"`
	IndustryModifiers    JSONMap         `json:"industry_modifiers"`
	DemographicModifiers JSONMap         `json:"demographic_modifiers"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

func (c *Channel) Validate() error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return NewValidationError("name", "nome do canal é obrigatório")
	}
	if len(c.Name) > 255 {
		return NewValidationError("name", "nome do canal deve ter no máximo 255 caracteres")
	}
	if !c.Category.IsValid() {
		return NewValidationError("category", "categoria inválida %q, valores aceitos: paid, owned, earned", c.Category)
	}

	for _, avg := range []struct {
		field string
		value float64
	}{
		{"avg_cpm", c.AvgCPM},
		{"avg_cpc", c.AvgCPC},
		{"avg_ctr", c.AvgCTR},
		{"avg_conversion_rate", c.AvgConversionRate},
	} {
		if avg.value < 0 {
			return NewValidationError(avg.field, "valor não pode ser negativo")
		}
	}

	return ValidateDemographicModifiers(c.DemographicModifiers)
}

type UpdateChannelRequest struct {
	ID                   uint             `json:"id"`
	Name                 *string          `json:"name,omitempty"`
	Category             *ChannelCategory `json:"category,omitempty"`
	Description          *string          `json:"description,omitempty"`
	AvgCPM               *float64         `json:"avg_cpm,omitempty"`
	AvgCPC               *float64         `json:"avg_cpc,omitempty"`
	AvgCTR               *float64         `json:"avg_ctr,omitempty"`
	AvgConversionRate    *float64         `json:"avg_conversion_rate,omitempty"`
	IndustryModifiers    JSONMap          `json:"industry_modifiers,omitempty"`
	DemographicModifiers JSONMap          `json:"demographic_modifiers,omitempty"`
}

// Apply copia os campos informados para o canal
func (r *UpdateChannelRequest) Apply(c *Channel) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Category != nil {
		c.Category = *r.Category
	}
	if r.Description != nil {
		c.Description = r.Description
	}
	if r.AvgCPM != nil {
		c.AvgCPM = *r.AvgCPM
	}
	if r.AvgCPC != nil {
		c.AvgCPC = *r.AvgCPC
	}
	if r.AvgCTR != nil {
		c.AvgCTR = *r.AvgCTR
	}
	if r.AvgConversionRate != nil {
		c.AvgConversionRate = *r.AvgConversionRate
	}
	if r.IndustryModifiers != nil {
		c.IndustryModifiers = r.IndustryModifiers
	}
	if r.DemographicModifiers != nil {
		c.DemographicModifiers = r.DemographicModifiers
	}
}

type ChannelFilter struct {
	ListFilter
	Category *ChannelCategory
}
