package domain

import "time"

type Competitor struct {
	ID           uint      `json:"id"`
	SiteID       uint      `json:"site_id"`
	Domain       string    `json:"domain"`
	Name         *string   `json:"name"`
	OverlapScore *float64  `json:"overlap_score"`
	Metadata     JSONMap   `json:"metadata"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (c *Competitor) Validate() error {
	if err := requireID("site_id", c.SiteID); err != nil {
		return err
	}
	c.Domain = NormalizeDomain(c.Domain)
	if c.Domain == "" {
		return NewValidationError("domain", "domínio é obrigatório")
	}
	if c.OverlapScore != nil && (*c.OverlapScore < 0 || *c.OverlapScore > 1) {
		return NewValidationError("overlap_score", "sobreposição deve estar entre 0 e 1")
	}
	return nil
}

// CompetitorGap é uma palavra-chave em que o concorrente ranqueia e o site não (ou pior)
type CompetitorGap struct {
	ID                 uint      `json:"id"`
	SiteID             uint      `json:"site_id"`
	CompetitorID       uint      `json:"competitor_id"`
	Keyword            string    `json:"keyword"`
	SitePosition       *int      `json:"site_position"`
	CompetitorPosition *int      `json:"competitor_position"`
	SearchVolume       int       `json:"search_volume"`
	OpportunityScore   *float64  `json:"opportunity_score"`
	Metadata           JSONMap   `json:"metadata"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (g *CompetitorGap) Validate() error {
	if err := requireID("site_id", g.SiteID); err != nil {
		return err
	}
	if err := requireID("competitor_id", g.CompetitorID); err != nil {
		return err
	}
	g.Keyword = NormalizeKeyword(g.Keyword)
	if g.Keyword == "" {
		return NewValidationError("keyword", "palavra-chave é obrigatória")
	}
	if g.SearchVolume < 0 {
		return NewValidationError("search_volume", "volume de busca não pode ser negativo")
	}
	return nil
}
