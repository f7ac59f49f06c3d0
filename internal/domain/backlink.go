package domain

import "time"

type BacklinkSnapshot struct {
	ID               uint      `json:"id"`
	SiteID           uint      `json:"site_id"`
	TotalBacklinks   int       `json:"total_backlinks"`
	ReferringDomains int       `json:"referring_domains"`
	NewBacklinks     int       `json:"new_backlinks"`
	LostBacklinks    int       `json:"lost_backlinks"`
	DomainRating     *float64  `json:"domain_rating"`
	Metadata         JSONMap   `json:"metadata"`
	CapturedAt       time.Time `json:"captured_at"`
	CreatedAt        time.Time `json:"created_at"`
}

func (b *BacklinkSnapshot) Validate() error {
	if err := requireID("site_id", b.SiteID); err != nil {
		return err
	}
	if b.TotalBacklinks < 0 || b.ReferringDomains < 0 || b.NewBacklinks < 0 || b.LostBacklinks < 0 {
		return NewValidationError("total_backlinks", "contadores não podem ser negativos")
	}
	if b.DomainRating != nil && (*b.DomainRating < 0 || *b.DomainRating > 100) {
		return NewValidationError("domain_rating", "rating deve estar entre 0 e 100")
	}
	if b.CapturedAt.IsZero() {
		b.CapturedAt = time.Now()
	}
	return nil
}
