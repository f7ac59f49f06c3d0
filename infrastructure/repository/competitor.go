package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/growth-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/growth-insights-api/internal/domain"
)

const (
	competitorsTable    = "competitors"
	competitorGapsTable = "competitor_gaps"
)

var competitorColumns = []string{
	"id", "site_id", "domain", "name", "overlap_score", "metadata", "created_at", "updated_at",
}

var competitorGapColumns = []string{
	"id", "site_id", "competitor_id", "keyword", "site_position", "competitor_position",
	"search_volume", "opportunity_score", "metadata", "created_at", "updated_at",
}

type CompetitorRepository interface {
	Create(ctx context.Context, competitor *domain.Competitor) error
	GetByID(ctx context.Context, id uint) (*domain.Competitor, error)
	GetBySiteAndDomain(ctx context.Context, siteID uint, domainName string) (*domain.Competitor, error)
	ListBySite(ctx context.Context, siteID uint, filter domain.ListFilter) ([]*domain.Competitor, error)
	Update(ctx context.Context, competitor *domain.Competitor) error
	Delete(ctx context.Context, id uint) error
}

type CompetitorGapRepository interface {
	Create(ctx context.Context, gap *domain.CompetitorGap) error
	GetByID(ctx context.Context, id uint) (*domain.CompetitorGap, error)
	ListBySite(ctx context.Context, siteID uint, competitorID *uint, filter domain.ListFilter) ([]*domain.CompetitorGap, error)
	Update(ctx context.Context, gap *domain.CompetitorGap) error
	Delete(ctx context.Context, id uint) error
}

type competitorRepository struct {
	conn postgres.Conn
}

func NewCompetitorRepository(conn postgres.Conn) CompetitorRepository {
	return &competitorRepository{
		conn: conn,
	}
}

func (r *competitorRepository) Create(ctx context.Context, c *domain.Competitor) error {
	if err := c.Validate(); err != nil {
		return err
	}

	builder := psql.Insert(competitorsTable).
		Columns("site_id", "domain", "name", "overlap_score", "metadata").
		Values(c.SiteID, c.Domain, c.Name, c.OverlapScore, c.Metadata)

	id, err := insertReturningID(ctx, r.conn, builder, "erro ao inserir concorrente")
	if err != nil {
		return err
	}

	c.ID = id
	return nil
}

func (r *competitorRepository) GetByID(ctx context.Context, id uint) (*domain.Competitor, error) {
	builder := psql.Select(competitorColumns...).From(competitorsTable).Where(squirrel.Eq{"id": id})
	return getOne(ctx, r.conn, builder, scanCompetitor)
}

func (r *competitorRepository) GetBySiteAndDomain(ctx context.Context, siteID uint, domainName string) (*domain.Competitor, error) {
	builder := psql.Select(competitorColumns...).
		From(competitorsTable).
		Where(squirrel.Eq{"site_id": siteID, "domain": domain.NormalizeDomain(domainName)})
	return getOne(ctx, r.conn, builder, scanCompetitor)
}

func (r *competitorRepository) ListBySite(ctx context.Context, siteID uint, filter domain.ListFilter) ([]*domain.Competitor, error) {
	builder := psql.Select(competitorColumns...).
		From(competitorsTable).
		Where(squirrel.Eq{"site_id": siteID}).
		OrderBy("overlap_score DESC NULLS LAST", "domain ASC")

	return listAll(ctx, r.conn, paginate(builder, filter), scanCompetitor)
}

func (r *competitorRepository) Update(ctx context.Context, c *domain.Competitor) error {
	if err := c.Validate(); err != nil {
		return err
	}

	builder := psql.Update(competitorsTable).
		Set("domain", c.Domain).
		Set("name", c.Name).
		Set("overlap_score", c.OverlapScore).
		Set("metadata", c.Metadata).
		Where(squirrel.Eq{"id": c.ID})

	return execAffecting(ctx, r.conn, builder, "erro ao atualizar concorrente")
}

func (r *competitorRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.conn, competitorsTable, id)
}

func scanCompetitor(row rowScanner) (*domain.Competitor, error) {
	c := &domain.Competitor{}
	if err := row.Scan(
		&c.ID,
		&c.SiteID,
		&c.Domain,
		&c.Name,
		&c.OverlapScore,
		&c.Metadata,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return c, nil
}

type competitorGapRepository struct {
	conn postgres.Conn
}

func NewCompetitorGapRepository(conn postgres.Conn) CompetitorGapRepository {
	return &competitorGapRepository{
		conn: conn,
	}
}

func (r *competitorGapRepository) Create(ctx context.Context, g *domain.CompetitorGap) error {
	if err := g.Validate(); err != nil {
		return err
	}

	builder := psql.Insert(competitorGapsTable).
		Columns("site_id", "competitor_id", "keyword", "site_position", "competitor_position",
			"search_volume", "opportunity_score", "metadata").
		Values(g.SiteID, g.CompetitorID, g.Keyword, g.SitePosition, g.CompetitorPosition,
			g.SearchVolume, g.OpportunityScore, g.Metadata)

	id, err := insertReturningID(ctx, r.conn, builder, "erro ao inserir lacuna de concorrente")
	if err != nil {
		return err
	}

	g.ID = id
	return nil
}

func (r *competitorGapRepository) GetByID(ctx context.Context, id uint) (*domain.CompetitorGap, error) {
	builder := psql.Select(competitorGapColumns...).From(competitorGapsTable).Where(squirrel.Eq{"id": id})
	return getOne(ctx, r.conn, builder, scanCompetitorGap)
}

// ListBySite lista as lacunas do site, opcionalmente de um único concorrente, das maiores oportunidades para as menores
func (r *competitorGapRepository) ListBySite(ctx context.Context, siteID uint, competitorID *uint, filter domain.ListFilter) ([]*domain.CompetitorGap, error) {
	builder := psql.Select(competitorGapColumns...).
		From(competitorGapsTable).
		Where(squirrel.Eq{"site_id": siteID}).
		OrderBy("opportunity_score DESC NULLS LAST", "search_volume DESC")

	if competitorID != nil {
		builder = builder.Where(squirrel.Eq{"competitor_id": *competitorID})
	}

	return listAll(ctx, r.conn, paginate(builder, filter), scanCompetitorGap)
}

func (r *competitorGapRepository) Update(ctx context.Context, g *domain.CompetitorGap) error {
	if err := g.Validate(); err != nil {
		return err
	}

	builder := psql.Update(competitorGapsTable).
		SetMap(map[string]any{
			"keyword":             g.Keyword,
			"site_position":       g.SitePosition,
			"competitor_position": g.CompetitorPosition,
			"search_volume":       g.SearchVolume,
			"opportunity_score":   g.OpportunityScore,
			"metadata":            g.Metadata,
		}).
		Where(squirrel.Eq{"id": g.ID})

	return execAffecting(ctx, r.conn, builder, "erro ao atualizar lacuna de concorrente")
}

func (r *competitorGapRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.conn, competitorGapsTable, id)
}

func scanCompetitorGap(row rowScanner) (*domain.CompetitorGap, error) {
	g := &domain.CompetitorGap{}
	if err := row.Scan(
		&g.ID,
		&g.SiteID,
		&g.CompetitorID,
		&g.Keyword,
		&g.SitePosition,
		&g.CompetitorPosition,
		&g.SearchVolume,
		&g.OpportunityScore,
		&g.Metadata,
		&g.CreatedAt,
		&g.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return g, nil
}
