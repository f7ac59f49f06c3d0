package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/growth-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/growth-insights-api/internal/domain"
)

const sitesTable = "sites"

var siteColumns = []string{"id", "entity_id", "domain", "name", "metadata", "created_at", "updated_at"}

type SiteRepository interface {
	Create(ctx context.Context, site *domain.Site) error
	GetByID(ctx context.Context, id uint) (*domain.Site, error)
	List(ctx context.Context, filter domain.SiteFilter) ([]*domain.Site, error)
	Update(ctx context.Context, site *domain.Site) error
	Delete(ctx context.Context, id uint) error
}

type siteRepository struct {
	conn postgres.Conn
}

func NewSiteRepository(conn postgres.Conn) SiteRepository {
	return &siteRepository{
		conn: conn,
	}
}

func (r *siteRepository) Create(ctx context.Context, site *domain.Site) error {
	if err := site.Validate(); err != nil {
		return err
	}

	builder := psql.Insert(sitesTable).
		Columns("entity_id", "domain", "name", "metadata").
		Values(site.EntityID, site.Domain, site.Name, site.Metadata)

	id, err := insertReturningID(ctx, r.conn, builder, "erro ao inserir site")
	if err != nil {
		return err
	}

	site.ID = id
	return nil
}

func (r *siteRepository) GetByID(ctx context.Context, id uint) (*domain.Site, error) {
	builder := psql.Select(siteColumns...).From(sitesTable).Where(squirrel.Eq{"id": id})
	return getOne(ctx, r.conn, builder, scanSite)
}

func (r *siteRepository) List(ctx context.Context, filter domain.SiteFilter) ([]*domain.Site, error) {
	builder := psql.Select(siteColumns...).
		From(sitesTable).
		OrderBy("domain ASC", "id ASC")

	if filter.EntityID != 0 {
		builder = builder.Where(squirrel.Eq{"entity_id": filter.EntityID})
	}

	return listAll(ctx, r.conn, paginate(builder, filter.ListFilter), scanSite)
}

func (r *siteRepository) Update(ctx context.Context, site *domain.Site) error {
	if err := site.Validate(); err != nil {
		return err
	}

	builder := psql.Update(sitesTable).
		Set("entity_id", site.EntityID).
		Set("domain", site.Domain).
		Set("name", site.Name).
		Set("metadata", site.Metadata).
		Where(squirrel.Eq{"id": site.ID})

	return execAffecting(ctx, r.conn, builder, "erro ao atualizar site")
}

// Delete remove o site e, em cascata, todos os dados de SEO ligados a ele
func (r *siteRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.conn, sitesTable, id)
}

func scanSite(row rowScanner) (*domain.Site, error) {
	s := &domain.Site{}
	if err := row.Scan(&s.ID, &s.EntityID, &s.Domain, &s.Name, &s.Metadata, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return s, nil
}
