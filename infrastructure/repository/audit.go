package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/growth-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/growth-insights-api/internal/domain"
)

const (
	siteAuditsTable   = "site_audits"
	pageInsightsTable = "page_insights"
)

var siteAuditColumns = []string{
	"id", "site_id", "status", "score", "issues_count", "summary", "metadata",
	"started_at", "completed_at", "created_at", "updated_at",
}

var pageInsightColumns = []string{
	"id", "site_id", "audit_id", "url", "status_code", "title", "meta_description",
	"word_count", "load_time_ms", "score", "issues", "metadata", "created_at", "updated_at",
}

type SiteAuditRepository interface {
	Create(ctx context.Context, audit *domain.SiteAudit) error
	GetByID(ctx context.Context, id uint) (*domain.SiteAudit, error)
	ListBySite(ctx context.Context, siteID uint, filter domain.ListFilter) ([]*domain.SiteAudit, error)
	Update(ctx context.Context, audit *domain.SiteAudit) error
	Delete(ctx context.Context, id uint) error
}

type PageInsightRepository interface {
	Create(ctx context.Context, page *domain.PageInsight) error
	GetByID(ctx context.Context, id uint) (*domain.PageInsight, error)
	ListByAudit(ctx context.Context, auditID uint, filter domain.ListFilter) ([]*domain.PageInsight, error)
	Delete(ctx context.Context, id uint) error
}

type siteAuditRepository struct {
	conn postgres.Conn
}

func NewSiteAuditRepository(conn postgres.Conn) SiteAuditRepository {
	return &siteAuditRepository{
		conn: conn,
	}
}

func (r *siteAuditRepository) Create(ctx context.Context, audit *domain.SiteAudit) error {
	if err := audit.Validate(); err != nil {
		return err
	}

	builder := psql.Insert(siteAuditsTable).
		Columns("site_id", "status", "score", "issues_count", "summary", "metadata", "started_at", "completed_at").
		Values(audit.SiteID, audit.Status, audit.Score, audit.IssuesCount, audit.Summary, audit.Metadata,
			audit.StartedAt, audit.CompletedAt)

	id, err := insertReturningID(ctx, r.conn, builder, "erro ao inserir auditoria")
	if err != nil {
		return err
	}

	audit.ID = id
	return nil
}

func (r *siteAuditRepository) GetByID(ctx context.Context, id uint) (*domain.SiteAudit, error) {
	builder := psql.Select(siteAuditColumns...).From(siteAuditsTable).Where(squirrel.Eq{"id": id})
	return getOne(ctx, r.conn, builder, scanSiteAudit)
}

func (r *siteAuditRepository) ListBySite(ctx context.Context, siteID uint, filter domain.ListFilter) ([]*domain.SiteAudit, error) {
	builder := psql.Select(siteAuditColumns...).
		From(siteAuditsTable).
		Where(squirrel.Eq{"site_id": siteID}).
		OrderBy("created_at DESC", "id DESC")

	return listAll(ctx, r.conn, paginate(builder, filter), scanSiteAudit)
}

func (r *siteAuditRepository) Update(ctx context.Context, audit *domain.SiteAudit) error {
	if err := audit.Validate(); err != nil {
		return err
	}

	builder := psql.Update(siteAuditsTable).
		SetMap(map[string]any{
			"status":       audit.Status,
			"score":        audit.Score,
			"issues_count": audit.IssuesCount,
			"summary":      audit.Summary,
			"metadata":     audit.Metadata,
			"started_at":   audit.StartedAt,
			"completed_at": audit.CompletedAt,
		}).
		Where(squirrel.Eq{"id": audit.ID})

	return execAffecting(ctx, r.conn, builder, "erro ao atualizar auditoria")
}

func (r *siteAuditRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.conn, siteAuditsTable, id)
}

func scanSiteAudit(row rowScanner) (*domain.SiteAudit, error) {
	a := &domain.SiteAudit{}
	if err := row.Scan(
		&a.ID,
		&a.SiteID,
		&a.Status,
		&a.Score,
		&a.IssuesCount,
		&a.Summary,
		&a.Metadata,
		&a.StartedAt,
		&a.CompletedAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return a, nil
}

type pageInsightRepository struct {
	conn postgres.Conn
}

func NewPageInsightRepository(conn postgres.Conn) PageInsightRepository {
	return &pageInsightRepository{
		conn: conn,
	}
}

func (r *pageInsightRepository) Create(ctx context.Context, page *domain.PageInsight) error {
	if err := page.Validate(); err != nil {
		return err
	}

	builder := psql.Insert(pageInsightsTable).
		Columns("site_id", "audit_id", "url", "status_code", "title", "meta_description",
			"word_count", "load_time_ms", "score", "issues", "metadata").
		Values(page.SiteID, page.AuditID, page.URL, page.StatusCode, page.Title, page.MetaDescription,
			page.WordCount, page.LoadTimeMs, page.Score, page.Issues, page.Metadata)

	id, err := insertReturningID(ctx, r.conn, builder, "erro ao inserir página auditada")
	if err != nil {
		return err
	}

	page.ID = id
	return nil
}

func (r *pageInsightRepository) GetByID(ctx context.Context, id uint) (*domain.PageInsight, error) {
	builder := psql.Select(pageInsightColumns...).From(pageInsightsTable).Where(squirrel.Eq{"id": id})
	return getOne(ctx, r.conn, builder, scanPageInsight)
}

func (r *pageInsightRepository) ListByAudit(ctx context.Context, auditID uint, filter domain.ListFilter) ([]*domain.PageInsight, error) {
	builder := psql.Select(pageInsightColumns...).
		From(pageInsightsTable).
		Where(squirrel.Eq{"audit_id": auditID}).
		OrderBy("url ASC", "id ASC")

	return listAll(ctx, r.conn, paginate(builder, filter), scanPageInsight)
}

func (r *pageInsightRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.conn, pageInsightsTable, id)
}

func scanPageInsight(row rowScanner) (*domain.PageInsight, error) {
	p := &domain.PageInsight{}
	if err := row.Scan(
		&p.ID,
		&p.SiteID,
		&p.AuditID,
		&p.URL,
		&p.StatusCode,
		&p.Title,
		&p.MetaDescription,
		&p.WordCount,
		&p.LoadTimeMs,
		&p.Score,
		&p.Issues,
		&p.Metadata,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return p, nil
}
