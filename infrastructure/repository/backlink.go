package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/growth-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/growth-insights-api/internal/domain"
)

const backlinkSnapshotsTable = "backlink_snapshots"

var backlinkSnapshotColumns = []string{
	"id", "site_id", "total_backlinks", "referring_domains", "new_backlinks", "lost_backlinks",
	"domain_rating", "metadata", "captured_at", "created_at",
}

type BacklinkSnapshotRepository interface {
	Create(ctx context.Context, snapshot *domain.BacklinkSnapshot) error
	GetByID(ctx context.Context, id uint) (*domain.BacklinkSnapshot, error)
	GetLatestBySite(ctx context.Context, siteID uint) (*domain.BacklinkSnapshot, error)
	ListBySite(ctx context.Context, siteID uint, dr domain.DateRange, filter domain.ListFilter) ([]*domain.BacklinkSnapshot, error)
	Delete(ctx context.Context, id uint) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type backlinkSnapshotRepository struct {
	conn postgres.Conn
}

func NewBacklinkSnapshotRepository(conn postgres.Conn) BacklinkSnapshotRepository {
	return &backlinkSnapshotRepository{
		conn: conn,
	}
}

func (r *backlinkSnapshotRepository) Create(ctx context.Context, s *domain.BacklinkSnapshot) error {
	if err := s.Validate(); err != nil {
		return err
	}

	builder := psql.Insert(backlinkSnapshotsTable).
		Columns("site_id", "total_backlinks", "referring_domains", "new_backlinks", "lost_backlinks",
			"domain_rating", "metadata", "captured_at").
		Values(s.SiteID, s.TotalBacklinks, s.ReferringDomains, s.NewBacklinks, s.LostBacklinks,
			s.DomainRating, s.Metadata, s.CapturedAt)

	id, err := insertReturningID(ctx, r.conn, builder, "erro ao inserir snapshot de backlinks")
	if err != nil {
		return err
	}

	s.ID = id
	return nil
}

func (r *backlinkSnapshotRepository) GetByID(ctx context.Context, id uint) (*domain.BacklinkSnapshot, error) {
	builder := psql.Select(backlinkSnapshotColumns...).From(backlinkSnapshotsTable).Where(squirrel.Eq{"id": id})
	return getOne(ctx, r.conn, builder, scanBacklinkSnapshot)
}

func (r *backlinkSnapshotRepository) GetLatestBySite(ctx context.Context, siteID uint) (*domain.BacklinkSnapshot, error) {
	builder := psql.Select(backlinkSnapshotColumns...).
		From(backlinkSnapshotsTable).
		Where(squirrel.Eq{"site_id": siteID}).
		OrderBy("captured_at DESC", "id DESC").
		Limit(1)
	return getOne(ctx, r.conn, builder, scanBacklinkSnapshot)
}

func (r *backlinkSnapshotRepository) ListBySite(ctx context.Context, siteID uint, dr domain.DateRange, filter domain.ListFilter) ([]*domain.BacklinkSnapshot, error) {
	builder := psql.Select(backlinkSnapshotColumns...).
		From(backlinkSnapshotsTable).
		Where(squirrel.Eq{"site_id": siteID}).
		OrderBy("captured_at DESC", "id DESC")

	builder = withDateRange(builder, "captured_at", dr)

	return listAll(ctx, r.conn, paginate(builder, filter), scanBacklinkSnapshot)
}

func (r *backlinkSnapshotRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.conn, backlinkSnapshotsTable, id)
}

func (r *backlinkSnapshotRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return deleteOlderThan(ctx, r.conn, backlinkSnapshotsTable, "captured_at", cutoff)
}

func scanBacklinkSnapshot(row rowScanner) (*domain.BacklinkSnapshot, error) {
	s := &domain.BacklinkSnapshot{}
	if err := row.Scan(
		&s.ID,
		&s.SiteID,
		&s.TotalBacklinks,
		&s.ReferringDomains,
		&s.NewBacklinks,
		&s.LostBacklinks,
		&s.DomainRating,
		&s.Metadata,
		&s.CapturedAt,
		&s.CreatedAt,
	); err != nil {
		return nil, err
	}
	return s, nil
}
