package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/growth-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/growth-insights-api/internal/domain"
)

const rankRecordsTable = "rank_records"

var rankRecordColumns = []string{
	"id", "site_id", "keyword_id", "position", "url", "metadata", "recorded_at", "created_at",
}

type RankRecordRepository interface {
	Create(ctx context.Context, record *domain.RankRecord) error
	GetByID(ctx context.Context, id uint) (*domain.RankRecord, error)
	ListBySite(ctx context.Context, siteID uint, dr domain.DateRange, filter domain.ListFilter) ([]*domain.RankRecord, error)
	ListByKeyword(ctx context.Context, keywordID uint, dr domain.DateRange, filter domain.ListFilter) ([]*domain.RankRecord, error)
	Delete(ctx context.Context, id uint) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type rankRecordRepository struct {
	conn postgres.Conn
}

func NewRankRecordRepository(conn postgres.Conn) RankRecordRepository {
	return &rankRecordRepository{
		conn: conn,
	}
}

func (r *rankRecordRepository) Create(ctx context.Context, record *domain.RankRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	builder := psql.Insert(rankRecordsTable).
		Columns("site_id", "keyword_id", "position", "url", "metadata", "recorded_at").
		Values(record.SiteID, record.KeywordID, record.Position, record.URL, record.Metadata, record.RecordedAt)

	id, err := insertReturningID(ctx, r.conn, builder, "erro ao inserir posição")
	if err != nil {
		return err
	}

	record.ID = id
	return nil
}

func (r *rankRecordRepository) GetByID(ctx context.Context, id uint) (*domain.RankRecord, error) {
	builder := psql.Select(rankRecordColumns...).From(rankRecordsTable).Where(squirrel.Eq{"id": id})
	return getOne(ctx, r.conn, builder, scanRankRecord)
}

func (r *rankRecordRepository) ListBySite(ctx context.Context, siteID uint, dr domain.DateRange, filter domain.ListFilter) ([]*domain.RankRecord, error) {
	return r.list(ctx, squirrel.Eq{"site_id": siteID}, dr, filter)
}

func (r *rankRecordRepository) ListByKeyword(ctx context.Context, keywordID uint, dr domain.DateRange, filter domain.ListFilter) ([]*domain.RankRecord, error) {
	return r.list(ctx, squirrel.Eq{"keyword_id": keywordID}, dr, filter)
}

func (r *rankRecordRepository) list(ctx context.Context, where squirrel.Sqlizer, dr domain.DateRange, filter domain.ListFilter) ([]*domain.RankRecord, error) {
	builder := psql.Select(rankRecordColumns...).
		From(rankRecordsTable).
		Where(where).
		OrderBy("recorded_at DESC", "id DESC")

	builder = withDateRange(builder, "recorded_at", dr)

	return listAll(ctx, r.conn, paginate(builder, filter), scanRankRecord)
}

func (r *rankRecordRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.conn, rankRecordsTable, id)
}

func (r *rankRecordRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return deleteOlderThan(ctx, r.conn, rankRecordsTable, "recorded_at", cutoff)
}

func scanRankRecord(row rowScanner) (*domain.RankRecord, error) {
	rec := &domain.RankRecord{}
	if err := row.Scan(
		&rec.ID,
		&rec.SiteID,
		&rec.KeywordID,
		&rec.Position,
		&rec.URL,
		&rec.Metadata,
		&rec.RecordedAt,
		&rec.CreatedAt,
	); err != nil {
		return nil, err
	}
	return rec, nil
}
