package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/growth-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/growth-insights-api/internal/domain"
)

const (
	keywordsTable         = "keywords"
	keywordSnapshotsTable = "keyword_snapshots"
)

var keywordColumns = []string{
	"id", "site_id", "keyword", "search_volume", "difficulty", "intent", "metadata", "created_at", "updated_at",
}

var keywordSnapshotColumns = []string{
	"id", "keyword_id", "position", "search_volume", "cpc", "metadata", "captured_at", "created_at",
}

type KeywordRepository interface {
	Create(ctx context.Context, keyword *domain.Keyword) error
	GetByID(ctx context.Context, id uint) (*domain.Keyword, error)
	GetBySiteAndKeyword(ctx context.Context, siteID uint, keyword string) (*domain.Keyword, error)
	ListBySite(ctx context.Context, siteID uint, filter domain.ListFilter) ([]*domain.Keyword, error)
	Update(ctx context.Context, keyword *domain.Keyword) error
	Delete(ctx context.Context, id uint) error
}

type KeywordSnapshotRepository interface {
	Create(ctx context.Context, snapshot *domain.KeywordSnapshot) error
	GetByID(ctx context.Context, id uint) (*domain.KeywordSnapshot, error)
	ListByKeyword(ctx context.Context, keywordID uint, dr domain.DateRange, filter domain.ListFilter) ([]*domain.KeywordSnapshot, error)
	Delete(ctx context.Context, id uint) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type keywordRepository struct {
	conn postgres.Conn
}

func NewKeywordRepository(conn postgres.Conn) KeywordRepository {
	return &keywordRepository{
		conn: conn,
	}
}

func (r *keywordRepository) Create(ctx context.Context, keyword *domain.Keyword) error {
	if err := keyword.Validate(); err != nil {
		return err
	}

	builder := psql.Insert(keywordsTable).
		Columns("site_id", "keyword", "search_volume", "difficulty", "intent", "metadata").
		Values(keyword.SiteID, keyword.Keyword, keyword.SearchVolume, keyword.Difficulty, keyword.Intent, keyword.Metadata)

	id, err := insertReturningID(ctx, r.conn, builder, "erro ao inserir palavra-chave")
	if err != nil {
		return err
	}

	keyword.ID = id
	return nil
}

func (r *keywordRepository) GetByID(ctx context.Context, id uint) (*domain.Keyword, error) {
	builder := psql.Select(keywordColumns...).From(keywordsTable).Where(squirrel.Eq{"id": id})
	return getOne(ctx, r.conn, builder, scanKeyword)
}

func (r *keywordRepository) GetBySiteAndKeyword(ctx context.Context, siteID uint, keyword string) (*domain.Keyword, error) {
	builder := psql.Select(keywordColumns...).
		From(keywordsTable).
		Where(squirrel.Eq{"site_id": siteID, "keyword": domain.NormalizeKeyword(keyword)})
	return getOne(ctx, r.conn, builder, scanKeyword)
}

func (r *keywordRepository) ListBySite(ctx context.Context, siteID uint, filter domain.ListFilter) ([]*domain.Keyword, error) {
	builder := psql.Select(keywordColumns...).
		From(keywordsTable).
		Where(squirrel.Eq{"site_id": siteID}).
		OrderBy("keyword ASC")

	return listAll(ctx, r.conn, paginate(builder, filter), scanKeyword)
}

func (r *keywordRepository) Update(ctx context.Context, keyword *domain.Keyword) error {
	if err := keyword.Validate(); err != nil {
		return err
	}

	builder := psql.Update(keywordsTable).
		SetMap(map[string]any{
			"keyword":       keyword.Keyword,
			"search_volume": keyword.SearchVolume,
			"difficulty":    keyword.Difficulty,
			"intent":        keyword.Intent,
			"metadata":      keyword.Metadata,
		}).
		Where(squirrel.Eq{"id": keyword.ID})

	return execAffecting(ctx, r.conn, builder, "erro ao atualizar palavra-chave")
}

func (r *keywordRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.conn, keywordsTable, id)
}

func scanKeyword(row rowScanner) (*domain.Keyword, error) {
	k := &domain.Keyword{}
	if err := row.Scan(
		&k.ID,
		&k.SiteID,
		&k.Keyword,
		&k.SearchVolume,
		&k.Difficulty,
		&k.Intent,
		&k.Metadata,
		&k.CreatedAt,
		&k.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return k, nil
}

type keywordSnapshotRepository struct {
	conn postgres.Conn
}

func NewKeywordSnapshotRepository(conn postgres.Conn) KeywordSnapshotRepository {
	return &keywordSnapshotRepository{
		conn: conn,
	}
}

func (r *keywordSnapshotRepository) Create(ctx context.Context, snapshot *domain.KeywordSnapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}

	builder := psql.Insert(keywordSnapshotsTable).
		Columns("keyword_id", "position", "search_volume", "cpc", "metadata", "captured_at").
		Values(snapshot.KeywordID, snapshot.Position, snapshot.SearchVolume, snapshot.CPC, snapshot.Metadata, snapshot.CapturedAt)

	id, err := insertReturningID(ctx, r.conn, builder, "erro ao inserir snapshot de palavra-chave")
	if err != nil {
		return err
	}

	snapshot.ID = id
	return nil
}

func (r *keywordSnapshotRepository) GetByID(ctx context.Context, id uint) (*domain.KeywordSnapshot, error) {
	builder := psql.Select(keywordSnapshotColumns...).From(keywordSnapshotsTable).Where(squirrel.Eq{"id": id})
	return getOne(ctx, r.conn, builder, scanKeywordSnapshot)
}

func (r *keywordSnapshotRepository) ListByKeyword(ctx context.Context, keywordID uint, dr domain.DateRange, filter domain.ListFilter) ([]*domain.KeywordSnapshot, error) {
	builder := psql.Select(keywordSnapshotColumns...).
		From(keywordSnapshotsTable).
		Where(squirrel.Eq{"keyword_id": keywordID}).
		OrderBy("captured_at DESC", "id DESC")

	builder = withDateRange(builder, "captured_at", dr)

	return listAll(ctx, r.conn, paginate(builder, filter), scanKeywordSnapshot)
}

func (r *keywordSnapshotRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.conn, keywordSnapshotsTable, id)
}

func (r *keywordSnapshotRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return deleteOlderThan(ctx, r.conn, keywordSnapshotsTable, "captured_at", cutoff)
}

func scanKeywordSnapshot(row rowScanner) (*domain.KeywordSnapshot, error) {
	s := &domain.KeywordSnapshot{}
	if err := row.Scan(
		&s.ID,
		&s.KeywordID,
		&s.Position,
		&s.SearchVolume,
		&s.CPC,
		&s.Metadata,
		&s.CapturedAt,
		&s.CreatedAt,
	); err != nil {
		return nil, err
	}
	return s, nil
}
