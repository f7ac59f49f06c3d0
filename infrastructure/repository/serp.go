package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/growth-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/growth-insights-api/internal/domain"
)

const (
	serpSnapshotsTable = "serp_snapshots"
	serpResultsTable   = "serp_results"
)

var serpSnapshotColumns = []string{
	"id", "keyword_id", "search_engine", "location", "device", "total_results",
	"features", "metadata", "captured_at", "created_at",
}

var serpResultColumns = []string{
	"id", "serp_snapshot_id", "position", "url", "domain", "title", "snippet",
	"result_type", "metadata", "created_at",
}

type SerpSnapshotRepository interface {
	// Create grava o snapshot e seus resultados na mesma transação
	Create(ctx context.Context, snapshot *domain.SerpSnapshot) error
	GetByID(ctx context.Context, id uint) (*domain.SerpSnapshot, error)
	ListByKeyword(ctx context.Context, keywordID uint, dr domain.DateRange, filter domain.ListFilter) ([]*domain.SerpSnapshot, error)
	ListResults(ctx context.Context, snapshotID uint) ([]*domain.SerpResult, error)
	Delete(ctx context.Context, id uint) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type serpSnapshotRepository struct {
	conn postgres.Conn
}

func NewSerpSnapshotRepository(conn postgres.Conn) SerpSnapshotRepository {
	return &serpSnapshotRepository{
		conn: conn,
	}
}

func (r *serpSnapshotRepository) Create(ctx context.Context, snapshot *domain.SerpSnapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}

	return r.conn.RunInTransaction(ctx, func(tx postgres.Queryer) error {
		builder := psql.Insert(serpSnapshotsTable).
			Columns("keyword_id", "search_engine", "location", "device", "total_results", "features", "metadata", "captured_at").
			Values(snapshot.KeywordID, snapshot.SearchEngine, snapshot.Location, snapshot.Device,
				snapshot.TotalResults, snapshot.Features, snapshot.Metadata, snapshot.CapturedAt)

		id, err := insertReturningID(ctx, tx, builder, "erro ao inserir snapshot da SERP")
		if err != nil {
			return err
		}

		for _, result := range snapshot.Results {
			result.SerpSnapshotID = id
			resultBuilder := psql.Insert(serpResultsTable).
				Columns("serp_snapshot_id", "position", "url", "domain", "title", "snippet", "result_type", "metadata").
				Values(result.SerpSnapshotID, result.Position, result.URL, result.Domain, result.Title,
					result.Snippet, result.ResultType, result.Metadata)

			resultID, err := insertReturningID(ctx, tx, resultBuilder, "erro ao inserir resultado da SERP")
			if err != nil {
				return err
			}
			result.ID = resultID
		}

		snapshot.ID = id
		return nil
	})
}

func (r *serpSnapshotRepository) GetByID(ctx context.Context, id uint) (*domain.SerpSnapshot, error) {
	builder := psql.Select(serpSnapshotColumns...).From(serpSnapshotsTable).Where(squirrel.Eq{"id": id})

	snapshot, err := getOne(ctx, r.conn, builder, scanSerpSnapshot)
	if err != nil || snapshot == nil {
		return snapshot, err
	}

	snapshot.Results, err = r.ListResults(ctx, snapshot.ID)
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

func (r *serpSnapshotRepository) ListByKeyword(ctx context.Context, keywordID uint, dr domain.DateRange, filter domain.ListFilter) ([]*domain.SerpSnapshot, error) {
	builder := psql.Select(serpSnapshotColumns...).
		From(serpSnapshotsTable).
		Where(squirrel.Eq{"keyword_id": keywordID}).
		OrderBy("captured_at DESC", "id DESC")

	builder = withDateRange(builder, "captured_at", dr)

	return listAll(ctx, r.conn, paginate(builder, filter), scanSerpSnapshot)
}

func (r *serpSnapshotRepository) ListResults(ctx context.Context, snapshotID uint) ([]*domain.SerpResult, error) {
	builder := psql.Select(serpResultColumns...).
		From(serpResultsTable).
		Where(squirrel.Eq{"serp_snapshot_id": snapshotID}).
		OrderBy("position ASC")

	return listAll(ctx, r.conn, builder, scanSerpResult)
}

func (r *serpSnapshotRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.conn, serpSnapshotsTable, id)
}

// DeleteOlderThan remove snapshots antigos; os resultados saem em cascata
func (r *serpSnapshotRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return deleteOlderThan(ctx, r.conn, serpSnapshotsTable, "captured_at", cutoff)
}

func scanSerpSnapshot(row rowScanner) (*domain.SerpSnapshot, error) {
	s := &domain.SerpSnapshot{}
	if err := row.Scan(
		&s.ID,
		&s.KeywordID,
		&s.SearchEngine,
		&s.Location,
		&s.Device,
		&s.TotalResults,
		&s.Features,
		&s.Metadata,
		&s.CapturedAt,
		&s.CreatedAt,
	); err != nil {
		return nil, err
	}
	return s, nil
}

func scanSerpResult(row rowScanner) (*domain.SerpResult, error) {
	res := &domain.SerpResult{}
	if err := row.Scan(
		&res.ID,
		&res.SerpSnapshotID,
		&res.Position,
		&res.URL,
		&res.Domain,
		&res.Title,
		&res.Snippet,
		&res.ResultType,
		&res.Metadata,
		&res.CreatedAt,
	); err != nil {
		return nil, err
	}
	return res, nil
}
