package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/growth-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/growth-insights-api/internal/domain"
)

const (
	insightEventsTable = "insight_events"
	aiInsightsTable    = "ai_insights"
)

var insightEventColumns = []string{
	"id", "site_id", "event_type", "severity", "message", "payload", "occurred_at", "created_at",
}

var aiInsightColumns = []string{
	"id", "entity_id", "site_id", "insight_type", "title", "narrative", "confidence",
	"metadata", "generated_at", "created_at", "updated_at",
}

type InsightEventRepository interface {
	Create(ctx context.Context, event *domain.InsightEvent) error
	GetByID(ctx context.Context, id uint) (*domain.InsightEvent, error)
	ListBySite(ctx context.Context, siteID uint, filter domain.InsightEventFilter) ([]*domain.InsightEvent, error)
	Delete(ctx context.Context, id uint) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type AIInsightRepository interface {
	Create(ctx context.Context, insight *domain.AIInsight) error
	GetByID(ctx context.Context, id uint) (*domain.AIInsight, error)
	ListByEntity(ctx context.Context, entityID uint, filter domain.AIInsightFilter) ([]*domain.AIInsight, error)
	Delete(ctx context.Context, id uint) error
}

type insightEventRepository struct {
	conn postgres.Conn
}

func NewInsightEventRepository(conn postgres.Conn) InsightEventRepository {
	return &insightEventRepository{
		conn: conn,
	}
}

func (r *insightEventRepository) Create(ctx context.Context, e *domain.InsightEvent) error {
	if err := e.Validate(); err != nil {
		return err
	}

	builder := psql.Insert(insightEventsTable).
		Columns("site_id", "event_type", "severity", "message", "payload", "occurred_at").
		Values(e.SiteID, e.EventType, e.Severity, e.Message, e.Payload, e.OccurredAt)

	id, err := insertReturningID(ctx, r.conn, builder, "erro ao inserir evento")
	if err != nil {
		return err
	}

	e.ID = id
	return nil
}

func (r *insightEventRepository) GetByID(ctx context.Context, id uint) (*domain.InsightEvent, error) {
	builder := psql.Select(insightEventColumns...).From(insightEventsTable).Where(squirrel.Eq{"id": id})
	return getOne(ctx, r.conn, builder, scanInsightEvent)
}

func (r *insightEventRepository) ListBySite(ctx context.Context, siteID uint, filter domain.InsightEventFilter) ([]*domain.InsightEvent, error) {
	builder := psql.Select(insightEventColumns...).
		From(insightEventsTable).
		Where(squirrel.Eq{"site_id": siteID}).
		OrderBy("occurred_at DESC", "id DESC")

	if filter.Severity != nil {
		builder = builder.Where(squirrel.Eq{"severity": *filter.Severity})
	}
	builder = withDateRange(builder, "occurred_at", filter.DateRange)

	return listAll(ctx, r.conn, paginate(builder, filter.ListFilter), scanInsightEvent)
}

func (r *insightEventRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.conn, insightEventsTable, id)
}

func (r *insightEventRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return deleteOlderThan(ctx, r.conn, insightEventsTable, "occurred_at", cutoff)
}

func scanInsightEvent(row rowScanner) (*domain.InsightEvent, error) {
	e := &domain.InsightEvent{}
	if err := row.Scan(
		&e.ID,
		&e.SiteID,
		&e.EventType,
		&e.Severity,
		&e.Message,
		&e.Payload,
		&e.OccurredAt,
		&e.CreatedAt,
	); err != nil {
		return nil, err
	}
	return e, nil
}

type aiInsightRepository struct {
	conn postgres.Conn
}

func NewAIInsightRepository(conn postgres.Conn) AIInsightRepository {
	return &aiInsightRepository{
		conn: conn,
	}
}

func (r *aiInsightRepository) Create(ctx context.Context, i *domain.AIInsight) error {
	if err := i.Validate(); err != nil {
		return err
	}

	builder := psql.Insert(aiInsightsTable).
		Columns("entity_id", "site_id", "insight_type", "title", "narrative", "confidence", "metadata", "generated_at").
		Values(i.EntityID, i.SiteID, i.InsightType, i.Title, i.Narrative, i.Confidence, i.Metadata, i.GeneratedAt)

	id, err := insertReturningID(ctx, r.conn, builder, "erro ao inserir insight")
	if err != nil {
		return err
	}

	i.ID = id
	return nil
}

func (r *aiInsightRepository) GetByID(ctx context.Context, id uint) (*domain.AIInsight, error) {
	builder := psql.Select(aiInsightColumns...).From(aiInsightsTable).Where(squirrel.Eq{"id": id})
	return getOne(ctx, r.conn, builder, scanAIInsight)
}

func (r *aiInsightRepository) ListByEntity(ctx context.Context, entityID uint, filter domain.AIInsightFilter) ([]*domain.AIInsight, error) {
	builder := psql.Select(aiInsightColumns...).
		From(aiInsightsTable).
		Where(squirrel.Eq{"entity_id": entityID}).
		OrderBy("generated_at DESC", "id DESC")

	if filter.SiteID != nil {
		builder = builder.Where(squirrel.Eq{"site_id": *filter.SiteID})
	}
	if filter.InsightType != "" {
		builder = builder.Where(squirrel.Eq{"insight_type": filter.InsightType})
	}

	return listAll(ctx, r.conn, paginate(builder, filter.ListFilter), scanAIInsight)
}

func (r *aiInsightRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.conn, aiInsightsTable, id)
}

func scanAIInsight(row rowScanner) (*domain.AIInsight, error) {
	i := &domain.AIInsight{}
	if err := row.Scan(
		&i.ID,
		&i.EntityID,
		&i.SiteID,
		&i.InsightType,
		&i.Title,
		&i.Narrative,
		&i.Confidence,
		&i.Metadata,
		&i.GeneratedAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return i, nil
}
