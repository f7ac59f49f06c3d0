package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/growth-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/growth-insights-api/internal/domain"
)

const recommendationsTable = "recommendations"

var recommendationColumns = []string{
	"id", "entity_id", "recommended_channels", "suggested_budgets",
	"estimated_outcomes", "narrative", "created_at", "updated_at",
}

type RecommendationRepository interface {
	Create(ctx context.Context, recommendation *domain.Recommendation) error
	GetByID(ctx context.Context, id uint) (*domain.Recommendation, error)
	ListByEntity(ctx context.Context, entityID uint, filter domain.ListFilter) ([]*domain.Recommendation, error)
	Update(ctx context.Context, recommendation *domain.Recommendation) error
	Delete(ctx context.Context, id uint) error
}

type recommendationRepository struct {
	conn postgres.Conn
}

func NewRecommendationRepository(conn postgres.Conn) RecommendationRepository {
	return &recommendationRepository{
		conn: conn,
	}
}

func (r *recommendationRepository) Create(ctx context.Context, rec *domain.Recommendation) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	builder := psql.Insert(recommendationsTable).
		Columns("entity_id", "recommended_channels", "suggested_budgets", "estimated_outcomes", "narrative").
		Values(rec.EntityID, rec.RecommendedChannels, rec.SuggestedBudgets, rec.EstimatedOutcomes, rec.Narrative)

	id, err := insertReturningID(ctx, r.conn, builder, "erro ao inserir recomendação")
	if err != nil {
		return err
	}

	rec.ID = id
	return nil
}

func (r *recommendationRepository) GetByID(ctx context.Context, id uint) (*domain.Recommendation, error) {
	builder := psql.Select(recommendationColumns...).From(recommendationsTable).Where(squirrel.Eq{"id": id})
	return getOne(ctx, r.conn, builder, scanRecommendation)
}

func (r *recommendationRepository) ListByEntity(ctx context.Context, entityID uint, filter domain.ListFilter) ([]*domain.Recommendation, error) {
	builder := psql.Select(recommendationColumns...).
		From(recommendationsTable).
		Where(squirrel.Eq{"entity_id": entityID}).
		OrderBy("created_at DESC", "id DESC")

	return listAll(ctx, r.conn, paginate(builder, filter), scanRecommendation)
}

func (r *recommendationRepository) Update(ctx context.Context, rec *domain.Recommendation) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	builder := psql.Update(recommendationsTable).
		SetMap(map[string]any{
			"entity_id":            rec.EntityID,
			"recommended_channels": rec.RecommendedChannels,
			"suggested_budgets":    rec.SuggestedBudgets,
			"estimated_outcomes":   rec.EstimatedOutcomes,
			"narrative":            rec.Narrative,
		}).
		Where(squirrel.Eq{"id": rec.ID})

	return execAffecting(ctx, r.conn, builder, "erro ao atualizar recomendação")
}

func (r *recommendationRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.conn, recommendationsTable, id)
}

func scanRecommendation(row rowScanner) (*domain.Recommendation, error) {
	rec := &domain.Recommendation{}
	if err := row.Scan(
		&rec.ID,
		&rec.EntityID,
		&rec.RecommendedChannels,
		&rec.SuggestedBudgets,
		&rec.EstimatedOutcomes,
		&rec.Narrative,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return rec, nil
}
