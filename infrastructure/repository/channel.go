package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/growth-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/growth-insights-api/internal/domain"
)

const channelsTable = "channels"

var channelColumns = []string{
	"id", "name", "category", "description",
	"avg_cpm", "avg_cpc", "avg_ctr", "avg_conversion_rate",
	"industry_modifiers", "demographic_modifiers",
	"created_at", "updated_at",
}

type ChannelRepository interface {
	Create(ctx context.Context, channel *domain.Channel) error
	GetByID(ctx context.Context, id uint) (*domain.Channel, error)
	GetByName(ctx context.Context, name string) (*domain.Channel, error)
	List(ctx context.Context, filter domain.ChannelFilter) ([]*domain.Channel, error)
	Update(ctx context.Context, channel *domain.Channel) error
	Upsert(ctx context.Context, channel *domain.Channel) error
	Delete(ctx context.Context, id uint) error
}

type channelRepository struct {
	conn postgres.Conn
}

func NewChannelRepository(conn postgres.Conn) ChannelRepository {
	return &channelRepository{
		conn: conn,
	}
}

func (r *channelRepository) Create(ctx context.Context, channel *domain.Channel) error {
	if err := channel.Validate(); err != nil {
		return err
	}

	builder := psql.Insert(channelsTable).
		Columns("name", "category", "description", "avg_cpm", "avg_cpc", "avg_ctr",
			"avg_conversion_rate", "industry_modifiers", "demographic_modifiers").
		Values(channel.Name, channel.Category, channel.Description, channel.AvgCPM, channel.AvgCPC,
			channel.AvgCTR, channel.AvgConversionRate, channel.IndustryModifiers, channel.DemographicModifiers)

	id, err := insertReturningID(ctx, r.conn, builder, "erro ao inserir canal")
	if err != nil {
		return err
	}

	channel.ID = id
	return nil
}

func (r *channelRepository) GetByID(ctx context.Context, id uint) (*domain.Channel, error) {
	return r.get(ctx, squirrel.Eq{"id": id})
}

func (r *channelRepository) GetByName(ctx context.Context, name string) (*domain.Channel, error) {
	return r.get(ctx, squirrel.Eq{"name": name})
}

func (r *channelRepository) get(ctx context.Context, where squirrel.Sqlizer) (*domain.Channel, error) {
	return getOne(ctx, r.conn, psql.Select(channelColumns...).From(channelsTable).Where(where), scanChannel)
}

func (r *channelRepository) List(ctx context.Context, filter domain.ChannelFilter) ([]*domain.Channel, error) {
	builder := psql.Select(channelColumns...).
		From(channelsTable).
		OrderBy("name ASC")

	if filter.Category != nil {
		builder = builder.Where(squirrel.Eq{"category": *filter.Category})
	}

	return listAll(ctx, r.conn, paginate(builder, filter.ListFilter), scanChannel)
}

func (r *channelRepository) Update(ctx context.Context, channel *domain.Channel) error {
	if err := channel.Validate(); err != nil {
		return err
	}

	builder := psql.Update(channelsTable).
		SetMap(map[string]any{
			"name":                  channel.Name,
			"category":              channel.Category,
			"description":           channel.Description,
			"avg_cpm":               channel.AvgCPM,
			"avg_cpc":               channel.AvgCPC,
			"avg_ctr":               channel.AvgCTR,
			"avg_conversion_rate":   channel.AvgConversionRate,
			"industry_modifiers":    channel.IndustryModifiers,
			"demographic_modifiers": channel.DemographicModifiers,
		}).
		Where(squirrel.Eq{"id": channel.ID})

	return execAffecting(ctx, r.conn, builder, "erro ao atualizar canal")
}

// Upsert insere ou atualiza o canal usando o nome como chave
func (r *channelRepository) Upsert(ctx context.Context, channel *domain.Channel) error {
	if err := channel.Validate(); err != nil {
		return err
	}

	builder := psql.Insert(channelsTable).
		Columns("name", "category", "description", "avg_cpm", "avg_cpc", "avg_ctr",
			"avg_conversion_rate", "industry_modifiers", "demographic_modifiers").
		Values(channel.Name, channel.Category, channel.Description, channel.AvgCPM, channel.AvgCPC,
			channel.AvgCTR, channel.AvgConversionRate, channel.IndustryModifiers, channel.DemographicModifiers).
		Suffix(`ON CONFLICT (name) DO UPDATE SET
			category = EXCLUDED.category,
			description = EXCLUDED.description,
			avg_cpm = EXCLUDED.avg_cpm,
			avg_cpc = EXCLUDED.avg_cpc,
			avg_ctr = EXCLUDED.avg_ctr,
			avg_conversion_rate = EXCLUDED.avg_conversion_rate,
			industry_modifiers = EXCLUDED.industry_modifiers,
			demographic_modifiers = EXCLUDED.demographic_modifiers`)

	id, err := insertReturningID(ctx, r.conn, builder, "erro ao salvar canal")
	if err != nil {
		return err
	}

	channel.ID = id
	return nil
}

func (r *channelRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.conn, channelsTable, id)
}

func scanChannel(row rowScanner) (*domain.Channel, error) {
	c := &domain.Channel{}

	if err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Category,
		&c.Description,
		&c.AvgCPM,
		&c.AvgCPC,
		&c.AvgCTR,
		&c.AvgConversionRate,
		&c.IndustryModifiers,
		&c.DemographicModifiers,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return c, nil
}
