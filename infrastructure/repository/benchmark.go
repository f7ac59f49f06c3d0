package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/growth-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/growth-insights-api/internal/domain"
)

const benchmarksTable = "benchmarks"

var benchmarkColumns = []string{"id", "industry", "metrics", "created_at", "updated_at"}

type BenchmarkRepository interface {
	Create(ctx context.Context, benchmark *domain.Benchmark) error
	GetByID(ctx context.Context, id uint) (*domain.Benchmark, error)
	GetLatestByIndustry(ctx context.Context, industry string) (*domain.Benchmark, error)
	List(ctx context.Context, filter domain.BenchmarkFilter) ([]*domain.Benchmark, error)
	Update(ctx context.Context, benchmark *domain.Benchmark) error
	Delete(ctx context.Context, id uint) error
}

type benchmarkRepository struct {
	conn postgres.Conn
}

func NewBenchmarkRepository(conn postgres.Conn) BenchmarkRepository {
	return &benchmarkRepository{
		conn: conn,
	}
}

func (r *benchmarkRepository) Create(ctx context.Context, benchmark *domain.Benchmark) error {
	if err := benchmark.Validate(); err != nil {
		return err
	}

	builder := psql.Insert(benchmarksTable).
		Columns("industry", "metrics").
		Values(benchmark.Industry, benchmark.Metrics)

	id, err := insertReturningID(ctx, r.conn, builder, "erro ao inserir benchmark")
	if err != nil {
		return err
	}

	benchmark.ID = id
	return nil
}

func (r *benchmarkRepository) GetByID(ctx context.Context, id uint) (*domain.Benchmark, error) {
	builder := psql.Select(benchmarkColumns...).From(benchmarksTable).Where(squirrel.Eq{"id": id})
	return getOne(ctx, r.conn, builder, scanBenchmark)
}

// GetLatestByIndustry retorna o benchmark mais recente do setor
func (r *benchmarkRepository) GetLatestByIndustry(ctx context.Context, industry string) (*domain.Benchmark, error) {
	builder := psql.Select(benchmarkColumns...).
		From(benchmarksTable).
		Where(squirrel.Eq{"industry": industry}).
		OrderBy("updated_at DESC", "id DESC").
		Limit(1)
	return getOne(ctx, r.conn, builder, scanBenchmark)
}

func (r *benchmarkRepository) List(ctx context.Context, filter domain.BenchmarkFilter) ([]*domain.Benchmark, error) {
	builder := psql.Select(benchmarkColumns...).
		From(benchmarksTable).
		OrderBy("industry ASC", "id ASC")

	if filter.Industry != "" {
		builder = builder.Where(squirrel.Eq{"industry": filter.Industry})
	}

	return listAll(ctx, r.conn, paginate(builder, filter.ListFilter), scanBenchmark)
}

func (r *benchmarkRepository) Update(ctx context.Context, benchmark *domain.Benchmark) error {
	if err := benchmark.Validate(); err != nil {
		return err
	}

	builder := psql.Update(benchmarksTable).
		Set("industry", benchmark.Industry).
		Set("metrics", benchmark.Metrics).
		Where(squirrel.Eq{"id": benchmark.ID})

	return execAffecting(ctx, r.conn, builder, "erro ao atualizar benchmark")
}

func (r *benchmarkRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.conn, benchmarksTable, id)
}

func scanBenchmark(row rowScanner) (*domain.Benchmark, error) {
	b := &domain.Benchmark{}
	if err := row.Scan(&b.ID, &b.Industry, &b.Metrics, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return b, nil
}
