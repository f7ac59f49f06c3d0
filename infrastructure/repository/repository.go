// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/growth-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/growth-insights-api/internal/domain"
)

// Códigos de erro do postgres tratados pelos repositórios
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type rowScanner interface {
	Scan(dest ...any) error
}

// translateError converte erros do driver em erros de domínio
func translateError(err error, action string) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", domain.ErrDuplicate, pqErr.Constraint)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", domain.ErrInvalidReference, pqErr.Constraint)
		case pgCheckViolation:
			return domain.NewValidationError(pqErr.Constraint, "valor rejeitado pelo banco")
		case pgNotNullViolation:
			return domain.NewValidationError(pqErr.Column, "campo obrigatório")
		}
	}

	return errors.Wrap(err, action)
}

func insertReturningID(ctx context.Context, q postgres.Queryer, builder squirrel.InsertBuilder, action string) (uint, error) {
	query, args, err := builder.Suffix("RETURNING id").ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var id uint
	if err := q.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, translateError(err, action)
	}

	return id, nil
}

// execAffecting executa o comando e devolve ErrNotFound quando nenhuma linha foi afetada
func execAffecting(ctx context.Context, q postgres.Queryer, builder squirrel.Sqlizer, action string) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(err, action)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, action)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func deleteByID(ctx context.Context, q postgres.Queryer, table string, id uint) error {
	return execAffecting(ctx, q, psql.Delete(table).Where(squirrel.Eq{"id": id}), "erro ao remover registro de "+table)
}

// deleteOlderThan remove registros cuja coluna de tempo é anterior ao corte
func deleteOlderThan(ctx context.Context, q postgres.Queryer, table, column string, cutoff time.Time) (int64, error) {
	query, args, err := psql.Delete(table).Where(squirrel.Lt{column: cutoff}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, translateError(err, "erro ao remover registros antigos de "+table)
	}

	return result.RowsAffected()
}

func getOne[T any](ctx context.Context, q postgres.Queryer, builder squirrel.SelectBuilder, scan func(rowScanner) (*T, error)) (*T, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	item, err := scan(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao executar a query")
	}

	return item, nil
}

func listAll[T any](ctx context.Context, q postgres.Queryer, builder squirrel.SelectBuilder, scan func(rowScanner) (*T, error)) ([]*T, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	items := make([]*T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao ler linha")
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro ao percorrer resultados")
	}

	return items, nil
}

func paginate(builder squirrel.SelectBuilder, filter domain.ListFilter) squirrel.SelectBuilder {
	filter = filter.Normalize()
	return builder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
}

func withDateRange(builder squirrel.SelectBuilder, column string, dr domain.DateRange) squirrel.SelectBuilder {
	if dr.From != nil {
		builder = builder.Where(squirrel.GtOrEq{column: *dr.From})
	}
	if dr.To != nil {
		builder = builder.Where(squirrel.LtOrEq{column: *dr.To})
	}
	return builder
}
