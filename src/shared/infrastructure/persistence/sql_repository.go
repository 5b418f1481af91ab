package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"sales/src/shared/domain/specification"
)

// ErrNotFound indica que la entidad solicitada no existe en la base de datos.
var ErrNotFound = errors.New("entity not found")

// RowScanner es satisfecho tanto por *sql.Row como por *sql.Rows.
type RowScanner interface {
	Scan(dest ...any) error
}

// Mapper describe el mapeo columna-a-campo de una entidad, sin reflection.
// Columns devuelve las columnas persistibles excluyendo la PK; Values debe
// devolver los valores en el mismo orden. ScanRow lee Id seguido de Columns.
type Mapper[T any] interface {
	Table() string
	Columns() []string
	Values(entity T) []any
	ScanRow(row RowScanner) (T, error)
	ID(entity T) int64
	SetID(entity T, id int64)
}

// SQLRepository implementa el CRUD de tabla única para cualquier entidad.
// Cada operación es independiente y no transaccional: abre su propio scope
// contra el pool de conexiones y es segura para uso concurrente.
type SQLRepository[T any] struct {
	db     *sql.DB
	mapper Mapper[T]
}

// NewSQLRepository crea un repositorio genérico para la entidad del mapper.
func NewSQLRepository[T any](db *sql.DB, mapper Mapper[T]) *SQLRepository[T] {
	return &SQLRepository[T]{
		db:     db,
		mapper: mapper,
	}
}

// GetByID busca una entidad por su PK. Devuelve ErrNotFound si no existe.
func (r *SQLRepository[T]) GetByID(ctx context.Context, id int64) (T, error) {
	var zero T

	query := fmt.Sprintf(
		"SELECT Id, %s FROM %s WHERE Id = $1",
		strings.Join(r.mapper.Columns(), ", "),
		r.mapper.Table(),
	)

	entity, err := r.mapper.ScanRow(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return zero, ErrNotFound
	}
	if err != nil {
		return zero, fmt.Errorf("error finding %s by id: %w", r.mapper.Table(), err)
	}

	return entity, nil
}

// Insert persiste la entidad y devuelve el Id generado por la base.
func (r *SQLRepository[T]) Insert(ctx context.Context, entity T) (int64, error) {
	columns := r.mapper.Columns()
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = "$" + strconv.Itoa(i+1)
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING Id",
		r.mapper.Table(),
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	)

	var id int64
	err := r.db.QueryRowContext(ctx, query, r.mapper.Values(entity)...).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error inserting %s: %w", r.mapper.Table(), err)
	}

	r.mapper.SetID(entity, id)
	return id, nil
}

// Update actualiza la fila de la entidad. Devuelve false cuando ninguna fila
// fue afectada; decidir si eso es una falla queda en manos del caller.
func (r *SQLRepository[T]) Update(ctx context.Context, entity T) (bool, error) {
	columns := r.mapper.Columns()
	assignments := make([]string, len(columns))
	for i, column := range columns {
		assignments[i] = fmt.Sprintf("%s = $%d", column, i+1)
	}

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE Id = $%d",
		r.mapper.Table(),
		strings.Join(assignments, ", "),
		len(columns)+1,
	)

	args := append(r.mapper.Values(entity), r.mapper.ID(entity))
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("error updating %s: %w", r.mapper.Table(), err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error reading affected rows for %s: %w", r.mapper.Table(), err)
	}

	return affected > 0, nil
}

// Delete elimina la fila de la entidad por su PK.
func (r *SQLRepository[T]) Delete(ctx context.Context, entity T) (bool, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE Id = $1", r.mapper.Table())

	result, err := r.db.ExecContext(ctx, query, r.mapper.ID(entity))
	if err != nil {
		return false, fmt.Errorf("error deleting %s: %w", r.mapper.Table(), err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error reading affected rows for %s: %w", r.mapper.Table(), err)
	}

	return affected > 0, nil
}

// DeleteByID busca la entidad y la elimina. Devuelve false si no existe.
func (r *SQLRepository[T]) DeleteByID(ctx context.Context, id int64) (bool, error) {
	entity, err := r.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return r.Delete(ctx, entity)
}

// QueryBySpecification ejecuta la especificación compilada y mapea cada fila.
func (r *SQLRepository[T]) QueryBySpecification(ctx context.Context, spec specification.Specification) ([]T, error) {
	rows, err := r.db.QueryContext(ctx, spec.ToSQLQuery(), spec.Parameters()...)
	if err != nil {
		return nil, fmt.Errorf("error querying %s by specification: %w", r.mapper.Table(), err)
	}
	defer rows.Close()

	var entities []T
	for rows.Next() {
		entity, err := r.mapper.ScanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning %s row: %w", r.mapper.Table(), err)
		}
		entities = append(entities, entity)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s rows: %w", r.mapper.Table(), err)
	}

	return entities, nil
}
