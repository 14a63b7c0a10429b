package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/pradeepdcosta/pathdrive-console/internal/entity"
	"github.com/pradeepdcosta/pathdrive-console/pkg/storage/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const _locationColumns = "id, name, type, region, city, latitude, longitude, is_active, created_at, updated_at"

type LocationRepository struct {
	db *postgres.Postgres
}

func NewLocationRepository(db *postgres.Postgres) *LocationRepository {
	return &LocationRepository{db}
}

func (lr *LocationRepository) Create(
	ctx context.Context,
	location *entity.Location,
) (*entity.Location, error) {
	const op = "repository.location.Create"

	query := lr.db.Builder.Insert("locations").
		Columns("id", "name", "type", "region", "city", "latitude", "longitude", "is_active").
		Values(
			uuid.New(),
			location.Name,
			location.Type,
			location.Region,
			location.City,
			location.Latitude,
			location.Longitude,
			true,
		).
		Suffix("RETURNING " + _locationColumns)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	result, err := scanLocation(lr.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entity.ErrConflictingData
		}
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	return result, nil
}

func (lr *LocationRepository) Update(
	ctx context.Context,
	location *entity.Location,
) (*entity.Location, error) {
	const op = "repository.location.Update"

	query := lr.db.Builder.Update("locations").
		Set("name", location.Name).
		Set("type", location.Type).
		Set("region", location.Region).
		Set("city", location.City).
		Set("latitude", location.Latitude).
		Set("longitude", location.Longitude).
		Set("is_active", location.IsActive).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": location.ID}).
		Suffix("RETURNING " + _locationColumns)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	result, err := scanLocation(lr.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrDataNotFound
		}
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	return result, nil
}

func (lr *LocationRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	const op = "repository.location.Deactivate"

	query := lr.db.Builder.Update("locations").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("%s: building query: %w", op, err)
	}

	tag, err := lr.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("%s: exec: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrDataNotFound
	}

	return nil
}

func (lr *LocationRepository) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*entity.Location, error) {
	const op = "repository.location.GetByID"

	query := lr.db.Builder.Select(_locationColumns).
		From("locations").
		Where(squirrel.Eq{"id": id}).
		Limit(1)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	result, err := scanLocation(lr.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrDataNotFound
		}
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	return result, nil
}

func (lr *LocationRepository) ListActive(ctx context.Context) ([]*entity.Location, error) {
	const op = "repository.location.ListActive"

	query := lr.db.Builder.Select(_locationColumns).
		From("locations").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("region ASC", "city ASC", "name ASC")

	return lr.queryLocations(ctx, op, query)
}

func (lr *LocationRepository) ListByRegionAndCity(
	ctx context.Context,
	region, city string,
) ([]*entity.Location, error) {
	const op = "repository.location.ListByRegionAndCity"

	query := lr.db.Builder.Select(_locationColumns).
		From("locations").
		Where(squirrel.Eq{"is_active": true, "region": region, "city": city}).
		OrderBy("name ASC")

	return lr.queryLocations(ctx, op, query)
}

func (lr *LocationRepository) ListRegions(ctx context.Context) ([]string, error) {
	const op = "repository.location.ListRegions"

	query := lr.db.Builder.Select("DISTINCT region").
		From("locations").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("region ASC")

	return lr.queryStrings(ctx, op, query)
}

func (lr *LocationRepository) ListCitiesByRegion(
	ctx context.Context,
	region string,
) ([]string, error) {
	const op = "repository.location.ListCitiesByRegion"

	query := lr.db.Builder.Select("DISTINCT city").
		From("locations").
		Where(squirrel.Eq{"is_active": true, "region": region}).
		OrderBy("city ASC")

	return lr.queryStrings(ctx, op, query)
}

func (lr *LocationRepository) queryLocations(
	ctx context.Context,
	op string,
	query squirrel.SelectBuilder,
) ([]*entity.Location, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	rows, err := lr.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: query: %w", op, err)
	}
	defer rows.Close()

	result := make([]*entity.Location, 0)
	for rows.Next() {
		location, scanErr := scanLocation(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%s: rows scan: %w", op, scanErr)
		}
		result = append(result, location)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows final error: %w", op, rows.Err())
	}

	return result, nil
}

func (lr *LocationRepository) queryStrings(
	ctx context.Context,
	op string,
	query squirrel.SelectBuilder,
) ([]string, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	rows, err := lr.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: query: %w", op, err)
	}
	defer rows.Close()

	result := make([]string, 0)
	for rows.Next() {
		var value string
		if err = rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("%s: rows scan: %w", op, err)
		}
		result = append(result, value)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows final error: %w", op, rows.Err())
	}

	return result, nil
}

func scanLocation(row pgx.Row) (*entity.Location, error) {
	location := &entity.Location{}
	err := row.Scan(
		&location.ID,
		&location.Name,
		&location.Type,
		&location.Region,
		&location.City,
		&location.Latitude,
		&location.Longitude,
		&location.IsActive,
		&location.CreatedAt,
		&location.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return location, nil
}
