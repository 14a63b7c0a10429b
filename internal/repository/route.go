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

const (
	_routeColumns = "r.id, r.name, r.a_end_id, r.b_end_id, r.distance_km, r.is_active, r.is_visible, r.created_at, r.updated_at"

	_routeJoinedColumns = _routeColumns + ", " +
		"a.id, a.name, a.type, a.region, a.city, a.latitude, a.longitude, a.is_active, a.created_at, a.updated_at, " +
		"b.id, b.name, b.type, b.region, b.city, b.latitude, b.longitude, b.is_active, b.created_at, b.updated_at"
)

type RouteRepository struct {
	db *postgres.Postgres
}

func NewRouteRepository(db *postgres.Postgres) *RouteRepository {
	return &RouteRepository{db}
}

func (rr *RouteRepository) Create(ctx context.Context, route *entity.Route) (*entity.Route, error) {
	const op = "repository.route.Create"

	query := rr.db.Builder.Insert("routes").
		Columns("id", "name", "a_end_id", "b_end_id", "distance_km", "is_active", "is_visible").
		Values(
			uuid.New(),
			route.Name,
			route.AEndID,
			route.BEndID,
			route.DistanceKm,
			true,
			route.IsVisible,
		).
		Suffix("RETURNING id, name, a_end_id, b_end_id, distance_km, is_active, is_visible, created_at, updated_at")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	result := &entity.Route{}
	err = rr.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&result.ID,
		&result.Name,
		&result.AEndID,
		&result.BEndID,
		&result.DistanceKm,
		&result.IsActive,
		&result.IsVisible,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return nil, entity.ErrConflictingData
			case "23503":
				return nil, entity.ErrDataNotFound
			}
		}
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	return result, nil
}

func (rr *RouteRepository) Update(ctx context.Context, route *entity.Route) (*entity.Route, error) {
	const op = "repository.route.Update"

	query := rr.db.Builder.Update("routes").
		Set("name", route.Name).
		Set("a_end_id", route.AEndID).
		Set("b_end_id", route.BEndID).
		Set("distance_km", route.DistanceKm).
		Set("is_active", route.IsActive).
		Set("is_visible", route.IsVisible).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": route.ID}).
		Suffix("RETURNING id, name, a_end_id, b_end_id, distance_km, is_active, is_visible, created_at, updated_at")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	result := &entity.Route{}
	err = rr.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&result.ID,
		&result.Name,
		&result.AEndID,
		&result.BEndID,
		&result.DistanceKm,
		&result.IsActive,
		&result.IsVisible,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrDataNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entity.ErrConflictingData
		}
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	return result, nil
}

func (rr *RouteRepository) SetVisibility(ctx context.Context, id uuid.UUID, visible bool) error {
	const op = "repository.route.SetVisibility"

	return rr.execOnRoute(ctx, op, rr.db.Builder.Update("routes").
		Set("is_visible", visible).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}))
}

func (rr *RouteRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	const op = "repository.route.Deactivate"

	return rr.execOnRoute(ctx, op, rr.db.Builder.Update("routes").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}))
}

func (rr *RouteRepository) execOnRoute(
	ctx context.Context,
	op string,
	query squirrel.UpdateBuilder,
) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("%s: building query: %w", op, err)
	}

	tag, err := rr.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("%s: exec: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrDataNotFound
	}

	return nil
}

func (rr *RouteRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Route, error) {
	const op = "repository.route.GetByID"

	query := rr.joinedSelect().
		Where(squirrel.Eq{"r.id": id}).
		Limit(1)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	result, err := scanJoinedRoute(rr.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrDataNotFound
		}
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	return result, nil
}

// ListActive returns active routes with both endpoints, ordered by name.
// When visibleOnly is set, routes hidden from user search are excluded.
func (rr *RouteRepository) ListActive(
	ctx context.Context,
	visibleOnly bool,
) ([]*entity.Route, error) {
	const op = "repository.route.ListActive"

	query := rr.joinedSelect().Where(squirrel.Eq{"r.is_active": true})
	if visibleOnly {
		query = query.Where(squirrel.Eq{"r.is_visible": true})
	}

	return rr.queryRoutes(ctx, op, query.OrderBy("r.name ASC"))
}

// Filter returns active, visible routes matching every supplied endpoint
// criterion, ordered by name. Capacity-level filtering happens in the
// service layer, which drops routes left without a qualifying tier.
func (rr *RouteRepository) Filter(
	ctx context.Context,
	filter *entity.RouteFilter,
) ([]*entity.Route, error) {
	const op = "repository.route.Filter"

	query := rr.joinedSelect().
		Where(squirrel.Eq{"r.is_active": true, "r.is_visible": true})

	if filter.AEndRegion != "" {
		query = query.Where(squirrel.Eq{"a.region": filter.AEndRegion})
	}
	if filter.AEndCity != "" {
		query = query.Where(squirrel.Eq{"a.city": filter.AEndCity})
	}
	if filter.AEndID != uuid.Nil {
		query = query.Where(squirrel.Eq{"r.a_end_id": filter.AEndID})
	}
	if filter.BEndRegion != "" {
		query = query.Where(squirrel.Eq{"b.region": filter.BEndRegion})
	}
	if filter.BEndCity != "" {
		query = query.Where(squirrel.Eq{"b.city": filter.BEndCity})
	}
	if filter.BEndID != uuid.Nil {
		query = query.Where(squirrel.Eq{"r.b_end_id": filter.BEndID})
	}

	return rr.queryRoutes(ctx, op, query.OrderBy("r.name ASC"))
}

func (rr *RouteRepository) joinedSelect() squirrel.SelectBuilder {
	return rr.db.Builder.Select(_routeJoinedColumns).
		From("routes r").
		Join("locations a ON a.id = r.a_end_id").
		Join("locations b ON b.id = r.b_end_id")
}

func (rr *RouteRepository) queryRoutes(
	ctx context.Context,
	op string,
	query squirrel.SelectBuilder,
) ([]*entity.Route, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	rows, err := rr.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: query: %w", op, err)
	}
	defer rows.Close()

	result := make([]*entity.Route, 0)
	for rows.Next() {
		route, scanErr := scanJoinedRoute(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%s: rows scan: %w", op, scanErr)
		}
		result = append(result, route)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows final error: %w", op, rows.Err())
	}

	return result, nil
}

func scanJoinedRoute(row pgx.Row) (*entity.Route, error) {
	route := &entity.Route{
		AEnd: &entity.Location{},
		BEnd: &entity.Location{},
	}

	err := row.Scan(
		&route.ID,
		&route.Name,
		&route.AEndID,
		&route.BEndID,
		&route.DistanceKm,
		&route.IsActive,
		&route.IsVisible,
		&route.CreatedAt,
		&route.UpdatedAt,
		&route.AEnd.ID,
		&route.AEnd.Name,
		&route.AEnd.Type,
		&route.AEnd.Region,
		&route.AEnd.City,
		&route.AEnd.Latitude,
		&route.AEnd.Longitude,
		&route.AEnd.IsActive,
		&route.AEnd.CreatedAt,
		&route.AEnd.UpdatedAt,
		&route.BEnd.ID,
		&route.BEnd.Name,
		&route.BEnd.Type,
		&route.BEnd.Region,
		&route.BEnd.City,
		&route.BEnd.Latitude,
		&route.BEnd.Longitude,
		&route.BEnd.IsActive,
		&route.BEnd.CreatedAt,
		&route.BEnd.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return route, nil
}
