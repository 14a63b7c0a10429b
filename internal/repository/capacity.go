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
	_capacityColumns = "id, route_id, tier, price_per_unit, available_units, updated_at"

	// Ascending bandwidth: TEN_G < HUNDRED_G < FOUR_HUNDRED_G.
	_tierRankExpr = "CASE tier WHEN 'TEN_G' THEN 1 WHEN 'HUNDRED_G' THEN 2 WHEN 'FOUR_HUNDRED_G' THEN 3 ELSE 4 END"
)

type CapacityRepository struct {
	db *postgres.Postgres
}

func NewCapacityRepository(db *postgres.Postgres) *CapacityRepository {
	return &CapacityRepository{db}
}

func (cr *CapacityRepository) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*entity.RouteCapacity, error) {
	const op = "repository.capacity.GetByID"

	query := cr.db.Builder.Select(_capacityColumns).
		From("route_capacities").
		Where(squirrel.Eq{"id": id}).
		Limit(1)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	result, err := scanCapacity(cr.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrDataNotFound
		}
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	return result, nil
}

func (cr *CapacityRepository) ListByRoute(
	ctx context.Context,
	routeID uuid.UUID,
) ([]*entity.RouteCapacity, error) {
	const op = "repository.capacity.ListByRoute"

	query := cr.db.Builder.Select(_capacityColumns).
		From("route_capacities").
		Where(squirrel.Eq{"route_id": routeID}).
		OrderBy(_tierRankExpr + " ASC")

	return cr.queryCapacities(ctx, op, query)
}

// ListByRouteIDs loads capacity rows for a set of routes in one query,
// keyed by route id. A non-empty tier restricts to that tier; onlyAvailable
// drops rows with zero available units.
func (cr *CapacityRepository) ListByRouteIDs(
	ctx context.Context,
	routeIDs []uuid.UUID,
	tier entity.CapacityTier,
	onlyAvailable bool,
) (map[uuid.UUID][]*entity.RouteCapacity, error) {
	const op = "repository.capacity.ListByRouteIDs"

	if len(routeIDs) == 0 {
		return map[uuid.UUID][]*entity.RouteCapacity{}, nil
	}

	query := cr.db.Builder.Select(_capacityColumns).
		From("route_capacities").
		Where(squirrel.Eq{"route_id": routeIDs}).
		OrderBy("route_id", _tierRankExpr+" ASC")

	if tier != "" {
		query = query.Where(squirrel.Eq{"tier": tier})
	}
	if onlyAvailable {
		query = query.Where(squirrel.Gt{"available_units": 0})
	}

	capacities, err := cr.queryCapacities(ctx, op, query)
	if err != nil {
		return nil, err
	}

	result := make(map[uuid.UUID][]*entity.RouteCapacity, len(routeIDs))
	for _, capacity := range capacities {
		result[capacity.RouteID] = append(result[capacity.RouteID], capacity)
	}

	return result, nil
}

// Upsert sets price and availability for one (route, tier) pair, creating
// the row when absent. Absolute set: repeated calls with the same payload
// are idempotent.
func (cr *CapacityRepository) Upsert(
	ctx context.Context,
	queryExecuter postgres.QueryExecuter,
	routeID uuid.UUID,
	update *entity.PricingUpdate,
) (*entity.RouteCapacity, error) {
	const op = "repository.capacity.Upsert"

	query := cr.db.Builder.Insert("route_capacities").
		Columns("id", "route_id", "tier", "price_per_unit", "available_units").
		Values(
			uuid.New(),
			routeID,
			update.Tier,
			update.PricePerUnit,
			update.AvailableUnits,
		).
		Suffix("ON CONFLICT (route_id, tier) DO UPDATE SET " +
			"price_per_unit = EXCLUDED.price_per_unit, " +
			"available_units = EXCLUDED.available_units, " +
			"updated_at = now() " +
			"RETURNING " + _capacityColumns)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	result, err := scanCapacity(queryExecuter.QueryRow(ctx, sql, args...))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, entity.ErrDataNotFound
		}
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	return result, nil
}

func (cr *CapacityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "repository.capacity.Delete"

	query := cr.db.Builder.Delete("route_capacities").
		Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("%s: building query: %w", op, err)
	}

	tag, err := cr.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("%s: exec: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrDataNotFound
	}

	return nil
}

// DecrementAvailable atomically subtracts quantity from a capacity row's
// available units. The guard in the WHERE clause is the hard inventory
// invariant: the update matches no row when it would drive the count
// negative, and the caller's transaction is aborted instead of clamping.
func (cr *CapacityRepository) DecrementAvailable(
	ctx context.Context,
	queryExecuter postgres.QueryExecuter,
	id uuid.UUID,
	quantity int,
) error {
	const op = "repository.capacity.DecrementAvailable"

	query := cr.db.Builder.Update("route_capacities").
		Set("available_units", squirrel.Expr("available_units - ?", quantity)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.GtOrEq{"available_units": quantity})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("%s: building query: %w", op, err)
	}

	tag, err := queryExecuter.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("%s: exec: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		exists, existsErr := cr.exists(ctx, queryExecuter, id)
		if existsErr != nil {
			return existsErr
		}
		if !exists {
			return entity.ErrDataNotFound
		}
		return entity.ErrInsufficientCapacityAtSettlement
	}

	return nil
}

func (cr *CapacityRepository) exists(
	ctx context.Context,
	queryExecuter postgres.QueryExecuter,
	id uuid.UUID,
) (bool, error) {
	const op = "repository.capacity.exists"

	query := cr.db.Builder.Select("1").
		From("route_capacities").
		Where(squirrel.Eq{"id": id}).
		Limit(1)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("%s: building query: %w", op, err)
	}

	var one int
	err = queryExecuter.QueryRow(ctx, sql, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("%s: query row: %w", op, err)
	}

	return true, nil
}

func (cr *CapacityRepository) queryCapacities(
	ctx context.Context,
	op string,
	query squirrel.SelectBuilder,
) ([]*entity.RouteCapacity, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	rows, err := cr.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: query: %w", op, err)
	}
	defer rows.Close()

	result := make([]*entity.RouteCapacity, 0)
	for rows.Next() {
		capacity, scanErr := scanCapacity(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%s: rows scan: %w", op, scanErr)
		}
		result = append(result, capacity)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows final error: %w", op, rows.Err())
	}

	return result, nil
}

func scanCapacity(row pgx.Row) (*entity.RouteCapacity, error) {
	capacity := &entity.RouteCapacity{}
	err := row.Scan(
		&capacity.ID,
		&capacity.RouteID,
		&capacity.Tier,
		&capacity.PricePerUnit,
		&capacity.AvailableUnits,
		&capacity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return capacity, nil
}
