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

type OrderItemRepository struct {
	db *postgres.Postgres
}

func NewOrderItemRepository(db *postgres.Postgres) *OrderItemRepository {
	return &OrderItemRepository{db}
}

// CreateBatch bulk-inserts the line items of one order. Must run inside the
// order's transaction.
func (ir *OrderItemRepository) CreateBatch(
	ctx context.Context,
	queryExecuter postgres.QueryExecuter,
	orderID uuid.UUID,
	items []*entity.OrderItem,
) error {
	const op = "repository.orderitem.CreateBatch"

	if len(items) == 0 {
		return nil
	}

	rows := make([][]interface{}, 0, len(items))
	for _, item := range items {
		rows = append(rows, []interface{}{
			uuid.New(),
			orderID,
			item.RouteID,
			item.RouteCapacityID,
			item.Quantity,
			item.UnitPrice,
			item.TotalPrice,
		})
	}

	tx, ok := queryExecuter.(*postgres.TxQueryExecuter)
	if !ok {
		return fmt.Errorf("%s: queryExecuter is not a transaction", op)
	}

	columnNames := []string{
		"id", "order_id", "route_id", "route_capacity_id",
		"quantity", "unit_price", "total_price",
	}

	_, err := tx.Tx.CopyFrom(
		ctx,
		pgx.Identifier{"order_items"},
		columnNames,
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return entity.ErrConflictingData
			case "23503":
				return entity.ErrDataNotFound
			}
		}
		return fmt.Errorf("%s: copy from: %w", op, err)
	}

	return nil
}

// DeleteByOrder removes every line item of an order. Only the full-replace
// order edit uses it, inside the edit transaction.
func (ir *OrderItemRepository) DeleteByOrder(
	ctx context.Context,
	queryExecuter postgres.QueryExecuter,
	orderID uuid.UUID,
) error {
	const op = "repository.orderitem.DeleteByOrder"

	query := ir.db.Builder.Delete("order_items").
		Where(squirrel.Eq{"order_id": orderID})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("%s: building query: %w", op, err)
	}

	if _, err = queryExecuter.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("%s: exec: %w", op, err)
	}

	return nil
}

func (ir *OrderItemRepository) ListByOrder(
	ctx context.Context,
	orderID uuid.UUID,
) ([]*entity.OrderItem, error) {
	const op = "repository.orderitem.ListByOrder"

	query := ir.db.Builder.
		Select("id", "order_id", "route_id", "route_capacity_id", "quantity", "unit_price", "total_price").
		From("order_items").
		Where(squirrel.Eq{"order_id": orderID}).
		OrderBy("id")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	rows, err := ir.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: query: %w", op, err)
	}
	defer rows.Close()

	result := make([]*entity.OrderItem, 0)
	for rows.Next() {
		item := &entity.OrderItem{}
		err = rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.RouteID,
			&item.RouteCapacityID,
			&item.Quantity,
			&item.UnitPrice,
			&item.TotalPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: rows scan: %w", op, err)
		}

		result = append(result, item)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows final error: %w", op, rows.Err())
	}

	return result, nil
}
