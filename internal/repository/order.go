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

const _orderColumns = "id, user_id, status, payment_status, total_amount, currency, payment_ref, created_at, updated_at"

type OrderRepository struct {
	db *postgres.Postgres
}

func NewOrderRepository(db *postgres.Postgres) *OrderRepository {
	return &OrderRepository{db}
}

func (or *OrderRepository) Create(
	ctx context.Context,
	queryExecuter postgres.QueryExecuter,
	order *entity.Order,
) (*entity.Order, error) {
	const op = "repository.order.Create"

	query := or.db.Builder.Insert("orders").
		Columns("id", "user_id", "status", "payment_status", "total_amount", "currency", "payment_ref").
		Values(
			order.ID,
			order.UserID,
			order.Status,
			order.PaymentStatus,
			order.TotalAmount,
			order.Currency,
			order.PaymentRef,
		).
		Suffix("RETURNING " + _orderColumns)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	result, err := scanOrder(queryExecuter.QueryRow(ctx, sql, args...))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entity.ErrConflictingData
		}
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	return result, nil
}

func (or *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	const op = "repository.order.GetByID"

	query := or.db.Builder.Select(_orderColumns).
		From("orders").
		Where(squirrel.Eq{"id": id}).
		Limit(1)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	result, err := scanOrder(or.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrDataNotFound
		}
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	return result, nil
}

func (or *OrderRepository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*entity.Order, error) {
	const op = "repository.order.ListByUser"

	query := or.db.Builder.Select(_orderColumns).
		From("orders").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	return or.queryOrders(ctx, op, query)
}

func (or *OrderRepository) ListAll(ctx context.Context) ([]*entity.Order, error) {
	const op = "repository.order.ListAll"

	query := or.db.Builder.Select(_orderColumns).
		From("orders").
		OrderBy("created_at DESC")

	return or.queryOrders(ctx, op, query)
}

func (or *OrderRepository) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	status entity.OrderStatus,
) error {
	const op = "repository.order.UpdateStatus"

	query := or.db.Builder.Update("orders").
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("%s: building query: %w", op, err)
	}

	tag, err := or.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("%s: exec: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrDataNotFound
	}

	return nil
}

// UpdatePayment sets both status axes and the payment reference in one
// statement. Settlement runs it inside the same transaction as the
// inventory decrements.
func (or *OrderRepository) UpdatePayment(
	ctx context.Context,
	queryExecuter postgres.QueryExecuter,
	id uuid.UUID,
	status entity.OrderStatus,
	paymentStatus entity.PaymentStatus,
	paymentRef string,
) error {
	const op = "repository.order.UpdatePayment"

	query := or.db.Builder.Update("orders").
		Set("status", status).
		Set("payment_status", paymentStatus).
		Set("payment_ref", paymentRef).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("%s: building query: %w", op, err)
	}

	tag, err := queryExecuter.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("%s: exec: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrDataNotFound
	}

	return nil
}

func (or *OrderRepository) UpdateTotal(
	ctx context.Context,
	queryExecuter postgres.QueryExecuter,
	id uuid.UUID,
	totalAmount int64,
) error {
	const op = "repository.order.UpdateTotal"

	query := or.db.Builder.Update("orders").
		Set("total_amount", totalAmount).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("%s: building query: %w", op, err)
	}

	tag, err := queryExecuter.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("%s: exec: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrDataNotFound
	}

	return nil
}

func (or *OrderRepository) queryOrders(
	ctx context.Context,
	op string,
	query squirrel.SelectBuilder,
) ([]*entity.Order, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	rows, err := or.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: query: %w", op, err)
	}
	defer rows.Close()

	result := make([]*entity.Order, 0)
	for rows.Next() {
		order, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%s: rows scan: %w", op, scanErr)
		}
		result = append(result, order)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows final error: %w", op, rows.Err())
	}

	return result, nil
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	order := &entity.Order{}
	err := row.Scan(
		&order.ID,
		&order.UserID,
		&order.Status,
		&order.PaymentStatus,
		&order.TotalAmount,
		&order.Currency,
		&order.PaymentRef,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return order, nil
}
