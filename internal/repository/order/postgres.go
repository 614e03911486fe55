package order

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"quickeats/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Insert(ctx context.Context, o domain.Order) error {
	lines, err := json.Marshal(o.Lines)
	if err != nil {
		return fmt.Errorf("encode lines: %w", err)
	}
	var driver []byte
	if o.Driver != nil {
		driver, err = json.Marshal(o.Driver)
		if err != nil {
			return fmt.Errorf("encode driver: %w", err)
		}
	}

	const q = `
INSERT INTO orders (
    id, restaurant_id, restaurant_name, delivery_address, delivery_lat, delivery_lng,
    subtotal_cents, delivery_fee_cents, discount_cents, total_cents,
    status, estimated_delivery_time, driver, lines, created_at, updated_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
`
	_, err = r.pool.Exec(ctx, q,
		o.ID,
		o.RestaurantID,
		o.RestaurantName,
		o.DeliveryAddress,
		o.DeliveryLocation.Lat,
		o.DeliveryLocation.Lng,
		o.SubtotalCents,
		o.DeliveryFeeCents,
		o.DiscountCents,
		o.TotalCents,
		string(o.Status),
		o.EstimatedDeliveryTime,
		driver,
		lines,
		o.CreatedAt,
		o.UpdatedAt,
	)
	if err != nil {
		r.logger.Printf("order repo: insert id=%s error=%v", o.ID, err)
	}
	return err
}

func (r *postgresRepo) SetStatus(ctx context.Context, id string, status domain.OrderStatus, updatedAt time.Time) error {
	const q = `
UPDATE orders
SET status = $1, updated_at = $2
WHERE id = $3
`
	tag, err := r.pool.Exec(ctx, q, string(status), updatedAt, id)
	if err != nil {
		r.logger.Printf("order repo: set status id=%s error=%v", id, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) SetDriver(ctx context.Context, id string, driver domain.Driver) error {
	payload, err := json.Marshal(driver)
	if err != nil {
		return fmt.Errorf("encode driver: %w", err)
	}
	const q = `
UPDATE orders
SET driver = $1
WHERE id = $2
`
	tag, err := r.pool.Exec(ctx, q, payload, id)
	if err != nil {
		r.logger.Printf("order repo: set driver id=%s error=%v", id, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) ListRecent(ctx context.Context, limit int) ([]domain.Order, error) {
	const q = `
SELECT id, restaurant_id, restaurant_name, delivery_address, delivery_lat, delivery_lng,
       subtotal_cents, delivery_fee_cents, discount_cents, total_cents,
       status, COALESCE(estimated_delivery_time, ''), driver, lines, created_at, updated_at
FROM orders
ORDER BY created_at DESC
LIMIT $1
`
	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		r.logger.Printf("order repo: list recent error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanOrder(row pgx.Row) (domain.Order, error) {
	var o domain.Order
	var status string
	var driver, lines []byte
	err := row.Scan(
		&o.ID,
		&o.RestaurantID,
		&o.RestaurantName,
		&o.DeliveryAddress,
		&o.DeliveryLocation.Lat,
		&o.DeliveryLocation.Lng,
		&o.SubtotalCents,
		&o.DeliveryFeeCents,
		&o.DiscountCents,
		&o.TotalCents,
		&status,
		&o.EstimatedDeliveryTime,
		&driver,
		&lines,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return o, err
	}
	o.Status = domain.OrderStatus(status)
	if err := json.Unmarshal(lines, &o.Lines); err != nil {
		return o, fmt.Errorf("decode lines for %s: %w", o.ID, err)
	}
	if len(driver) > 0 {
		o.Driver = &domain.Driver{}
		if err := json.Unmarshal(driver, o.Driver); err != nil {
			return o, fmt.Errorf("decode driver for %s: %w", o.ID, err)
		}
	}
	return o, nil
}
