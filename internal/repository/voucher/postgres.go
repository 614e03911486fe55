package voucher

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"quickeats/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

const voucherColumns = `
id, title, COALESCE(description, ''), badge, icon, kind, value, min_order_cents`

func (r *postgresRepo) List(ctx context.Context) ([]domain.Voucher, error) {
	q := `
SELECT ` + voucherColumns + `
FROM vouchers
ORDER BY id
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Voucher
	for rows.Next() {
		v, err := scanVoucher(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Voucher, error) {
	q := `
SELECT ` + voucherColumns + `
FROM vouchers
WHERE id = $1
`
	v, err := scanVoucher(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func scanVoucher(row pgx.Row) (domain.Voucher, error) {
	var v domain.Voucher
	var kind string
	err := row.Scan(&v.ID, &v.Title, &v.Description, &v.Badge, &v.Icon, &kind, &v.Value, &v.MinOrderCents)
	v.Kind = domain.VoucherKind(kind)
	return v, err
}
