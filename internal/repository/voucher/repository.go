package voucher

import (
	"context"

	"quickeats/internal/domain"
)

// Repository provides read access to the voucher catalog.
type Repository interface {
	List(ctx context.Context) ([]domain.Voucher, error)
	GetByID(ctx context.Context, id string) (*domain.Voucher, error)
}
