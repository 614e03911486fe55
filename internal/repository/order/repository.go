package order

import (
	"context"
	"time"

	"quickeats/internal/domain"
)

// Repository mirrors placed orders to durable storage. The in-memory book
// stays canonical for reads; this is the audit trail.
type Repository interface {
	Insert(ctx context.Context, o domain.Order) error
	SetStatus(ctx context.Context, id string, status domain.OrderStatus, updatedAt time.Time) error
	SetDriver(ctx context.Context, id string, driver domain.Driver) error
	ListRecent(ctx context.Context, limit int) ([]domain.Order, error)
}
