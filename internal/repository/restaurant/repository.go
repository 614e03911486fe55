package restaurant

import (
	"context"

	"quickeats/internal/domain"
)

// Repository provides read access to the restaurant catalog.
type Repository interface {
	// List returns restaurants, optionally filtered by a name query and/or a
	// category name.
	List(ctx context.Context, query, category string) ([]domain.Restaurant, error)
	GetByID(ctx context.Context, id string) (*domain.Restaurant, error)
	Menu(ctx context.Context, restaurantID string) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}
