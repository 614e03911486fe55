package restaurant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

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

const restaurantColumns = `
id, name, image, rating, reviews, delivery_time, distance, price_range, tags, categories, lat, lng, address, created_at`

func (r *postgresRepo) List(ctx context.Context, query, category string) ([]domain.Restaurant, error) {
	q := `
SELECT ` + restaurantColumns + `
FROM restaurants
WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
  AND ($2 = '' OR $2 = ANY(categories))
ORDER BY rating DESC, name
`
	rows, err := r.pool.Query(ctx, q, query, category)
	if err != nil {
		r.logger.Printf("restaurant repo: list query=%q category=%q error=%v", query, category, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Restaurant
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rest)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("restaurant repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	q := `
SELECT ` + restaurantColumns + `
FROM restaurants
WHERE id = $1
`
	rest, err := scanRestaurant(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("restaurant repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &rest, nil
}

const menuItemColumns = `
id, restaurant_id, name, COALESCE(description, ''), image, price_cents, rating, reviews, category, sizes, toppings, spicy_levels`

func (r *postgresRepo) Menu(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	q := `
SELECT ` + menuItemColumns + `
FROM menu_items
WHERE restaurant_id = $1
ORDER BY category, name
`
	rows, err := r.pool.Query(ctx, q, restaurantID)
	if err != nil {
		r.logger.Printf("restaurant repo: menu restaurant_id=%s error=%v", restaurantID, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("restaurant repo: menu rows restaurant_id=%s error=%v", restaurantID, err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	q := `
SELECT ` + menuItemColumns + `
FROM menu_items
WHERE id = $1
`
	item, err := scanMenuItem(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("restaurant repo: get menu item id=%s error=%v", id, err)
		return nil, err
	}
	return &item, nil
}

func (r *postgresRepo) Categories(ctx context.Context) ([]domain.Category, error) {
	const q = `
SELECT id, name, icon, color
FROM categories
ORDER BY name
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("restaurant repo: categories error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.Color); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanRestaurant(row pgx.Row) (domain.Restaurant, error) {
	var rest domain.Restaurant
	err := row.Scan(
		&rest.ID,
		&rest.Name,
		&rest.Image,
		&rest.Rating,
		&rest.Reviews,
		&rest.DeliveryTime,
		&rest.Distance,
		&rest.PriceRange,
		&rest.Tags,
		&rest.Categories,
		&rest.Location.Lat,
		&rest.Location.Lng,
		&rest.Address,
		&rest.CreatedAt,
	)
	return rest, err
}

func scanMenuItem(row pgx.Row) (domain.MenuItem, error) {
	var item domain.MenuItem
	var sizes, toppings, spicyLevels []byte
	err := row.Scan(
		&item.ID,
		&item.RestaurantID,
		&item.Name,
		&item.Description,
		&item.Image,
		&item.PriceCents,
		&item.Rating,
		&item.Reviews,
		&item.Category,
		&sizes,
		&toppings,
		&spicyLevels,
	)
	if err != nil {
		return item, err
	}
	if err := json.Unmarshal(sizes, &item.Sizes); err != nil {
		return item, fmt.Errorf("decode sizes for %s: %w", item.ID, err)
	}
	if err := json.Unmarshal(toppings, &item.Toppings); err != nil {
		return item, fmt.Errorf("decode toppings for %s: %w", item.ID, err)
	}
	if err := json.Unmarshal(spicyLevels, &item.SpicyLevels); err != nil {
		return item, fmt.Errorf("decode spicy levels for %s: %w", item.ID, err)
	}
	return item, nil
}
