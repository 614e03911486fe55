package seed

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"quickeats/internal/domain"
)

// Apply inserts demo catalog data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	for _, r := range demoRestaurants {
		if err := upsertRestaurant(ctx, pool, r); err != nil {
			return fmt.Errorf("upsert restaurant %s: %w", r.ID, err)
		}
	}
	for _, c := range demoCategories {
		if err := upsertCategory(ctx, pool, c); err != nil {
			return fmt.Errorf("upsert category %s: %w", c.ID, err)
		}
	}
	for _, m := range demoMenuItems {
		if err := upsertMenuItem(ctx, pool, m); err != nil {
			return fmt.Errorf("upsert menu item %s: %w", m.ID, err)
		}
	}
	for _, v := range demoVouchers {
		if err := upsertVoucher(ctx, pool, v); err != nil {
			return fmt.Errorf("upsert voucher %s: %w", v.ID, err)
		}
	}
	return nil
}

func upsertRestaurant(ctx context.Context, pool *pgxpool.Pool, r domain.Restaurant) error {
	const q = `
INSERT INTO restaurants (id, name, image, rating, reviews, delivery_time, distance, price_range, tags, categories, lat, lng, address)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name,
    image = EXCLUDED.image,
    rating = EXCLUDED.rating,
    reviews = EXCLUDED.reviews,
    delivery_time = EXCLUDED.delivery_time,
    distance = EXCLUDED.distance,
    price_range = EXCLUDED.price_range,
    tags = EXCLUDED.tags,
    categories = EXCLUDED.categories,
    lat = EXCLUDED.lat,
    lng = EXCLUDED.lng,
    address = EXCLUDED.address
`
	_, err := pool.Exec(ctx, q,
		r.ID, r.Name, r.Image, r.Rating, r.Reviews, r.DeliveryTime, r.Distance,
		r.PriceRange, r.Tags, r.Categories, r.Location.Lat, r.Location.Lng, r.Address,
	)
	return err
}

func upsertCategory(ctx context.Context, pool *pgxpool.Pool, c domain.Category) error {
	const q = `
INSERT INTO categories (id, name, icon, color)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name,
    icon = EXCLUDED.icon,
    color = EXCLUDED.color
`
	_, err := pool.Exec(ctx, q, c.ID, c.Name, c.Icon, c.Color)
	return err
}

func upsertMenuItem(ctx context.Context, pool *pgxpool.Pool, m domain.MenuItem) error {
	sizes, err := json.Marshal(m.Sizes)
	if err != nil {
		return err
	}
	toppings, err := json.Marshal(m.Toppings)
	if err != nil {
		return err
	}
	spicyLevels, err := json.Marshal(m.SpicyLevels)
	if err != nil {
		return err
	}

	const q = `
INSERT INTO menu_items (id, restaurant_id, name, description, image, price_cents, rating, reviews, category, sizes, toppings, spicy_levels)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
ON CONFLICT (id) DO UPDATE
SET restaurant_id = EXCLUDED.restaurant_id,
    name = EXCLUDED.name,
    description = EXCLUDED.description,
    image = EXCLUDED.image,
    price_cents = EXCLUDED.price_cents,
    rating = EXCLUDED.rating,
    reviews = EXCLUDED.reviews,
    category = EXCLUDED.category,
    sizes = EXCLUDED.sizes,
    toppings = EXCLUDED.toppings,
    spicy_levels = EXCLUDED.spicy_levels
`
	_, err = pool.Exec(ctx, q,
		m.ID, m.RestaurantID, m.Name, m.Description, m.Image, m.PriceCents,
		m.Rating, m.Reviews, m.Category, sizes, toppings, spicyLevels,
	)
	return err
}

func upsertVoucher(ctx context.Context, pool *pgxpool.Pool, v domain.Voucher) error {
	const q = `
INSERT INTO vouchers (id, title, description, badge, icon, kind, value, min_order_cents)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO UPDATE
SET title = EXCLUDED.title,
    description = EXCLUDED.description,
    badge = EXCLUDED.badge,
    icon = EXCLUDED.icon,
    kind = EXCLUDED.kind,
    value = EXCLUDED.value,
    min_order_cents = EXCLUDED.min_order_cents
`
	_, err := pool.Exec(ctx, q,
		v.ID, v.Title, v.Description, v.Badge, v.Icon, string(v.Kind), v.Value, v.MinOrderCents,
	)
	return err
}
