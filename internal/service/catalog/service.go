// Package catalog serves restaurant browsing and prices cart line candidates
// from menu items and their chosen modifiers.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"quickeats/internal/domain"
	restaurantrepo "quickeats/internal/repository/restaurant"
)

type Service struct {
	repo repo
}

type repo interface {
	List(ctx context.Context, query, category string) ([]domain.Restaurant, error)
	GetByID(ctx context.Context, id string) (*domain.Restaurant, error)
	Menu(ctx context.Context, restaurantID string) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}

func New(repo restaurantrepo.Repository) *Service {
	return &Service{repo: repo}
}

// RestaurantDetail is a restaurant together with its menu.
type RestaurantDetail struct {
	domain.Restaurant
	Menu []domain.MenuItem `json:"menu"`
}

func (s *Service) Restaurants(ctx context.Context, query, category string) ([]domain.Restaurant, error) {
	return s.repo.List(ctx, strings.TrimSpace(query), strings.TrimSpace(category))
}

func (s *Service) Restaurant(ctx context.Context, id string) (*RestaurantDetail, error) {
	rest, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	menu, err := s.repo.Menu(ctx, id)
	if err != nil {
		return nil, err
	}
	return &RestaurantDetail{Restaurant: *rest, Menu: menu}, nil
}

func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.Categories(ctx)
}

// LineInput selects a menu item with modifiers by their catalog ids.
type LineInput struct {
	ItemID      string   `json:"itemId"`
	Quantity    int      `json:"quantity"`
	SizeID      string   `json:"sizeId,omitempty"`
	ToppingIDs  []string `json:"toppingIds,omitempty"`
	SpicinessID string   `json:"spicinessId,omitempty"`
	Note        string   `json:"note,omitempty"`
}

// PriceLine resolves the selection against the catalog and prices it: unit
// price is the item's base price plus the size surcharge plus all topping
// surcharges. Modifier applicability is checked here, at construction.
func (s *Service) PriceLine(ctx context.Context, in LineInput) (*domain.CartLine, error) {
	if strings.TrimSpace(in.ItemID) == "" {
		return nil, fmt.Errorf("%w: itemId required", domain.ErrInvalidSelection)
	}
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidSelection)
	}

	item, err := s.repo.GetMenuItem(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}
	rest, err := s.repo.GetByID(ctx, item.RestaurantID)
	if err != nil {
		return nil, err
	}

	line := domain.CartLine{
		ItemID:         item.ID,
		Name:           item.Name,
		Image:          item.Image,
		UnitPriceCents: item.PriceCents,
		Quantity:       in.Quantity,
		Note:           strings.TrimSpace(in.Note),
		RestaurantID:   rest.ID,
		RestaurantName: rest.Name,
	}

	if in.SizeID != "" {
		size, ok := item.SizeByID(in.SizeID)
		if !ok {
			return nil, fmt.Errorf("%w: item %s has no size %q", domain.ErrInvalidSelection, item.ID, in.SizeID)
		}
		line.Size = size.Name
		line.UnitPriceCents += size.PriceCents
	}
	for _, id := range in.ToppingIDs {
		topping, ok := item.ToppingByID(id)
		if !ok {
			return nil, fmt.Errorf("%w: item %s has no topping %q", domain.ErrInvalidSelection, item.ID, id)
		}
		line.Toppings = append(line.Toppings, topping.Name)
		line.UnitPriceCents += topping.PriceCents
	}
	if in.SpicinessID != "" {
		level, ok := item.SpicyLevelByID(in.SpicinessID)
		if !ok {
			return nil, fmt.Errorf("%w: item %s has no spice level %q", domain.ErrInvalidSelection, item.ID, in.SpicinessID)
		}
		line.Spiciness = level.Name
	}

	return &line, nil
}
