package catalog

import (
	"context"
	"errors"
	"testing"

	"quickeats/internal/domain"
)

type stubRepo struct {
	restaurants map[string]*domain.Restaurant
	items       map[string]*domain.MenuItem
	menu        []domain.MenuItem
	categories  []domain.Category
	listErr     error
}

func (s *stubRepo) List(_ context.Context, _, _ string) ([]domain.Restaurant, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []domain.Restaurant
	for _, r := range s.restaurants {
		out = append(out, *r)
	}
	return out, nil
}

func (s *stubRepo) GetByID(_ context.Context, id string) (*domain.Restaurant, error) {
	r, ok := s.restaurants[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return r, nil
}

func (s *stubRepo) Menu(_ context.Context, _ string) ([]domain.MenuItem, error) {
	return s.menu, nil
}

func (s *stubRepo) GetMenuItem(_ context.Context, id string) (*domain.MenuItem, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

func (s *stubRepo) Categories(_ context.Context) ([]domain.Category, error) {
	return s.categories, nil
}

func fixtureRepo() *stubRepo {
	return &stubRepo{
		restaurants: map[string]*domain.Restaurant{
			"1": {ID: "1", Name: "Hana Chicken"},
		},
		items: map[string]*domain.MenuItem{
			"m1": {
				ID: "m1", RestaurantID: "1", Name: "Fried Chicken", PriceCents: 1500,
				Sizes: []domain.Size{
					{ID: "s1", Name: "S", PriceCents: 0},
					{ID: "s2", Name: "M", PriceCents: 500},
				},
				Toppings: []domain.Topping{
					{ID: "t1", Name: "Corn", PriceCents: 200},
					{ID: "t2", Name: "Cheese Cheddar", PriceCents: 500},
				},
				SpicyLevels: []domain.SpicyLevel{
					{ID: "sp2", Name: "Hot"},
				},
			},
			"m2": {ID: "m2", RestaurantID: "1", Name: "Chicken Salad", PriceCents: 1500},
		},
	}
}

func TestPriceLineWithModifiers(t *testing.T) {
	svc := New(fixtureRepo())
	line, err := svc.PriceLine(context.Background(), LineInput{
		ItemID:      "m1",
		Quantity:    2,
		SizeID:      "s2",
		ToppingIDs:  []string{"t1", "t2"},
		SpicinessID: "sp2",
		Note:        "extra crispy",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line.UnitPriceCents != 2700 { // 1500 + 500 + 200 + 500
		t.Fatalf("expected unit price 2700, got %d", line.UnitPriceCents)
	}
	if line.Size != "M" || line.Spiciness != "Hot" {
		t.Fatalf("modifier names not resolved: %+v", line)
	}
	if len(line.Toppings) != 2 || line.Toppings[0] != "Corn" {
		t.Fatalf("toppings not resolved: %v", line.Toppings)
	}
	if line.RestaurantID != "1" || line.RestaurantName != "Hana Chicken" {
		t.Fatalf("restaurant not resolved: %+v", line)
	}
}

func TestPriceLinePlainItem(t *testing.T) {
	svc := New(fixtureRepo())
	line, err := svc.PriceLine(context.Background(), LineInput{ItemID: "m2", Quantity: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line.UnitPriceCents != 1500 || line.Size != "" || len(line.Toppings) != 0 {
		t.Fatalf("plain item should have no modifiers: %+v", line)
	}
}

func TestPriceLineRejectsUnknownModifier(t *testing.T) {
	svc := New(fixtureRepo())
	if _, err := svc.PriceLine(context.Background(), LineInput{ItemID: "m2", Quantity: 1, SizeID: "s1"}); !errors.Is(err, domain.ErrInvalidSelection) {
		t.Fatalf("expected ErrInvalidSelection for size on m2, got %v", err)
	}
	if _, err := svc.PriceLine(context.Background(), LineInput{ItemID: "m1", Quantity: 1, ToppingIDs: []string{"bogus"}}); !errors.Is(err, domain.ErrInvalidSelection) {
		t.Fatalf("expected ErrInvalidSelection for unknown topping, got %v", err)
	}
}

func TestPriceLineValidation(t *testing.T) {
	svc := New(fixtureRepo())
	if _, err := svc.PriceLine(context.Background(), LineInput{ItemID: "m1", Quantity: 0}); err == nil {
		t.Fatal("expected error for zero quantity")
	}
	if _, err := svc.PriceLine(context.Background(), LineInput{Quantity: 1}); err == nil {
		t.Fatal("expected error for missing item id")
	}
	if _, err := svc.PriceLine(context.Background(), LineInput{ItemID: "missing", Quantity: 1}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRestaurantDetailIncludesMenu(t *testing.T) {
	repo := fixtureRepo()
	repo.menu = []domain.MenuItem{*repo.items["m1"], *repo.items["m2"]}
	svc := New(repo)
	detail, err := svc.Restaurant(context.Background(), "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Name != "Hana Chicken" || len(detail.Menu) != 2 {
		t.Fatalf("unexpected detail: %+v", detail)
	}
}
