package domain

import "time"

type Restaurant struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Image        string     `json:"image"`
	Rating       float64    `json:"rating"`
	Reviews      int        `json:"reviews"`
	DeliveryTime string     `json:"deliveryTime"`
	Distance     string     `json:"distance"`
	PriceRange   string     `json:"priceRange"`
	Tags         []string   `json:"tags,omitempty"`
	Categories   []string   `json:"categories,omitempty"`
	Location     Coordinate `json:"location"`
	Address      string     `json:"address"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// MenuItem carries its modifier lists as closed, typed sets. An item with no
// sizes is a fixed-size item; same for toppings and spice levels.
type MenuItem struct {
	ID           string       `json:"id"`
	RestaurantID string       `json:"restaurantId"`
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	Image        string       `json:"image"`
	PriceCents   int64        `json:"priceCents"`
	Rating       float64      `json:"rating"`
	Reviews      int          `json:"reviews"`
	Category     string       `json:"category"`
	Sizes        []Size       `json:"sizes,omitempty"`
	Toppings     []Topping    `json:"toppings,omitempty"`
	SpicyLevels  []SpicyLevel `json:"spicyLevels,omitempty"`
}

type Size struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
}

type Topping struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
}

type SpicyLevel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// SizeByID returns the size with the given id, if the item offers it.
func (m MenuItem) SizeByID(id string) (Size, bool) {
	for _, s := range m.Sizes {
		if s.ID == id {
			return s, true
		}
	}
	return Size{}, false
}

// ToppingByID returns the topping with the given id, if the item offers it.
func (m MenuItem) ToppingByID(id string) (Topping, bool) {
	for _, t := range m.Toppings {
		if t.ID == id {
			return t, true
		}
	}
	return Topping{}, false
}

// SpicyLevelByID returns the spice level with the given id, if the item offers it.
func (m MenuItem) SpicyLevelByID(id string) (SpicyLevel, bool) {
	for _, s := range m.SpicyLevels {
		if s.ID == id {
			return s, true
		}
	}
	return SpicyLevel{}, false
}
