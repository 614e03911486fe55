package domain

import (
	"sort"
	"strings"
)

// CartLine is one purchasable selection: a menu item plus the chosen
// modifiers. UnitPriceCents already includes the modifier surcharges.
type CartLine struct {
	ItemID         string   `json:"itemId"`
	Name           string   `json:"name"`
	Image          string   `json:"image,omitempty"`
	UnitPriceCents int64    `json:"unitPriceCents"`
	Quantity       int      `json:"quantity"`
	Size           string   `json:"size,omitempty"`
	Toppings       []string `json:"toppings,omitempty"`
	Spiciness      string   `json:"spiciness,omitempty"`
	Note           string   `json:"note,omitempty"`
	RestaurantID   string   `json:"restaurantId"`
	RestaurantName string   `json:"restaurantName"`
}

// Key is the line's identity: item plus modifiers. Toppings are sorted so
// that the same set in a different order yields the same key. Two lines with
// equal keys merge by summing quantity.
func (l CartLine) Key() string {
	toppings := append([]string(nil), l.Toppings...)
	sort.Strings(toppings)
	return strings.Join([]string{l.ItemID, l.Size, strings.Join(toppings, ","), l.Spiciness}, "|")
}

// TotalCents is the line price: unit price times quantity.
func (l CartLine) TotalCents() int64 {
	return l.UnitPriceCents * int64(l.Quantity)
}

func (l CartLine) clone() CartLine {
	l.Toppings = append([]string(nil), l.Toppings...)
	return l
}

// CloneLines deep-copies a slice of cart lines.
func CloneLines(lines []CartLine) []CartLine {
	if lines == nil {
		return nil
	}
	out := make([]CartLine, len(lines))
	for i, l := range lines {
		out[i] = l.clone()
	}
	return out
}
