// Package order keeps placed orders in a single canonical in-memory book.
// The active order and the live tracking projection are references into that
// book, never copies, so there is exactly one mutable record per order.
package order

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"quickeats/internal/domain"
)

// Tracking is the live delivery projection for at most one order.
type Tracking struct {
	OrderID        string             `json:"orderId,omitempty"`
	DriverLocation *domain.Coordinate `json:"driverLocation,omitempty"`
	ETA            string             `json:"eta,omitempty"`
}

// PlaceInput carries the ledger snapshot needed to create an order.
type PlaceInput struct {
	Lines                 []domain.CartLine
	RestaurantID          string
	RestaurantName        string
	DeliveryAddress       string
	DeliveryLocation      domain.Coordinate
	SubtotalCents         int64
	DeliveryFeeCents      int64
	DiscountCents         int64
	EstimatedDeliveryTime string
}

// Book is the canonical order store.
type Book struct {
	mu        sync.RWMutex
	orders    map[string]*domain.Order
	recent    []string // order ids, most recent first
	currentID string
	tracking  Tracking

	now   func() time.Time
	newID func() string
}

// NewBook returns an empty order book.
func NewBook() *Book {
	return &Book{
		orders: make(map[string]*domain.Order),
		now:    time.Now,
		newID:  func() string { return "ORD-" + uuid.NewString() },
	}
}

// Restore loads persisted orders into the book, expecting them most recent
// first. Already-known ids are skipped. Neither the current-order reference
// nor the tracking projection is touched.
func (b *Book) Restore(orders []domain.Order) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, o := range orders {
		if _, ok := b.orders[o.ID]; ok {
			continue
		}
		c := o.Clone()
		b.orders[o.ID] = &c
		b.recent = append(b.recent, o.ID)
	}
}

// Place creates an immutable order snapshot from the input, assigns a fresh
// id and timestamps, and makes it the current order. Checkout enters the
// lifecycle at looking_for_driver. The total is clamped at zero.
func (b *Book) Place(in PlaceInput) (domain.Order, error) {
	if len(in.Lines) == 0 {
		return domain.Order{}, domain.ErrEmptyCart
	}
	if in.RestaurantID == "" {
		return domain.Order{}, fmt.Errorf("restaurant not set")
	}

	total := in.SubtotalCents + in.DeliveryFeeCents - in.DiscountCents
	if total < 0 {
		total = 0
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	o := domain.Order{
		ID:                    b.newID(),
		Lines:                 domain.CloneLines(in.Lines),
		RestaurantID:          in.RestaurantID,
		RestaurantName:        in.RestaurantName,
		DeliveryAddress:       in.DeliveryAddress,
		DeliveryLocation:      in.DeliveryLocation,
		SubtotalCents:         in.SubtotalCents,
		DeliveryFeeCents:      in.DeliveryFeeCents,
		DiscountCents:         in.DiscountCents,
		TotalCents:            total,
		Status:                domain.StatusLookingForDriver,
		EstimatedDeliveryTime: in.EstimatedDeliveryTime,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	b.orders[o.ID] = &o
	b.recent = append([]string{o.ID}, b.recent...)
	b.currentID = o.ID
	return o.Clone(), nil
}

// UpdateStatus moves the order to the next status if the transition is valid
// and bumps UpdatedAt.
func (b *Book) UpdateStatus(id string, next domain.OrderStatus) (domain.Order, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	o, ok := b.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrNotFound
	}
	if !o.Status.CanTransition(next) {
		return domain.Order{}, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, o.Status, next)
	}
	o.Status = next
	o.UpdatedAt = b.now()
	return o.Clone(), nil
}

// AssignDriver attaches a driver to the order.
func (b *Book) AssignDriver(id string, driver domain.Driver) (domain.Order, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	o, ok := b.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrNotFound
	}
	d := driver
	o.Driver = &d
	return o.Clone(), nil
}

// Get returns a copy of the order with the given id.
func (b *Book) Get(id string) (domain.Order, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	o, ok := b.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrNotFound
	}
	return o.Clone(), nil
}

// List returns copies of all orders, most recent first.
func (b *Book) List() []domain.Order {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]domain.Order, 0, len(b.recent))
	for _, id := range b.recent {
		out = append(out, b.orders[id].Clone())
	}
	return out
}

// Current returns a copy of the active order, if any.
func (b *Book) Current() (domain.Order, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	o, ok := b.orders[b.currentID]
	if !ok {
		return domain.Order{}, false
	}
	return o.Clone(), true
}

// ClearCurrent drops the active-order reference. The order itself stays in
// the book.
func (b *Book) ClearCurrent() {
	b.mu.Lock()
	b.currentID = ""
	b.mu.Unlock()
}

// StartTracking points the tracking projection at the given order, replacing
// any prior projection wholesale. Location and ETA stay empty until updated.
func (b *Book) StartTracking(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.orders[id]; !ok {
		return domain.ErrNotFound
	}
	b.tracking = Tracking{OrderID: id}
	return nil
}

// UpdateDriverLocation overwrites the projected driver coordinate.
func (b *Book) UpdateDriverLocation(c domain.Coordinate) {
	b.mu.Lock()
	b.tracking.DriverLocation = &c
	b.mu.Unlock()
}

// UpdateETA overwrites the projected ETA text.
func (b *Book) UpdateETA(eta string) {
	b.mu.Lock()
	b.tracking.ETA = eta
	b.mu.Unlock()
}

// StopTracking resets the whole projection.
func (b *Book) StopTracking() {
	b.mu.Lock()
	b.tracking = Tracking{}
	b.mu.Unlock()
}

// TrackingState returns a copy of the projection.
func (b *Book) TrackingState() Tracking {
	b.mu.RLock()
	defer b.mu.RUnlock()
	t := b.tracking
	if t.DriverLocation != nil {
		c := *t.DriverLocation
		t.DriverLocation = &c
	}
	return t
}

// TrackedOrder returns a copy of the order the projection points at.
func (b *Book) TrackedOrder() (domain.Order, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	o, ok := b.orders[b.tracking.OrderID]
	if !ok {
		return domain.Order{}, false
	}
	return o.Clone(), true
}
