package domain

import "time"

type OrderStatus string

const (
	StatusPending          OrderStatus = "pending"
	StatusConfirmed        OrderStatus = "confirmed"
	StatusLookingForDriver OrderStatus = "looking_for_driver"
	StatusPreparing        OrderStatus = "preparing"
	StatusOnTheWay         OrderStatus = "on_the_way"
	StatusDelivered        OrderStatus = "delivered"
	StatusCancelled        OrderStatus = "cancelled"
)

// statusRank orders the linear part of the lifecycle. Cancelled sits outside
// the ranking and is handled separately.
var statusRank = map[OrderStatus]int{
	StatusPending:          0,
	StatusConfirmed:        1,
	StatusLookingForDriver: 2,
	StatusPreparing:        3,
	StatusOnTheWay:         4,
	StatusDelivered:        5,
}

// Valid reports whether s names a known status.
func (s OrderStatus) Valid() bool {
	if s == StatusCancelled {
		return true
	}
	_, ok := statusRank[s]
	return ok
}

// Terminal reports whether no further transitions are allowed from s.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransition reports whether moving from s to next is allowed. The
// lifecycle is forward-only; skipping intermediate states is permitted and
// cancellation is reachable from any non-terminal state.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if s.Terminal() || !next.Valid() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	return statusRank[next] > statusRank[s]
}

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Driver struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Phone    string     `json:"phone,omitempty"`
	Avatar   string     `json:"avatar,omitempty"`
	Location Coordinate `json:"location"`
}

// Order is an immutable snapshot of a cart taken at checkout, plus the
// externally driven status and driver assignment.
type Order struct {
	ID                    string      `json:"id"`
	Lines                 []CartLine  `json:"lines"`
	RestaurantID          string      `json:"restaurantId"`
	RestaurantName        string      `json:"restaurantName"`
	DeliveryAddress       string      `json:"deliveryAddress"`
	DeliveryLocation      Coordinate  `json:"deliveryLocation"`
	SubtotalCents         int64       `json:"subtotalCents"`
	DeliveryFeeCents      int64       `json:"deliveryFeeCents"`
	DiscountCents         int64       `json:"discountCents"`
	TotalCents            int64       `json:"totalCents"`
	Status                OrderStatus `json:"status"`
	EstimatedDeliveryTime string      `json:"estimatedDeliveryTime,omitempty"`
	Driver                *Driver     `json:"driver,omitempty"`
	CreatedAt             time.Time   `json:"createdAt"`
	UpdatedAt             time.Time   `json:"updatedAt"`
}

// Clone returns a deep copy safe to hand out across goroutines.
func (o Order) Clone() Order {
	o.Lines = CloneLines(o.Lines)
	if o.Driver != nil {
		d := *o.Driver
		o.Driver = &d
	}
	return o
}
