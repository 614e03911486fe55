// Package ordering orchestrates checkout and order lifecycle updates against
// the canonical in-memory book, mirroring every change to the order audit
// repository.
package ordering

import (
	"context"
	"io"
	"log"
	"time"

	"quickeats/internal/cart"
	"quickeats/internal/domain"
	"quickeats/internal/order"
)

// Source-app defaults used when the client omits delivery details.
const (
	defaultDeliveryAddress = "201 Katlian No.21 Street"
	defaultETA             = "20 mins"
)

var defaultDeliveryLocation = domain.Coordinate{Lat: 10.7769, Lng: 106.7009}

type Service struct {
	book   *order.Book
	repo   Repository
	logger *log.Logger
}

// Repository is the subset of the order repository the service writes to.
type Repository interface {
	Insert(ctx context.Context, o domain.Order) error
	SetStatus(ctx context.Context, id string, status domain.OrderStatus, updatedAt time.Time) error
	SetDriver(ctx context.Context, id string, driver domain.Driver) error
}

func New(book *order.Book, repo Repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{book: book, repo: repo, logger: logger}
}

// PlaceInput carries the checkout request details.
type PlaceInput struct {
	DeliveryAddress       string             `json:"deliveryAddress,omitempty"`
	DeliveryLocation      *domain.Coordinate `json:"deliveryLocation,omitempty"`
	EstimatedDeliveryTime string             `json:"estimatedDeliveryTime,omitempty"`
}

// PlaceOrder snapshots the ledger into a new order and clears the ledger.
// The snapshot itself is pure; clearing happens here, after the book has
// accepted the order. Persistence failures are logged, not fatal: the book
// stays canonical.
func (s *Service) PlaceOrder(ctx context.Context, ledger *cart.Ledger, in PlaceInput) (domain.Order, error) {
	view := ledger.View()
	if len(view.Lines) == 0 {
		return domain.Order{}, domain.ErrEmptyCart
	}

	address := in.DeliveryAddress
	if address == "" {
		address = defaultDeliveryAddress
	}
	location := defaultDeliveryLocation
	if in.DeliveryLocation != nil {
		location = *in.DeliveryLocation
	}
	eta := in.EstimatedDeliveryTime
	if eta == "" {
		eta = defaultETA
	}

	o, err := s.book.Place(order.PlaceInput{
		Lines:                 view.Lines,
		RestaurantID:          view.RestaurantID,
		RestaurantName:        view.RestaurantName,
		DeliveryAddress:       address,
		DeliveryLocation:      location,
		SubtotalCents:         view.SubtotalCents,
		DeliveryFeeCents:      view.DeliveryFeeCents,
		DiscountCents:         view.DiscountCents,
		EstimatedDeliveryTime: eta,
	})
	if err != nil {
		return domain.Order{}, err
	}

	if s.repo != nil {
		if err := s.repo.Insert(ctx, o); err != nil {
			s.logger.Printf("persist order %s: %v", o.ID, err)
		}
	}

	ledger.Clear()
	return o, nil
}

// Orders lists all orders, most recent first.
func (s *Service) Orders() []domain.Order {
	return s.book.List()
}

// Order returns a single order by id.
func (s *Service) Order(id string) (domain.Order, error) {
	return s.book.Get(id)
}

// Current returns the active order, if any.
func (s *Service) Current() (domain.Order, bool) {
	return s.book.Current()
}

// UpdateStatus applies a validated status transition and mirrors it.
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (domain.Order, error) {
	o, err := s.book.UpdateStatus(id, status)
	if err != nil {
		return domain.Order{}, err
	}
	if s.repo != nil {
		if err := s.repo.SetStatus(ctx, id, status, o.UpdatedAt); err != nil {
			s.logger.Printf("persist status for order %s: %v", id, err)
		}
	}
	return o, nil
}

// AssignDriver attaches a driver to an order and mirrors it.
func (s *Service) AssignDriver(ctx context.Context, id string, driver domain.Driver) (domain.Order, error) {
	o, err := s.book.AssignDriver(id, driver)
	if err != nil {
		return domain.Order{}, err
	}
	if s.repo != nil {
		if err := s.repo.SetDriver(ctx, id, driver); err != nil {
			s.logger.Printf("persist driver for order %s: %v", id, err)
		}
	}
	return o, nil
}

// StartTracking points the live tracking projection at an order.
func (s *Service) StartTracking(id string) error {
	return s.book.StartTracking(id)
}

// StopTracking resets the tracking projection.
func (s *Service) StopTracking() {
	s.book.StopTracking()
}

// Tracking returns the current tracking projection.
func (s *Service) Tracking() order.Tracking {
	return s.book.TrackingState()
}
