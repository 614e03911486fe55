// Package cart holds the in-session cart state: an ordered set of lines
// bound to a single restaurant, with a derived subtotal and at most one
// applied voucher. All state is process-lifetime only.
package cart

import (
	"errors"
	"sync"

	"quickeats/internal/domain"
)

// Ledger is one session's mutable cart. The subtotal is recomputed inside
// every mutation, so readers never observe an intermediate state.
type Ledger struct {
	mu               sync.Mutex
	lines            []domain.CartLine
	restaurantID     string
	restaurantName   string
	subtotalCents    int64
	deliveryFeeCents int64
	discountCents    int64
	voucherID        string
}

// View is a consistent read-only snapshot of a ledger.
type View struct {
	Lines            []domain.CartLine `json:"lines"`
	RestaurantID     string            `json:"restaurantId,omitempty"`
	RestaurantName   string            `json:"restaurantName,omitempty"`
	SubtotalCents    int64             `json:"subtotalCents"`
	DeliveryFeeCents int64             `json:"deliveryFeeCents"`
	DiscountCents    int64             `json:"discountCents"`
	TotalCents       int64             `json:"totalCents"`
	VoucherID        string            `json:"voucherId,omitempty"`
}

// NewLedger returns an empty ledger with the given delivery fee.
func NewLedger(deliveryFeeCents int64) *Ledger {
	return &Ledger{deliveryFeeCents: deliveryFeeCents}
}

// Add merges the candidate into an existing line with the same identity key,
// or appends it. The first line binds the ledger to its restaurant; adds from
// a different restaurant are rejected. When merging, the existing line's note
// is kept.
func (l *Ledger) Add(line domain.CartLine) error {
	if line.Quantity < 1 {
		return errors.New("quantity must be positive")
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.lines) > 0 && line.RestaurantID != l.restaurantID {
		return domain.ErrRestaurantMismatch
	}

	key := line.Key()
	merged := false
	for i := range l.lines {
		if l.lines[i].Key() == key {
			l.lines[i].Quantity += line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		l.lines = append(l.lines, line)
	}
	if l.restaurantID == "" {
		l.restaurantID = line.RestaurantID
		l.restaurantName = line.RestaurantName
	}
	l.recompute()
	return nil
}

// Remove deletes the line with the given identity key. Removing an absent key
// is a no-op. Emptying the ledger clears the restaurant binding.
func (l *Ledger) Remove(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.removeLocked(key)
}

// SetQuantity sets the quantity of the line with the given identity key.
// Quantities of zero or less remove the line.
func (l *Ledger) SetQuantity(key string, quantity int) {
	if quantity <= 0 {
		l.Remove(key)
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.lines {
		if l.lines[i].Key() == key {
			l.lines[i].Quantity = quantity
			break
		}
	}
	l.recompute()
}

// Clear resets lines, restaurant binding, and any applied voucher. The
// delivery fee keeps its last value across reorder flows.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = nil
	l.restaurantID = ""
	l.restaurantName = ""
	l.subtotalCents = 0
	l.discountCents = 0
	l.voucherID = ""
}

// SetDeliveryFee overrides the delivery fee.
func (l *Ledger) SetDeliveryFee(cents int64) error {
	if cents < 0 {
		return errors.New("delivery fee must not be negative")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.deliveryFeeCents = cents
	return nil
}

// ApplyVoucher computes the discount against the current subtotal and records
// it. Applying a second voucher replaces the first; discounts never stack.
func (l *Ledger) ApplyVoucher(v domain.Voucher) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	discount, err := v.Discount(l.subtotalCents)
	if err != nil {
		return err
	}
	l.voucherID = v.ID
	l.discountCents = discount
	return nil
}

// RemoveVoucher clears the applied voucher and zeroes the discount.
func (l *Ledger) RemoveVoucher() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.voucherID = ""
	l.discountCents = 0
}

// View returns a snapshot of the ledger. The total is
// subtotal + delivery fee - discount, clamped at zero.
func (l *Ledger) View() View {
	l.mu.Lock()
	defer l.mu.Unlock()

	total := l.subtotalCents + l.deliveryFeeCents - l.discountCents
	if total < 0 {
		total = 0
	}
	return View{
		Lines:            domain.CloneLines(l.lines),
		RestaurantID:     l.restaurantID,
		RestaurantName:   l.restaurantName,
		SubtotalCents:    l.subtotalCents,
		DeliveryFeeCents: l.deliveryFeeCents,
		DiscountCents:    l.discountCents,
		TotalCents:       total,
		VoucherID:        l.voucherID,
	}
}

func (l *Ledger) removeLocked(key string) {
	kept := l.lines[:0]
	for _, line := range l.lines {
		if line.Key() != key {
			kept = append(kept, line)
		}
	}
	l.lines = kept
	if len(l.lines) == 0 {
		l.lines = nil
		l.restaurantID = ""
		l.restaurantName = ""
	}
	l.recompute()
}

func (l *Ledger) recompute() {
	var sum int64
	for _, line := range l.lines {
		sum += line.TotalCents()
	}
	l.subtotalCents = sum
}
