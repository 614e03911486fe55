package cart

import (
	"errors"
	"testing"

	"quickeats/internal/domain"
)

func friedChicken(qty int) domain.CartLine {
	return domain.CartLine{
		ItemID:         "m1",
		Name:           "Fried Chicken",
		UnitPriceCents: 1500,
		Quantity:       qty,
		Size:           "M",
		Toppings:       []string{"Corn", "Cheese Cheddar"},
		Spiciness:      "Hot",
		RestaurantID:   "1",
		RestaurantName: "Hana Chicken",
	}
}

func TestAddSetsRestaurantFromFirstLine(t *testing.T) {
	l := NewLedger(200)
	if err := l.Add(friedChicken(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v := l.View()
	if v.RestaurantID != "1" || v.RestaurantName != "Hana Chicken" {
		t.Fatalf("restaurant binding not set: %+v", v)
	}
}

func TestAddMergesIdenticalKeys(t *testing.T) {
	l := NewLedger(200)
	first := friedChicken(2)
	first.Note = "extra crispy"
	second := friedChicken(3)
	second.Note = "no sauce"
	second.Toppings = []string{"Cheese Cheddar", "Corn"} // same set, different order

	if err := l.Add(first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := l.Add(second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v := l.View()
	if len(v.Lines) != 1 {
		t.Fatalf("expected one merged line, got %d", len(v.Lines))
	}
	if v.Lines[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", v.Lines[0].Quantity)
	}
	if v.Lines[0].Note != "extra crispy" {
		t.Fatalf("merge should keep the existing note, got %q", v.Lines[0].Note)
	}
	if v.SubtotalCents != 7500 {
		t.Fatalf("expected subtotal 7500, got %d", v.SubtotalCents)
	}
}

func TestAddDifferentModifiersCreatesNewLine(t *testing.T) {
	l := NewLedger(200)
	a := friedChicken(1)
	b := friedChicken(1)
	b.Size = "L"
	b.UnitPriceCents = 2000

	if err := l.Add(a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := l.Add(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v := l.View()
	if len(v.Lines) != 2 {
		t.Fatalf("expected two lines, got %d", len(v.Lines))
	}
	if v.SubtotalCents != 3500 {
		t.Fatalf("expected subtotal 3500, got %d", v.SubtotalCents)
	}
}

func TestAddRejectsNonPositiveQuantity(t *testing.T) {
	l := NewLedger(200)
	if err := l.Add(friedChicken(0)); err == nil {
		t.Fatal("expected error for zero quantity")
	}
}

func TestAddRejectsOtherRestaurant(t *testing.T) {
	l := NewLedger(200)
	if err := l.Add(friedChicken(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	other := friedChicken(1)
	other.RestaurantID = "2"
	other.RestaurantName = "Bamsu Restaurant"
	if err := l.Add(other); !errors.Is(err, domain.ErrRestaurantMismatch) {
		t.Fatalf("expected ErrRestaurantMismatch, got %v", err)
	}
}

func TestRemoveAbsentKeyIsNoop(t *testing.T) {
	l := NewLedger(200)
	if err := l.Add(friedChicken(2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := l.View()
	l.Remove("nope|||")
	after := l.View()
	if len(after.Lines) != len(before.Lines) || after.SubtotalCents != before.SubtotalCents {
		t.Fatalf("remove of absent key changed the ledger: %+v vs %+v", before, after)
	}
}

func TestRemoveLastLineClearsRestaurant(t *testing.T) {
	l := NewLedger(200)
	line := friedChicken(1)
	if err := l.Add(line); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l.Remove(line.Key())
	v := l.View()
	if len(v.Lines) != 0 || v.RestaurantID != "" || v.RestaurantName != "" {
		t.Fatalf("restaurant binding not cleared: %+v", v)
	}
	if v.SubtotalCents != 0 {
		t.Fatalf("expected subtotal 0, got %d", v.SubtotalCents)
	}
}

func TestSetQuantity(t *testing.T) {
	l := NewLedger(200)
	line := friedChicken(1)
	if err := l.Add(line); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	l.SetQuantity(line.Key(), 4)
	if v := l.View(); v.Lines[0].Quantity != 4 || v.SubtotalCents != 6000 {
		t.Fatalf("expected quantity 4 subtotal 6000, got %+v", v)
	}

	l.SetQuantity(line.Key(), 0)
	if v := l.View(); len(v.Lines) != 0 {
		t.Fatalf("quantity zero should remove the line: %+v", v)
	}
}

func TestClearRetainsDeliveryFee(t *testing.T) {
	l := NewLedger(200)
	if err := l.Add(friedChicken(2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := l.SetDeliveryFee(500); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := l.ApplyVoucher(domain.Voucher{ID: "v1", Kind: domain.VoucherPercentage, Value: 10}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	l.Clear()

	v := l.View()
	if len(v.Lines) != 0 || v.SubtotalCents != 0 || v.DiscountCents != 0 || v.VoucherID != "" {
		t.Fatalf("clear left state behind: %+v", v)
	}
	if v.DeliveryFeeCents != 500 {
		t.Fatalf("delivery fee should survive clear, got %d", v.DeliveryFeeCents)
	}
}

func TestApplyVoucherReplacesNotStacks(t *testing.T) {
	l := NewLedger(200)
	if err := l.Add(friedChicken(4)); err != nil { // subtotal 6000
		t.Fatalf("unexpected error: %v", err)
	}

	if err := l.ApplyVoucher(domain.Voucher{ID: "v4", Kind: domain.VoucherPercentage, Value: 30, MinOrderCents: 5000}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v := l.View(); v.DiscountCents != 1800 || v.VoucherID != "v4" {
		t.Fatalf("expected discount 1800 from v4, got %+v", v)
	}

	if err := l.ApplyVoucher(domain.Voucher{ID: "v2", Kind: domain.VoucherFreeShip, Value: 100}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v := l.View(); v.DiscountCents != 100 || v.VoucherID != "v2" {
		t.Fatalf("second voucher should replace the first, got %+v", v)
	}
}

func TestApplyVoucherBelowMinimum(t *testing.T) {
	l := NewLedger(200)
	line := friedChicken(1)
	line.UnitPriceCents = 4000 // subtotal 4000
	if err := l.Add(line); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := l.ApplyVoucher(domain.Voucher{ID: "v4", Kind: domain.VoucherPercentage, Value: 30, MinOrderCents: 5000})
	if !errors.Is(err, domain.ErrVoucherIneligible) {
		t.Fatalf("expected ErrVoucherIneligible, got %v", err)
	}
	if v := l.View(); v.DiscountCents != 0 || v.VoucherID != "" {
		t.Fatalf("rejected voucher must not change state: %+v", v)
	}
}

func TestRemoveVoucher(t *testing.T) {
	l := NewLedger(200)
	if err := l.Add(friedChicken(2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := l.ApplyVoucher(domain.Voucher{ID: "v1", Kind: domain.VoucherPercentage, Value: 10}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l.RemoveVoucher()
	if v := l.View(); v.DiscountCents != 0 || v.VoucherID != "" {
		t.Fatalf("voucher not removed: %+v", v)
	}
}

func TestTotals(t *testing.T) {
	// One line at $15 x2, $2 fee: subtotal $30, total $32.
	l := NewLedger(200)
	line := friedChicken(2)
	line.Toppings = nil
	line.Size = ""
	if err := l.Add(line); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v := l.View()
	if v.SubtotalCents != 3000 || v.TotalCents != 3200 {
		t.Fatalf("expected subtotal 3000 total 3200, got %+v", v)
	}

	// Freeship voucher worth $1: total $31.
	if err := l.ApplyVoucher(domain.Voucher{ID: "v2", Kind: domain.VoucherFreeShip, Value: 100}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v := l.View(); v.DiscountCents != 100 || v.TotalCents != 3100 {
		t.Fatalf("expected discount 100 total 3100, got %+v", v)
	}
}

func TestTotalClampedAtZero(t *testing.T) {
	l := NewLedger(0)
	line := friedChicken(1)
	line.UnitPriceCents = 100
	if err := l.Add(line); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := l.ApplyVoucher(domain.Voucher{ID: "big", Kind: domain.VoucherFixed, Value: 5000}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v := l.View(); v.TotalCents != 0 {
		t.Fatalf("expected clamped total 0, got %d", v.TotalCents)
	}
}

func TestStoreLazyCreationAndDrop(t *testing.T) {
	s := NewStore(200)
	a := s.Get("s1")
	if a == nil {
		t.Fatal("expected a ledger")
	}
	if s.Get("s1") != a {
		t.Fatal("expected same ledger for same session")
	}
	if s.Get("s2") == a {
		t.Fatal("expected distinct ledger per session")
	}
	s.Drop("s1")
	if s.Get("s1") == a {
		t.Fatal("expected fresh ledger after drop")
	}
}
