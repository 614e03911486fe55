package domain

import "fmt"

type VoucherKind string

const (
	VoucherPercentage VoucherKind = "percentage"
	VoucherFixed      VoucherKind = "fixed"
	VoucherFreeShip   VoucherKind = "freeship"
)

// Voucher describes a discount offer. Value is a percent for percentage
// vouchers and an amount in cents for fixed and freeship vouchers.
// MinOrderCents of zero means no minimum.
type Voucher struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description,omitempty"`
	Badge         string      `json:"badge,omitempty"`
	Icon          string      `json:"icon,omitempty"`
	Kind          VoucherKind `json:"kind"`
	Value         int64       `json:"value"`
	MinOrderCents int64       `json:"minOrderCents,omitempty"`
}

// EligibleFor reports whether the voucher may be applied at the given subtotal.
func (v Voucher) EligibleFor(subtotalCents int64) bool {
	return v.MinOrderCents == 0 || subtotalCents >= v.MinOrderCents
}

// Discount computes the discount amount in cents for the given subtotal.
// Percentage discounts truncate toward zero.
func (v Voucher) Discount(subtotalCents int64) (int64, error) {
	if !v.EligibleFor(subtotalCents) {
		return 0, ErrVoucherIneligible
	}
	switch v.Kind {
	case VoucherPercentage:
		return subtotalCents * v.Value / 100, nil
	case VoucherFixed, VoucherFreeShip:
		return v.Value, nil
	default:
		return 0, fmt.Errorf("unknown voucher kind %q", v.Kind)
	}
}
