package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrEmptyCart indicates an order was attempted from a cart with no lines.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrVoucherIneligible indicates the cart subtotal is below the voucher minimum.
	ErrVoucherIneligible = errors.New("voucher minimum order not met")

	// ErrRestaurantMismatch indicates an add from a restaurant other than the
	// one the cart is bound to.
	ErrRestaurantMismatch = errors.New("cart holds items from another restaurant")

	// ErrInvalidTransition indicates a disallowed order status change.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidSelection indicates a cart line request that the catalog
	// cannot price, such as a modifier the item does not offer.
	ErrInvalidSelection = errors.New("invalid item selection")
)
