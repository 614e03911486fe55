// Package vouchers lists discount offers with per-cart eligibility.
package vouchers

import (
	"context"

	"quickeats/internal/domain"
	voucherrepo "quickeats/internal/repository/voucher"
)

type Service struct {
	repo repo
}

type repo interface {
	List(ctx context.Context) ([]domain.Voucher, error)
	GetByID(ctx context.Context, id string) (*domain.Voucher, error)
}

func New(repo voucherrepo.Repository) *Service {
	return &Service{repo: repo}
}

// View is a voucher annotated with eligibility for a given subtotal, so a
// client can disable selection instead of failing on apply.
type View struct {
	domain.Voucher
	Eligible bool `json:"eligible"`
}

// List returns all vouchers flagged against the given subtotal.
func (s *Service) List(ctx context.Context, subtotalCents int64) ([]View, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]View, 0, len(all))
	for _, v := range all {
		out = append(out, View{Voucher: v, Eligible: v.EligibleFor(subtotalCents)})
	}
	return out, nil
}

// Get resolves a voucher by id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Voucher, error) {
	return s.repo.GetByID(ctx, id)
}
