package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/VanaBlak/vana-boutique-main/internal/repo"
	"github.com/VanaBlak/vana-boutique-main/internal/transport"
)

// Total sums quantity x unit price over the lines. Prices are integer minor
// units, so the sum stays exact.
func Total(lines []transport.CheckoutLine) int64 {
	var total int64
	for _, line := range lines {
		total += int64(line.Quantity) * line.UnitPrice
	}
	return total
}

type CheckoutService struct {
	Repo *repo.GormRepo
}

func (s *CheckoutService) Summary(ctx context.Context, userID uint) (*transport.CheckoutSummary, error) {
	cart, err := s.Repo.GetCart(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &transport.CheckoutSummary{Lines: []transport.CheckoutLine{}, Total: 0}, nil
		}
		return nil, err
	}

	lines, err := s.Repo.CheckoutLines(ctx, cart.ID)
	if err != nil {
		return nil, err
	}

	return &transport.CheckoutSummary{Lines: lines, Total: Total(lines)}, nil
}
