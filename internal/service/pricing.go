package service

import (
	"context"
	"fmt"

	"wealthflow/internal/dto"
	"wealthflow/internal/repository"
	"wealthflow/pkg/common"
	"wealthflow/pkg/utils"

	"github.com/shopspring/decimal"
)

const YearlyDiscountLabel = "-20%"

type PricingService interface {
	Plans(ctx context.Context, cycle string) ([]dto.PlanView, error)
}

type pricingService struct {
	contentRepo repository.ContentRepository
}

func NewPricingService(contentRepo repository.ContentRepository) PricingService {
	return &pricingService{contentRepo: contentRepo}
}

// Plans prices every plan for cycle. Yearly plans show floor(yearly / 12) per month.
func (s *pricingService) Plans(ctx context.Context, cycle string) ([]dto.PlanView, error) {
	if cycle == "" {
		cycle = common.BILLING_MONTHLY
	}
	if !utils.ContainsString(common.GetBillingCycles(), cycle) {
		return nil, fmt.Errorf("unknown billing cycle %q", cycle)
	}

	plans := s.contentRepo.Plans(ctx)
	views := make([]dto.PlanView, 0, len(plans))
	for _, p := range plans {
		view := dto.PlanView{
			Plan:         p,
			Cycle:        cycle,
			DisplayPrice: p.Price.Monthly,
			BilledAmount: p.Price.Monthly,
			CallToAction: "Start Trial",
		}
		if cycle == common.BILLING_YEARLY {
			view.DisplayPrice = decimal.NewFromInt(p.Price.Yearly).
				Div(decimal.NewFromInt(12)).
				Floor().
				IntPart()
			view.BilledAmount = p.Price.Yearly
		}
		if p.ContactSales {
			view.CallToAction = "Contact Sales"
		}
		views = append(views, view)
	}
	return views, nil
}
