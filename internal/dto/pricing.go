package dto

import "wealthflow/internal/model"

type PricingRequest struct {
	Cycle string `query:"cycle" validate:"omitempty,oneof=monthly yearly"`
}

// PlanView is a plan priced for one billing cycle.
type PlanView struct {
	model.Plan
	Cycle string `json:"cycle"`
	// DisplayPrice is the per-month figure shown on the card.
	DisplayPrice int64  `json:"display_price"`
	BilledAmount int64  `json:"billed_amount"`
	CallToAction string `json:"call_to_action"`
}

type PricingResponse struct {
	Cycle         string     `json:"cycle"`
	DiscountLabel string     `json:"discount_label"`
	Plans         []PlanView `json:"plans"`
}
