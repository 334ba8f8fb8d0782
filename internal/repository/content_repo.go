package repository

import (
	"context"

	"wealthflow/internal/model"
)

// ContentRepository serves the static landing page catalog.
type ContentRepository interface {
	NavLinks(ctx context.Context) []model.NavLink
	Features(ctx context.Context) []model.Feature
	Plans(ctx context.Context) []model.Plan
	FAQs(ctx context.Context) []model.FAQ
	FindPlan(ctx context.Context, id string) (model.Plan, bool)
}

type contentRepository struct {
	navLinks []model.NavLink
	features []model.Feature
	plans    []model.Plan
	faqs     []model.FAQ
}

func NewContentRepository() ContentRepository {
	return &contentRepository{
		navLinks: []model.NavLink{
			{Name: "Solutions", Href: "#features"},
			{Name: "Intelligence", Href: "#market"},
			{Name: "Private Client", Href: "#pricing"},
			{Name: "About", Href: "#footer"},
		},
		features: []model.Feature{
			{ID: "1", Title: "Global Markets", Description: "Real-time access to international exchanges with zero latency execution.", Icon: "globe", Span: 2},
			{ID: "2", Title: "Smart Analytics", Description: "Predictive modeling for your portfolio.", Icon: "trending-up", Span: 1},
			{ID: "3", Title: "Secure Vault", Description: "Military-grade encryption for all assets.", Icon: "lock", Span: 1},
			{ID: "4", Title: "AI Advisory", Description: "Personalized wealth strategies tailored to your life goals and risk tolerance.", Icon: "zap", Span: 2},
			{ID: "5", Title: "Diversification", Description: "Automated rebalancing across asset classes.", Icon: "pie-chart", Span: 3},
		},
		plans: []model.Plan{
			{
				ID:          "core",
				Name:        "Core",
				Price:       model.PlanPrice{Monthly: 29, Yearly: 290},
				Description: "Essential tools for the modern investor.",
				Features:    []string{"Real-time market data", "Basic AI insights", "Portfolio tracking", "Standard support"},
			},
			{
				ID:          "pro",
				Name:        "Pro",
				Price:       model.PlanPrice{Monthly: 99, Yearly: 990},
				Description: "Advanced intelligence for active wealth building.",
				Features:    []string{"Everything in Core", "Predictive AI modeling", "Tax-loss harvesting", "Priority concierge", "Unlimited rebalancing"},
				Popular:     true,
			},
			{
				ID:           "elite",
				Name:         "Elite",
				Price:        model.PlanPrice{Monthly: 299, Yearly: 2990},
				Description:  "Full-spectrum family office management.",
				Features:     []string{"Everything in Pro", "Direct advisor access", "Estate planning tools", "Private equity access", "Custom API integration"},
				ContactSales: true,
			},
		},
		faqs: []model.FAQ{
			{Question: "Is my data secure?", Answer: "We use bank-level AES-256 encryption and never sell your personal data."},
			{Question: "Can I cancel anytime?", Answer: "Yes, there are no lock-in contracts. You can cancel your subscription instantly."},
		},
	}
}

func (r *contentRepository) NavLinks(ctx context.Context) []model.NavLink {
	return append([]model.NavLink(nil), r.navLinks...)
}

func (r *contentRepository) Features(ctx context.Context) []model.Feature {
	return append([]model.Feature(nil), r.features...)
}

func (r *contentRepository) Plans(ctx context.Context) []model.Plan {
	plans := make([]model.Plan, len(r.plans))
	for i, p := range r.plans {
		p.Features = append([]string(nil), p.Features...)
		plans[i] = p
	}
	return plans
}

func (r *contentRepository) FAQs(ctx context.Context) []model.FAQ {
	return append([]model.FAQ(nil), r.faqs...)
}

func (r *contentRepository) FindPlan(ctx context.Context, id string) (model.Plan, bool) {
	for _, p := range r.Plans(ctx) {
		if p.ID == id {
			return p, true
		}
	}
	return model.Plan{}, false
}
