package dto

type InsightRequest struct {
	Query string `json:"query" form:"query" validate:"required,max=2000"`
}
