package dto

type ContactRequest struct {
	Name    string `json:"name" form:"name" validate:"required,max=120"`
	Email   string `json:"email" form:"email" validate:"required,email,max=254"`
	Company string `json:"company" form:"company" validate:"max=120"`
	Message string `json:"message" form:"message" validate:"required,max=2000"`
	PlanID  string `json:"plan_id" form:"plan_id" validate:"omitempty,oneof=core pro elite"`
}

type ContactResponse struct {
	Reference string `json:"reference"`
	Message   string `json:"message"`
}
