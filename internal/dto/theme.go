package dto

type ThemeRequest struct {
	Mode string `json:"mode" form:"mode" validate:"required,oneof=light dark"`
}

type ThemeResponse struct {
	Mode string `json:"mode"`
}
