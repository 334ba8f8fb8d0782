package dto

import "wealthflow/internal/model"

type ChatSendRequest struct {
	Text string `json:"text" form:"text" validate:"required,max=4000"`
}

type ChatLogResponse struct {
	SessionID string              `json:"session_id"`
	Messages  []model.ChatMessage `json:"messages"`
	Loading   bool                `json:"loading"`
}

type ChatSendResponse struct {
	Reply    model.ChatMessage   `json:"reply"`
	Messages []model.ChatMessage `json:"messages"`
}
