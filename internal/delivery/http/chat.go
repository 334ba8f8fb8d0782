package http

import (
	"errors"
	"net/http"

	"wealthflow/internal/dto"
	"wealthflow/internal/service"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupChat(base *echo.Group) {
	v1 := base.Group("/v1/chat")
	{
		v1.POST("/open", h.openChat)
		v1.GET("/messages", h.getChatMessages)
		v1.POST("/messages", h.sendChatMessage)
	}
}

func (h *HttpAPIHandler) openChat(c echo.Context) error {
	session, err := h.service.ChatService.Open(c.Request().Context(), sessionID(c))
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to open chat")
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Chat opened", dto.ChatLogResponse{
		SessionID: session.ID(),
		Messages:  session.Messages(),
		Loading:   session.Busy(),
	}))
}

func (h *HttpAPIHandler) getChatMessages(c echo.Context) error {
	session, err := h.service.ChatService.Session(c.Request().Context(), sessionID(c))
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to load chat")
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Chat messages", dto.ChatLogResponse{
		SessionID: session.ID(),
		Messages:  session.Messages(),
		Loading:   session.Busy(),
	}))
}

func (h *HttpAPIHandler) sendChatMessage(c echo.Context) error {
	req := new(dto.ChatSendRequest)
	if resp := h.bindAndValidate(c, req); resp != nil {
		return c.JSON(resp.Code, resp)
	}

	ctx := c.Request().Context()
	id := sessionID(c)
	reply, err := h.service.ChatService.Send(ctx, id, req.Text)
	switch {
	case errors.Is(err, service.ErrEmptyMessage):
		return errorJSON(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrSendInFlight):
		return errorJSON(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrChatRateLimited):
		return errorJSON(c, http.StatusTooManyRequests, err.Error())
	case err != nil:
		return errorJSON(c, http.StatusInternalServerError, "failed to send message")
	}

	session, err := h.service.ChatService.Session(ctx, id)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to load chat")
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Message sent", dto.ChatSendResponse{
		Reply:    reply,
		Messages: session.Messages(),
	}))
}
