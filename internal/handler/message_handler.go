package handler

import (
	"github.com/gin-gonic/gin"

	"mypage/profilehub/internal/service"
	"mypage/profilehub/pkg/response"
)

type MessageHandler struct {
	messageService service.MessageService
}

func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

type SendMessageRequest struct {
	From     string `json:"from" binding:"required"`
	Avatar   string `json:"avatar"`
	Text     string `json:"text" binding:"required"`
	Outgoing bool   `json:"outgoing"`
}

func (h *MessageHandler) List(c *gin.Context) {
	messages, err := h.messageService.List(c.Request.Context())
	if err != nil {
		fail(c, err, "list messages")
		return
	}
	response.Cached(c, messages)
}

func (h *MessageHandler) Send(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	msg, err := h.messageService.Send(c.Request.Context(), req.From, req.Avatar, req.Text, req.Outgoing)
	if err != nil {
		fail(c, err, "send message")
		return
	}
	response.Created(c, msg)
}

func (h *MessageHandler) MarkRead(c *gin.Context) {
	msg, err := h.messageService.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, "mark message read")
		return
	}
	response.Success(c, msg)
}

func (h *MessageHandler) Delete(c *gin.Context) {
	if err := h.messageService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err, "delete message")
		return
	}
	response.Success(c, nil)
}
