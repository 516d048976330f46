package handlers

import (
	"net/http"

	"thanawyia/models"
	"thanawyia/services/message"
	"thanawyia/utils"

	"github.com/gin-gonic/gin"
)

// MessageHandler serves the direct messaging endpoints.
type MessageHandler struct {
	MessageService message.MessageService
}

func NewMessageHandler(ms message.MessageService) *MessageHandler {
	return &MessageHandler{MessageService: ms}
}

// InboxHandler handles GET /api/messages/inbox.
func (h *MessageHandler) InboxHandler(c *gin.Context) {
	id, _ := caller(c)
	inbox, err := h.MessageService.Inbox(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "conversations", inbox)
}

// ConversationHandler handles GET /api/messages/conversation/:otherId.
func (h *MessageHandler) ConversationHandler(c *gin.Context) {
	id, _ := caller(c)
	msgs, err := h.MessageService.Conversation(c.Request.Context(), id, c.Param("otherId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "messages", msgs)
}

// SendMessageHandler handles POST /api/messages. The sender is always the caller.
func (h *MessageHandler) SendMessageHandler(c *gin.Context) {
	id, _ := caller(c)
	var req models.MessageRequest
	if !bindJSON(c, &req) {
		return
	}
	req.SenderID = id

	msg, err := h.MessageService.Send(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "message", msg)
}

// MarkMessageReadHandler handles PATCH /api/messages/:id/read. Only the receiver may call it.
func (h *MessageHandler) MarkMessageReadHandler(c *gin.Context) {
	id, _ := caller(c)
	msg, err := h.MessageService.MarkAsRead(c.Request.Context(), c.Param("id"), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "message", msg)
}
