package handlers

import (
	"net/http"

	"thanawyia/models"
	"thanawyia/services/notification"
	"thanawyia/utils"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the in-app notification endpoints.
type NotificationHandler struct {
	NotificationService notification.NotificationService
}

func NewNotificationHandler(ns notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{NotificationService: ns}
}

// ListNotificationsHandler handles GET /api/notifications.
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	id, _ := caller(c)
	items, err := h.NotificationService.ListByAccount(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "notifications", items)
}

// MarkNotificationReadHandler handles PATCH /api/notifications/:id/read.
func (h *NotificationHandler) MarkNotificationReadHandler(c *gin.Context) {
	id, _ := caller(c)
	item, err := h.NotificationService.MarkAsRead(c.Request.Context(), c.Param("id"), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "notification", item)
}

// MarkAllNotificationsReadHandler handles PATCH /api/notifications/read-all.
func (h *NotificationHandler) MarkAllNotificationsReadHandler(c *gin.Context) {
	id, _ := caller(c)
	count, err := h.NotificationService.MarkAllAsRead(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "updated", count)
}

// CreateNotificationHandler handles POST /api/admin/notifications.
func (h *NotificationHandler) CreateNotificationHandler(c *gin.Context) {
	var req models.NotificationRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.NotificationService.Create(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "notification", item)
}
