package handler

import (
	"errors"

	"github.com/naludev/cohabitdb/dto"
	"github.com/naludev/cohabitdb/usecase"
	"github.com/naludev/cohabitdb/utils"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notifications *usecase.NotificationService
}

func NewNotificationHandler(notifications *usecase.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// GetAllNotifications lists every notification for a user; the route
// parameter is the user's id.
func (h *NotificationHandler) GetAllNotifications(c *gin.Context) {
	notifications, err := h.notifications.ForUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.InternalError(c, "Failed to fetch notifications")
		return
	}
	utils.Success(c, notifications)
}

// GetNotificationByID fetches one notification. The user id segment
// in the route is informational; the lookup is by notification id.
func (h *NotificationHandler) GetNotificationByID(c *gin.Context) {
	notification, err := h.notifications.ByID(c.Request.Context(), c.Param("notificationId"))
	if err != nil {
		if errors.Is(err, usecase.ErrNotificationNotFound) {
			utils.NotFound(c, "Notification not found")
			return
		}
		utils.InternalError(c, "Failed to fetch notification")
		return
	}
	utils.Success(c, notification)
}

func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	notification, err := h.notifications.Create(c.Request.Context(), req.UserID, req.Type, req.Message)
	if err != nil {
		utils.InternalError(c, "Failed to create notification")
		return
	}

	utils.Created(c, notification)
}

func (h *NotificationHandler) MarkNotificationAsRead(c *gin.Context) {
	notification, err := h.notifications.MarkRead(c.Request.Context(), c.Param("notificationId"))
	if err != nil {
		if errors.Is(err, usecase.ErrNotificationNotFound) {
			utils.NotFound(c, "Notification not found")
			return
		}
		utils.InternalError(c, "Failed to mark notification as read")
		return
	}
	utils.Success(c, notification)
}
