package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/rsetcampus/atspam-api/internal/httperr"
	"github.com/rsetcampus/atspam-api/internal/httpresp"
	"github.com/rsetcampus/atspam-api/internal/models"
)

// NotificationStore is what this handler needs from the notify package.
type NotificationStore interface {
	ListForUser(ctx context.Context, userID uint) ([]models.Notification, error)
	MarkAllRead(ctx context.Context, userID uint) error
	CountUnread(ctx context.Context, userID uint) (int64, error)
}

type NotificationHandler struct {
	store NotificationStore
}

func NewNotificationHandler(store NotificationStore) *NotificationHandler {
	return &NotificationHandler{store: store}
}

func (h *NotificationHandler) List(c *gin.Context) {
	userID, _ := currentUser(c)

	notifications, err := h.store.ListForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.List(c, notifications)
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, _ := currentUser(c)

	count, err := h.store.CountUnread(c.Request.Context(), userID)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.OK(c, gin.H{"unread": count})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, _ := currentUser(c)

	if err := h.store.MarkAllRead(c.Request.Context(), userID); err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.OK(c, gin.H{"status": "ok"})
}
