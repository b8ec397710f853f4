package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/regiondist/catalog-backend/internal/adapters/repository"
	"github.com/regiondist/catalog-backend/internal/models"
	"github.com/regiondist/catalog-backend/utils"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationHandler struct {
	Notifications repository.NotificationRepository
}

func NewNotificationHandler(notifications repository.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{Notifications: notifications}
}

func (h *NotificationHandler) List(c *gin.Context) {
	limit := int64(50)
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	items, err := h.Notifications.List(ctx, limit)
	if err != nil {
		logrus.Errorf("failed to list notifications: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to fetch notifications"))
		return
	}
	unread, err := h.Notifications.UnreadCount(ctx)
	if err != nil {
		logrus.Errorf("failed to count unread notifications: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to fetch notifications"))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("", gin.H{
		"notifications": items,
		"unreadCount":   unread,
	}))
}

func (h *NotificationHandler) Create(c *gin.Context) {
	var n models.Notification
	if err := c.ShouldBindJSON(&n); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid json payload"))
		return
	}
	if n.Type == "" {
		n.Type = models.NotificationTypeSystem
	}
	if err := validate.Struct(n); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Title and message are required"))
		return
	}
	n.Read = false
	n.CreatedAt = time.Now()

	ctx, cancel := requestContext(c)
	defer cancel()

	created, err := h.Notifications.Create(ctx, n)
	if err != nil {
		logrus.Errorf("failed to create notification: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to create notification"))
		return
	}
	c.JSON(http.StatusCreated, utils.SuccessResponse("Notification created", created))
}

type markReadInput struct {
	ID string `json:"id"`
}

// MarkRead is the collection-level PUT: with an id in the body it marks
// that notification read, with an empty body it marks everything read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	var input markReadInput
	_ = c.ShouldBindJSON(&input)

	ctx, cancel := requestContext(c)
	defer cancel()

	if input.ID == "" {
		count, err := h.Notifications.MarkAllRead(ctx)
		if err != nil {
			logrus.Errorf("failed to mark notifications read: %v", err)
			c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to update notifications"))
			return
		}
		c.JSON(http.StatusOK, utils.SuccessResponse("Notifications marked read", gin.H{"updated": count}))
		return
	}

	id, err := primitive.ObjectIDFromHex(input.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid id"))
		return
	}
	n, err := h.Notifications.MarkRead(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Notification not found"))
			return
		}
		logrus.Errorf("failed to mark notification read: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to update notification"))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Notification marked read", n))
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	id, ok := parseObjectID(c)
	if !ok {
		return
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.Notifications.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Notification not found"))
			return
		}
		logrus.Errorf("failed to delete notification: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to delete notification"))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Notification deleted", nil))
}

func (h *NotificationHandler) Clear(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	count, err := h.Notifications.Clear(ctx)
	if err != nil {
		logrus.Errorf("failed to clear notifications: %v", err)
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to clear notifications"))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Notifications cleared", gin.H{"deleted": count}))
}
