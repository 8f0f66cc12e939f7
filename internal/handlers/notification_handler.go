package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/souqplus/api/internal/helpers"
	"github.com/souqplus/api/internal/models"
	"github.com/souqplus/api/internal/services"
)

func ListNotifications(n *services.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		notifications, unread, err := n.List(c.Request.Context(), user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
			"notifications": notifications,
			"unread_count":  unread,
		}, ""))
	}
}

func MarkNotificationRead(n *services.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		id, err := uuid.Parse(helpers.StringTrim(c.Param("id")))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid notification ID format"))
			return
		}

		if err := n.MarkRead(c.Request.Context(), id, user.ID); err != nil {
			c.JSON(http.StatusNotFound, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "notification marked as read"))
	}
}

func MarkAllNotificationsRead(n *services.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		if err := n.MarkAllRead(c.Request.Context(), user.ID); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "all notifications marked as read"))
	}
}
