package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/souqplus/api/internal/helpers"
	"github.com/souqplus/api/internal/models"
	"github.com/souqplus/api/internal/services"
)

func ListConversations(m *services.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		conversations, err := m.ListConversations(c.Request.Context(), user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(conversations, ""))
	}
}

func GetConversationMessages(m *services.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		conversationId, err := uuid.Parse(helpers.StringTrim(c.Param("id")))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid conversation ID format"))
			return
		}

		messages, err := m.OpenConversation(c.Request.Context(), conversationId, user.ID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(messages, ""))
	}
}

func SendMessage(m *services.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		conversationId, err := uuid.Parse(helpers.StringTrim(c.Param("id")))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid conversation ID format"))
			return
		}

		var req struct {
			Content string `json:"content" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body"))
			return
		}

		msg, err := m.SendMessage(c.Request.Context(), conversationId, user.ID, req.Content)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(msg, "message sent"))
	}
}
