package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/souqplus/api/internal/models"
	"github.com/souqplus/api/internal/services"
)

func GetSettings(s *services.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		ctx := c.Request.Context()
		userID := user.ID.String()
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
			"language": s.Language(ctx, userID),
			"rtl":      s.IsRTL(ctx, userID),
			"settings": s.AppSettings(ctx, userID),
		}, ""))
	}
}

func UpdateSettings(s *services.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		var req struct {
			Language *string               `json:"language"`
			Settings *services.AppSettings `json:"settings"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body"))
			return
		}

		ctx := c.Request.Context()
		userID := user.ID.String()

		if req.Language != nil {
			if err := s.SetLanguage(ctx, userID, *req.Language); err != nil {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
				return
			}
		}
		if req.Settings != nil {
			if err := s.SaveAppSettings(ctx, userID, *req.Settings); err != nil {
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
				return
			}
		}

		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
			"language": s.Language(ctx, userID),
			"rtl":      s.IsRTL(ctx, userID),
			"settings": s.AppSettings(ctx, userID),
		}, "settings updated"))
	}
}
