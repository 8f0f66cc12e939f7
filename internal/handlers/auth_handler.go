package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/souqplus/api/internal/helpers"
	"github.com/souqplus/api/internal/models"
	"github.com/souqplus/api/internal/services"
)

// currentUser pulls the session user the auth middleware stored.
func currentUser(c *gin.Context) (*models.User, bool) {
	raw, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	user, ok := raw.(*models.User)
	return user, ok
}

func setAuthCookie(c *gin.Context, token string) {
	isProduction := os.Getenv("GIN_MODE") == "production"
	c.SetCookie(
		"access_token",
		token,
		int(helpers.AccessTokenTTL.Seconds()),
		"/",
		"", // let Gin pick current domain
		isProduction,
		true,
	)
}

func Register(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		created, token, err := u.Register(c.Request.Context(), &user)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		setAuthCookie(c, token)
		c.JSON(http.StatusCreated, models.SuccessResponse(gin.H{
			"user":         created,
			"access_token": token,
		}, "account created"))
	}
}

func Login(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request payload"))
			return
		}

		user, token, err := u.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(err.Error()))
			return
		}

		setAuthCookie(c, token)
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
			"user":         user,
			"access_token": token,
		}, "login successful"))
	}
}

func Logout(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := currentUser(c); ok {
			// Logout is fail-safe toward the unauthenticated state; a
			// storage failure is pushed to the error middleware for logging.
			if err := u.Logout(c.Request.Context(), user.ID.String()); err != nil {
				_ = c.Error(err)
			}
		}

		isProduction := os.Getenv("GIN_MODE") == "production"
		c.SetCookie("access_token", "", -1, "/", "", isProduction, true)

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "logged out successfully"))
	}
}

func Profile() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(user, ""))
	}
}
