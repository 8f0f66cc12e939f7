package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/souqplus/api/internal/container"
	"github.com/souqplus/api/internal/handlers"
	"github.com/souqplus/api/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{container.Config.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID", "X-Session-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	// API version 1
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "souqplus-api",
			})
		})

		// public routes
		v1.POST("/auth/register", handlers.Register(container.UserService))
		v1.POST("/auth/login", handlers.Login(container.UserService))

		v1.GET("/categories", handlers.ListCategories(container.ListingService))
		v1.GET("/listings", handlers.SearchListings(container.ListingService))
		v1.GET("/listings/:id", handlers.GetListing(container.ListingService))
	}

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(container.Config.JWTSecret, container.SessionService, container.Logger))

	protected.POST("/auth/logout", handlers.Logout(container.UserService))
	protected.GET("/profile", handlers.Profile())

	protected.POST("/listings", handlers.CreateListing(container.ListingService))

	favouriteRoutes := protected.Group("/favourites")
	{
		favouriteRoutes.GET("/", handlers.GetFavourites(container.FavouritesService))
		favouriteRoutes.POST("/:id", handlers.AddToFavourites(container.FavouritesService))
		favouriteRoutes.DELETE("/:id", handlers.RemoveFromFavourite(container.FavouritesService))
	}

	conversationRoutes := protected.Group("/conversations")
	{
		conversationRoutes.GET("/", handlers.ListConversations(container.MessageService))
		conversationRoutes.GET("/:id/messages", handlers.GetConversationMessages(container.MessageService))
		conversationRoutes.POST("/:id/messages", handlers.SendMessage(container.MessageService))
	}

	notificationRoutes := protected.Group("/notifications")
	{
		notificationRoutes.GET("/", handlers.ListNotifications(container.NotificationService))
		notificationRoutes.PATCH("/:id/read", handlers.MarkNotificationRead(container.NotificationService))
		notificationRoutes.POST("/read-all", handlers.MarkAllNotificationsRead(container.NotificationService))
	}

	offerRoutes := protected.Group("/offers")
	{
		offerRoutes.POST("/", handlers.MakeOffer(container.OfferService))
		offerRoutes.PATCH("/:id", handlers.RespondToOffer(container.OfferService))
	}
	protected.GET("/listings/:id/offers", handlers.ListOffersForListing(container.OfferService))

	settingsRoutes := protected.Group("/settings")
	{
		settingsRoutes.GET("/", handlers.GetSettings(container.SettingsService))
		settingsRoutes.PUT("/", handlers.UpdateSettings(container.SettingsService))
	}

	return r
}
