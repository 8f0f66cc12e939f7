package container

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/souqplus/api/internal/config"
	"github.com/souqplus/api/internal/models"
	"github.com/souqplus/api/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger *slog.Logger
	Config *config.Config

	KV      models.KVStore
	Catalog models.CatalogRepo

	SessionService      *services.SessionService
	UserService         *services.UserService
	ListingService      *services.ListingService
	FavouritesService   *services.FavouriteService
	MessageService      *services.MessageService
	NotificationService *services.NotificationService
	OfferService        *services.OfferService
	SettingsService     *services.SettingsService
}

// NewContainer wires repositories and services. The Mongo and Redis
// clients may be nil; the seeded in-memory implementations take over for
// whatever is absent.
func NewContainer(
	logger *slog.Logger,
	cfg *config.Config,
	mongoClient *mongo.Client,
	redisClient *redis.Client,
) *Container {
	var kv models.KVStore
	if redisClient != nil {
		kv = models.NewRedisKV(redisClient)
	} else {
		kv = models.NewMemoryKV()
	}

	categories := models.SeedCategories()

	var catalog models.CatalogRepo
	var favourites models.FavouriteRepo
	var views models.ListingViewsRepo
	if mongoClient != nil {
		mongoRepo := models.MongodbNewRepo(mongoClient)
		catalog = models.NewMongoCatalog(mongoRepo, categories)
		favourites = mongoRepo
		views = mongoRepo
	} else {
		catalog = models.NewMemoryCatalog(models.SeedListings(), categories)
		favourites = models.NewMemoryFavourites()
		views = models.NewMemoryListingViews()
	}

	demoUser := services.DemoUserID()
	conversations, messages := models.SeedConversations(demoUser)
	messagesRepo := models.NewMemoryMessages(conversations, messages)
	notificationsRepo := models.NewMemoryNotifications(models.SeedNotifications(demoUser))
	offersRepo := models.NewMemoryOffers()

	sessionService := services.NewSessionService(kv, logger)
	userService := services.NewUserService(sessionService, cfg.JWTSecret)
	listingService := services.NewListingService(catalog, views)
	favouriteService := services.NewFavouriteService(favourites, catalog)
	messageService := services.NewMessageService(messagesRepo)
	notificationService := services.NewNotificationService(notificationsRepo)
	offerService := services.NewOfferService(offersRepo, catalog)
	settingsService := services.NewSettingsService(kv, logger)

	return &Container{
		Logger:              logger,
		Config:              cfg,
		KV:                  kv,
		Catalog:             catalog,
		SessionService:      sessionService,
		UserService:         userService,
		ListingService:      listingService,
		FavouritesService:   favouriteService,
		MessageService:      messageService,
		NotificationService: notificationService,
		OfferService:        offerService,
		SettingsService:     settingsService,
	}
}
