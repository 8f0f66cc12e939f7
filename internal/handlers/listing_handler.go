package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/souqplus/api/internal/helpers"
	"github.com/souqplus/api/internal/models"
	"github.com/souqplus/api/internal/services"
)

// parseFloatOrDefault coerces malformed numeric input to a safe default so
// the filter pipeline never sees garbage. A user typing "abc" into a price
// box gets the unbounded default, not an error page.
func parseFloatOrDefault(raw string, fallback float64) float64 {
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return value
}

// parseSearchFilters maps query parameters onto SearchFilters with the
// same defaults a fresh search screen uses.
func parseSearchFilters(c *gin.Context) models.SearchFilters {
	filters := models.DefaultFilters()
	filters.Query = c.Query("q")
	filters.CategoryID = helpers.StringTrim(c.Query("category"))
	filters.MinPrice = parseFloatOrDefault(c.Query("min_price"), 0)
	filters.MaxPrice = parseFloatOrDefault(c.Query("max_price"), models.DefaultMaxPrice)

	for _, raw := range c.QueryArray("condition") {
		cond := models.Condition(helpers.StringTrim(raw))
		if cond.IsValid() {
			filters.Conditions = append(filters.Conditions, cond)
		}
	}

	switch sortBy := models.SortBy(c.Query("sort")); sortBy {
	case models.SortNewest, models.SortOldest, models.SortPriceLow, models.SortPriceHigh, models.SortDistance:
		filters.SortBy = sortBy
	}

	return filters
}

func SearchListings(ls *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := c.DefaultQuery("limit", "20")
		offset := c.DefaultQuery("offset", "0")
		limitInt, err := strconv.Atoi(limit)
		if err != nil || limitInt <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid limit parameter"))
			return
		}
		offsetInt, err := strconv.Atoi(offset)
		if err != nil || offsetInt < 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid offset parameter"))
			return
		}

		filters := parseSearchFilters(c)
		listings, total, err := ls.Search(c.Request.Context(), filters, offsetInt, limitInt)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		page := (offsetInt / limitInt) + 1
		c.JSON(http.StatusOK, models.PaginatedResponse(listings, page, limitInt, total))
	}
}

func GetListing(ls *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		listingID := helpers.StringTrim(c.Param("id"))
		if listingID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("listing ID is required"))
			return
		}

		parsedId, err := uuid.Parse(listingID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid listing ID format"))
			return
		}

		// Views are deduplicated per client session; anonymous visitors
		// fall back to their address.
		sessionID := c.GetHeader("X-Session-ID")
		if sessionID == "" {
			sessionID = c.ClientIP()
		}
		var userID *string
		if user, ok := currentUser(c); ok {
			id := user.ID.String()
			userID = &id
		}

		listing, err := ls.GetListing(c.Request.Context(), parsedId, sessionID, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}
		if listing == nil {
			c.JSON(http.StatusNotFound, models.ErrorResponse("listing not found"))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(listing, ""))
	}
}

func CreateListing(ls *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		var listing models.Listing
		if err := c.ShouldBindJSON(&listing); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		created, err := ls.CreateListing(c.Request.Context(), &listing, *user)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(created, "listing created successfully"))
	}
}

func ListCategories(ls *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := ls.Categories(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(categories, ""))
	}
}
