package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/souqplus/api/internal/helpers"
	"github.com/souqplus/api/internal/models"
	"github.com/souqplus/api/internal/services"
)

func AddToFavourites(f *services.FavouriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		listingId := helpers.StringTrim(c.Param("id"))

		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		res, err := f.AddToFavourites(c.Request.Context(), user.ID, listingId)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(res, "added to favourites"))
	}
}

func RemoveFromFavourite(f *services.FavouriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		listingId := helpers.StringTrim(c.Param("id"))

		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		if err := f.RemoveFromFavourites(c.Request.Context(), user.ID, listingId); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "removed from favourites"))
	}
}

func GetFavourites(f *services.FavouriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		listings, err := f.GetFavouriteListings(c.Request.Context(), user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(listings, ""))
	}
}
