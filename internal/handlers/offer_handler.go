package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/souqplus/api/internal/helpers"
	"github.com/souqplus/api/internal/models"
	"github.com/souqplus/api/internal/services"
)

func MakeOffer(o *services.OfferService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		var req struct {
			ListingID string  `json:"listing_id" binding:"required"`
			Amount    float64 `json:"amount" binding:"required"`
			Message   string  `json:"message"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body"))
			return
		}

		listingId, err := uuid.Parse(helpers.StringTrim(req.ListingID))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid listing ID format"))
			return
		}

		offer, err := o.MakeOffer(c.Request.Context(), user.ID, listingId, req.Amount, req.Message)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(offer, "offer submitted"))
	}
}

func RespondToOffer(o *services.OfferService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		offerId, err := uuid.Parse(helpers.StringTrim(c.Param("id")))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid offer ID format"))
			return
		}

		var req struct {
			Accept bool `json:"accept"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body"))
			return
		}

		offer, err := o.Respond(c.Request.Context(), user.ID, offerId, req.Accept)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(offer, ""))
	}
}

func ListOffersForListing(o *services.OfferService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
			return
		}

		listingId, err := uuid.Parse(helpers.StringTrim(c.Param("id")))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid listing ID format"))
			return
		}

		offers, err := o.ListForListing(c.Request.Context(), user.ID, listingId)
		if err != nil {
			c.JSON(http.StatusForbidden, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(offers, ""))
	}
}
