package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/souqplus/api/internal/models"
)

// offerTTL is how long a buyer's offer stays open.
const offerTTL = 48 * time.Hour

type OfferService struct {
	offersRepo models.OfferRepo
	catalog    models.CatalogRepo
}

func NewOfferService(offersRepo models.OfferRepo, catalog models.CatalogRepo) *OfferService {
	return &OfferService{
		offersRepo: offersRepo,
		catalog:    catalog,
	}
}

func (os *OfferService) MakeOffer(ctx context.Context, buyerId, listingId uuid.UUID, amount float64, message string) (*models.Offer, error) {
	if buyerId == uuid.Nil || listingId == uuid.Nil {
		return nil, fmt.Errorf("invalid buyer or listing ID")
	}
	if amount <= 0 {
		return nil, fmt.Errorf("offer amount must be greater than zero")
	}

	listing, err := os.catalog.GetByID(ctx, listingId)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, fmt.Errorf("listing not found")
	}
	if listing.Seller.ID == buyerId {
		return nil, fmt.Errorf("cannot make an offer on your own listing")
	}

	now := time.Now()
	offer := &models.Offer{
		ID:        uuid.New(),
		ListingID: listingId,
		BuyerID:   buyerId,
		Amount:    amount,
		Message:   message,
		Status:    models.OfferPending,
		CreatedAt: now,
		ExpiresAt: now.Add(offerTTL),
	}
	if err := os.offersRepo.CreateOffer(ctx, offer); err != nil {
		return nil, err
	}
	return offer, nil
}

// Respond accepts or rejects a pending offer. Only the listing's seller
// may respond, and an expired offer is marked as such instead.
func (os *OfferService) Respond(ctx context.Context, sellerId, offerId uuid.UUID, accept bool) (*models.Offer, error) {
	offer, err := os.offersRepo.GetOffer(ctx, offerId)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, fmt.Errorf("offer not found")
	}

	listing, err := os.catalog.GetByID(ctx, offer.ListingID)
	if err != nil {
		return nil, err
	}
	if listing == nil || listing.Seller.ID != sellerId {
		return nil, fmt.Errorf("forbidden: only the seller can respond to this offer")
	}
	if offer.Status != models.OfferPending {
		return nil, fmt.Errorf("offer is no longer pending")
	}

	status := models.OfferRejected
	if offer.IsExpired(time.Now()) {
		status = models.OfferExpired
	} else if accept {
		status = models.OfferAccepted
	}

	if err := os.offersRepo.UpdateStatus(ctx, offerId, status); err != nil {
		return nil, err
	}
	offer.Status = status
	return offer, nil
}

func (os *OfferService) ListForListing(ctx context.Context, sellerId, listingId uuid.UUID) ([]*models.Offer, error) {
	listing, err := os.catalog.GetByID(ctx, listingId)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, fmt.Errorf("listing not found")
	}
	if listing.Seller.ID != sellerId {
		return nil, fmt.Errorf("forbidden: only the seller can list offers")
	}
	return os.offersRepo.ListByListing(ctx, listingId)
}
