package models

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type OfferStatus string

const (
	OfferPending  OfferStatus = "pending"
	OfferAccepted OfferStatus = "accepted"
	OfferRejected OfferStatus = "rejected"
	OfferExpired  OfferStatus = "expired"
)

type Offer struct {
	ID        uuid.UUID   `json:"id"`
	ListingID uuid.UUID   `json:"listing_id"`
	BuyerID   uuid.UUID   `json:"buyer_id"`
	Amount    float64     `json:"amount" validate:"gt=0"`
	Message   string      `json:"message,omitempty"`
	Status    OfferStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	ExpiresAt time.Time   `json:"expires_at"`
}

func (o *Offer) IsExpired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}

type OfferRepo interface {
	CreateOffer(ctx context.Context, offer *Offer) error
	GetOffer(ctx context.Context, id uuid.UUID) (*Offer, error)
	ListByListing(ctx context.Context, listingId uuid.UUID) ([]*Offer, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status OfferStatus) error
}

type MemoryOffers struct {
	mu     sync.RWMutex
	offers map[uuid.UUID]*Offer
}

func NewMemoryOffers() *MemoryOffers {
	return &MemoryOffers{offers: make(map[uuid.UUID]*Offer)}
}

func (mo *MemoryOffers) CreateOffer(ctx context.Context, offer *Offer) error {
	mo.mu.Lock()
	defer mo.mu.Unlock()
	mo.offers[offer.ID] = offer
	return nil
}

func (mo *MemoryOffers) GetOffer(ctx context.Context, id uuid.UUID) (*Offer, error) {
	mo.mu.RLock()
	defer mo.mu.RUnlock()
	return mo.offers[id], nil
}

func (mo *MemoryOffers) ListByListing(ctx context.Context, listingId uuid.UUID) ([]*Offer, error) {
	mo.mu.RLock()
	defer mo.mu.RUnlock()
	var out []*Offer
	for _, o := range mo.offers {
		if o.ListingID == listingId {
			out = append(out, o)
		}
	}
	// Map iteration order is random; sellers see offers oldest first.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (mo *MemoryOffers) UpdateStatus(ctx context.Context, id uuid.UUID, status OfferStatus) error {
	mo.mu.Lock()
	defer mo.mu.Unlock()
	if o, ok := mo.offers[id]; ok {
		o.Status = status
	}
	return nil
}
