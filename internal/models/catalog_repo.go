package models

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// CatalogRepo is the listing catalog source. ListActive hands back the
// fully materialized slice the search pipeline runs over; where that
// slice comes from (the in-memory seed or Mongo) does not change the
// pipeline's contract.
type CatalogRepo interface {
	ListActive(ctx context.Context) ([]*Listing, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Listing, error)
	Create(ctx context.Context, listing *Listing) error
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
	AdjustFavoriteCount(ctx context.Context, id uuid.UUID, delta int) error
	Categories(ctx context.Context) ([]Category, error)
}

// MemoryCatalog serves the seeded mock catalog. Listings created through
// the sell flow are appended in memory and vanish on restart.
type MemoryCatalog struct {
	mu         sync.RWMutex
	listings   []*Listing
	categories []Category
}

func NewMemoryCatalog(listings []*Listing, categories []Category) *MemoryCatalog {
	return &MemoryCatalog{
		listings:   listings,
		categories: categories,
	}
}

func (mc *MemoryCatalog) ListActive(ctx context.Context) ([]*Listing, error) {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	out := make([]*Listing, 0, len(mc.listings))
	for _, l := range mc.listings {
		if l.IsActive {
			// Snapshot copies, so serializing a search result cannot race
			// a concurrent counter bump on the stored listing.
			copied := *l
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (mc *MemoryCatalog) GetByID(ctx context.Context, id uuid.UUID) (*Listing, error) {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	for _, l := range mc.listings {
		if l.ID == id {
			// Copy so callers see a snapshot, same as a decoded Mongo document.
			copied := *l
			return &copied, nil
		}
	}
	return nil, nil
}

func (mc *MemoryCatalog) Create(ctx context.Context, listing *Listing) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.listings = append(mc.listings, listing)
	return nil
}

func (mc *MemoryCatalog) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	for _, l := range mc.listings {
		if l.ID == id {
			l.ViewCount++
			return nil
		}
	}
	return fmt.Errorf("listing %s not found", id)
}

func (mc *MemoryCatalog) AdjustFavoriteCount(ctx context.Context, id uuid.UUID, delta int) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	for _, l := range mc.listings {
		if l.ID == id {
			l.FavoriteCount += delta
			if l.FavoriteCount < 0 {
				l.FavoriteCount = 0
			}
			return nil
		}
	}
	return fmt.Errorf("listing %s not found", id)
}

func (mc *MemoryCatalog) Categories(ctx context.Context) ([]Category, error) {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.categories, nil
}
