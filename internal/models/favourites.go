package models

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FavouriteItem struct {
	ListingID string    `bson:"listing_id" json:"listing_id"`
	AddedAt   time.Time `bson:"added_at" json:"added_at"`
}

// Favourite is one user's favourites document, items keyed by listing id.
type Favourite struct {
	ID        primitive.ObjectID       `bson:"_id,omitempty" json:"id"`
	UserID    uuid.UUID                `bson:"user_id" json:"user_id" validate:"required"`
	Items     map[string]FavouriteItem `bson:"items" json:"items"`
	CreatedAt time.Time                `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt time.Time                `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// FavouriteRepo stores per-user favourites. AddToFavourites reports
// whether the listing was newly added so favourite counters only move on
// real transitions.
type FavouriteRepo interface {
	AddToFavourites(ctx context.Context, userId uuid.UUID, listingId string) (bool, error)
	RemoveFromFavourites(ctx context.Context, userId uuid.UUID, listingId string) (bool, error)
	GetFavouritesByUserID(ctx context.Context, userId uuid.UUID) (*Favourite, error)
}

func (mdb *MongodbRepo) AddToFavourites(ctx context.Context, userId uuid.UUID, listingId string) (bool, error) {
	col, err := mdb.GetCollection(ctx, DBName, FavouritesColName)
	if err != nil {
		return false, fmt.Errorf("error getting collection: %v", err)
	}
	now := time.Now()
	filter := bson.M{"user_id": userId}

	update := bson.M{
		"$set": bson.M{
			"updated_at": now,
			fmt.Sprintf("items.%s", listingId): FavouriteItem{
				ListingID: listingId,
				AddedAt:   now,
			},
		},
		"$setOnInsert": bson.M{
			"user_id":    userId,
			"created_at": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.Before)

	var previous Favourite
	err = col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&previous)
	if err == mongo.ErrNoDocuments {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("error upserting favourite: %v", err)
	}

	_, existed := previous.Items[listingId]
	return !existed, nil
}

func (mdb *MongodbRepo) RemoveFromFavourites(ctx context.Context, userId uuid.UUID, listingId string) (bool, error) {
	col, err := mdb.GetCollection(ctx, DBName, FavouritesColName)
	if err != nil {
		return false, fmt.Errorf("error getting collection: %v", err)
	}

	filter := bson.M{"user_id": userId}
	update := bson.M{
		"$unset": bson.M{
			fmt.Sprintf("items.%s", listingId): "",
		},
		"$set": bson.M{
			"updated_at": time.Now(),
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)

	var previous Favourite
	err = col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&previous)
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error removing favourite: %v", err)
	}

	_, existed := previous.Items[listingId]
	return existed, nil
}

func (mdb *MongodbRepo) GetFavouritesByUserID(ctx context.Context, userId uuid.UUID) (*Favourite, error) {
	col, err := mdb.GetCollection(ctx, DBName, FavouritesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var fav Favourite
	err = col.FindOne(ctx, bson.M{"user_id": userId}).Decode(&fav)
	if err == mongo.ErrNoDocuments {
		return &Favourite{UserID: userId, Items: map[string]FavouriteItem{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding favourites: %v", err)
	}
	return &fav, nil
}

// MemoryFavourites keeps favourites in process, matching the mocked app.
type MemoryFavourites struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*Favourite
}

func NewMemoryFavourites() *MemoryFavourites {
	return &MemoryFavourites{byID: make(map[uuid.UUID]*Favourite)}
}

func (mf *MemoryFavourites) AddToFavourites(ctx context.Context, userId uuid.UUID, listingId string) (bool, error) {
	mf.mu.Lock()
	defer mf.mu.Unlock()
	now := time.Now()
	fav, ok := mf.byID[userId]
	if !ok {
		fav = &Favourite{
			UserID:    userId,
			Items:     make(map[string]FavouriteItem),
			CreatedAt: now,
		}
		mf.byID[userId] = fav
	}
	if _, exists := fav.Items[listingId]; exists {
		return false, nil
	}
	fav.Items[listingId] = FavouriteItem{ListingID: listingId, AddedAt: now}
	fav.UpdatedAt = now
	return true, nil
}

func (mf *MemoryFavourites) RemoveFromFavourites(ctx context.Context, userId uuid.UUID, listingId string) (bool, error) {
	mf.mu.Lock()
	defer mf.mu.Unlock()
	fav, ok := mf.byID[userId]
	if !ok {
		return false, nil
	}
	if _, exists := fav.Items[listingId]; !exists {
		return false, nil
	}
	delete(fav.Items, listingId)
	fav.UpdatedAt = time.Now()
	return true, nil
}

func (mf *MemoryFavourites) GetFavouritesByUserID(ctx context.Context, userId uuid.UUID) (*Favourite, error) {
	mf.mu.RLock()
	defer mf.mu.RUnlock()
	fav, ok := mf.byID[userId]
	if !ok {
		return &Favourite{UserID: userId, Items: map[string]FavouriteItem{}}, nil
	}
	// Copy so callers cannot mutate the stored document.
	items := make(map[string]FavouriteItem, len(fav.Items))
	for k, v := range fav.Items {
		items[k] = v
	}
	copied := *fav
	copied.Items = items
	return &copied, nil
}
