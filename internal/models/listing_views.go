package models

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// viewDedupWindow is how long a session's view of a listing keeps
// suppressing repeat counts.
const viewDedupWindow = 30 * 24 * time.Hour

type ListingView struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ListingID string             `bson:"listing_id" json:"listing_id" validate:"required"`
	SellerID  string             `bson:"seller_id" json:"seller_id"`
	UserID    *string            `bson:"user_id,omitempty" json:"user_id,omitempty"`
	SessionID string             `bson:"session_id" json:"session_id" validate:"required"`
	ViewedAt  time.Time          `bson:"viewed_at" json:"viewed_at"`
	ExpiresAt time.Time          `bson:"expires_at" json:"expires_at"` // TTL index field
}

// ListingViewsRepo deduplicates listing views per session so viewCount
// only moves once per visitor, matching the counter's monotonic intent.
type ListingViewsRepo interface {
	// Track records the view and reports whether it should count, i.e.
	// whether this session had not seen the listing within the window.
	Track(ctx context.Context, view *ListingView) (bool, error)
}

// EnsureListingViewIndexes creates the TTL and dedup indexes.
func (mdb *MongodbRepo) EnsureListingViewIndexes(ctx context.Context) error {
	col, err := mdb.GetCollection(ctx, DBName, ListingViewColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().
				SetExpireAfterSeconds(0).
				SetName("expires_at_ttl"),
		},
		{
			Keys: bson.D{
				{Key: "listing_id", Value: 1},
				{Key: "session_id", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("listing_session_unique"),
		},
	}

	if _, err := col.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("error creating listing view indexes: %v", err)
	}
	return nil
}

func (mdb *MongodbRepo) Track(ctx context.Context, view *ListingView) (bool, error) {
	col, err := mdb.GetCollection(ctx, DBName, ListingViewColName)
	if err != nil {
		return false, fmt.Errorf("error getting collection: %v", err)
	}

	if view.ID.IsZero() {
		view.ID = primitive.NewObjectID()
	}
	if view.ViewedAt.IsZero() {
		view.ViewedAt = time.Now()
	}
	view.ExpiresAt = view.ViewedAt.Add(viewDedupWindow)

	_, err = col.InsertOne(ctx, view)
	if mongo.IsDuplicateKeyError(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error tracking listing view: %v", err)
	}
	return true, nil
}

// MemoryListingViews is the in-process dedup table for the mocked setup.
type MemoryListingViews struct {
	mu   sync.Mutex
	seen map[string]map[string]time.Time // listing id -> session id -> viewed at
}

func NewMemoryListingViews() *MemoryListingViews {
	return &MemoryListingViews{seen: make(map[string]map[string]time.Time)}
}

func (mv *MemoryListingViews) Track(ctx context.Context, view *ListingView) (bool, error) {
	mv.mu.Lock()
	defer mv.mu.Unlock()
	now := time.Now()
	sessions, ok := mv.seen[view.ListingID]
	if !ok {
		sessions = make(map[string]time.Time)
		mv.seen[view.ListingID] = sessions
	}
	if viewedAt, ok := sessions[view.SessionID]; ok && now.Sub(viewedAt) < viewDedupWindow {
		return false, nil
	}
	sessions[view.SessionID] = now
	return true, nil
}
