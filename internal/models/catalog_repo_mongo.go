package models

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCatalog is the durable catalog source used when MONGODB_URI is set.
// Categories stay static; only listings live in Mongo.
type MongoCatalog struct {
	repo       *MongodbRepo
	categories []Category
}

func NewMongoCatalog(repo *MongodbRepo, categories []Category) *MongoCatalog {
	return &MongoCatalog{
		repo:       repo,
		categories: categories,
	}
}

func (mc *MongoCatalog) ListActive(ctx context.Context) ([]*Listing, error) {
	col, err := mc.repo.GetCollection(ctx, DBName, ListingsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{"is_active": true})
	if err != nil {
		return nil, fmt.Errorf("error finding listings: %v", err)
	}
	defer cursor.Close(ctx)

	var listings []*Listing
	for cursor.Next(ctx) {
		var listing Listing
		if err := cursor.Decode(&listing); err != nil {
			return nil, fmt.Errorf("error decoding listing: %v", err)
		}
		listings = append(listings, &listing)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return listings, nil
}

func (mc *MongoCatalog) GetByID(ctx context.Context, id uuid.UUID) (*Listing, error) {
	col, err := mc.repo.GetCollection(ctx, DBName, ListingsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var listing Listing
	err = col.FindOne(ctx, bson.M{"id": id}).Decode(&listing)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding listing by ID: %v", err)
	}
	return &listing, nil
}

func (mc *MongoCatalog) Create(ctx context.Context, listing *Listing) error {
	col, err := mc.repo.GetCollection(ctx, DBName, ListingsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	if _, err := col.InsertOne(ctx, listing); err != nil {
		return fmt.Errorf("failed to insert listing: %v", err)
	}
	return nil
}

func (mc *MongoCatalog) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	return mc.adjustCounter(ctx, id, "view_count", 1)
}

func (mc *MongoCatalog) AdjustFavoriteCount(ctx context.Context, id uuid.UUID, delta int) error {
	return mc.adjustCounter(ctx, id, "favorite_count", delta)
}

func (mc *MongoCatalog) adjustCounter(ctx context.Context, id uuid.UUID, field string, delta int) error {
	col, err := mc.repo.GetCollection(ctx, DBName, ListingsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$inc": bson.M{field: delta}})
	if err != nil {
		return fmt.Errorf("failed to update %s: %v", field, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("listing %s not found", id)
	}
	return nil
}

func (mc *MongoCatalog) Categories(ctx context.Context) ([]Category, error) {
	return mc.categories, nil
}
