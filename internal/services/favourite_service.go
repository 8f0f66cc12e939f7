package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/souqplus/api/internal/models"
)

type FavouriteService struct {
	favouritesRepo models.FavouriteRepo
	catalog        models.CatalogRepo
}

func NewFavouriteService(favouritesRepo models.FavouriteRepo, catalog models.CatalogRepo) *FavouriteService {
	return &FavouriteService{
		favouritesRepo: favouritesRepo,
		catalog:        catalog,
	}
}

func (fs *FavouriteService) AddToFavourites(ctx context.Context, userId uuid.UUID, listingId string) (*models.Favourite, error) {
	if userId == uuid.Nil {
		return nil, fmt.Errorf("invalid user ID")
	}
	if strings.TrimSpace(listingId) == "" {
		return nil, fmt.Errorf("listing ID cannot be empty")
	}

	parsedListingId, err := uuid.Parse(listingId)
	if err != nil {
		return nil, fmt.Errorf("invalid listing ID format")
	}
	listing, err := fs.catalog.GetByID(ctx, parsedListingId)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, fmt.Errorf("listing not found")
	}

	added, err := fs.favouritesRepo.AddToFavourites(ctx, userId, listingId)
	if err != nil {
		return nil, err
	}
	if added {
		// Counter failures do not undo the favourite itself.
		_ = fs.catalog.AdjustFavoriteCount(ctx, parsedListingId, 1)
	}

	return fs.favouritesRepo.GetFavouritesByUserID(ctx, userId)
}

func (fs *FavouriteService) RemoveFromFavourites(ctx context.Context, userId uuid.UUID, listingId string) error {
	if userId == uuid.Nil {
		return fmt.Errorf("invalid user ID")
	}
	if strings.TrimSpace(listingId) == "" {
		return fmt.Errorf("listing ID cannot be empty")
	}

	removed, err := fs.favouritesRepo.RemoveFromFavourites(ctx, userId, listingId)
	if err != nil {
		return err
	}
	if removed {
		if parsed, err := uuid.Parse(listingId); err == nil {
			_ = fs.catalog.AdjustFavoriteCount(ctx, parsed, -1)
		}
	}
	return nil
}

// GetFavouriteListings resolves the user's favourites to full listings,
// skipping any that left the catalog.
func (fs *FavouriteService) GetFavouriteListings(ctx context.Context, userId uuid.UUID) ([]*models.Listing, error) {
	if userId == uuid.Nil {
		return nil, fmt.Errorf("invalid user ID")
	}

	fav, err := fs.favouritesRepo.GetFavouritesByUserID(ctx, userId)
	if err != nil {
		return nil, err
	}

	listings := make([]*models.Listing, 0, len(fav.Items))
	for listingId := range fav.Items {
		parsed, err := uuid.Parse(listingId)
		if err != nil {
			continue
		}
		listing, err := fs.catalog.GetByID(ctx, parsed)
		if err != nil || listing == nil {
			continue
		}
		listings = append(listings, listing)
	}
	return listings, nil
}
