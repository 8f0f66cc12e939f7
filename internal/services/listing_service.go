package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/souqplus/api/internal/models"
)

const maxListingImages = 10

type ListingService struct {
	catalog models.CatalogRepo
	views   models.ListingViewsRepo
}

func NewListingService(catalog models.CatalogRepo, views models.ListingViewsRepo) *ListingService {
	return &ListingService{
		catalog: catalog,
		views:   views,
	}
}

// Search materializes the active catalog, runs the filter pipeline, and
// pages the result. Malformed filter values never reach this point: the
// handler coerces them to defaults first.
func (ls *ListingService) Search(ctx context.Context, filters models.SearchFilters, offset, limit int) ([]*models.Listing, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("invalid offset or limit")
	}

	catalog, err := ls.catalog.ListActive(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load catalog: %v", err)
	}

	results := models.ApplyFilters(catalog, filters)
	total := len(results)

	if offset >= total {
		return []*models.Listing{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return results[offset:end], total, nil
}

// GetListing fetches one listing and counts the view when this session
// has not seen it yet.
func (ls *ListingService) GetListing(ctx context.Context, id uuid.UUID, sessionID string, userID *string) (*models.Listing, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid listing ID")
	}

	listing, err := ls.catalog.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, nil
	}

	if sessionID != "" {
		counted, err := ls.views.Track(ctx, &models.ListingView{
			ListingID: id.String(),
			SellerID:  listing.Seller.ID.String(),
			UserID:    userID,
			SessionID: sessionID,
			ViewedAt:  time.Now(),
		})
		// View tracking failures never block the read.
		if err == nil && counted {
			if err := ls.catalog.IncrementViewCount(ctx, id); err == nil {
				listing.ViewCount++
			}
		}
	}

	return listing, nil
}

// CreateListing runs the sell-form validation and stores the listing.
// Listings enter the catalog active and unfeatured with zeroed counters.
func (ls *ListingService) CreateListing(ctx context.Context, listing *models.Listing, seller models.User) (*models.Listing, error) {
	if err := models.Validate.Struct(listing); err != nil {
		return nil, fmt.Errorf("invalid listing data provided: %v", err)
	}
	if listing.Price <= 0 {
		return nil, fmt.Errorf("price must be greater than zero")
	}
	if !listing.Condition.IsValid() {
		return nil, fmt.Errorf("unsupported condition: %s", listing.Condition)
	}
	if len(listing.Images) == 0 {
		return nil, fmt.Errorf("at least one image is required")
	}
	if len(listing.Images) > maxListingImages {
		return nil, fmt.Errorf("you can add maximum %d images", maxListingImages)
	}

	category, err := ls.resolveCategory(ctx, listing.Category.ID)
	if err != nil {
		return nil, err
	}
	listing.Category = category

	now := time.Now()
	if listing.ID == uuid.Nil {
		listing.ID = uuid.New()
	}
	if listing.Currency == "" {
		listing.Currency = models.DefaultCurrency
	}
	listing.Seller = seller
	listing.CreatedAt = now
	listing.UpdatedAt = now
	listing.IsActive = true
	listing.IsFeatured = false
	listing.ViewCount = 0
	listing.FavoriteCount = 0

	if err := ls.catalog.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("failed to create listing: %v", err)
	}
	return listing, nil
}

func (ls *ListingService) resolveCategory(ctx context.Context, categoryID string) (models.Category, error) {
	if categoryID == "" || categoryID == models.CategoryAll {
		return models.Category{}, fmt.Errorf("category is required")
	}
	categories, err := ls.catalog.Categories(ctx)
	if err != nil {
		return models.Category{}, fmt.Errorf("failed to load categories: %v", err)
	}
	for _, c := range categories {
		if c.ID == categoryID {
			return c, nil
		}
	}
	return models.Category{}, fmt.Errorf("unknown category: %s", categoryID)
}

func (ls *ListingService) Categories(ctx context.Context) ([]models.Category, error) {
	return ls.catalog.Categories(ctx)
}
