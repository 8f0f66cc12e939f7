package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/souqplus/api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newListingService() *ListingService {
	catalog := models.NewMemoryCatalog(models.SeedListings(), models.SeedCategories())
	return NewListingService(catalog, models.NewMemoryListingViews())
}

func validListing() *models.Listing {
	return &models.Listing{
		Title:       "PlayStation 5",
		Description: "Disc edition with two controllers",
		Price:       1800,
		Category:    models.Category{ID: "1"},
		Condition:   models.ConditionLikeNew,
		Images:      []string{"https://via.placeholder.com/300x200"},
	}
}

func sellerUser() models.User {
	return models.User{
		ID:       uuid.New(),
		Email:    "seller@example.com",
		FullName: "Test Seller",
	}
}

func TestSearchPagination(t *testing.T) {
	ls := newListingService()
	filters := models.DefaultFilters()

	page1, total, err := ls.Search(context.Background(), filters, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Len(t, page1, 2)

	page2, _, err := ls.Search(context.Background(), filters, 2, 2)
	require.NoError(t, err)
	assert.Len(t, page2, 2)
	assert.NotEqual(t, page1[0].ID, page2[0].ID)

	// Offset past the end yields an empty page, not an error.
	empty, total, err := ls.Search(context.Background(), filters, 10, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Empty(t, empty)
}

func TestSearchRejectsInvalidPaging(t *testing.T) {
	ls := newListingService()
	filters := models.DefaultFilters()

	_, _, err := ls.Search(context.Background(), filters, -1, 10)
	assert.Error(t, err)

	_, _, err = ls.Search(context.Background(), filters, 0, 0)
	assert.Error(t, err)
}

func TestGetListingCountsFirstViewOnly(t *testing.T) {
	ls := newListingService()
	id := models.SeedListingIPhone

	before, err := ls.catalog.GetByID(context.Background(), id)
	require.NoError(t, err)
	initial := before.ViewCount

	first, err := ls.GetListing(context.Background(), id, "session-a", nil)
	require.NoError(t, err)
	assert.Equal(t, initial+1, first.ViewCount)

	// Same session again: no second count.
	second, err := ls.GetListing(context.Background(), id, "session-a", nil)
	require.NoError(t, err)
	assert.Equal(t, initial+1, second.ViewCount)

	// A different session counts.
	third, err := ls.GetListing(context.Background(), id, "session-b", nil)
	require.NoError(t, err)
	assert.Equal(t, initial+2, third.ViewCount)
}

func TestGetListingUnknownID(t *testing.T) {
	ls := newListingService()

	listing, err := ls.GetListing(context.Background(), uuid.New(), "session-a", nil)
	require.NoError(t, err)
	assert.Nil(t, listing)
}

func TestCreateListingValidation(t *testing.T) {
	ls := newListingService()
	seller := sellerUser()

	tests := []struct {
		name   string
		mutate func(*models.Listing)
	}{
		{"missing title", func(l *models.Listing) { l.Title = "" }},
		{"missing description", func(l *models.Listing) { l.Description = "" }},
		{"zero price", func(l *models.Listing) { l.Price = 0 }},
		{"bad condition", func(l *models.Listing) { l.Condition = "mint" }},
		{"no images", func(l *models.Listing) { l.Images = nil }},
		{"too many images", func(l *models.Listing) {
			l.Images = make([]string, 11)
			for i := range l.Images {
				l.Images[i] = "https://via.placeholder.com/300x200"
			}
		}},
		{"unknown category", func(l *models.Listing) { l.Category.ID = "99" }},
		{"category all sentinel", func(l *models.Listing) { l.Category.ID = models.CategoryAll }},
		{"missing category", func(l *models.Listing) { l.Category.ID = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listing := validListing()
			tt.mutate(listing)
			created, err := ls.CreateListing(context.Background(), listing, seller)
			assert.Error(t, err)
			assert.Nil(t, created)
		})
	}
}

func TestCreateListingStampsDefaults(t *testing.T) {
	ls := newListingService()
	seller := sellerUser()

	created, err := ls.CreateListing(context.Background(), validListing(), seller)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, models.DefaultCurrency, created.Currency)
	assert.Equal(t, seller.ID, created.Seller.ID)
	assert.True(t, created.IsActive)
	assert.False(t, created.IsFeatured)
	assert.Zero(t, created.ViewCount)
	assert.Zero(t, created.FavoriteCount)
	// The category is resolved to its full record, not just the id.
	assert.Equal(t, "Electronics", created.Category.Name)

	// The new listing is searchable immediately.
	filters := models.DefaultFilters()
	filters.Query = "playstation"
	results, total, err := ls.Search(context.Background(), filters, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, created.ID, results[0].ID)
}

func TestCategories(t *testing.T) {
	ls := newListingService()

	categories, err := ls.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 6)
	assert.Equal(t, "Electronics", categories[0].Name)
	assert.NotEmpty(t, categories[0].NameAr)
}
