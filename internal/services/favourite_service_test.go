package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/souqplus/api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFavouriteService() (*FavouriteService, models.CatalogRepo) {
	catalog := models.NewMemoryCatalog(models.SeedListings(), models.SeedCategories())
	return NewFavouriteService(models.NewMemoryFavourites(), catalog), catalog
}

func TestAddToFavouritesMovesCounterOnce(t *testing.T) {
	fs, catalog := newFavouriteService()
	userID := uuid.New()
	listingID := models.SeedListingIPhone

	before, err := catalog.GetByID(context.Background(), listingID)
	require.NoError(t, err)
	initial := before.FavoriteCount

	fav, err := fs.AddToFavourites(context.Background(), userID, listingID.String())
	require.NoError(t, err)
	assert.Contains(t, fav.Items, listingID.String())

	after, err := catalog.GetByID(context.Background(), listingID)
	require.NoError(t, err)
	assert.Equal(t, initial+1, after.FavoriteCount)

	// Favouriting the same listing again is a no-op for the counter.
	_, err = fs.AddToFavourites(context.Background(), userID, listingID.String())
	require.NoError(t, err)
	after, err = catalog.GetByID(context.Background(), listingID)
	require.NoError(t, err)
	assert.Equal(t, initial+1, after.FavoriteCount)
}

func TestAddToFavouritesUnknownListing(t *testing.T) {
	fs, _ := newFavouriteService()

	_, err := fs.AddToFavourites(context.Background(), uuid.New(), uuid.NewString())
	assert.Error(t, err)

	_, err = fs.AddToFavourites(context.Background(), uuid.New(), "not-a-uuid")
	assert.Error(t, err)

	_, err = fs.AddToFavourites(context.Background(), uuid.Nil, models.SeedListingIPhone.String())
	assert.Error(t, err)
}

func TestRemoveFromFavourites(t *testing.T) {
	fs, catalog := newFavouriteService()
	userID := uuid.New()
	listingID := models.SeedListingGalaxy

	_, err := fs.AddToFavourites(context.Background(), userID, listingID.String())
	require.NoError(t, err)

	withFav, err := catalog.GetByID(context.Background(), listingID)
	require.NoError(t, err)
	counted := withFav.FavoriteCount

	require.NoError(t, fs.RemoveFromFavourites(context.Background(), userID, listingID.String()))

	after, err := catalog.GetByID(context.Background(), listingID)
	require.NoError(t, err)
	assert.Equal(t, counted-1, after.FavoriteCount)

	// Removing something never favourited leaves the counter alone.
	require.NoError(t, fs.RemoveFromFavourites(context.Background(), userID, listingID.String()))
	again, err := catalog.GetByID(context.Background(), listingID)
	require.NoError(t, err)
	assert.Equal(t, after.FavoriteCount, again.FavoriteCount)
}

func TestGetFavouriteListingsSkipsMissing(t *testing.T) {
	catalog := models.NewMemoryCatalog(models.SeedListings(), models.SeedCategories())
	favourites := models.NewMemoryFavourites()
	fs := NewFavouriteService(favourites, catalog)
	userID := uuid.New()

	_, err := fs.AddToFavourites(context.Background(), userID, models.SeedListingIPhone.String())
	require.NoError(t, err)

	// A favourite pointing at a listing that left the catalog is skipped.
	_, err = favourites.AddToFavourites(context.Background(), userID, uuid.NewString())
	require.NoError(t, err)

	listings, err := fs.GetFavouriteListings(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, models.SeedListingIPhone, listings[0].ID)
}
