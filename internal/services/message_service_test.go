package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/souqplus/api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededInbox(userID uuid.UUID) *MessageService {
	conversations, messages := models.SeedConversations(userID)
	return NewMessageService(models.NewMemoryMessages(conversations, messages))
}

func TestListConversationsForParticipantOnly(t *testing.T) {
	userID := uuid.New()
	ms := seededInbox(userID)

	conversations, err := ms.ListConversations(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, conversations, 2)

	// Most recent activity first, regardless of map iteration order.
	assert.True(t, conversations[0].LastMessage.Timestamp.After(conversations[1].LastMessage.Timestamp))

	// A stranger sees an empty inbox, not someone else's.
	other, err := ms.ListConversations(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestOpenConversationClearsUnread(t *testing.T) {
	userID := uuid.New()
	ms := seededInbox(userID)

	conversations, err := ms.ListConversations(context.Background(), userID)
	require.NoError(t, err)
	conv := conversations[0]
	require.Positive(t, conv.UnreadCount)

	messages, err := ms.OpenConversation(context.Background(), conv.ID, userID)
	require.NoError(t, err)
	assert.NotEmpty(t, messages)
	assert.Zero(t, conv.UnreadCount)
}

func TestOpenConversationRejectsNonParticipant(t *testing.T) {
	userID := uuid.New()
	ms := seededInbox(userID)

	conversations, err := ms.ListConversations(context.Background(), userID)
	require.NoError(t, err)

	_, err = ms.OpenConversation(context.Background(), conversations[0].ID, uuid.New())
	assert.Error(t, err)
}

func TestSendMessageUpdatesLastMessage(t *testing.T) {
	userID := uuid.New()
	ms := seededInbox(userID)

	conversations, err := ms.ListConversations(context.Background(), userID)
	require.NoError(t, err)
	conv := conversations[0]

	msg, err := ms.SendMessage(context.Background(), conv.ID, userID, "  still available?  ")
	require.NoError(t, err)
	assert.Equal(t, "still available?", msg.Content)
	assert.Equal(t, userID, msg.SenderID)
	assert.NotEqual(t, userID, msg.ReceiverID)
	assert.Equal(t, msg, conv.LastMessage)

	_, err = ms.SendMessage(context.Background(), conv.ID, userID, "   ")
	assert.Error(t, err)
}

func TestNotificationFlow(t *testing.T) {
	userID := uuid.New()
	ns := NewNotificationService(models.NewMemoryNotifications(models.SeedNotifications(userID)))

	notifications, unread, err := ns.List(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, notifications, 4)
	assert.Equal(t, 2, unread)

	require.NoError(t, ns.MarkRead(context.Background(), notifications[0].ID, userID))
	_, unread, err = ns.List(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 1, unread)

	// Marking someone else's notification fails.
	assert.Error(t, ns.MarkRead(context.Background(), notifications[1].ID, uuid.New()))

	require.NoError(t, ns.MarkAllRead(context.Background(), userID))
	_, unread, err = ns.List(context.Background(), userID)
	require.NoError(t, err)
	assert.Zero(t, unread)
}

func TestOfferLifecycle(t *testing.T) {
	catalog := models.NewMemoryCatalog(models.SeedListings(), models.SeedCategories())
	os := NewOfferService(models.NewMemoryOffers(), catalog)
	buyerID := uuid.New()

	listing, err := catalog.GetByID(context.Background(), models.SeedListingCamry)
	require.NoError(t, err)
	sellerID := listing.Seller.ID

	offer, err := os.MakeOffer(context.Background(), buyerID, models.SeedListingCamry, 80000, "cash ready")
	require.NoError(t, err)
	assert.Equal(t, models.OfferPending, offer.Status)

	// The seller cannot bid on their own listing.
	_, err = os.MakeOffer(context.Background(), sellerID, models.SeedListingCamry, 80000, "")
	assert.Error(t, err)

	// Only the seller sees and answers offers.
	_, err = os.ListForListing(context.Background(), buyerID, models.SeedListingCamry)
	assert.Error(t, err)
	offers, err := os.ListForListing(context.Background(), sellerID, models.SeedListingCamry)
	require.NoError(t, err)
	assert.Len(t, offers, 1)

	_, err = os.Respond(context.Background(), buyerID, offer.ID, true)
	assert.Error(t, err)

	accepted, err := os.Respond(context.Background(), sellerID, offer.ID, true)
	require.NoError(t, err)
	assert.Equal(t, models.OfferAccepted, accepted.Status)

	// A decided offer cannot be answered twice.
	_, err = os.Respond(context.Background(), sellerID, offer.ID, false)
	assert.Error(t, err)
}

func TestOfferRejectsNonPositiveAmount(t *testing.T) {
	catalog := models.NewMemoryCatalog(models.SeedListings(), models.SeedCategories())
	os := NewOfferService(models.NewMemoryOffers(), catalog)

	_, err := os.MakeOffer(context.Background(), uuid.New(), models.SeedListingCamry, 0, "")
	assert.Error(t, err)
	_, err = os.MakeOffer(context.Background(), uuid.New(), models.SeedListingCamry, -50, "")
	assert.Error(t, err)
}
