package models

import (
	"time"

	"github.com/google/uuid"
)

// Mock data standing in for the marketplace backend. IDs are fixed so the
// seeded world looks the same on every start.

var (
	seedSellerAhmed    = uuid.MustParse("6b1d0c7e-1a6f-4f1e-9e64-111111111111")
	seedSellerSara     = uuid.MustParse("6b1d0c7e-1a6f-4f1e-9e64-222222222222")
	seedSellerMohammed = uuid.MustParse("6b1d0c7e-1a6f-4f1e-9e64-333333333333")

	SeedListingIPhone  = uuid.MustParse("a3f2d8b1-0001-4c2a-8d10-000000000001")
	SeedListingMacBook = uuid.MustParse("a3f2d8b1-0002-4c2a-8d10-000000000002")
	SeedListingGalaxy  = uuid.MustParse("a3f2d8b1-0003-4c2a-8d10-000000000003")
	SeedListingCamry   = uuid.MustParse("a3f2d8b1-0004-4c2a-8d10-000000000004")

	seedConversationIPhone = uuid.MustParse("c7e91f40-0001-4b5c-9a20-000000000001")
	seedConversationCamry  = uuid.MustParse("c7e91f40-0002-4b5c-9a20-000000000002")
)

func SeedCategories() []Category {
	return []Category{
		{ID: "1", Name: "Electronics", NameAr: "إلكترونيات", Icon: "phone-portrait"},
		{ID: "2", Name: "Vehicles", NameAr: "سيارات ومركبات", Icon: "car"},
		{ID: "3", Name: "Real Estate", NameAr: "عقارات", Icon: "home"},
		{ID: "4", Name: "Fashion", NameAr: "أزياء وإكسسوارات", Icon: "shirt"},
		{ID: "5", Name: "Home & Garden", NameAr: "منزل وحديقة", Icon: "leaf"},
		{ID: "6", Name: "Sports", NameAr: "رياضة ولياقة", Icon: "football"},
	}
}

func riyadh(district string) Location {
	return Location{
		Latitude:  24.7136,
		Longitude: 46.6753,
		City:      "Riyadh",
		District:  district,
		Country:   "Saudi Arabia",
	}
}

func seedSeller(id uuid.UUID, email, fullName, phone string, rating float64, reviews int) User {
	return User{
		ID:          id,
		Email:       email,
		FullName:    fullName,
		PhoneNumber: phone,
		IsVerified:  true,
		Rating:      rating,
		ReviewCount: reviews,
		JoinedDate:  time.Now().AddDate(-1, 0, 0),
	}
}

func SeedListings() []*Listing {
	now := time.Now()
	categories := SeedCategories()
	ahmed := seedSeller(seedSellerAhmed, "seller@example.com", "Ahmed Al-Rashid", "+966501234567", 4.8, 25)
	sara := seedSeller(seedSellerSara, "seller2@example.com", "Sara Mohammed", "+966501234568", 4.9, 18)
	mohammed := seedSeller(seedSellerMohammed, "seller3@example.com", "Mohammed Ali", "+966501234569", 4.7, 32)

	return []*Listing{
		{
			ID:            SeedListingIPhone,
			Title:         "iPhone 14 Pro Max 256GB",
			Description:   "Excellent condition, barely used, with original box and accessories",
			Price:         4500,
			Currency:      DefaultCurrency,
			Category:      categories[0],
			Condition:     ConditionLikeNew,
			Images:        []string{"https://via.placeholder.com/300x200"},
			Location:      riyadh("Al Olaya"),
			Seller:        ahmed,
			CreatedAt:     now.Add(-2 * time.Hour),
			UpdatedAt:     now.Add(-2 * time.Hour),
			IsActive:      true,
			IsFeatured:    true,
			ViewCount:     156,
			FavoriteCount: 23,
			Tags:          []string{"iPhone", "Apple", "Smartphone"},
		},
		{
			ID:            SeedListingMacBook,
			Title:         "MacBook Pro 16\" M2",
			Description:   "Latest MacBook Pro with M2 chip, perfect for professionals.",
			Price:         12000,
			Currency:      DefaultCurrency,
			Category:      categories[0],
			Condition:     ConditionNew,
			Images:        []string{"https://via.placeholder.com/300x200"},
			Location:      riyadh("Al Olaya"),
			Seller:        sara,
			CreatedAt:     now.Add(-26 * time.Hour),
			UpdatedAt:     now.Add(-26 * time.Hour),
			IsActive:      true,
			IsFeatured:    true,
			ViewCount:     234,
			FavoriteCount: 45,
			Tags:          []string{"MacBook", "Apple", "Laptop"},
		},
		{
			ID:            SeedListingGalaxy,
			Title:         "Samsung Galaxy S23 Ultra",
			Description:   "Brand new Samsung Galaxy S23 Ultra with all accessories.",
			Price:         4200,
			Currency:      DefaultCurrency,
			Category:      categories[0],
			Condition:     ConditionGood,
			Images:        []string{"https://via.placeholder.com/300x200"},
			Location:      riyadh("Al Olaya"),
			Seller:        mohammed,
			CreatedAt:     now.Add(-50 * time.Hour),
			UpdatedAt:     now.Add(-50 * time.Hour),
			IsActive:      true,
			IsFeatured:    false,
			ViewCount:     98,
			FavoriteCount: 15,
			Tags:          []string{"Samsung", "Galaxy", "Android"},
		},
		{
			ID:            SeedListingCamry,
			Title:         "Toyota Camry 2021",
			Description:   "Single owner, full service history, low mileage.",
			Price:         85000,
			Currency:      DefaultCurrency,
			Category:      categories[1],
			Condition:     ConditionGood,
			Images:        []string{"https://via.placeholder.com/300x200"},
			Location:      riyadh("Al Malaz"),
			Seller:        mohammed,
			CreatedAt:     now.Add(-72 * time.Hour),
			UpdatedAt:     now.Add(-72 * time.Hour),
			IsActive:      true,
			IsFeatured:    false,
			ViewCount:     312,
			FavoriteCount: 41,
			Tags:          []string{"Toyota", "Camry", "Sedan"},
		},
	}
}

// SeedConversations builds the mock inbox for the given user.
func SeedConversations(userID uuid.UUID) ([]*Conversation, map[uuid.UUID][]*Message) {
	now := time.Now()
	ahmed := seedSeller(seedSellerAhmed, "seller@example.com", "Ahmed Al-Rashid", "+966501234567", 4.8, 25)
	mohammed := seedSeller(seedSellerMohammed, "seller3@example.com", "Mohammed Ali", "+966501234569", 4.7, 32)
	me := User{ID: userID, FullName: "You"}

	iphoneID := SeedListingIPhone
	camryID := SeedListingCamry

	msgs := map[uuid.UUID][]*Message{
		seedConversationIPhone: {
			{
				ID:             uuid.New(),
				ConversationID: seedConversationIPhone,
				SenderID:       userID,
				ReceiverID:     ahmed.ID,
				Content:        "Is the iPhone still available?",
				Type:           MessageTypeText,
				Timestamp:      now.Add(-3 * time.Hour),
				IsRead:         true,
			},
			{
				ID:             uuid.New(),
				ConversationID: seedConversationIPhone,
				SenderID:       ahmed.ID,
				ReceiverID:     userID,
				Content:        "Yes, it is. Would you like to see it?",
				Type:           MessageTypeText,
				Timestamp:      now.Add(-2 * time.Hour),
			},
			{
				ID:             uuid.New(),
				ConversationID: seedConversationIPhone,
				SenderID:       ahmed.ID,
				ReceiverID:     userID,
				Content:        "I can meet this evening in Al Olaya.",
				Type:           MessageTypeText,
				Timestamp:      now.Add(-90 * time.Minute),
			},
		},
		seedConversationCamry: {
			{
				ID:             uuid.New(),
				ConversationID: seedConversationCamry,
				SenderID:       mohammed.ID,
				ReceiverID:     userID,
				Content:        "Would you accept 80,000 SAR?",
				Type:           MessageTypeOffer,
				Timestamp:      now.Add(-26 * time.Hour),
			},
		},
	}

	conversations := []*Conversation{
		{
			ID:           seedConversationIPhone,
			Participants: []User{me, ahmed},
			LastMessage:  msgs[seedConversationIPhone][2],
			UnreadCount:  2,
			ListingID:    &iphoneID,
		},
		{
			ID:           seedConversationCamry,
			Participants: []User{me, mohammed},
			LastMessage:  msgs[seedConversationCamry][0],
			UnreadCount:  1,
			ListingID:    &camryID,
		},
	}
	return conversations, msgs
}

func SeedNotifications(userID uuid.UUID) []*Notification {
	now := time.Now()
	return []*Notification{
		{
			ID:        uuid.New(),
			UserID:    userID,
			Type:      NotificationMessage,
			Title:     "New message",
			Body:      "Ahmed Al-Rashid replied about iPhone 14 Pro Max",
			CreatedAt: now.Add(-90 * time.Minute),
		},
		{
			ID:        uuid.New(),
			UserID:    userID,
			Type:      NotificationOffer,
			Title:     "New offer",
			Body:      "You received an offer of 80,000 SAR on Toyota Camry 2021",
			CreatedAt: now.Add(-26 * time.Hour),
		},
		{
			ID:        uuid.New(),
			UserID:    userID,
			Type:      NotificationListing,
			Title:     "Listing approved",
			Body:      "Your listing is now visible to buyers",
			IsRead:    true,
			CreatedAt: now.Add(-2 * 24 * time.Hour),
		},
		{
			ID:        uuid.New(),
			UserID:    userID,
			Type:      NotificationSystem,
			Title:     "Welcome to Souq+",
			Body:      "Complete your profile to start selling",
			IsRead:    true,
			CreatedAt: now.Add(-7 * 24 * time.Hour),
		},
	}
}
