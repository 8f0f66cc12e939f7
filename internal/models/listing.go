package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCurrency is applied to listings created without an explicit
// currency code.
const DefaultCurrency = "SAR"

type Condition string

const (
	ConditionNew     Condition = "new"
	ConditionLikeNew Condition = "likeNew"
	ConditionGood    Condition = "good"
	ConditionFair    Condition = "fair"
	ConditionPoor    Condition = "poor"
)

// Conditions lists every valid condition, best to worst.
func Conditions() []Condition {
	return []Condition{ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair, ConditionPoor}
}

func (c Condition) IsValid() bool {
	switch c {
	case ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair, ConditionPoor:
		return true
	}
	return false
}

// Label returns the display label for the condition in the given language
// ("ar" gets the Arabic label, anything else English). The switch is
// exhaustive over the enum so a new condition fails to compile silently
// rather than missing a map key at runtime.
func (c Condition) Label(lang string) string {
	ar := len(lang) >= 2 && lang[:2] == "ar"
	switch c {
	case ConditionNew:
		if ar {
			return "جديد"
		}
		return "New"
	case ConditionLikeNew:
		if ar {
			return "ممتاز"
		}
		return "Like New"
	case ConditionGood:
		if ar {
			return "جيد جداً"
		}
		return "Good"
	case ConditionFair:
		if ar {
			return "جيد"
		}
		return "Fair"
	case ConditionPoor:
		if ar {
			return "مقبول"
		}
		return "Poor"
	}
	return string(c)
}

// CategoryAll is the sentinel category id meaning "no category filter".
const CategoryAll = "all"

type Category struct {
	ID     string `bson:"id" json:"id"`
	Name   string `bson:"name" json:"name"`
	NameAr string `bson:"name_ar" json:"name_ar"`
	Icon   string `bson:"icon" json:"icon"`
}

type Location struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
	Address   string  `bson:"address,omitempty" json:"address,omitempty"`
	City      string  `bson:"city" json:"city"`
	District  string  `bson:"district,omitempty" json:"district,omitempty"`
	Country   string  `bson:"country,omitempty" json:"country,omitempty"`
}

type Listing struct {
	ID          uuid.UUID `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title" validate:"required"`
	Description string    `bson:"description" json:"description" validate:"required"`
	Price       float64   `bson:"price" json:"price" validate:"gte=0"`
	Currency    string    `bson:"currency" json:"currency,omitempty"`
	Category    Category  `bson:"category" json:"category"`
	Condition   Condition `bson:"condition" json:"condition"`
	// First image is the primary/thumbnail. Non-empty for any listing
	// accepted through the sell flow; enforced at submission, not at rest.
	Images        []string  `bson:"images" json:"images"`
	Location      Location  `bson:"location" json:"location"`
	Seller        User      `bson:"seller" json:"seller"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
	IsActive      bool      `bson:"is_active" json:"is_active"`
	IsSold        bool      `bson:"is_sold,omitempty" json:"is_sold,omitempty"`
	IsFeatured    bool      `bson:"is_featured" json:"is_featured"`
	ViewCount     int       `bson:"view_count" json:"view_count"`
	FavoriteCount int       `bson:"favorite_count" json:"favorite_count"`
	Tags          []string  `bson:"tags" json:"tags"`
}

type SortBy string

const (
	SortNewest    SortBy = "newest"
	SortOldest    SortBy = "oldest"
	SortPriceLow  SortBy = "priceLow"
	SortPriceHigh SortBy = "priceHigh"
	// SortDistance needs a reference coordinate the app never supplies, so
	// it passes listings through in input order.
	SortDistance SortBy = "distance"
)

// DefaultMaxPrice is the price ceiling used when no upper bound (or a
// malformed one) is supplied.
const DefaultMaxPrice = 100000

// SearchFilters is the transient query object for one search session.
// MinPrice > MaxPrice is tolerated and simply matches nothing.
type SearchFilters struct {
	Query      string      `json:"query"`
	CategoryID string      `json:"category_id"`
	MinPrice   float64     `json:"min_price"`
	MaxPrice   float64     `json:"max_price"`
	Conditions []Condition `json:"conditions"`
	SortBy     SortBy      `json:"sort_by"`
}

// DefaultFilters mirrors the filter state a fresh search screen starts with.
func DefaultFilters() SearchFilters {
	return SearchFilters{
		MinPrice: 0,
		MaxPrice: DefaultMaxPrice,
		SortBy:   SortNewest,
	}
}
