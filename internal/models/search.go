package models

import (
	"sort"
	"strings"
)

// ApplyFilters runs the search pipeline over a fully materialized catalog:
// free-text match, category, price range, condition set, then a stable
// sort. It is a pure function: the input slice is never reordered or
// mutated and every returned listing comes from the catalog.
//
// Coercing malformed numeric input to defaults is the caller's job; the
// pipeline itself never fails. A filter with MinPrice > MaxPrice matches
// nothing, which is accepted rather than corrected.
func ApplyFilters(catalog []*Listing, f SearchFilters) []*Listing {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]*Listing, 0, len(catalog))
	for _, listing := range catalog {
		if query != "" && !matchesQuery(listing, query) {
			continue
		}
		if f.CategoryID != "" && f.CategoryID != CategoryAll && listing.Category.ID != f.CategoryID {
			continue
		}
		if listing.Price < f.MinPrice || listing.Price > f.MaxPrice {
			continue
		}
		if len(f.Conditions) > 0 && !conditionAllowed(f.Conditions, listing.Condition) {
			continue
		}
		out = append(out, listing)
	}

	sortListings(out, f.SortBy)
	return out
}

// matchesQuery reports whether the lowercased query appears in the title,
// description, or any tag. No tokenization or ranking, just containment.
func matchesQuery(l *Listing, query string) bool {
	if strings.Contains(strings.ToLower(l.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(l.Description), query) {
		return true
	}
	for _, tag := range l.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func conditionAllowed(allowed []Condition, c Condition) bool {
	for _, a := range allowed {
		if a == c {
			return true
		}
	}
	return false
}

// sortListings orders the result in place. The sort must be stable so that
// listings with equal keys keep their catalog order.
func sortListings(listings []*Listing, by SortBy) {
	switch by {
	case SortNewest:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].CreatedAt.After(listings[j].CreatedAt)
		})
	case SortOldest:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].CreatedAt.Before(listings[j].CreatedAt)
		})
	case SortPriceLow:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].Price < listings[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].Price > listings[j].Price
		})
	case SortDistance:
		// No reference location is modeled, so distance keeps input order.
	}
}
