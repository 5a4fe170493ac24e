package market

import (
	"math"
	"sort"
	"strings"

	"callboard/internal/api"
	"callboard/pkg/types"
)

// The asset, talent, studio and ticket marketplaces render the same card
// grid from the same backend shape; this package is the shared shaping and
// filtering behind all four pages.

const (
	defaultSeller   = "Marketplace Seller"
	defaultCategory = "General"
	defaultCurrency = "USD"
)

// Normalize maps one raw listing into the strict view model. Price is taken
// from price_cents when finite, else from a whole-currency price field.
func Normalize(raw api.RawListing, kind types.ListingKind) *types.Listing {
	listing := &types.Listing{
		ID:       raw.ID.String(),
		Kind:     kind,
		Title:    deref(raw.Title),
		Seller:   sellerName(raw),
		Category: fallback(raw.Category, defaultCategory),
		Currency: fallback(raw.Currency, defaultCurrency),
		Tags:     cleanTags(raw.Tags),
	}

	if raw.Location != nil && *raw.Location != "" {
		loc := *raw.Location
		listing.Location = &loc
	}
	if raw.ImageURL != nil && *raw.ImageURL != "" {
		img := *raw.ImageURL
		listing.ImageURL = &img
	}
	if raw.Rating.Valid {
		rating := raw.Rating.Value
		listing.Rating = &rating
	}

	switch {
	case raw.PriceCents.Valid && raw.PriceCents.Value >= 0:
		listing.PriceCents = int(raw.PriceCents.Value)
	case raw.Price.Valid && raw.Price.Value >= 0:
		listing.PriceCents = int(math.Round(raw.Price.Value * 100))
	}

	return listing
}

// NormalizeAll maps a raw collection, keeping input order.
func NormalizeAll(raw []api.RawListing, kind types.ListingKind) []*types.Listing {
	listings := make([]*types.Listing, 0, len(raw))
	for _, r := range raw {
		listings = append(listings, Normalize(r, kind))
	}
	return listings
}

// Haystack joins the searchable fields of a listing.
func Haystack(listing *types.Listing) string {
	fields := []string{
		listing.Title,
		listing.Seller,
		listing.Category,
	}
	if listing.Location != nil {
		fields = append(fields, *listing.Location)
	}
	if len(listing.Tags) > 0 {
		fields = append(fields, strings.Join(listing.Tags, " "))
	}

	nonEmpty := fields[:0]
	for _, f := range fields {
		if f != "" {
			nonEmpty = append(nonEmpty, f)
		}
	}
	return strings.Join(nonEmpty, " ")
}

// Filter applies the free-text query and an optional exact category filter.
// Blank query and blank category return the input slice unchanged.
func Filter(listings []*types.Listing, query, category string) []*types.Listing {
	query = strings.TrimSpace(query)
	if query == "" && category == "" {
		return listings
	}

	needle := strings.ToLower(query)
	matched := make([]*types.Listing, 0, len(listings))
	for _, l := range listings {
		if category != "" && l.Category != category {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(Haystack(l)), needle) {
			continue
		}
		matched = append(matched, l)
	}
	return matched
}

// Categories returns the sorted distinct categories of a collection, for the
// filter dropdown.
func Categories(listings []*types.Listing) []string {
	seen := make(map[string]bool, len(listings))
	var out []string
	for _, l := range listings {
		if l.Category == "" || seen[l.Category] {
			continue
		}
		seen[l.Category] = true
		out = append(out, l.Category)
	}
	sort.Strings(out)
	return out
}

func sellerName(raw api.RawListing) string {
	for _, candidate := range []*string{raw.Seller, raw.SellerName, raw.Username} {
		if candidate != nil && strings.TrimSpace(*candidate) != "" {
			return *candidate
		}
	}
	return defaultSeller
}

func cleanTags(raw api.StringList) []string {
	tags := make([]string, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, t := range raw {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		tags = append(tags, t)
	}
	return tags
}

func fallback(s *string, def string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return def
	}
	return *s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
