package render

import (
	"strconv"
	"strings"

	"github.com/preston-bernstein/game-deals-service/internal/domain/deals"
)

const (
	// PlaceholderImage replaces a missing thumbnail on the detail view.
	PlaceholderImage = "https://via.placeholder.com/300x400?text=No+Image"

	notAvailable = "Not available"
	noDiscount   = "No discount"
	noPrice      = "—"
)

// Card is the grid tile for one deal.
type Card struct {
	DealID         string
	Title          string
	ThumbnailURL   string
	NormalPrice    string
	HasNormalPrice bool
	SalePrice      string
	Savings        string
}

// Detail is the overlay shown for one deal.
type Detail struct {
	DealID          string
	Title           string
	ImageURL        string
	NormalPrice     string
	NormalStruck    bool
	SalePrice       string
	Discount        string
	StoreID         string
	DealRating      string
	MetacriticScore string
	SteamRatingText string
}

// CardFor formats a deal for the grid. An absent normal price shows a dash; absent
// sale price and zero savings are left blank.
func CardFor(d deals.Deal) Card {
	c := Card{
		DealID:       d.DealID,
		Title:        d.DisplayTitle(),
		ThumbnailURL: d.ThumbnailURL,
		NormalPrice:  noPrice,
	}
	if p, ok := displayPrice(d.NormalPrice); ok {
		c.NormalPrice = p
		c.HasNormalPrice = true
	}
	if p, ok := displayPrice(d.SalePrice); ok {
		c.SalePrice = p
	}
	if d.HasDiscount() {
		c.Savings = "Save " + strconv.Itoa(d.RoundedSavings()) + "%"
	}
	return c
}

// Cards formats a whole grid.
func Cards(records []deals.Deal) []Card {
	out := make([]Card, 0, len(records))
	for _, d := range records {
		out = append(out, CardFor(d))
	}
	return out
}

// DetailFor formats a deal for the detail overlay.
func DetailFor(d deals.Deal) Detail {
	out := Detail{
		DealID:          d.DealID,
		Title:           d.DisplayTitle(),
		ImageURL:        d.ThumbnailURL,
		NormalPrice:     notAvailable,
		SalePrice:       notAvailable,
		Discount:        noDiscount,
		StoreID:         d.StoreID,
		DealRating:      d.DealRating,
		MetacriticScore: d.MetacriticScore,
		SteamRatingText: d.SteamRatingText,
	}
	if out.ImageURL == "" {
		out.ImageURL = PlaceholderImage
	}
	if p, ok := displayPrice(d.NormalPrice); ok {
		out.NormalPrice = p
		out.NormalStruck = true
	}
	if p, ok := displayPrice(d.SalePrice); ok {
		out.SalePrice = p
	}
	if d.HasDiscount() {
		out.Discount = strconv.Itoa(d.RoundedSavings()) + "% off"
	}
	return out
}

// displayPrice prefers the normalized "$x.yy" form and falls back to the raw text.
func displayPrice(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if p, ok := deals.FormatPrice(raw); ok {
		return p, true
	}
	if raw == "" {
		return "", false
	}
	return "$" + raw, true
}
