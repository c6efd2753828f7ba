package deals

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// UntitledGame is shown when a deal arrives without a title.
const UntitledGame = "Untitled game"

// Deal is one game's price/discount listing as returned by the deals source.
// Empty strings mark absent fields; a nil SavingsPercent means no discount is known.
// Deals are values and are never mutated once fetched.
type Deal struct {
	DealID          string   `json:"dealId"`
	GameID          string   `json:"gameId,omitempty"`
	Title           string   `json:"title"`
	ThumbnailURL    string   `json:"thumbnailUrl"`
	NormalPrice     string   `json:"normalPrice,omitempty"`
	SalePrice       string   `json:"salePrice,omitempty"`
	SavingsPercent  *float64 `json:"savingsPercent,omitempty"`
	StoreID         string   `json:"storeId,omitempty"`
	DealRating      string   `json:"dealRating,omitempty"`
	MetacriticScore string   `json:"metacriticScore,omitempty"`
	SteamRatingText string   `json:"steamRatingText,omitempty"`
}

// DisplayTitle returns the title or a placeholder when it is absent.
func (d Deal) DisplayTitle() string {
	if t := strings.TrimSpace(d.Title); t != "" {
		return t
	}
	return UntitledGame
}

// Savings returns the savings percent, treating an absent value as zero.
func (d Deal) Savings() float64 {
	if d.SavingsPercent == nil || math.IsNaN(*d.SavingsPercent) {
		return 0
	}
	return *d.SavingsPercent
}

// RoundedSavings returns the savings percent rounded to the nearest integer.
func (d Deal) RoundedSavings() int {
	return int(math.Round(d.Savings()))
}

// HasDiscount reports whether a positive rounded discount should be displayed.
func (d Deal) HasDiscount() bool {
	return d.RoundedSavings() > 0
}

// EffectivePrice is the sale price when present and parseable, else the normal
// price when present and parseable, else zero.
func (d Deal) EffectivePrice() decimal.Decimal {
	if p, ok := ParsePrice(d.SalePrice); ok {
		return p
	}
	if p, ok := ParsePrice(d.NormalPrice); ok {
		return p
	}
	return decimal.Zero
}

// ParsePrice parses a decimal price string. Absent or malformed prices report false.
func ParsePrice(raw string) (decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, false
	}
	p, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	return p, true
}

// FormatPrice renders a price string with a dollar sign and two decimals.
// It reports false when the price is absent or malformed.
func FormatPrice(raw string) (string, bool) {
	p, ok := ParsePrice(raw)
	if !ok {
		return "", false
	}
	return "$" + p.StringFixed(2), true
}

// PageResponse is the JSON payload for a listing view.
type PageResponse struct {
	Page            int    `json:"page"`
	PageIndex       int    `json:"pageIndex"`
	PreviousEnabled bool   `json:"previousEnabled"`
	Busy            bool   `json:"busy"`
	Degraded        bool   `json:"degraded"`
	Notice          string `json:"notice,omitempty"`
	Sort            string `json:"sort,omitempty"`
	Store           string `json:"store,omitempty"`
	Query           string `json:"query,omitempty"`
	Deals           []Deal `json:"deals"`
}
