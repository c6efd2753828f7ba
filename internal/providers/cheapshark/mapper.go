package cheapshark

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/preston-bernstein/game-deals-service/internal/domain/deals"
)

func mapDeal(d dealResponse) deals.Deal {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		title = strings.TrimSpace(d.InternalName)
	}
	return deals.Deal{
		DealID:          d.DealID,
		GameID:          d.GameID,
		Title:           title,
		ThumbnailURL:    strings.TrimSpace(d.Thumb),
		NormalPrice:     strings.TrimSpace(d.NormalPrice),
		SalePrice:       strings.TrimSpace(d.SalePrice),
		SavingsPercent:  parseSavings(d.Savings),
		StoreID:         strings.TrimSpace(d.StoreID),
		DealRating:      d.DealRating,
		MetacriticScore: d.MetacriticScore,
		SteamRatingText: d.SteamRatingText,
	}
}

func mapDeals(in []dealResponse) []deals.Deal {
	out := make([]deals.Deal, 0, len(in))
	for _, d := range in {
		out = append(out, mapDeal(d))
	}
	return out
}

// parseSavings accepts a JSON number or a numeric string. Anything else is treated as absent.
func parseSavings(raw json.RawMessage) *float64 {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		return validSavings(num)
	}

	var str string
	if err := json.Unmarshal(raw, &str); err != nil {
		return nil
	}
	num, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil {
		return nil
	}
	return validSavings(num)
}

func validSavings(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
