package testutil

import "github.com/preston-bernstein/game-deals-service/internal/domain/deals"

// SampleDeal returns a discounted deal with the given id and title.
func SampleDeal(id, title string) deals.Deal {
	savings := 50.0
	return deals.Deal{
		DealID:          id,
		GameID:          "game-" + id,
		Title:           title,
		ThumbnailURL:    "https://cdn.example.com/" + id + ".jpg",
		NormalPrice:     "19.99",
		SalePrice:       "9.99",
		SavingsPercent:  &savings,
		StoreID:         "1",
		DealRating:      "8.5",
		MetacriticScore: "88",
		SteamRatingText: "Very Positive",
	}
}

// SampleDeals returns n sample deals with ids prefix-0..prefix-(n-1).
func SampleDeals(prefix string, n int) []deals.Deal {
	out := make([]deals.Deal, 0, n)
	for i := 0; i < n; i++ {
		id := prefix + "-" + string(rune('a'+i))
		out = append(out, SampleDeal(id, "Game "+id))
	}
	return out
}
