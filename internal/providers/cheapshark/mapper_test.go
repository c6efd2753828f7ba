package cheapshark

import (
	"encoding/json"
	"testing"
)

func TestMapDealTransformsFields(t *testing.T) {
	d := mapDeal(dealResponse{
		Title:           "  Celeste ",
		DealID:          "abc",
		StoreID:         "1",
		GameID:          "9",
		SalePrice:       "4.99",
		NormalPrice:     "19.99",
		Savings:         json.RawMessage(`"75.037519"`),
		MetacriticScore: "92",
		SteamRatingText: "Overwhelmingly Positive",
		DealRating:      "10.0",
		Thumb:           " https://cdn.example.com/c.jpg ",
	})

	if d.Title != "Celeste" || d.ThumbnailURL != "https://cdn.example.com/c.jpg" {
		t.Fatalf("expected trimmed title and thumb, got %+v", d)
	}
	if d.DealID != "abc" || d.GameID != "9" || d.StoreID != "1" {
		t.Fatalf("unexpected ids %+v", d)
	}
	if d.RoundedSavings() != 75 {
		t.Fatalf("expected savings 75, got %v", d.RoundedSavings())
	}
	if d.MetacriticScore != "92" || d.DealRating != "10.0" {
		t.Fatalf("unexpected ratings %+v", d)
	}
}

func TestParseSavingsVariants(t *testing.T) {
	cases := []struct {
		raw     string
		want    float64
		present bool
	}{
		{``, 0, false},
		{`null`, 0, false},
		{`42.5`, 42.5, true},
		{`"33.3"`, 33.3, true},
		{`" 10 "`, 10, true},
		{`"n/a"`, 0, false},
		{`"NaN"`, 0, false},
		{`true`, 0, false},
	}

	for _, c := range cases {
		got := parseSavings(json.RawMessage(c.raw))
		if (got != nil) != c.present {
			t.Fatalf("raw %q: expected present=%v, got %v", c.raw, c.present, got)
		}
		if got != nil && *got != c.want {
			t.Fatalf("raw %q: expected %v, got %v", c.raw, c.want, *got)
		}
	}
}

func TestMapDealsPreservesOrder(t *testing.T) {
	out := mapDeals([]dealResponse{{DealID: "1"}, {DealID: "2"}, {DealID: "3"}})
	if len(out) != 3 || out[0].DealID != "1" || out[2].DealID != "3" {
		t.Fatalf("unexpected order %+v", out)
	}
}
