package cheapshark

import "encoding/json"

const providerName = "cheapshark"

// dealResponse is one element of the /deals array. Numeric fields arrive as strings.
type dealResponse struct {
	InternalName    string          `json:"internalName"`
	Title           string          `json:"title"`
	DealID          string          `json:"dealID"`
	StoreID         string          `json:"storeID"`
	GameID          string          `json:"gameID"`
	SalePrice       string          `json:"salePrice"`
	NormalPrice     string          `json:"normalPrice"`
	IsOnSale        string          `json:"isOnSale"`
	Savings         json.RawMessage `json:"savings"`
	MetacriticScore string          `json:"metacriticScore"`
	SteamRatingText string          `json:"steamRatingText"`
	DealRating      string          `json:"dealRating"`
	Thumb           string          `json:"thumb"`
}
