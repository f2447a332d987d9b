package cheapshark

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Deal mirrors one record of the deals endpoint.
type Deal struct {
	InternalName       string `json:"internalName"`
	Title              string `json:"title"`
	DealID             string `json:"dealID"`
	StoreID            string `json:"storeID"`
	GameID             string `json:"gameID"`
	SalePrice          string `json:"salePrice"`
	NormalPrice        string `json:"normalPrice"`
	IsOnSale           string `json:"isOnSale"`
	Savings            string `json:"savings"`
	MetacriticScore    string `json:"metacriticScore"`
	SteamRatingText    string `json:"steamRatingText"`
	SteamRatingPercent string `json:"steamRatingPercent"`
	SteamAppID         string `json:"steamAppID"`
	ReleaseDate        int64  `json:"releaseDate"`
	LastChange         int64  `json:"lastChange"`
	DealRating         string `json:"dealRating"`
	Thumb              string `json:"thumb"`
}

// ParsedSalePrice returns the sale price as a decimal, zero when unparsable.
func (d Deal) ParsedSalePrice() decimal.Decimal {
	return parseDecimal(d.SalePrice)
}

// ParsedNormalPrice returns the normal price as a decimal, zero when unparsable.
func (d Deal) ParsedNormalPrice() decimal.Decimal {
	return parseDecimal(d.NormalPrice)
}

// ParsedSavings returns the savings percentage and whether upstream supplied one.
func (d Deal) ParsedSavings() (decimal.Decimal, bool) {
	return parseOptionalDecimal(d.Savings)
}

// GameHit mirrors one record of a title search.
type GameHit struct {
	GameID         string `json:"gameID"`
	SteamAppID     string `json:"steamAppID"`
	Cheapest       string `json:"cheapest"`
	CheapestDealID string `json:"cheapestDealID"`
	External       string `json:"external"`
	InternalName   string `json:"internalName"`
	Thumb          string `json:"thumb"`
}

// GameLookup mirrors the games?id= payload.
type GameLookup struct {
	Info              GameInfo      `json:"info"`
	CheapestPriceEver *CheapestEver `json:"cheapestPriceEver"`
	Deals             []GameDeal    `json:"deals"`
}

// GameInfo holds the display fields of a game.
type GameInfo struct {
	Title      string `json:"title"`
	SteamAppID string `json:"steamAppID"`
	Thumb      string `json:"thumb"`
}

// CheapestEver records the historical low for a game.
type CheapestEver struct {
	Price string `json:"price"`
	Date  int64  `json:"date"`
}

// GameDeal is one store's offer inside a GameLookup.
type GameDeal struct {
	StoreID     string `json:"storeID"`
	DealID      string `json:"dealID"`
	Price       string `json:"price"`
	RetailPrice string `json:"retailPrice"`
	Savings     string `json:"savings"`
}

// ParsedPrice returns the offer price as a decimal.
func (d GameDeal) ParsedPrice() decimal.Decimal {
	return parseDecimal(d.Price)
}

// ParsedRetailPrice returns the retail price as a decimal.
func (d GameDeal) ParsedRetailPrice() decimal.Decimal {
	return parseDecimal(d.RetailPrice)
}

// ParsedSavings returns the savings percentage and whether upstream supplied one.
func (d GameDeal) ParsedSavings() (decimal.Decimal, bool) {
	return parseOptionalDecimal(d.Savings)
}

// Store mirrors one record of the stores endpoint.
type Store struct {
	StoreID   string `json:"storeID"`
	StoreName string `json:"storeName"`
	IsActive  int    `json:"isActive"`
}

// Active reports whether the store currently lists deals.
func (s Store) Active() bool {
	return s.IsActive != 0
}

func parseDecimal(value string) decimal.Decimal {
	d, _ := parseOptionalDecimal(value)
	return d
}

func parseOptionalDecimal(value string) (decimal.Decimal, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
