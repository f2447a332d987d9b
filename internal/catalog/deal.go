package catalog

import (
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/five82/bargain/internal/cheapshark"
)

const (
	// PageSize is the number of cards revealed per page.
	PageSize = 12
	// MaxEnriched caps the number of search hits that get a detail lookup.
	MaxEnriched = 12
	// ListingPageSize is the pageSize sent to the deals endpoint.
	ListingPageSize = 20
	// SearchLimit is the limit sent to the title search endpoint.
	SearchLimit = 20
	// MaxAlternates is the number of offers listed after the best one.
	MaxAlternates = 5
)

var hundred = decimal.NewFromInt(100)

// DealSummary is one card in the result grid.
type DealSummary struct {
	ID          string
	Title       string
	ThumbURL    string
	SalePrice   decimal.Decimal
	NormalPrice decimal.Decimal
	Savings     decimal.Decimal
	StoreID     string
	DealID      string
	Rank        int
}

// Discounted reports whether the savings badge should be shown.
func (d DealSummary) Discounted() bool {
	return d.Savings.IsPositive()
}

// GameDetail is the payload of the detail overlay.
type GameDetail struct {
	GameID       string
	Title        string
	ThumbURL     string
	Offers       []Offer
	CheapestEver *decimal.Decimal
}

// Offer is one store's current price for a game.
type Offer struct {
	StoreID     string
	DealID      string
	Price       decimal.Decimal
	RetailPrice decimal.Decimal
	Savings     decimal.Decimal
}

// Discounted reports whether the savings badge should be shown.
func (o Offer) Discounted() bool {
	return o.Savings.IsPositive()
}

// BestOffer returns the first offer, which upstream orders cheapest first.
func (g GameDetail) BestOffer() (Offer, bool) {
	if len(g.Offers) == 0 {
		return Offer{}, false
	}
	return g.Offers[0], true
}

// Alternates returns up to MaxAlternates offers following the best one.
func (g GameDetail) Alternates() []Offer {
	if len(g.Offers) <= 1 {
		return nil
	}
	end := min(len(g.Offers), 1+MaxAlternates)
	return g.Offers[1:end]
}

// normalizePrices repairs upstream prices so that sale <= normal and
// savings >= 0. Savings are derived when upstream omitted them.
func normalizePrices(sale, normal, savings decimal.Decimal, hasSavings bool) (decimal.Decimal, decimal.Decimal, decimal.Decimal) {
	if sale.IsNegative() {
		sale = decimal.Zero
	}
	if !normal.IsPositive() || normal.LessThan(sale) {
		normal = sale
	}
	if !hasSavings {
		savings = decimal.Zero
		if normal.IsPositive() {
			savings = decimal.NewFromInt(1).Sub(sale.Div(normal)).Mul(hundred).Round(6)
		}
	}
	if savings.IsNegative() {
		savings = decimal.Zero
	}
	return sale, normal, savings
}

func fromListing(d cheapshark.Deal, rank int) DealSummary {
	savings, ok := d.ParsedSavings()
	sale, normal, savings := normalizePrices(d.ParsedSalePrice(), d.ParsedNormalPrice(), savings, ok)
	return DealSummary{
		ID:          strings.TrimSpace(d.GameID),
		Title:       strings.TrimSpace(d.Title),
		ThumbURL:    strings.TrimSpace(d.Thumb),
		SalePrice:   sale,
		NormalPrice: normal,
		Savings:     savings,
		StoreID:     strings.TrimSpace(d.StoreID),
		DealID:      strings.TrimSpace(d.DealID),
		Rank:        rank,
	}
}

func fromEnrichment(hit cheapshark.GameHit, lookup *cheapshark.GameLookup, best cheapshark.GameDeal) DealSummary {
	savings, ok := best.ParsedSavings()
	sale, normal, savings := normalizePrices(best.ParsedPrice(), best.ParsedRetailPrice(), savings, ok)
	return DealSummary{
		ID:          strings.TrimSpace(hit.GameID),
		Title:       lo.CoalesceOrEmpty(strings.TrimSpace(hit.External), strings.TrimSpace(lookup.Info.Title)),
		ThumbURL:    lo.CoalesceOrEmpty(strings.TrimSpace(hit.Thumb), strings.TrimSpace(lookup.Info.Thumb)),
		SalePrice:   sale,
		NormalPrice: normal,
		Savings:     savings,
		StoreID:     strings.TrimSpace(best.StoreID),
		DealID:      strings.TrimSpace(best.DealID),
	}
}

func detailFromLookup(gameID string, lookup *cheapshark.GameLookup) *GameDetail {
	detail := &GameDetail{
		GameID:   gameID,
		Title:    strings.TrimSpace(lookup.Info.Title),
		ThumbURL: strings.TrimSpace(lookup.Info.Thumb),
		Offers: lo.Map(lookup.Deals, func(d cheapshark.GameDeal, _ int) Offer {
			savings, ok := d.ParsedSavings()
			price, retail, savings := normalizePrices(d.ParsedPrice(), d.ParsedRetailPrice(), savings, ok)
			return Offer{
				StoreID:     strings.TrimSpace(d.StoreID),
				DealID:      strings.TrimSpace(d.DealID),
				Price:       price,
				RetailPrice: retail,
				Savings:     savings,
			}
		}),
	}
	if lookup.CheapestPriceEver != nil {
		if low, err := decimal.NewFromString(strings.TrimSpace(lookup.CheapestPriceEver.Price)); err == nil {
			detail.CheapestEver = &low
		}
	}
	return detail
}
