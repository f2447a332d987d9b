package catalog

import (
	"slices"
	"strings"
)

// Order is a result set ordering.
type Order string

const (
	OrderDeal      Order = "deal"
	OrderPriceAsc  Order = "price-asc"
	OrderPriceDesc Order = "price-desc"
	OrderSavings   Order = "savings"
)

// Orders lists every order in cycle sequence.
var Orders = []Order{OrderDeal, OrderPriceAsc, OrderPriceDesc, OrderSavings}

// ParseOrder resolves a name, defaulting to OrderDeal.
func ParseOrder(name string) (Order, bool) {
	candidate := Order(strings.ToLower(strings.TrimSpace(name)))
	if slices.Contains(Orders, candidate) {
		return candidate, true
	}
	return OrderDeal, false
}

// Next returns the following order in the cycle.
func (o Order) Next() Order {
	idx := slices.Index(Orders, o)
	return Orders[(idx+1)%len(Orders)]
}

// Label is the human readable name.
func (o Order) Label() string {
	switch o {
	case OrderPriceAsc:
		return "Price: low to high"
	case OrderPriceDesc:
		return "Price: high to low"
	case OrderSavings:
		return "Biggest savings"
	default:
		return "Best deal"
	}
}

// Sort reorders deals in place. Ties keep their relative order.
func Sort(deals []DealSummary, order Order) {
	switch order {
	case OrderPriceAsc:
		slices.SortStableFunc(deals, func(a, b DealSummary) int {
			return a.SalePrice.Cmp(b.SalePrice)
		})
	case OrderPriceDesc:
		slices.SortStableFunc(deals, func(a, b DealSummary) int {
			return b.SalePrice.Cmp(a.SalePrice)
		})
	case OrderSavings:
		slices.SortStableFunc(deals, func(a, b DealSummary) int {
			return b.Savings.Cmp(a.Savings)
		})
	default:
		slices.SortStableFunc(deals, func(a, b DealSummary) int {
			return a.Rank - b.Rank
		})
	}
}

// Window returns the visible prefix for page (0-based).
func Window(deals []DealSummary, page, pageSize int) []DealSummary {
	if pageSize <= 0 {
		pageSize = PageSize
	}
	page = max(page, 0)
	return deals[:min((page+1)*pageSize, len(deals))]
}

// HasMore reports whether another page can be revealed.
func HasMore(deals []DealSummary, page, pageSize int) bool {
	return len(Window(deals, page, pageSize)) < len(deals)
}
