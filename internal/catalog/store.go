package catalog

import (
	"strings"

	"github.com/samber/lo"

	"github.com/five82/bargain/internal/cheapshark"
)

// Store labels a store id.
type Store struct {
	ID     string
	Name   string
	Active bool
}

// Stores is the store catalog in upstream order.
type Stores []Store

// FallbackStores is used when the store catalog cannot be fetched.
func FallbackStores() Stores {
	return Stores{
		{ID: "1", Name: "Steam", Active: true},
		{ID: "2", Name: "GamersGate", Active: true},
		{ID: "3", Name: "GreenManGaming", Active: true},
		{ID: "7", Name: "GOG", Active: true},
		{ID: "8", Name: "Origin", Active: true},
		{ID: "11", Name: "Humble Store", Active: true},
		{ID: "13", Name: "Uplay", Active: true},
		{ID: "15", Name: "Fanatical", Active: true},
		{ID: "25", Name: "Epic Games Store", Active: true},
		{ID: "27", Name: "Gamesplanet", Active: true},
		{ID: "30", Name: "IndieGala", Active: true},
	}
}

func storesFromWire(records []cheapshark.Store) Stores {
	stores := lo.Map(records, func(s cheapshark.Store, _ int) Store {
		return Store{
			ID:     strings.TrimSpace(s.StoreID),
			Name:   strings.TrimSpace(s.StoreName),
			Active: s.Active(),
		}
	})
	return lo.Filter(stores, func(s Store, _ int) bool { return s.ID != "" })
}

// Name returns the store name, or "Store <id>" for unknown ids.
func (s Stores) Name(id string) string {
	id = strings.TrimSpace(id)
	store, ok := lo.Find(s, func(st Store) bool { return st.ID == id })
	if !ok || store.Name == "" {
		return "Store " + id
	}
	return store.Name
}

// Cycle steps through active stores starting from current. Unknown ids
// restart the cycle at the first (or last, for negative steps) store.
func (s Stores) Cycle(current string, step int) string {
	active := lo.Filter(s, func(st Store, _ int) bool { return st.Active })
	if len(active) == 0 {
		return strings.TrimSpace(current)
	}
	_, idx, ok := lo.FindIndexOf(active, func(st Store) bool { return st.ID == strings.TrimSpace(current) })
	if !ok {
		if step < 0 {
			return active[len(active)-1].ID
		}
		return active[0].ID
	}
	n := len(active)
	return active[((idx+step)%n+n)%n].ID
}
