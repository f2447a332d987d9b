package catalog

import (
	"fmt"
	"strings"
)

// DefaultStore is the store listed when no filter is selected (Steam).
const DefaultStore = "1"

// Kind selects the acquisition mode.
type Kind int

const (
	// KindListing lists current deals for one store.
	KindListing Kind = iota
	// KindSearch searches by title and enriches each hit.
	KindSearch
)

// Query is a fully resolved acquisition request.
type Query struct {
	Kind    Kind
	Term    string
	StoreID string
}

// BuildQuery picks search mode for a non-blank term and listing mode otherwise.
// The store filter only applies to listings.
func BuildQuery(term, storeFilter, defaultStore string) Query {
	if trimmed := strings.TrimSpace(term); trimmed != "" {
		return Query{Kind: KindSearch, Term: trimmed}
	}
	store := strings.TrimSpace(storeFilter)
	if store == "" {
		store = strings.TrimSpace(defaultStore)
	}
	if store == "" {
		store = DefaultStore
	}
	return Query{Kind: KindListing, StoreID: store}
}

func (q Query) String() string {
	if q.Kind == KindSearch {
		return fmt.Sprintf("search %q", q.Term)
	}
	return fmt.Sprintf("listing store=%s", q.StoreID)
}
