// Package catalog turns CheapShark records into the deal grid's data model.
//
// BuildQuery resolves the search box and store filter into one Query. An
// Acquirer runs it either as a store listing or as a title search whose first
// MaxEnriched hits are enriched with a per-game lookup. Enrichment failures
// drop the affected hit and never fail the acquisition; a failed primary
// request returns an *AcquisitionError.
//
// Sort and Window are pure helpers over the in-memory result set.
package catalog
