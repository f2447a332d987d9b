package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/five82/bargain/internal/cheapshark"
)

// ErrNoOffers marks a game whose detail lookup returned no deals.
var ErrNoOffers = errors.New("no offers")

// AcquisitionError reports a failed primary request. The result set must be
// treated as empty.
type AcquisitionError struct {
	Query Query
	Err   error
}

func (e *AcquisitionError) Error() string {
	return fmt.Sprintf("acquire %s: %v", e.Query, e.Err)
}

func (e *AcquisitionError) Unwrap() error {
	return e.Err
}

// Acquirer turns queries into result sets.
type Acquirer struct {
	source  cheapshark.DealsFetcher
	logger  *zap.Logger
	workers int
}

// AcquirerOption customizes an Acquirer.
type AcquirerOption func(*Acquirer)

// WithLogger sets the logger used for dropped enrichments.
func WithLogger(logger *zap.Logger) AcquirerOption {
	return func(a *Acquirer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithWorkers sets how many enrichment lookups may run at once. Values below
// 2 keep lookups strictly sequential.
func WithWorkers(n int) AcquirerOption {
	return func(a *Acquirer) {
		a.workers = min(max(n, 1), MaxEnriched)
	}
}

// NewAcquirer builds an Acquirer over source.
func NewAcquirer(source cheapshark.DealsFetcher, opts ...AcquirerOption) *Acquirer {
	a := &Acquirer{source: source, logger: zap.NewNop(), workers: 1}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Acquire runs q and returns the complete result set in acquisition order.
func (a *Acquirer) Acquire(ctx context.Context, q Query) ([]DealSummary, error) {
	var (
		deals []DealSummary
		err   error
	)
	switch q.Kind {
	case KindSearch:
		deals, err = a.search(ctx, q.Term)
	default:
		deals, err = a.listing(ctx, q.StoreID)
	}
	if err != nil {
		a.logger.Warn("acquisition failed",
			zap.String("op", "catalog.Acquire"),
			zap.Stringer("query", q),
			zap.Error(err),
		)
		return nil, &AcquisitionError{Query: q, Err: err}
	}
	a.logger.Debug("acquisition complete",
		zap.String("op", "catalog.Acquire"),
		zap.Stringer("query", q),
		zap.Int("count", len(deals)),
	)
	return deals, nil
}

func (a *Acquirer) listing(ctx context.Context, storeID string) ([]DealSummary, error) {
	records, err := a.source.FetchDeals(ctx, cheapshark.DealsQuery{StoreID: storeID, PageSize: ListingPageSize})
	if err != nil {
		return nil, fmt.Errorf("fetch deals: %w", err)
	}
	return lo.Map(records, func(d cheapshark.Deal, i int) DealSummary {
		return fromListing(d, i)
	}), nil
}

func (a *Acquirer) search(ctx context.Context, term string) ([]DealSummary, error) {
	hits, err := a.source.SearchGames(ctx, cheapshark.GamesQuery{Title: term, Limit: SearchLimit})
	if err != nil {
		return nil, fmt.Errorf("search games: %w", err)
	}
	hits = lo.Slice(hits, 0, MaxEnriched)

	slots := make([]*DealSummary, len(hits))
	if a.workers > 1 {
		a.enrichBounded(ctx, hits, slots)
	} else {
		a.enrichSequential(ctx, hits, slots)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("enrich: %w", err)
	}

	survivors := lo.FilterMap(slots, func(s *DealSummary, _ int) (DealSummary, bool) {
		if s == nil {
			return DealSummary{}, false
		}
		return *s, true
	})
	for i := range survivors {
		survivors[i].Rank = i
	}
	return survivors, nil
}

func (a *Acquirer) enrichSequential(ctx context.Context, hits []cheapshark.GameHit, slots []*DealSummary) {
	for i, hit := range hits {
		if ctx.Err() != nil {
			return
		}
		slots[i] = a.enrichOne(ctx, hit)
	}
}

func (a *Acquirer) enrichBounded(ctx context.Context, hits []cheapshark.GameHit, slots []*DealSummary) {
	var g errgroup.Group
	g.SetLimit(a.workers)
	for i, hit := range hits {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			slots[i] = a.enrichOne(ctx, hit)
			return nil
		})
	}
	_ = g.Wait()
}

// enrichOne returns nil when the hit has to be dropped.
func (a *Acquirer) enrichOne(ctx context.Context, hit cheapshark.GameHit) *DealSummary {
	lookup, err := a.source.FetchGame(ctx, hit.GameID)
	if err == nil && len(lookup.Deals) == 0 {
		err = ErrNoOffers
	}
	if err != nil {
		a.logger.Warn("enrichment dropped",
			zap.String("op", "catalog.enrich"),
			zap.String("game_id", hit.GameID),
			zap.Error(err),
		)
		return nil
	}
	summary := fromEnrichment(hit, lookup, lookup.Deals[0])
	return &summary
}

// Detail fetches every current offer for one game.
func (a *Acquirer) Detail(ctx context.Context, gameID string) (*GameDetail, error) {
	lookup, err := a.source.FetchGame(ctx, gameID)
	if err != nil {
		a.logger.Warn("detail failed",
			zap.String("op", "catalog.Detail"),
			zap.String("game_id", gameID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("fetch game %s: %w", gameID, err)
	}
	return detailFromLookup(gameID, lookup), nil
}

// Stores fetches the store catalog. On failure the fallback catalog is
// returned together with the error.
func (a *Acquirer) Stores(ctx context.Context) (Stores, error) {
	records, err := a.source.FetchStores(ctx)
	if err == nil {
		if stores := storesFromWire(records); len(stores) > 0 {
			return stores, nil
		}
		err = errors.New("empty store catalog")
	}
	a.logger.Warn("store catalog unavailable, using fallback",
		zap.String("op", "catalog.Stores"),
		zap.Error(err),
	)
	return FallbackStores(), fmt.Errorf("fetch stores: %w", err)
}

// PurchaseURL returns the outbound link for a deal id, empty when there is none.
func (a *Acquirer) PurchaseURL(dealID string) string {
	return a.source.RedirectURL(dealID)
}
