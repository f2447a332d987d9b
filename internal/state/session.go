package state

import (
	"slices"
	"time"

	"github.com/five82/bargain/internal/catalog"
)

// Phase is the acquisition lifecycle stage.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Token identifies one issued request. Zero is never issued.
type Token uint64

// Snapshot is a read-only view of the session for rendering.
type Snapshot struct {
	Phase       Phase
	Query       catalog.Query
	HasQuery    bool
	Order       catalog.Order
	Page        int
	Total       int
	Visible     []catalog.DealSummary
	HasMore     bool
	LastError   error
	LastUpdated time.Time
}

// Empty reports a completed acquisition with no results.
func (s Snapshot) Empty() bool {
	return s.Phase == PhaseReady && s.Total == 0
}

// Session owns the result set, page and sort order. It is driven from the
// Bubble Tea update loop and is not safe for concurrent use.
type Session struct {
	phase       Phase
	query       catalog.Query
	hasQuery    bool
	order       catalog.Order
	page        int
	deals       []catalog.DealSummary
	lastErr     error
	lastUpdated time.Time
	latest      Token
}

// NewSession returns an idle session using order for future results.
func NewSession(order catalog.Order) *Session {
	if _, ok := catalog.ParseOrder(string(order)); !ok {
		order = catalog.OrderDeal
	}
	return &Session{order: order}
}

// Begin records q as the active query and returns its token. Any earlier
// token becomes stale.
func (s *Session) Begin(q catalog.Query) Token {
	s.latest++
	s.phase = PhaseLoading
	s.query = q
	s.hasQuery = true
	return s.latest
}

// Complete applies the outcome of the request identified by token. Stale
// tokens are ignored and reported with false.
func (s *Session) Complete(token Token, deals []catalog.DealSummary, err error) bool {
	if token == 0 || token != s.latest {
		return false
	}
	s.page = 0
	s.lastUpdated = time.Now()
	if err != nil {
		s.deals = nil
		s.lastErr = err
		s.phase = PhaseFailed
		return true
	}
	s.deals = slices.Clone(deals)
	catalog.Sort(s.deals, s.order)
	s.lastErr = nil
	s.phase = PhaseReady
	return true
}

// Retry returns the last issued query. ok is false before the first Begin.
func (s *Session) Retry() (catalog.Query, bool) {
	return s.query, s.hasQuery
}

// LoadMore reveals the next page. It returns false when nothing is hidden.
func (s *Session) LoadMore() bool {
	if s.phase != PhaseReady || !catalog.HasMore(s.deals, s.page, catalog.PageSize) {
		return false
	}
	s.page++
	return true
}

// SetOrder re-sorts the result set and returns to the first page.
func (s *Session) SetOrder(order catalog.Order) {
	s.order = order
	catalog.Sort(s.deals, order)
	s.page = 0
}

// Order returns the selected sort order.
func (s *Session) Order() catalog.Order {
	return s.order
}

// Reset forgets the result set and returns to the default order.
func (s *Session) Reset() {
	s.order = catalog.OrderDeal
	s.deals = nil
	s.page = 0
	s.lastErr = nil
	s.phase = PhaseIdle
}

// Snapshot returns a copy of the current view.
func (s *Session) Snapshot() Snapshot {
	visible := catalog.Window(s.deals, s.page, catalog.PageSize)
	return Snapshot{
		Phase:       s.phase,
		Query:       s.query,
		HasQuery:    s.hasQuery,
		Order:       s.order,
		Page:        s.page,
		Total:       len(s.deals),
		Visible:     slices.Clone(visible),
		HasMore:     s.phase == PhaseReady && catalog.HasMore(s.deals, s.page, catalog.PageSize),
		LastError:   s.lastErr,
		LastUpdated: s.lastUpdated,
	}
}
