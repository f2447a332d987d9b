// Package state holds the presentation state of the deal grid and the detail
// overlay.
//
// # Overview
//
// Session is the acquisition lifecycle state machine:
//
//	Idle ──Begin──→ Loading ──Complete(ok)──→ Ready
//	                   │
//	                   └──Complete(err)──→ Failed
//
// Every Begin issues a new Token. Complete only applies the outcome of the
// most recently issued token, so when two queries overlap the last one issued
// wins no matter which response arrives first.
//
// Detail follows the same rule for the overlay: Open issues a token, Close
// invalidates it, and Resolve drops anything that is not current.
//
// # Concurrency Model
//
// Neither type locks. Both are mutated only from the Bubble Tea update loop;
// network work runs in commands that report back as messages carrying the
// token they were issued with.
//
// # Pagination and Sorting
//
// The Session keeps the full result set and a page index. Snapshot exposes
// only the visible prefix (catalog.Window) and whether more can be revealed.
// The selected order survives new acquisitions and is applied to each one.
//
// # Usage Example
//
//	token := session.Begin(query)
//	return func() tea.Msg {
//		deals, err := acquirer.Acquire(ctx, query)
//		return resultsMsg{token: token, deals: deals, err: err}
//	}
//
//	// later, in Update:
//	session.Complete(msg.token, msg.deals, msg.err)
package state
