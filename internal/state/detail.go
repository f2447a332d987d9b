package state

import "github.com/five82/bargain/internal/catalog"

// Detail tracks the detail overlay for one game.
type Detail struct {
	open    bool
	gameID  string
	title   string
	loading bool
	detail  *catalog.GameDetail
	err     error
	latest  Token
}

// DetailSnapshot is a read-only view of the overlay.
type DetailSnapshot struct {
	Open    bool
	GameID  string
	Title   string
	Loading bool
	Detail  *catalog.GameDetail
	Err     error
}

// Open shows the overlay for gameID and returns the token for its fetch.
// title is shown while the fetch is in flight.
func (d *Detail) Open(gameID, title string) Token {
	d.latest++
	d.open = true
	d.gameID = gameID
	d.title = title
	d.loading = true
	d.detail = nil
	d.err = nil
	return d.latest
}

// Retry reissues the fetch for the open game. ok is false when closed.
func (d *Detail) Retry() (Token, string, bool) {
	if !d.open {
		return 0, "", false
	}
	return d.Open(d.gameID, d.title), d.gameID, true
}

// Resolve applies a fetch outcome. Results for a closed overlay or a
// superseded token are dropped and reported with false.
func (d *Detail) Resolve(token Token, detail *catalog.GameDetail, err error) bool {
	if !d.open || token == 0 || token != d.latest {
		return false
	}
	d.loading = false
	if err != nil {
		d.detail = nil
		d.err = err
		return true
	}
	d.detail = detail
	d.err = nil
	return true
}

// Close hides the overlay and discards its data.
func (d *Detail) Close() {
	d.open = false
	d.loading = false
	d.detail = nil
	d.err = nil
	d.latest++
}

// IsOpen reports whether the overlay is visible.
func (d *Detail) IsOpen() bool {
	return d.open
}

// Snapshot returns the current overlay view.
func (d *Detail) Snapshot() DetailSnapshot {
	return DetailSnapshot{
		Open:    d.open,
		GameID:  d.gameID,
		Title:   d.title,
		Loading: d.loading,
		Detail:  d.detail,
		Err:     d.err,
	}
}
