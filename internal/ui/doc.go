// Package ui is the Bubble Tea front end for bargain.
//
// The Model owns a state.Session for the deal grid and a state.Detail for
// the overlay. Every fetch runs as a tea.Cmd that carries the token it was
// issued with; Update hands results back to the session, which drops any
// that a newer request has superseded.
//
// # Layout
//
//   - header.go: status bar, command bar and footer
//   - grid.go: card grid, empty and error panels, mouse hit testing
//   - detail.go: detail overlay with its scrolling viewport
//   - help.go: key reference generated from the key map
//   - theme.go: color themes, persisted through prefs
//
// # Key Bindings
//
//   - /: search titles, enter to submit, esc to cancel
//   - s/S: next/previous store
//   - o: cycle sort order
//   - m: load the next page
//   - r: retry the last query, or the overlay fetch
//   - x: reset search, store and sort
//   - h/j/k/l or arrows: move selection
//   - enter: open details
//   - b/y: open or copy the purchase link in the overlay
//   - esc/q: close the overlay
//   - T: cycle theme
//   - ?: help
//   - q or ctrl+c: quit
package ui
