package ui

// Card grid geometry.
const (
	// CardWidth is the outer width of one deal card, borders included.
	CardWidth = 32

	// CardHeight is the outer height of one deal card, borders included.
	CardHeight = 7

	// chromeHeight covers the header, command bar and footer lines.
	chromeHeight = 3
)

// Overlay geometry.
const (
	// OverlayMaxWidth caps the detail overlay width on wide terminals.
	OverlayMaxWidth = 72

	// OverlayMinWidth is the narrowest the overlay is drawn.
	OverlayMinWidth = 40

	// overlayMargin is the space kept free around the overlay so a click
	// outside it is always possible.
	overlayMargin = 4
)

// gridColumns returns how many cards fit side by side.
func gridColumns(width int) int {
	return max(width/CardWidth, 1)
}

// gridRows returns how many card rows fit in the content area.
func gridRows(height int) int {
	return max((height-chromeHeight)/CardHeight, 1)
}
