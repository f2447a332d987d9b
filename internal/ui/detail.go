package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/bargain/internal/catalog"
	"github.com/five82/bargain/internal/state"
)

// overlayChrome is the box height not taken by the scrolling body: two
// borders, a blank line and the hint line.
const overlayChrome = 4

// overlayWidth returns the outer overlay width for the current terminal.
func (m Model) overlayWidth() int {
	w := min(max(m.width-2*overlayMargin, OverlayMinWidth), OverlayMaxWidth)
	return max(min(w, m.width), 10)
}

// refreshOverlay re-renders the overlay body into the viewport, keeping the
// scroll offset where possible.
func (m *Model) refreshOverlay() {
	if !m.detail.IsOpen() || m.width == 0 {
		return
	}
	inner := m.overlayWidth() - 2
	body := m.renderDetailBody(m.detail.Snapshot(), inner-2)
	lines := strings.Count(body, "\n") + 1
	maxBody := max(m.height-overlayMargin-overlayChrome, 3)

	m.overlay.Width = inner
	m.overlay.Height = min(lines, maxBody)
	m.overlay.SetContent(body)
}

// renderOverlayBox renders the overlay box without placement.
func (m Model) renderOverlayBox() string {
	snap := m.detail.Snapshot()
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)

	title := snap.Title
	if snap.Detail != nil && snap.Detail.Title != "" {
		title = snap.Detail.Title
	}

	colon := bg.Render(":", styles.FaintText)
	var hints []string
	hint := func(k, desc string) {
		hints = append(hints, bg.Render(k, styles.AccentText)+colon+bg.Render(desc, styles.MutedText))
	}
	if m.purchaseURL() != "" {
		hint(m.keys.OpenLink.Help().Key, "Open")
		hint(m.keys.CopyLink.Help().Key, "Copy")
	}
	if snap.Err != nil {
		hint(m.keys.Retry.Help().Key, "Retry")
	}
	hint(m.keys.Close.Help().Key, "Close")

	footer := " " + bg.Join(hints, "  ")
	if m.notice != "" {
		footer += bg.Spaces(2) + bg.Render(m.notice, styles.InfoText)
	}

	content := m.overlay.View() + "\n\n" + footer
	return m.renderTitledBox(title, content, m.overlayWidth(), m.overlay.Height+overlayChrome, true)
}

// renderOverlay centers the overlay on screen.
func (m Model) renderOverlay() string {
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.renderOverlayBox(),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

// overlayBounds returns the screen rectangle of the centered overlay. It
// matches lipgloss.Place, which puts the odd cell of the gap on the right.
func (m Model) overlayBounds() (x, y, w, h int) {
	box := m.renderOverlayBox()
	w = lipgloss.Width(box)
	h = lipgloss.Height(box)
	x = max(m.width-w, 0) / 2
	y = max(m.height-h, 0) / 2
	return x, y, w, h
}

// renderDetailBody renders the scrolling part of the overlay.
func (m Model) renderDetailBody(snap state.DetailSnapshot, width int) string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	pad := func(lines []string) string {
		for i, line := range lines {
			lines[i] = " " + line
		}
		return strings.Join(lines, "\n")
	}

	switch {
	case snap.Loading:
		return pad([]string{
			styles.Text.Render(m.spinner.View() + " Loading offers..."),
		})
	case snap.Err != nil:
		return pad([]string{
			styles.DangerText.Render("Could not load details"),
			styles.MutedText.Render(truncate(snap.Err.Error(), width)),
			"",
			styles.Text.Render("Press r to retry"),
		})
	case snap.Detail == nil:
		return ""
	}

	detail := snap.Detail
	var lines []string
	if detail.ThumbURL != "" {
		lines = append(lines,
			styles.FaintText.Render("Cover ")+styles.MutedText.Render(truncateMiddle(detail.ThumbURL, width-6)),
			"")
	}

	best, ok := detail.BestOffer()
	if !ok {
		lines = append(lines, styles.WarningText.Render("No offers available"))
		return pad(m.appendCheapestEver(lines, detail, styles))
	}

	lines = append(lines,
		styles.MutedText.Render("Best price at ")+styles.Text.Bold(true).Render(m.stores.Name(best.StoreID)),
		m.renderOfferPrice(best, styles),
	)
	lines = m.appendCheapestEver(lines, detail, styles)

	link := m.catalog.PurchaseURL(best.DealID)
	lines = append(lines, "",
		styles.FaintText.Render("Buy ")+styles.Link.Render(truncateMiddle(link, width-4)))

	alternates := detail.Alternates()
	lines = append(lines, "", styles.AccentText.Bold(true).Render("Other stores"))
	if len(alternates) == 0 {
		lines = append(lines, styles.FaintText.Render("No other stores"))
	}
	nameWidth := max(width-22, 8)
	for _, offer := range alternates {
		name := padRight(truncate(m.stores.Name(offer.StoreID), nameWidth), nameWidth)
		lines = append(lines, styles.Text.Render(name)+" "+m.renderOfferPrice(offer, styles))
	}
	return pad(lines)
}

func (m Model) appendCheapestEver(lines []string, detail *catalog.GameDetail, styles Styles) []string {
	if detail.CheapestEver == nil {
		return lines
	}
	return append(lines,
		styles.MutedText.Render("Lowest recorded ")+styles.InfoText.Render(formatPrice(*detail.CheapestEver)))
}

// renderOfferPrice renders an offer's prices with the retail price struck
// through when it is on sale.
func (m Model) renderOfferPrice(o catalog.Offer, styles Styles) string {
	if !o.Discounted() {
		return styles.SalePrice.Render(formatPrice(o.Price))
	}
	return fmt.Sprintf("%s %s %s",
		styles.NormalPrice.Render(formatPrice(o.RetailPrice)),
		styles.SalePrice.Render(formatPrice(o.Price)),
		styles.Badge.Render(formatSavings(o.Savings)),
	)
}
