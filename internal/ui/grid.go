package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/five82/bargain/internal/catalog"
	"github.com/five82/bargain/internal/state"
)

// gridTop is the screen row where the first card starts.
const gridTop = 2

// renderMain renders header, command bar, content and footer.
func (m Model) renderMain() string {
	header := m.renderHeader()
	cmdBar := m.renderCommandBar()
	footer := m.renderFooter()

	contentHeight := max(m.height-chromeHeight, 1)
	content := lipgloss.NewStyle().
		Width(m.width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(m.renderContent(contentHeight))

	return lipgloss.JoinVertical(lipgloss.Left, header, cmdBar, content, footer)
}

// renderContent picks the view for the current phase.
func (m Model) renderContent(height int) string {
	snap := m.session.Snapshot()
	styles := m.theme.Styles()

	switch {
	case snap.Phase == state.PhaseIdle || snap.Phase == state.PhaseLoading:
		msg := m.spinner.View() + " " + styles.Text.Render("Loading deals...")
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, msg)

	case snap.Phase == state.PhaseFailed:
		return m.renderPanel("Error", []string{
			styles.DangerText.Render("Could not load deals"),
			"",
			styles.MutedText.Render(truncate(errorText(snap.LastError), 56)),
			"",
			styles.Text.Render("Press r to retry, x to reset"),
		}, height)

	case snap.Empty():
		hint := "Press x to reset or / to search again"
		if snap.Query.Kind == catalog.KindListing {
			hint = "Press s to try another store"
		}
		return m.renderPanel("No deals", []string{
			styles.Text.Render("No deals found"),
			"",
			styles.MutedText.Render(hint),
		}, height)
	}

	return m.renderGrid(snap.Visible)
}

// renderPanel centers a small titled box in the content area.
func (m Model) renderPanel(title string, lines []string, height int) string {
	width := min(max(m.width-2*overlayMargin, 20), 60)
	for i, line := range lines {
		lines[i] = " " + line
	}
	box := m.renderTitledBox(title, strings.Join(lines, "\n"), width, len(lines)+2, false)
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, box)
}

// renderGrid lays the visible cards out in rows, scrolled so the selected
// card is on screen.
func (m Model) renderGrid(deals []catalog.DealSummary) string {
	cols := gridColumns(m.width)
	rows := gridRows(m.height)
	top := m.topRow(rows, cols)

	var lines []string
	for r := top; r < top+rows; r++ {
		start := r * cols
		if start >= len(deals) {
			break
		}
		end := min(start+cols, len(deals))
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, m.renderCard(deals[i], i == m.selected))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// topRow is the first card row drawn.
func (m Model) topRow(rows, cols int) int {
	return max(0, m.selected/cols-rows+1)
}

// renderCard renders one deal: title, store and prices.
func (m Model) renderCard(d catalog.DealSummary, selected bool) string {
	styles := m.theme.Styles()
	inner := CardWidth - 4

	borderColor := m.theme.Border
	titleStyle := styles.Text.Bold(true)
	if selected {
		borderColor = m.theme.BorderFocus
		titleStyle = styles.AccentText.Bold(true)
	}

	title := wrapTitle(d.Title, inner, 2)
	for len(title) < 2 {
		title = append(title, "")
	}
	lines := []string{
		titleStyle.Render(title[0]),
		titleStyle.Render(title[1]),
		styles.MutedText.Render(truncate(m.stores.Name(d.StoreID), inner)),
		m.renderPriceLine(d.SalePrice, d.NormalPrice, d.Savings, d.Discounted(), styles),
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Padding(0, 1).
		Width(CardWidth - 2).
		Height(CardHeight - 2).
		Render(strings.Join(lines, "\n"))
}

// renderPriceLine renders "normal sale badge", striking the normal price
// only when the deal is discounted.
func (m Model) renderPriceLine(sale, normal, savings decimal.Decimal, discounted bool, styles Styles) string {
	if !discounted {
		return styles.SalePrice.Render(formatPrice(sale))
	}
	return styles.NormalPrice.Render(formatPrice(normal)) + " " +
		styles.SalePrice.Render(formatPrice(sale)) + " " +
		styles.Badge.Render(formatSavings(savings))
}

// cardAt maps a screen cell to the index of the card drawn there.
func (m Model) cardAt(x, y int) (int, bool) {
	snap := m.session.Snapshot()
	if snap.Phase != state.PhaseReady || len(snap.Visible) == 0 {
		return 0, false
	}
	cols := gridColumns(m.width)
	rows := gridRows(m.height)
	if x < 0 || y < gridTop || x >= cols*CardWidth {
		return 0, false
	}
	row := (y - gridTop) / CardHeight
	if row >= rows {
		return 0, false
	}
	idx := (m.topRow(rows, cols)+row)*cols + x/CardWidth
	if idx >= len(snap.Visible) {
		return 0, false
	}
	return idx, true
}

// renderTitledBox renders content in a box with the title embedded in the
// top border: ┌─── Title ───┐
// When focused is true, uses BorderFocus color and FocusBg background.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	var borderColorStr, bgColorStr string
	if focused {
		borderColorStr = m.theme.BorderFocus
		bgColorStr = m.theme.FocusBg
	} else {
		borderColorStr = m.theme.Border
		bgColorStr = m.theme.SurfaceAlt
	}
	bg := NewBgStyle(bgColorStr)
	bgColor := lipgloss.Color(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	// Build the top border with embedded title
	innerWidth := max(width-2, 1)
	title = truncate(title, max(innerWidth-4, 1))
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		lipgloss.NewStyle().Background(bgColor).Render(" ") +
		titleStyle.Background(bgColor).Render(title) +
		lipgloss.NewStyle().Background(bgColor).Render(" ") +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).MaxWidth(innerWidth).Background(bgColor)

	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-2, 0)

	paddedLines := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		paddedLines = append(paddedLines,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(paddedLines, "\n") + "\n" + bottomBorder
}

func errorText(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
