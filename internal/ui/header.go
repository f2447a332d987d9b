package ui

import (
	"fmt"
	"strings"

	"github.com/five82/bargain/internal/catalog"
	"github.com/five82/bargain/internal/state"
)

// renderHeader renders the status bar: logo, query, sort and phase.
func (m Model) renderHeader() string {
	// Header uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	snap := m.session.Snapshot()

	parts := []string{bg.Render("bargain", styles.Logo)}

	switch {
	case snap.HasQuery && snap.Query.Kind == catalog.KindSearch:
		parts = append(parts,
			bg.Render("Search:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%q", truncate(snap.Query.Term, 24)), styles.Text))
	case snap.HasQuery:
		parts = append(parts,
			bg.Render("Store:", styles.MutedText)+bg.Space()+
				bg.Render(m.stores.Name(snap.Query.StoreID), styles.Text))
	}

	parts = append(parts,
		bg.Render("Sort:", styles.MutedText)+bg.Space()+
			bg.Render(snap.Order.Label(), styles.InfoText))

	switch snap.Phase {
	case state.PhaseLoading:
		parts = append(parts, bg.Render(m.spinner.View()+" Loading", styles.WarningText.Bold(true)))
	case state.PhaseFailed:
		parts = append(parts, bg.Render("● Error", styles.DangerText))
	case state.PhaseReady:
		parts = append(parts, bg.Render(fmt.Sprintf("● %d deals", snap.Total), styles.SuccessText))
	}

	if !snap.LastUpdated.IsZero() && m.width >= 100 {
		parts = append(parts,
			bg.Render("Updated", styles.FaintText)+bg.Space()+
				bg.Render(snap.LastUpdated.Format("15:04:05"), styles.MutedText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderCommandBar renders key hints, or the search box while typing.
func (m Model) renderCommandBar() string {
	// Command bar uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	if m.searching {
		return styles.Header.Width(m.width).Render(m.search.View())
	}

	colon := bg.Render(":", styles.FaintText)
	segments := make([]string, 0, len(m.keys.ShortHelp())+1)
	for _, binding := range m.keys.ShortHelp() {
		h := binding.Help()
		segments = append(segments,
			bg.Render(h.Key, styles.AccentText)+colon+bg.Render(h.Desc, styles.MutedText))
	}

	// Add theme indicator
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, bg.Spaces(2)))
}

// renderFooter renders the result count, the load-more hint and any notice.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	snap := m.session.Snapshot()

	var parts []string
	if snap.Phase == state.PhaseReady && snap.Total > 0 {
		parts = append(parts,
			bg.Render(fmt.Sprintf("Showing %d of %d", len(snap.Visible), snap.Total), styles.MutedText))
		if snap.HasMore {
			parts = append(parts,
				bg.Render(m.keys.LoadMore.Help().Key, styles.AccentText)+bg.Space()+
					bg.Render("Load more", styles.Text))
		}
	}
	if m.notice != "" {
		parts = append(parts, bg.Render(m.notice, styles.InfoText))
	}

	return styles.Footer.Width(m.width).Render(bg.Join(parts, "  ·  "))
}
