package ui

import (
	"strings"

	"github.com/shopspring/decimal"
)

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// truncateMiddle keeps both ends of long values such as URLs.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	runes := []rune(value)
	if limit <= 0 || len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	keep := limit - 1
	prefix := keep / 2
	suffix := keep - prefix
	return string(runes[:prefix]) + "…" + string(runes[len(runes)-suffix:])
}

// wrapTitle splits a title over at most lines lines of width runes. The last
// line is truncated when the title does not fit.
func wrapTitle(title string, width, lines int) []string {
	words := strings.Fields(title)
	if len(words) == 0 || width <= 0 || lines <= 0 {
		return nil
	}
	var out []string
	current := ""
	for i, w := range words {
		candidate := w
		if current != "" {
			candidate = current + " " + w
		}
		if len([]rune(candidate)) <= width {
			current = candidate
			continue
		}
		if len(out) == lines-1 {
			rest := strings.Join(words[i:], " ")
			if current != "" {
				rest = current + " " + rest
			}
			return append(out, truncate(rest, width))
		}
		if current != "" {
			out = append(out, truncate(current, width))
			current = w
			continue
		}
		out = append(out, truncate(w, width))
	}
	if current != "" {
		out = append(out, truncate(current, width))
	}
	return out
}

// padRight pads a string with spaces to the given width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(r))
}

// formatPrice renders a price the way upstream lists them.
func formatPrice(d decimal.Decimal) string {
	if d.IsZero() {
		return "Free"
	}
	return "$" + d.StringFixed(2)
}

// formatSavings renders a savings badge such as "-80%".
func formatSavings(d decimal.Decimal) string {
	return "-" + d.Round(0).String() + "%"
}
