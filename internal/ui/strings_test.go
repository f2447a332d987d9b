package ui

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"Portal 2", 20, "Portal 2"},
		{"Stardew Valley", 10, "Stardew..."},
		{"Hades", 3, "Had"},
		{"  padded  ", 0, "padded"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.limit); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestTruncateMiddle(t *testing.T) {
	got := truncateMiddle("https://www.cheapshark.com/redirect?dealID=abc", 11)
	if got != "https…D=abc" {
		t.Fatalf("truncateMiddle = %q", got)
	}
	if got := truncateMiddle("short", 10); got != "short" {
		t.Fatalf("truncateMiddle(short) = %q", got)
	}
}

func TestWrapTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		width int
		want  []string
	}{
		{"fits", "Hades", 10, []string{"Hades"}},
		{"two lines", "The Witcher 3 Wild Hunt", 12, []string{"The Witcher", "3 Wild Hunt"}},
		{"truncated", "Star Wars Jedi Fallen Order Deluxe", 12, []string{"Star Wars", "Jedi Fall..."}},
		{"long word", "Supercalifragilistic", 8, []string{"Super..."}},
		{"empty", "   ", 10, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrapTitle(tt.title, tt.width, 2); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("wrapTitle(%q) = %#v, want %#v", tt.title, got, tt.want)
			}
		})
	}
}

func TestFormatPrice(t *testing.T) {
	if got := formatPrice(decimal.Zero); got != "Free" {
		t.Fatalf("formatPrice(0) = %q, want Free", got)
	}
	if got := formatPrice(decimal.RequireFromString("4.5")); got != "$4.50" {
		t.Fatalf("formatPrice(4.5) = %q, want $4.50", got)
	}
}

func TestFormatSavings(t *testing.T) {
	if got := formatSavings(decimal.RequireFromString("79.959920")); got != "-80%" {
		t.Fatalf("formatSavings = %q, want -80%%", got)
	}
}

func TestGridGeometry(t *testing.T) {
	if got := gridColumns(100); got != 3 {
		t.Fatalf("gridColumns(100) = %d, want 3", got)
	}
	if got := gridColumns(10); got != 1 {
		t.Fatalf("gridColumns(10) = %d, want 1", got)
	}
	if got := gridRows(40); got != 5 {
		t.Fatalf("gridRows(40) = %d, want 5", got)
	}
	if got := gridRows(4); got != 1 {
		t.Fatalf("gridRows(4) = %d, want 1", got)
	}
}

func TestBrowserCommand(t *testing.T) {
	url := "https://example.com"
	tests := []struct {
		goos string
		name string
	}{
		{"darwin", "open"},
		{"windows", "rundll32"},
		{"linux", "xdg-open"},
		{"freebsd", "xdg-open"},
	}
	for _, tt := range tests {
		name, args := browserCommand(tt.goos, url)
		if name != tt.name {
			t.Errorf("browserCommand(%s) = %q, want %q", tt.goos, name, tt.name)
		}
		if args[len(args)-1] != url {
			t.Errorf("browserCommand(%s) args = %v, want url last", tt.goos, args)
		}
	}
}
