package state

import (
	"errors"
	"testing"

	"github.com/five82/bargain/internal/catalog"
)

func TestDetail_OpenResolveClose(t *testing.T) {
	var d Detail
	if d.IsOpen() {
		t.Fatalf("zero Detail should be closed")
	}

	token := d.Open("612", "LEGO Batman")
	snap := d.Snapshot()
	if !snap.Open || !snap.Loading || snap.GameID != "612" || snap.Title != "LEGO Batman" {
		t.Fatalf("snapshot after Open = %#v", snap)
	}

	payload := &catalog.GameDetail{GameID: "612", Title: "LEGO Batman"}
	if !d.Resolve(token, payload, nil) {
		t.Fatalf("Resolve returned false for current token")
	}
	snap = d.Snapshot()
	if snap.Loading || snap.Detail != payload || snap.Err != nil {
		t.Fatalf("snapshot after Resolve = %#v", snap)
	}

	d.Close()
	if d.IsOpen() || d.Snapshot().Detail != nil {
		t.Fatalf("Close should hide overlay and discard detail")
	}
}

func TestDetail_LateResultsAreIgnored(t *testing.T) {
	var d Detail
	token := d.Open("1", "A")
	d.Close()
	if d.Resolve(token, &catalog.GameDetail{}, nil) {
		t.Fatalf("Resolve after Close returned true")
	}
	if d.IsOpen() {
		t.Fatalf("late Resolve reopened overlay")
	}

	first := d.Open("1", "A")
	second := d.Open("2", "B")
	if d.Resolve(first, &catalog.GameDetail{GameID: "1"}, nil) {
		t.Fatalf("Resolve for superseded overlay returned true")
	}
	if !d.Resolve(second, &catalog.GameDetail{GameID: "2"}, nil) {
		t.Fatalf("Resolve for current overlay returned false")
	}
	if d.Snapshot().Detail.GameID != "2" {
		t.Fatalf("detail = %#v, want game 2", d.Snapshot().Detail)
	}
}

func TestDetail_ErrorAndRetry(t *testing.T) {
	var d Detail
	if _, _, ok := d.Retry(); ok {
		t.Fatalf("Retry on closed overlay returned ok")
	}

	token := d.Open("612", "LEGO Batman")
	boom := errors.New("boom")
	d.Resolve(token, nil, boom)
	snap := d.Snapshot()
	if !snap.Open || snap.Loading || !errors.Is(snap.Err, boom) {
		t.Fatalf("snapshot after failure = %#v, want open with error", snap)
	}

	retryToken, gameID, ok := d.Retry()
	if !ok || gameID != "612" || retryToken == token {
		t.Fatalf("Retry = %d,%q,%v, want new token for 612", retryToken, gameID, ok)
	}
	if snap := d.Snapshot(); !snap.Loading || snap.Err != nil {
		t.Fatalf("snapshot after Retry = %#v, want loading without error", snap)
	}
	if d.Resolve(token, &catalog.GameDetail{}, nil) {
		t.Fatalf("Resolve with pre-retry token returned true")
	}
}
