package cheapshark

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != DefaultAPIURL {
		t.Fatalf("url = %q, want %q", u.String(), DefaultAPIURL)
	}

	u, err = parseBaseURL("example.com/api/1.0?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" {
		t.Fatalf("scheme = %q, want https", u.Scheme)
	}
	if u.Path != "/api/1.0/" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}

	if _, err := parseBaseURL("http://"); err == nil {
		t.Fatalf("parseBaseURL returned nil error for missing host")
	}
}

func TestClient_FetchesEndpointsAndEncodesQueries(t *testing.T) {
	t.Parallel()

	var gotDealsQuery, gotSearchQuery, gotGameQuery url.Values
	var gotUserAgent, gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/api/1.0/deals":
			gotDealsQuery = r.URL.Query()
			_, _ = w.Write([]byte(`[{"gameID":"612","title":"LEGO Batman","dealID":"abc","storeID":"1","salePrice":"3.99","normalPrice":"19.99","savings":"80.040020","thumb":"t.jpg"}]`))
		case "/api/1.0/games":
			gotPath = r.URL.Path
			if r.URL.Query().Has("title") {
				gotSearchQuery = r.URL.Query()
				_, _ = w.Write([]byte(`[{"gameID":"612","steamAppID":null,"cheapest":"3.99","external":"LEGO Batman","thumb":"t.jpg"}]`))
				return
			}
			gotGameQuery = r.URL.Query()
			_, _ = w.Write([]byte(`{"info":{"title":"LEGO Batman","thumb":"t.jpg"},"cheapestPriceEver":{"price":"2.99","date":1543028665},"deals":[{"storeID":"1","dealID":"abc","price":"3.99","retailPrice":"19.99","savings":"80.040020"}]}`))
		case "/api/1.0/stores":
			_, _ = w.Write([]byte(`[{"storeID":"1","storeName":"Steam","isActive":1},{"storeID":"4","storeName":"Amazon","isActive":0}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL + "/api/1.0")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	deals, err := c.FetchDeals(ctx, DealsQuery{StoreID: " 7 ", PageSize: 20})
	if err != nil {
		t.Fatalf("FetchDeals returned error: %v", err)
	}
	if len(deals) != 1 || deals[0].GameID != "612" || deals[0].SalePrice != "3.99" {
		t.Fatalf("FetchDeals = %#v, want one LEGO Batman deal", deals)
	}
	if gotDealsQuery.Get("storeID") != "7" || gotDealsQuery.Get("pageSize") != "20" {
		t.Fatalf("FetchDeals query = %v, want storeID=7 pageSize=20", gotDealsQuery)
	}

	hits, err := c.SearchGames(ctx, GamesQuery{Title: "lego batman", Limit: 20})
	if err != nil {
		t.Fatalf("SearchGames returned error: %v", err)
	}
	if len(hits) != 1 || hits[0].External != "LEGO Batman" {
		t.Fatalf("SearchGames = %#v, want one hit", hits)
	}
	if gotSearchQuery.Get("title") != "lego batman" || gotSearchQuery.Get("limit") != "20" {
		t.Fatalf("SearchGames query = %v, want title and limit", gotSearchQuery)
	}

	game, err := c.FetchGame(ctx, "612")
	if err != nil {
		t.Fatalf("FetchGame returned error: %v", err)
	}
	if gotPath != "/api/1.0/games" || gotGameQuery.Get("id") != "612" {
		t.Fatalf("FetchGame path=%q query=%v, want games?id=612", gotPath, gotGameQuery)
	}
	if game.Info.Title != "LEGO Batman" || len(game.Deals) != 1 || game.CheapestPriceEver == nil {
		t.Fatalf("FetchGame = %#v, want info, one deal and cheapest ever", game)
	}

	stores, err := c.FetchStores(ctx)
	if err != nil {
		t.Fatalf("FetchStores returned error: %v", err)
	}
	if len(stores) != 2 || !stores[0].Active() || stores[1].Active() {
		t.Fatalf("FetchStores = %#v, want Steam active and Amazon inactive", stores)
	}

	if !strings.HasPrefix(gotUserAgent, "bargain/") {
		t.Fatalf("User-Agent = %q, want bargain/*", gotUserAgent)
	}
}

func TestClient_RequiresIdentifiers(t *testing.T) {
	c, err := NewClient("127.0.0.1:1")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.FetchGame(context.Background(), "  "); err == nil {
		t.Fatalf("FetchGame returned nil error, want error")
	}
	if _, err := c.SearchGames(context.Background(), GamesQuery{Title: " "}); err == nil {
		t.Fatalf("SearchGames returned nil error, want error")
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/stores":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		case "/deals":
			http.Error(w, "nope", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FetchStores(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchStores error = %v, want decode response error", err)
	}

	_, err = c.FetchDeals(context.Background(), DealsQuery{})
	if err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("FetchDeals error = %v, want status 500 error", err)
	}
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != http.StatusInternalServerError {
		t.Fatalf("FetchDeals error = %#v, want *StatusError with code 500", err)
	}
}

func TestClient_RedirectURL(t *testing.T) {
	c, err := NewClient("", WithRedirectURL("https://example.com/redirect"))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if got := c.RedirectURL(""); got != "" {
		t.Fatalf("RedirectURL(empty) = %q, want empty", got)
	}
	got := c.RedirectURL("X8sebHhbc1Ga0dTkgg59WgyM506af9oNZZJLU9uSrX8%3D")
	want := "https://example.com/redirect?dealID=X8sebHhbc1Ga0dTkgg59WgyM506af9oNZZJLU9uSrX8%3D"
	if got != want {
		t.Fatalf("RedirectURL = %q, want %q", got, want)
	}
}
