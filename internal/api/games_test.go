package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGamesBreakdown(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[
			{"cc":"US","d":"2024-01-01T00:00:00Z","u":"1000","r":"5000.5"}
		]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "tok")
	tbl, err := client.Games().Breakdown(context.Background(), GamesBreakdownQuery{
		OS:              "android",
		Categories:      []string{"GAME_ACTION", "GAME_ARCADE"},
		DateGranularity: "monthly",
		StartDate:       "2024-01-01",
		EndDate:         "2024-06-30",
	})
	if err != nil {
		t.Fatalf("Breakdown: %v", err)
	}

	if gotPath != "/v1/android/games_breakdown" {
		t.Errorf("path = %q", gotPath)
	}
	for _, want := range []string{"categories=GAME_ACTION%2CGAME_ARCADE", "date_granularity=monthly"} {
		if !contains(gotQuery, want) {
			t.Errorf("query %q missing %q", gotQuery, want)
		}
	}
	if contains(gotQuery, "countries=") {
		t.Errorf("worldwide default must omit countries, got %q", gotQuery)
	}

	if v, _ := tbl.Value(0, "Android Downloads"); v != 1000.0 {
		t.Errorf("Android Downloads = %v, want 1000", v)
	}
	if v, _ := tbl.Value(0, "Android Revenue"); v != 5000.5 {
		t.Errorf("Android Revenue = %v, want 5000.5", v)
	}
}

func TestGamesBreakdownValidation(t *testing.T) {
	client := newTestClient("https://example.com", "tok")

	_, err := client.Games().Breakdown(context.Background(), GamesBreakdownQuery{
		OS:              "ios",
		DateGranularity: "daily",
		StartDate:       "2024-01-01",
		EndDate:         "2024-01-31",
	})
	if !IsInvalidArgument(err) {
		t.Fatalf("missing categories should be an invalid argument, got %v", err)
	}

	_, err = client.Games().Breakdown(context.Background(), GamesBreakdownQuery{
		OS:              "ios",
		Categories:      []string{"7001"},
		DateGranularity: "hourly",
		StartDate:       "2024-01-01",
		EndDate:         "2024-01-31",
	})
	if !IsInvalidArgument(err) {
		t.Fatalf("bad granularity should be an invalid argument, got %v", err)
	}
}
