package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestSalesReportEstimatesPipeline(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[
			{"aid":"123","cc":"US","d":"2024-01-01T00:00:00Z","iu":"10","ir":"5.5","au":"3","ar":"1.5"},
			{"aid":"123","cc":"GB","d":"2024-01-02T00:00:00Z","iu":"7","ir":"2.0","au":"1","ar":"1.0"}
		]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "tok")
	tbl, err := client.Sales().ReportEstimates(context.Background(), SalesReportQuery{
		OS:              "ios",
		AppIDs:          []string{"123"},
		Countries:       []string{"US", "GB"},
		DateGranularity: "daily",
		StartDate:       "2024-01-01",
		EndDate:         "2024-01-02",
	})
	if err != nil {
		t.Fatalf("ReportEstimates: %v", err)
	}

	if gotPath != "/v1/ios/sales_report_estimates" {
		t.Errorf("path = %q", gotPath)
	}
	for _, want := range []string{"app_ids=123", "countries=US%2CGB", "date_granularity=daily"} {
		if !contains(gotQuery, want) {
			t.Errorf("query %q missing %q", gotQuery, want)
		}
	}

	// Device variants consolidated, fields mapped, date and amounts typed.
	wantCols := []string{"App ID", "Country Code", "Date", "iOS Downloads", "iOS Revenue"}
	if cols := tbl.Columns(); !reflect.DeepEqual(cols, wantCols) {
		t.Fatalf("columns = %v, want %v", cols, wantCols)
	}
	if v, _ := tbl.Value(0, "iOS Downloads"); v != 13.0 {
		t.Errorf("iOS Downloads = %v, want 13", v)
	}
	if v, _ := tbl.Value(0, "iOS Revenue"); v != 7.0 {
		t.Errorf("iOS Revenue = %v, want 7", v)
	}
	if v, _ := tbl.Value(1, "Date"); v != time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC) {
		t.Errorf("Date = %v", v)
	}
}

func TestSalesReportValidation(t *testing.T) {
	client := newTestClient("https://example.com", "tok")
	base := SalesReportQuery{
		OS:              "ios",
		AppIDs:          []string{"123"},
		DateGranularity: "daily",
		StartDate:       "2024-01-01",
		EndDate:         "2024-01-31",
	}

	tests := []struct {
		name   string
		mutate func(*SalesReportQuery)
	}{
		{"bad os", func(q *SalesReportQuery) { q.OS = "windows" }},
		{"no app ids", func(q *SalesReportQuery) { q.AppIDs = nil }},
		{"no start date", func(q *SalesReportQuery) { q.StartDate = "" }},
		{"no end date", func(q *SalesReportQuery) { q.EndDate = "" }},
		{"bad granularity", func(q *SalesReportQuery) { q.DateGranularity = "hourly" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := base
			tt.mutate(&q)
			_, err := client.Sales().ReportEstimates(context.Background(), q)
			if !IsInvalidArgument(err) {
				t.Errorf("error = %v, want InvalidArgumentError", err)
			}
		})
	}
}

func TestSalesWorldwideOmitted(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "tok")
	_, err := client.Sales().ReportEstimates(context.Background(), SalesReportQuery{
		OS:              "android",
		AppIDs:          []string{"com.slack"},
		Countries:       []string{"WW"},
		DateGranularity: "monthly",
		StartDate:       "2024-01-01",
		EndDate:         "2024-01-31",
	})
	if err != nil {
		t.Fatalf("ReportEstimates: %v", err)
	}
	if contains(gotQuery, "countries") {
		t.Errorf("query %q should omit worldwide countries", gotQuery)
	}
}

func contains(s, sub string) bool {
	return strings.Contains(s, sub)
}
