package api

import (
	"context"

	"github.com/sensortower/st-cli/internal/table"
)

// SalesReportQuery holds the arguments for the sales_report_estimates
// endpoint. Countries defaults to worldwide (the parameter is omitted when
// it equals the worldwide sentinel).
type SalesReportQuery struct {
	OS              string
	AppIDs          []string
	Countries       []string
	DateGranularity string
	StartDate       string // YYYY-MM-DD
	EndDate         string // YYYY-MM-DD
}

func (q *SalesReportQuery) validate() (OS, error) {
	os, err := ValidateOS(q.OS)
	if err != nil {
		return "", err
	}
	if len(q.AppIDs) == 0 {
		return "", missingArgument("app_ids")
	}
	if q.StartDate == "" {
		return "", missingArgument("start_date")
	}
	if q.EndDate == "" {
		return "", missingArgument("end_date")
	}
	if err := validateEnum("date_granularity", q.DateGranularity, AllowedDateGranularity); err != nil {
		return "", err
	}
	return os, nil
}

// ReportEstimates fetches download and revenue estimates per app, country
// and period. iOS figures arrive split by device variant; the pipeline
// consolidates them into OS-level totals.
func (s SalesService) ReportEstimates(ctx context.Context, q SalesReportQuery) (*table.Table, error) {
	os, err := q.validate()
	if err != nil {
		return nil, err
	}

	params := NewParams().
		SetList("app_ids", q.AppIDs).
		Set("date_granularity", q.DateGranularity).
		Set("start_date", q.StartDate).
		Set("end_date", q.EndDate).
		SetGeo("countries", q.Countries)

	return s.fetchTable(ctx, os, "sales_report_estimates", params)
}
