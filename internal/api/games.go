package api

import (
	"context"

	"github.com/sensortower/st-cli/internal/table"
)

// GamesBreakdownQuery holds the arguments for the games_breakdown
// endpoint: per-category game download and revenue aggregates.
type GamesBreakdownQuery struct {
	OS              string
	Categories      []string
	Countries       []string
	DateGranularity string
	StartDate       string // YYYY-MM-DD
	EndDate         string // YYYY-MM-DD
}

func (q *GamesBreakdownQuery) validate() (OS, error) {
	os, err := ValidateOS(q.OS)
	if err != nil {
		return "", err
	}
	if len(q.Categories) == 0 {
		return "", missingArgument("categories")
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

// Breakdown fetches the games market breakdown for the given categories.
func (s GamesService) Breakdown(ctx context.Context, q GamesBreakdownQuery) (*table.Table, error) {
	os, err := q.validate()
	if err != nil {
		return nil, err
	}

	params := NewParams().
		SetList("categories", q.Categories).
		Set("date_granularity", q.DateGranularity).
		Set("start_date", q.StartDate).
		Set("end_date", q.EndDate).
		SetGeo("countries", q.Countries)

	return s.fetchTable(ctx, os, "games_breakdown", params)
}
