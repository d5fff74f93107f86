package api

import (
	"context"

	"github.com/sensortower/st-cli/internal/table"
)

// AppsQuery holds the arguments for app metadata lookup.
type AppsQuery struct {
	OS      string
	AppIDs  []string
	Country string
}

// Lookup fetches metadata for the given app IDs.
func (s AppsService) Lookup(ctx context.Context, q AppsQuery) (*table.Table, error) {
	os, err := ValidateOS(q.OS)
	if err != nil {
		return nil, err
	}
	if len(q.AppIDs) == 0 {
		return nil, missingArgument("app_ids")
	}

	params := NewParams().
		SetList("app_ids", q.AppIDs).
		Set("country", q.Country)

	return s.fetchTable(ctx, os, "apps", params)
}
