package api

import (
	"context"

	"github.com/sensortower/st-cli/internal/table"
)

// TopChartsQuery holds the shared arguments of the top_and_trending
// endpoints. Limit and Offset are optional; nil leaves them to the API
// default. Regions defaults to worldwide.
type TopChartsQuery struct {
	OS                  string
	ComparisonAttribute string
	TimeRange           string
	Measure             string
	Date                string // YYYY-MM-DD, start of the time range
	Category            string
	Regions             []string
	Limit               *int
	Offset              *int
	DeviceType          string

	// CustomFieldsFilterID narrows results to a saved custom filter. On
	// the unified platform the API cannot resolve the filter without
	// knowing whether tags are include- or exclude-matched, so
	// CustomTagsMode is mandatory there.
	CustomFieldsFilterID string
	CustomTagsMode       string
}

func (q *TopChartsQuery) validate(allowedMeasure []string) (OS, error) {
	os, err := ValidateOS(q.OS)
	if err != nil {
		return "", err
	}
	if err := validateEnum("comparison_attribute", q.ComparisonAttribute, AllowedComparisonAttribute); err != nil {
		return "", err
	}
	if err := validateEnum("time_range", q.TimeRange, AllowedTimeRange); err != nil {
		return "", err
	}
	if err := validateEnum("measure", q.Measure, allowedMeasure); err != nil {
		return "", err
	}
	if q.Date == "" {
		return "", missingArgument("date")
	}
	if q.DeviceType != "" {
		if err := validateEnum("device_type", q.DeviceType, AllowedDeviceType); err != nil {
			return "", err
		}
	}
	if q.CustomFieldsFilterID != "" && q.CustomTagsMode == "" && os == OSUnified {
		return "", &InvalidCombinationError{
			Field:    "custom_fields_filter_id",
			Requires: "custom_tags_mode",
			Reason:   "the unified platform needs the tags mode to resolve a custom filter",
		}
	}
	return os, nil
}

func (q *TopChartsQuery) params(os OS) *Params {
	deviceType := q.DeviceType
	if deviceType == "" {
		deviceType = defaultDeviceType(os)
	}

	params := NewParams().
		Set("comparison_attribute", q.ComparisonAttribute).
		Set("time_range", q.TimeRange).
		Set("measure", q.Measure).
		Set("date", q.Date).
		Set("category", q.Category).
		SetGeo("regions", q.Regions).
		Set("device_type", deviceType).
		Set("custom_fields_filter_id", q.CustomFieldsFilterID).
		Set("custom_tags_mode", q.CustomTagsMode)

	if q.Limit != nil {
		params.SetInt("limit", *q.Limit)
	}
	if q.Offset != nil {
		params.SetInt("offset", *q.Offset)
	}
	return params
}

// ActiveUsers fetches the top apps by active users (DAU/WAU/MAU).
func (s TopService) ActiveUsers(ctx context.Context, q TopChartsQuery) (*table.Table, error) {
	os, err := q.validate(AllowedUserMeasure)
	if err != nil {
		return nil, err
	}
	return s.fetchTable(ctx, os, "top_and_trending/active_users", q.params(os))
}

// Publishers fetches the top publishers by downloads or revenue.
func (s TopService) Publishers(ctx context.Context, q TopChartsQuery) (*table.Table, error) {
	os, err := q.validate(AllowedSalesMeasure)
	if err != nil {
		return nil, err
	}
	return s.fetchTable(ctx, os, "top_and_trending/publishers", q.params(os))
}
