package cmd

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Matches: "7d ago", "2w ago", "3mo ago", "1q ago"
var relativeAgoRegex = regexp.MustCompile(`^(\d+)(mo|q|w|d)\s*ago$`)

var timeNow = time.Now

// resolveDate turns a date flag value into the YYYY-MM-DD form the API
// expects. Plain dates pass through; "today", "yesterday" and relative
// expressions like "30d ago" or "2mo ago" resolve against the current day.
func resolveDate(value string) (string, error) {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return "", nil
	}

	if _, err := time.Parse("2006-01-02", raw); err == nil {
		return raw, nil
	}

	now := timeNow().UTC()
	input := strings.ToLower(raw)

	switch input {
	case "today":
		return now.Format("2006-01-02"), nil
	case "yesterday":
		return now.AddDate(0, 0, -1).Format("2006-01-02"), nil
	}

	if matches := relativeAgoRegex.FindStringSubmatch(input); len(matches) == 3 {
		value, err := strconv.Atoi(matches[1])
		if err != nil || value < 1 {
			return "", fmt.Errorf("invalid relative date %q", raw)
		}
		var t time.Time
		switch matches[2] {
		case "mo":
			t = now.AddDate(0, -value, 0)
		case "q":
			t = now.AddDate(0, -3*value, 0)
		case "w":
			t = now.AddDate(0, 0, -7*value)
		case "d":
			t = now.AddDate(0, 0, -value)
		}
		return t.Format("2006-01-02"), nil
	}

	return "", fmt.Errorf("invalid date %q: use YYYY-MM-DD, today, yesterday, or e.g. 30d ago", raw)
}

// resolveDates resolves date flag values in place.
func resolveDates(values ...*string) error {
	for _, v := range values {
		resolved, err := resolveDate(*v)
		if err != nil {
			return err
		}
		*v = resolved
	}
	return nil
}
