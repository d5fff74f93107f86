// Package normalize applies endpoint-independent cleanup to mapped tables:
// date parsing, numeric coercion of amount columns, and consolidation of
// per-device iOS columns into OS-level totals.
package normalize

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/sensortower/st-cli/internal/table"
)

const dateColumn = "Date"

var amountPatterns = []string{"downloads", "revenue"}

// Normalize returns a copy of tbl with the post-processing rules applied:
//
//   - a column named exactly "Date" has its values truncated to YYYY-MM-DD
//     and parsed to time.Time
//   - columns whose name matches a downloads/revenue pattern are coerced
//     from string to float64
//   - for ios and unified, iPhone+iPad variant columns are summed into a
//     single iOS column when both variants are present
func Normalize(tbl *table.Table, os string) *table.Table {
	out := tbl.Clone()

	out.Apply(dateColumn, parseDate)

	for _, col := range out.Columns() {
		if isAmountColumn(col) {
			out.Apply(col, coerceNumeric)
		}
	}

	if os == "ios" || os == "unified" {
		out = consolidateDevices(out, "Downloads")
		out = consolidateDevices(out, "Revenue")
	}

	return out
}

func isAmountColumn(name string) bool {
	lower := strings.ToLower(name)
	for _, p := range amountPatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// parseDate truncates a date-time string to its date part and parses it.
// Values that are not YYYY-MM-DD prefixed strings pass through untouched.
func parseDate(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	if len(s) > 10 {
		s = s[:10]
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return v
	}
	return t
}

func coerceNumeric(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return v
	}
	return f
}

// consolidateDevices folds "iPhone <metric>" and "iPad <metric>" into
// "iOS <metric>" by element-wise sum. Both variants must be present;
// with only one the table is left alone rather than inventing a total
// from partial data.
func consolidateDevices(tbl *table.Table, metric string) *table.Table {
	phone := "iPhone " + metric
	tablet := "iPad " + metric
	if !tbl.HasColumn(phone) || !tbl.HasColumn(tablet) {
		return tbl
	}

	tabletCells, _ := tbl.Column(tablet)
	i := 0
	tbl.Apply(phone, func(v any) any {
		sum := asFloat(v) + asFloat(tabletCells[i])
		i++
		return sum
	})
	out := tbl.Rename(map[string]string{phone: "iOS " + metric}).Drop(tablet)
	slog.Info("consolidated device columns", "metric", metric, "into", "iOS "+metric)
	return out
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
