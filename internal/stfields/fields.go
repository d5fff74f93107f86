// Package stfields maps the API's abbreviated response keys to descriptive
// column names. The mapping ships as an embedded resource keyed by OS and
// is loaded once; it is never mutated after load, so concurrent reads are
// safe.
package stfields

import (
	"fmt"
	"log/slog"

	_ "embed"

	"github.com/goccy/go-json"

	"github.com/sensortower/st-cli/internal/table"
)

//go:embed fields.json
var rawFields []byte

var tables map[string]map[string]string

func init() {
	if err := json.Unmarshal(rawFields, &tables); err != nil {
		panic(fmt.Sprintf("stfields: bad embedded fields.json: %v", err))
	}
}

// Mapping returns the abbreviated-key to descriptive-name mapping for the
// given OS. For "unified" it merges the iOS and Android tables; iOS wins
// when both define the same key. Unknown OS returns nil.
func Mapping(os string) map[string]string {
	switch os {
	case "ios", "android":
		return tables[os]
	case "unified":
		merged := make(map[string]string, len(tables["ios"])+len(tables["android"]))
		for k, v := range tables["android"] {
			merged[k] = v
		}
		for k, v := range tables["ios"] {
			merged[k] = v
		}
		return merged
	default:
		return nil
	}
}

// MapFields returns a copy of tbl with abbreviated column names replaced by
// their descriptive equivalents for the given OS. Unmapped columns pass
// through unchanged and column order is preserved. An unrecognized OS is
// not an error: the table comes back unchanged with a warning logged, so a
// caller's workflow is never aborted over a mapping miss.
func MapFields(tbl *table.Table, os string) *table.Table {
	mapping := Mapping(os)
	if mapping == nil {
		slog.Warn("no field mapping for OS, returning columns as-is", "os", os)
		return tbl.Clone()
	}
	rename := make(map[string]string)
	for _, col := range tbl.Columns() {
		if to, ok := mapping[col]; ok {
			rename[col] = to
		}
	}
	return tbl.Rename(rename)
}
