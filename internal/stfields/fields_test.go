package stfields

import (
	"reflect"
	"testing"

	"github.com/sensortower/st-cli/internal/table"
)

func TestMappingUnifiedPrefersIOS(t *testing.T) {
	unified := Mapping("unified")
	if unified == nil {
		t.Fatal("Mapping(unified) = nil")
	}
	// "cc" is defined by both tables with different names; iOS wins.
	if got := unified["cc"]; got != "Country Code" {
		t.Errorf("unified cc = %q, want iOS mapping %q", got, "Country Code")
	}
	// Android-only keys survive the merge.
	if got := unified["u"]; got != "Android Downloads" {
		t.Errorf("unified u = %q, want %q", got, "Android Downloads")
	}
	// iOS-only keys survive too.
	if got := unified["iu"]; got != "iPhone Downloads" {
		t.Errorf("unified iu = %q, want %q", got, "iPhone Downloads")
	}
}

func TestMappingUnknownOS(t *testing.T) {
	if m := Mapping("windows"); m != nil {
		t.Errorf("Mapping(windows) = %v, want nil", m)
	}
}

func TestMapFieldsRenamesAndPreservesOrder(t *testing.T) {
	tbl := table.New()
	tbl.AppendRow(map[string]any{"aid": "123", "d": "2024-01-01", "iu": 5, "x": 9},
		[]string{"aid", "d", "iu", "x"})

	got := MapFields(tbl, "ios")

	want := []string{"App ID", "Date", "iPhone Downloads", "x"}
	if cols := got.Columns(); !reflect.DeepEqual(cols, want) {
		t.Fatalf("columns = %v, want %v", cols, want)
	}
	if v, _ := got.Value(0, "iPhone Downloads"); v != 5 {
		t.Errorf("renamed cell = %v, want 5", v)
	}
	// Original untouched.
	if !tbl.HasColumn("aid") {
		t.Error("source table mutated")
	}
}

func TestMapFieldsUnifiedNoDuplicateColumns(t *testing.T) {
	// On unified, android "c" and iOS "cc" both resolve to "Country Code".
	// A response carrying both must not end up with two identically named
	// columns; the first keeps the descriptive name, the other keeps its
	// abbreviated one.
	tbl := table.New()
	tbl.AppendRow(map[string]any{"c": "US", "cc": "US", "aid": "1"},
		[]string{"c", "cc", "aid"})

	got := MapFields(tbl, "unified")

	seen := map[string]int{}
	for _, col := range got.Columns() {
		seen[col]++
	}
	if seen["Country Code"] != 1 {
		t.Fatalf("columns = %v, want exactly one Country Code", got.Columns())
	}
	if v, ok := got.Value(0, "Country Code"); !ok || v != "US" {
		t.Errorf("Country Code = %v (ok=%v)", v, ok)
	}
}

func TestMapFieldsIdempotentOnceDescriptive(t *testing.T) {
	for _, os := range []string{"ios", "android", "unified"} {
		tbl := table.New()
		tbl.AppendRow(map[string]any{"aid": "1", "d": "2024-01-01"}, []string{"aid", "d"})

		once := MapFields(tbl, os)
		twice := MapFields(once, os)

		if !reflect.DeepEqual(once.Columns(), twice.Columns()) {
			t.Errorf("os=%s: second pass changed columns: %v -> %v",
				os, once.Columns(), twice.Columns())
		}
	}
}

func TestMapFieldsUnknownOSPassesThrough(t *testing.T) {
	tbl := table.New()
	tbl.AppendRow(map[string]any{"aid": "1"}, []string{"aid"})

	got := MapFields(tbl, "symbian")
	if !reflect.DeepEqual(got.Columns(), []string{"aid"}) {
		t.Errorf("columns = %v, want unchanged", got.Columns())
	}
}
