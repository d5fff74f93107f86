package filter

import (
	"reflect"
	"testing"
)

func TestApplyEmptyExpression(t *testing.T) {
	data := map[string]any{"a": 1}
	got, err := Apply(data, "")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, data) {
		t.Errorf("Apply with empty expr = %v, want input unchanged", got)
	}
}

func TestApplySelectsField(t *testing.T) {
	data := map[string]any{"name": "slack", "count": 3}
	got, err := Apply(data, ".name")
	if err != nil {
		t.Fatal(err)
	}
	if got != "slack" {
		t.Errorf("Apply(.name) = %v", got)
	}
}

func TestApplyMultipleResults(t *testing.T) {
	data := []any{map[string]any{"v": 1.0}, map[string]any{"v": 2.0}}
	got, err := Apply(data, ".[].v")
	if err != nil {
		t.Fatal(err)
	}
	want := []any{1.0, 2.0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Apply(.[].v) = %v, want %v", got, want)
	}
}

func TestApplyInvalidExpression(t *testing.T) {
	if _, err := Apply(nil, ".["); err == nil {
		t.Error("expected parse error")
	}
}

func TestNormalizeExpression(t *testing.T) {
	if got := NormalizeExpression(`.a \!= 1`); got != `.a != 1` {
		t.Errorf("NormalizeExpression = %q", got)
	}
}
