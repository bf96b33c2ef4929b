package model

import (
	"encoding/json"
	"testing"
)

func TestRecordUnmarshalArray(t *testing.T) {
	var r Record
	if err := json.Unmarshal([]byte(`["p001", 99.99, 3]`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(r.Fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(r.Fields))
	}
	if _, ok := r.Fields[1].(json.Number); !ok {
		t.Fatalf("price should decode as json.Number, got %T", r.Fields[1])
	}
	if _, ok := r.Fields[2].(json.Number); !ok {
		t.Fatalf("quantity should decode as json.Number, got %T", r.Fields[2])
	}
}

func TestRecordUnmarshalNonArray(t *testing.T) {
	var r Record
	if err := json.Unmarshal([]byte(`"not a tuple"`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(r.Fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(r.Fields))
	}
	if s, ok := r.Fields[0].(string); !ok || s != "not a tuple" {
		t.Fatalf("unexpected field: %v", r.Fields[0])
	}
}

func TestAggregationResultJSONShape(t *testing.T) {
	res := AggregationResult{
		TotalValue:         650.00,
		OutOfStockItems:    []string{"p003"},
		LowStockItems:      []string{},
		NegativeStockItems: []string{},
	}
	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"total_value":650,"out_of_stock_items":["p003"],"low_stock_items":[],"negative_stock_items":[]}`
	if string(b) != want {
		t.Fatalf("unexpected json: %s", b)
	}
}
