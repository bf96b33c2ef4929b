// Package model defines domain types used by the aggregator.
package model

import (
	"bytes"
	"encoding/json"
)

// Record represents one incoming product row before validation.
//
// Rows arrive tuple-style as [product_id, price, stock_quantity], but
// producers get the shape wrong often enough that Fields stays loosely
// typed: the aggregator validates each field and skips bad rows instead
// of letting one of them fail the batch.
type Record struct {
	Fields []any
}

// NewRecord builds a well-formed three-field record.
func NewRecord(productID, price, stockQuantity any) Record {
	return Record{Fields: []any{productID, price, stockQuantity}}
}

// RecordFromTuple wraps raw tuple fields of any arity.
func RecordFromTuple(fields []any) Record {
	return Record{Fields: fields}
}

// UnmarshalJSON decodes a JSON array row. Numbers are kept as
// json.Number so the integer check on quantities still sees the
// difference between 3 and 3.0. A non-array row is kept as a single
// malformed field rather than rejected, so the aggregator can report
// and skip it.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var fields []any
	if err := dec.Decode(&fields); err == nil {
		r.Fields = fields
		return nil
	}
	dec = json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	r.Fields = []any{v}
	return nil
}

// AggregationResult is the outcome of processing one batch.
//
// The category slices hold product identifiers in input order and are
// never nil. TotalValue is rounded to two decimal places.
type AggregationResult struct {
	TotalValue         float64  `json:"total_value"`
	OutOfStockItems    []string `json:"out_of_stock_items"`
	LowStockItems      []string `json:"low_stock_items"`
	NegativeStockItems []string `json:"negative_stock_items"`
}

// LegacySummary is the result shape of the pre-categorization interface:
// total value plus out-of-stock identifiers only.
type LegacySummary struct {
	TotalValue      float64  `json:"total_value"`
	OutOfStockItems []string `json:"out_of_stock_items"`
}
