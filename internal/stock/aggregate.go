// Package stock implements batch validation and aggregation of product
// stock records.
package stock

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fairyhunter13/stock-batch-aggregator/internal/model"
)

// DefaultLowStockThreshold is the inclusive upper bound for flagging a
// positive quantity as low stock.
const DefaultLowStockThreshold = 5

var errQuantityNotInteger = errors.New("stock quantity is not an integer")

// Aggregator processes batches of product records. It is stateless
// across calls; the zero-cost default configuration discards
// diagnostics, so construct with WithLogger to observe skipped records.
type Aggregator struct {
	log         *slog.Logger
	lowStockMax int64
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithLogger sets the diagnostic sink receiving per-record notices.
func WithLogger(l *slog.Logger) Option {
	return func(a *Aggregator) {
		if l != nil {
			a.log = l
		}
	}
}

// WithLowStockThreshold overrides the low-stock upper bound.
func WithLowStockThreshold(n int64) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.lowStockMax = n
		}
	}
}

// New constructs an Aggregator.
func New(opts ...Option) *Aggregator {
	a := &Aggregator{
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		lowStockMax: DefaultLowStockThreshold,
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// validated holds one record after all per-field checks passed.
type validated struct {
	id    string
	price decimal.Decimal
	qty   int64
}

// Aggregate computes the total inventory value of a batch and partitions
// product identifiers into stock-status categories.
//
// Records are processed in input order with per-record isolation: a
// malformed record is reported to the diagnostic sink and skipped, never
// failing the batch. Negative prices are clamped to zero; negative
// quantities flag the identifier and contribute nothing to the total.
// The total is rounded to two decimal places, half away from zero.
func (a *Aggregator) Aggregate(records []model.Record) model.AggregationResult {
	log := a.log.With("batch_id", uuid.NewString())
	log.Info("batch_processing_started", "record_count", len(records))

	res := model.AggregationResult{
		OutOfStockItems:    []string{},
		LowStockItems:      []string{},
		NegativeStockItems: []string{},
	}
	total := decimal.Zero
	for i, rec := range records {
		v, ok := a.validateRecord(log, i, rec)
		if !ok {
			continue
		}
		effective := v.qty
		if v.qty < 0 {
			log.Warn("negative_stock_quantity",
				"index", i, "product_id", v.id, "stock_quantity", v.qty)
			res.NegativeStockItems = append(res.NegativeStockItems, v.id)
			effective = 0
		}
		line := v.price.Mul(decimal.NewFromInt(effective))
		total = total.Add(line)

		switch {
		case v.qty == 0:
			res.OutOfStockItems = append(res.OutOfStockItems, v.id)
		case v.qty > 0 && v.qty <= a.lowStockMax:
			res.LowStockItems = append(res.LowStockItems, v.id)
		}
		log.Debug("record_processed",
			"index", i,
			"product_id", v.id,
			"price", v.price.InexactFloat64(),
			"stock_quantity", v.qty,
			"line_value", line.InexactFloat64(),
		)
	}
	res.TotalValue = total.Round(2).InexactFloat64()
	log.Info("batch_processing_complete",
		"total_value", res.TotalValue,
		"out_of_stock", len(res.OutOfStockItems),
		"low_stock", len(res.LowStockItems),
		"negative_stock", len(res.NegativeStockItems),
	)
	return res
}

// AggregateJSON decodes a JSON batch and aggregates it. The only
// whole-batch failure is a top-level input that is not a sequence of
// records (ErrNotSequence).
func (a *Aggregator) AggregateJSON(data []byte) (model.AggregationResult, error) {
	records, err := DecodeBatch(data)
	if err != nil {
		return model.AggregationResult{}, err
	}
	return a.Aggregate(records), nil
}

// AggregateLegacy adapts Aggregate to the older two-field result shape.
func (a *Aggregator) AggregateLegacy(records []model.Record) model.LegacySummary {
	r := a.Aggregate(records)
	return model.LegacySummary{TotalValue: r.TotalValue, OutOfStockItems: r.OutOfStockItems}
}

// validateRecord applies the per-field checks in order. It reports every
// problem to the diagnostic sink and returns ok=false for records that
// must be skipped. A negative price is clamped to zero and the record
// proceeds.
func (a *Aggregator) validateRecord(log *slog.Logger, idx int, rec model.Record) (validated, bool) {
	if len(rec.Fields) != 3 {
		log.Warn("skipping_malformed_record", "index", idx, "field_count", len(rec.Fields))
		return validated{}, false
	}
	id, ok := rec.Fields[0].(string)
	if !ok || strings.TrimSpace(id) == "" {
		log.Warn("invalid_product_id", "index", idx, "product_id", rec.Fields[0])
		return validated{}, false
	}
	price, err := NormalizePrice(rec.Fields[1])
	if err != nil {
		log.Error("skipping_record_invalid_price",
			"index", idx, "product_id", id, "price", rec.Fields[1], "error", err)
		return validated{}, false
	}
	if price.IsNegative() {
		log.Warn("negative_price_clamped",
			"index", idx, "product_id", id, "price", rec.Fields[1])
		price = decimal.Zero
	}
	qty, err := toQuantity(rec.Fields[2])
	if err != nil {
		log.Warn("invalid_stock_quantity",
			"index", idx, "product_id", id, "stock_quantity", rec.Fields[2])
		return validated{}, false
	}
	return validated{id: id, price: price, qty: qty}, true
}

// toQuantity accepts integer-valued quantities only. JSON numbers must
// parse as base-10 integers, so 3 passes and 3.0 does not.
func toQuantity(v any) (int64, error) {
	switch q := v.(type) {
	case int:
		return int64(q), nil
	case int32:
		return int64(q), nil
	case int64:
		return q, nil
	case json.Number:
		n, err := strconv.ParseInt(q.String(), 10, 64)
		if err != nil {
			return 0, errQuantityNotInteger
		}
		return n, nil
	default:
		return 0, errQuantityNotInteger
	}
}
