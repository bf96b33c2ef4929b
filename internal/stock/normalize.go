package stock

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ConversionError reports a price value that cannot be turned into a
// monetary amount. Value holds the offending raw input.
type ConversionError struct {
	Value any
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert price %v (%T) to an amount", e.Value, e.Value)
}

// NormalizePrice converts a heterogeneous price value into a decimal
// amount. Numeric inputs convert directly; strings and json.Numbers are
// parsed after trimming whitespace. Anything else, or a value that does
// not parse as a number, fails with *ConversionError.
func NormalizePrice(price any) (decimal.Decimal, error) {
	switch v := price.(type) {
	case decimal.Decimal:
		return v, nil
	case float64:
		// decimal.NewFromFloat panics on non-finite values.
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Decimal{}, &ConversionError{Value: price}
		}
		return decimal.NewFromFloat(v), nil
	case float32:
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return decimal.Decimal{}, &ConversionError{Value: price}
		}
		return decimal.NewFromFloat32(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int32:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Decimal{}, &ConversionError{Value: price}
		}
		return d, nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Decimal{}, &ConversionError{Value: price}
		}
		return d, nil
	default:
		return decimal.Decimal{}, &ConversionError{Value: price}
	}
}
