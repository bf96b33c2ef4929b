package stock

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fairyhunter13/stock-batch-aggregator/internal/model"
)

// ErrNotSequence reports a batch whose top level is not a JSON array of
// records. This is the only error that fails a whole batch; per-row
// shape problems are absorbed during aggregation.
var ErrNotSequence = errors.New("input is not a sequence of records")

// DecodeBatch parses a JSON batch document into records. Each row keeps
// its raw tuple fields for later validation; a non-array top level
// fails with ErrNotSequence.
func DecodeBatch(data []byte) ([]model.Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var records []model.Record
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotSequence, err)
	}
	// A JSON null decodes without error but is not a sequence.
	if records == nil {
		return nil, fmt.Errorf("%w: null batch", ErrNotSequence)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing content after batch", ErrNotSequence)
	}
	return records, nil
}
