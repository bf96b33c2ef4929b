// Package main runs the stock batch aggregator over a JSON batch.
//
// The batch is read from the file named by the first argument, or from
// stdin when no argument is given. The aggregation result is written as
// JSON to stdout; diagnostics go to stderr.
package main

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/fairyhunter13/stock-batch-aggregator/internal/config"
	"github.com/fairyhunter13/stock-batch-aggregator/internal/obs"
	"github.com/fairyhunter13/stock-batch-aggregator/internal/stock"
)

func main() {
	cfg := config.Load()
	obs.InitLogger(cfg.LogLevel)
	obs.Logger.Info("aggregator_starting", "legacy_output", cfg.LegacyOutput)

	data, err := readInput(os.Args[1:])
	if err != nil {
		obs.Logger.Error("input_read_error", "error", err)
		os.Exit(1)
	}

	agg := stock.New(
		stock.WithLogger(obs.Logger),
		stock.WithLowStockThreshold(int64(cfg.LowStockThreshold)),
	)
	records, err := stock.DecodeBatch(data)
	if err != nil {
		if errors.Is(err, stock.ErrNotSequence) {
			obs.Logger.Error("invalid_batch_input", "error", err)
		} else {
			obs.Logger.Error("batch_decode_error", "error", err)
		}
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	if cfg.LegacyOutput {
		err = enc.Encode(agg.AggregateLegacy(records))
	} else {
		err = enc.Encode(agg.Aggregate(records))
	}
	if err != nil {
		obs.Logger.Error("result_encode_error", "error", err)
		os.Exit(1)
	}
	obs.Logger.Info("aggregator_finished")
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}
