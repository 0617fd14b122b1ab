package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/amirphl/stock-technicals/internal/candle"
	"github.com/amirphl/stock-technicals/internal/config"
	"github.com/amirphl/stock-technicals/internal/technical"
	"github.com/amirphl/stock-technicals/internal/utils"
)

// stockDocument is the shape the record store keeps per stock.
type stockDocument struct {
	ID   string             `json:"_id"`
	Data []candle.RawRecord `json:"data"`
}

// decodeRecords accepts either a stock document or a bare array of raw
// records, most recent first.
func decodeRecords(data []byte) (string, []candle.RawRecord, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var raws []candle.RawRecord
		if err := json.Unmarshal(trimmed, &raws); err != nil {
			return "", nil, fmt.Errorf("decode records: %w", err)
		}
		return "", raws, nil
	}
	var doc stockDocument
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return "", nil, fmt.Errorf("decode stock document: %w", err)
	}
	return doc.ID, doc.Data, nil
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func run(cfg config.Config, log zerolog.Logger, out io.Writer) error {
	data, err := readInput(cfg.Input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	stock, raws, err := decodeRecords(data)
	if err != nil {
		return err
	}
	log = log.With().Str("stock", stock).Logger()
	log.Info().Int("records", len(raws)).Msg("records loaded")

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	if cfg.History {
		h, err := technical.History(raws)
		if err != nil {
			return err
		}
		return enc.Encode(h)
	}

	engine, err := technical.New(cfg.Engine.Technical(), technical.WithLogger(log))
	if err != nil {
		return err
	}
	results, err := engine.Periods(raws)
	if err != nil {
		return err
	}
	for name, res := range results {
		log.Info().Str("period", name).Stringer("overall_signal", res.OverallSignal).Msg("period analysed")
	}
	return enc.Encode(results)
}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	log, err := utils.NewLogger(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg, log, os.Stdout); err != nil {
		log.Error().Err(err).Msg("technical analysis failed")
		os.Exit(1)
	}
}
