// Package technical runs the indicator library over a stock's raw trading
// history and assembles the per-period result mapping.
package technical

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/amirphl/stock-technicals/internal/candle"
	"github.com/amirphl/stock-technicals/internal/indicator"
	"github.com/amirphl/stock-technicals/internal/signal"
	"github.com/amirphl/stock-technicals/internal/strategy"
)

var (
	ErrEmptySeries      = errors.New("no records to analyse")
	ErrInvalidWindow    = errors.New("window must be at least 1")
	ErrInsufficientData = errors.New("not enough records for analysis")
)

// Results is the result mapping for one period: every indicator reading,
// the moving-average comparison against the latest price and the overall
// signal.
type Results struct {
	strategy.Indicators
	MAComparison  signal.Signal `json:"ma_comparison"`
	OverallSignal signal.Signal `json:"overall_signal"`
}

// Engine computes technical results. It holds no mutable state and is safe
// for concurrent use.
type Engine struct {
	cfg Config
	log zerolog.Logger
}

type Option func(*Engine)

// WithLogger makes the engine report each computation at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// New validates cfg and returns an engine for it.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{cfg: cfg, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Results parses raws (most recent first) and computes every indicator with
// window clamped to the number of records.
func (e *Engine) Results(raws []candle.RawRecord, window int) (Results, error) {
	if len(raws) == 0 {
		return Results{}, ErrEmptySeries
	}
	if window < 1 {
		return Results{}, fmt.Errorf("%w: got %d", ErrInvalidWindow, window)
	}
	series, err := candle.ParseAll(raws)
	if err != nil {
		return Results{}, fmt.Errorf("parse records: %w", err)
	}
	return e.Compute(series, window), nil
}

// Compute runs the indicators on an already parsed series. An empty series
// yields zero values and neutral signals throughout.
func (e *Engine) Compute(series candle.Series, window int) Results {
	if len(series) == 0 {
		return Results{}
	}
	window = max(1, min(window, len(series)))
	prices := indicator.Closes(series)
	maWindow := min(window, e.cfg.MovingAverageCap)

	var res Results
	res.RSI = indicator.CalculateRSI(prices, window)
	res.Momentum = indicator.CalculateMomentum(prices, window)
	res.WilliamsR = indicator.CalculateWilliamsR(prices, e.cfg.WilliamsWindow)
	res.Stochastic = indicator.CalculateStochastic(prices, window)
	res.Ultimate = indicator.CalculateUltimateOscillator(series, e.cfg.Ultimate)
	res.SMA = indicator.CalculateSMA(prices, maWindow)
	res.EMA = indicator.CalculateEMA(prices, maWindow)
	res.HMA = indicator.CalculateHMA(prices, min(e.cfg.HullCap, window))
	res.VWMA = indicator.CalculateVWMA(series, window)
	res.Ichimoku = indicator.CalculateIchimokuBaseLine(series, window)
	res.MAComparison = strategy.CompareMovingAverages(prices[0], res.SMA, res.EMA, res.HMA, res.VWMA)
	res.OverallSignal = strategy.OverallSignal(res.Indicators)

	e.log.Debug().
		Int("records", len(series)).
		Int("window", window).
		Stringer("overall_signal", res.OverallSignal).
		Msg("technical results computed")
	return res
}

// PeriodResults maps a period name to its results.
type PeriodResults map[string]Results

// Periods computes results for every configured period. Each period takes
// its own prefix of raws, min(window, len(raws)) records long, and parses
// it independently.
func (e *Engine) Periods(raws []candle.RawRecord) (PeriodResults, error) {
	if len(raws) < e.cfg.MinRecords {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientData, len(raws), e.cfg.MinRecords)
	}
	out := make(PeriodResults, len(e.cfg.Periods))
	for _, p := range e.cfg.Periods {
		days := min(p.Window, len(raws))
		res, err := e.Results(raws[:days], days)
		if err != nil {
			return nil, fmt.Errorf("period %s: %w", p.Name, err)
		}
		out[p.Name] = res
	}
	return out, nil
}
