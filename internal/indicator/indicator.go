// Package indicator implements the technical indicators of the analysis
// engine. Every function is pure: it reads a most-recent-first series and a
// window and returns a value rounded to three decimals, plus a signal for the
// oscillators.
package indicator

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/amirphl/stock-technicals/internal/candle"
	"github.com/amirphl/stock-technicals/internal/signal"
)

// Result is an indicator value together with the signal it maps to.
type Result struct {
	Value  float64
	Signal signal.Signal
}

// Zero is the fallback for degenerate input.
var Zero = Result{Value: 0, Signal: signal.Neutral}

func classify(v float64, band signal.Band) Result {
	v = Round3(v)
	return Result{Value: v, Signal: band.Classify(v)}
}

// MarshalJSON encodes a result as the pair [value, "signal"].
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{r.Value, r.Signal})
}

func (r *Result) UnmarshalJSON(b []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("indicator result: want [value, signal], got %d elements", len(pair))
	}
	if err := json.Unmarshal(pair[0], &r.Value); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &r.Signal)
}

// Round3 rounds v to three decimal places, resolving exact ties to even on
// the binary value. Negative zero becomes zero.
func Round3(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 3, 64), 64)
	if err != nil || r == 0 {
		return 0
	}
	return r
}

// Prices converts integer prices to float64 for the indicator math.
func Prices(values []int64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}

// Closes returns the series' last-transaction prices as float64.
func Closes(series candle.Series) []float64 {
	return Prices(series.Closes())
}

// clampWindow bounds a requested window to [1, n].
func clampWindow(window, n int) int {
	if window > n {
		window = n
	}
	if window < 1 {
		window = 1
	}
	return window
}

func highLow(values []float64) (high, low float64) {
	high, low = values[0], values[0]
	for _, v := range values[1:] {
		if v > high {
			high = v
		}
		if v < low {
			low = v
		}
	}
	return high, low
}
