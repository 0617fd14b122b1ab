package indicator

import (
	"github.com/amirphl/stock-technicals/internal/candle"
	"github.com/amirphl/stock-technicals/internal/signal"
)

// CalculateIchimokuBaseLine computes the Kijun-sen, the midpoint of the
// highest max and lowest min over the first window records in chronological
// order. The signal is the percent deviation of that span's opening close
// from the base line.
func CalculateIchimokuBaseLine(series candle.Series, window int) Result {
	if window < 1 || len(series) < window {
		return Zero
	}
	span := series.Chronological()[:window]
	highest, lowest := span[0].MaxValue, span[0].MinValue
	for _, rec := range span[1:] {
		highest = max(highest, rec.MaxValue)
		lowest = min(lowest, rec.MinValue)
	}
	base := float64(highest+lowest) / 2
	if base == 0 {
		return Zero
	}
	price := float64(span[0].LastTransaction)
	deviation := (price - base) / base * 100
	return Result{Value: Round3(base), Signal: signal.Deviation(deviation)}
}
