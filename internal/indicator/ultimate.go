package indicator

import (
	"github.com/amirphl/stock-technicals/internal/candle"
	"github.com/amirphl/stock-technicals/internal/signal"
)

// UltimateWindows are the short, medium and long sub-windows of the ultimate
// oscillator. They are weighted 4, 2 and 1.
type UltimateWindows [3]int

// DefaultUltimateWindows is the classic 7/14/28 configuration.
var DefaultUltimateWindows = UltimateWindows{7, 14, 28}

var ultimateWeights = [3]float64{4, 2, 1}

// CalculateUltimateOscillator blends buying pressure over true range for the
// three sub-windows. Each sub-window sums the last n records of the series,
// which are its oldest; a series shorter than n, or a zero true-range sum,
// contributes zero for that term.
func CalculateUltimateOscillator(series candle.Series, windows UltimateWindows) Result {
	var blend, weights float64
	for i, n := range windows {
		blend += ultimateWeights[i] * pressureRatio(series, n)
		weights += ultimateWeights[i]
	}
	return classify(100*blend/weights, signal.UltimateBand)
}

func pressureRatio(series candle.Series, n int) float64 {
	if n < 1 || len(series) < n {
		return 0
	}
	var bp, tr int64
	for _, rec := range series[len(series)-n:] {
		bp += rec.BuyingPressure()
		tr += rec.TrueRange()
	}
	if tr == 0 {
		return 0
	}
	return float64(bp) / float64(tr)
}
