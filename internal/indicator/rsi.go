package indicator

import "github.com/amirphl/stock-technicals/internal/signal"

// CalculateRSI computes the relative strength index of the first window
// differences of prices. Differences are taken along the series' own order,
// d[i] = prices[i+1] - prices[i], and both averages divide by window even
// when fewer differences exist.
func CalculateRSI(prices []float64, window int) Result {
	if window <= 1 || len(prices) < 2 {
		return Zero
	}
	n := min(window, len(prices)-1)
	var gain, loss float64
	for i := 0; i < n; i++ {
		change := prices[i+1] - prices[i]
		if change > 0 {
			gain += change
		} else {
			loss += -change
		}
	}
	avgGain := gain / float64(window)
	avgLoss := loss / float64(window)
	if avgLoss == 0 {
		return Zero
	}
	rs := avgGain / avgLoss
	return classify(100-(100/(1+rs)), signal.OscillatorBand)
}
