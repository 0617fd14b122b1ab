package indicator

import "github.com/amirphl/stock-technicals/internal/signal"

// CalculateMomentum returns the percent change from prices[window-1] to
// prices[0].
func CalculateMomentum(prices []float64, window int) Result {
	if len(prices) == 0 {
		return Zero
	}
	window = clampWindow(window, len(prices))
	base := prices[window-1]
	if base == 0 {
		return Zero
	}
	return classify((prices[0]-base)/base*100, signal.MomentumBand)
}
