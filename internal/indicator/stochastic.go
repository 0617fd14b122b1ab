package indicator

import "github.com/amirphl/stock-technicals/internal/signal"

// CalculateWilliamsR computes Williams %R of prices[0] within the high/low
// of the first window prices, scaled to [-100, 0].
func CalculateWilliamsR(prices []float64, window int) Result {
	if len(prices) == 0 {
		return Zero
	}
	window = clampWindow(window, len(prices))
	highest, lowest := highLow(prices[:window])
	if highest == lowest {
		return Zero
	}
	return classify(-100*(highest-prices[0])/(highest-lowest), signal.WilliamsBand)
}

// CalculateStochastic computes the stochastic oscillator %K of prices[0]
// within the high/low of the first window prices, scaled to [0, 100].
func CalculateStochastic(prices []float64, window int) Result {
	if len(prices) == 0 {
		return Zero
	}
	window = clampWindow(window, len(prices))
	highest, lowest := highLow(prices[:window])
	if highest == lowest {
		return Zero
	}
	return classify(100*(prices[0]-lowest)/(highest-lowest), signal.OscillatorBand)
}
