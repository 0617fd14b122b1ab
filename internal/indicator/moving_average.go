package indicator

import (
	"math"

	"github.com/amirphl/stock-technicals/internal/candle"
)

// CalculateSMA is the mean of the first window prices.
func CalculateSMA(prices []float64, window int) float64 {
	if len(prices) == 0 {
		return 0
	}
	window = clampWindow(window, len(prices))
	var sum float64
	for _, p := range prices[:window] {
		sum += p
	}
	return Round3(sum / float64(window))
}

// CalculateEMA runs an exponential moving average with alpha = 2/(window+1)
// over the chronological series, seeded with the oldest price, and returns
// its value at chronological index window-1.
func CalculateEMA(prices []float64, window int) float64 {
	if len(prices) == 0 {
		return 0
	}
	window = clampWindow(window, len(prices))
	chrono := candle.ToChronological(prices)
	alpha := 2 / (float64(window) + 1)
	ema := chrono[0]
	for _, p := range chrono[1:window] {
		ema = alpha*p + (1-alpha)*ema
	}
	return Round3(ema)
}

// CalculateWMA applies normalised linear weights 1..window to values as a
// discrete convolution in valid mode. The kernel is flipped by the
// convolution, so within each span the earliest sample carries the largest
// weight. When values is shorter than the kernel the roles swap, which keeps
// the output length at |len(values) - window| + 1.
func CalculateWMA(values []float64, window int) []float64 {
	if window < 1 || len(values) == 0 {
		return nil
	}
	weights := make([]float64, window)
	total := float64(window*(window+1)) / 2
	for i := range weights {
		weights[i] = float64(i+1) / total
	}
	return convolveValid(values, weights)
}

func convolveValid(a, v []float64) []float64 {
	if len(v) > len(a) {
		a, v = v, a
	}
	m := len(v)
	out := make([]float64, len(a)-m+1)
	for i := range out {
		var sum float64
		for j := 0; j < m; j++ {
			sum += v[j] * a[i+m-1-j]
		}
		out[i] = sum
	}
	return out
}

// CalculateHMA computes the Hull moving average over the chronological
// series: 2*WMA(window/2) - WMA(window), aligned on the most recent end, then
// smoothed with WMA(floor(sqrt(window))). A window below two has no half
// window and yields the latest price.
func CalculateHMA(prices []float64, window int) float64 {
	if len(prices) == 0 {
		return 0
	}
	window = clampWindow(window, len(prices))
	if window < 2 {
		return Round3(prices[0])
	}
	chrono := candle.ToChronological(prices)
	half := CalculateWMA(chrono, window/2)
	full := CalculateWMA(chrono, window)
	offset := len(half) - len(full)
	diff := make([]float64, len(full))
	for i := range full {
		diff[i] = 2*half[offset+i] - full[i]
	}
	hull := CalculateWMA(diff, int(math.Sqrt(float64(window))))
	return Round3(hull[len(hull)-1])
}

// CalculateVWMA is the volume-weighted mean close of the first window
// records. Zero total volume yields zero.
func CalculateVWMA(series candle.Series, window int) float64 {
	if len(series) == 0 {
		return 0
	}
	window = clampWindow(window, len(series))
	var weighted, volume int64
	for _, rec := range series[:window] {
		weighted += rec.LastTransaction * rec.Volume
		volume += rec.Volume
	}
	if volume == 0 {
		return 0
	}
	return Round3(float64(weighted) / float64(volume))
}
