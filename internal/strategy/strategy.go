// Package strategy turns indicator readings into trading decisions: the
// moving-average cross-check and the overall majority vote.
package strategy

import (
	"github.com/amirphl/stock-technicals/internal/indicator"
	"github.com/amirphl/stock-technicals/internal/signal"
)

// Indicators is the full set of readings computed for one period.
type Indicators struct {
	RSI        indicator.Result `json:"rsi"`
	Momentum   indicator.Result `json:"momentum"`
	WilliamsR  indicator.Result `json:"williams_percent_range"`
	Stochastic indicator.Result `json:"stochastic_oscillator"`
	Ultimate   indicator.Result `json:"ultimate_oscillator"`
	SMA        float64          `json:"sma"`
	EMA        float64          `json:"ema"`
	HMA        float64          `json:"hull_moving_average"`
	VWMA       float64          `json:"volume_weighted_average_price"`
	Ichimoku   indicator.Result `json:"ichimoku_base_line"`
}

// Votes returns the seven signals that take part in the overall vote, in
// tally order: the five oscillators, the moving-average cross-check and the
// Ichimoku base line.
//
// The readings carry no last-trade price, so the cross-check here is made
// with the SMA standing in for the price.
func (ind Indicators) Votes() []signal.Signal {
	return []signal.Signal{
		ind.RSI.Signal,
		ind.Momentum.Signal,
		ind.WilliamsR.Signal,
		ind.Stochastic.Signal,
		ind.Ultimate.Signal,
		CompareMovingAverages(ind.SMA, ind.SMA, ind.EMA, ind.HMA, ind.VWMA),
		ind.Ichimoku.Signal,
	}
}

// OverallSignal is the majority of ind's votes. Any tie for the highest
// count resolves to neutral.
func OverallSignal(ind Indicators) signal.Signal {
	var tally signal.Tally
	tally.Add(ind.Votes()...)
	return tally.Majority()
}
