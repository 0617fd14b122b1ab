package signal

// Threshold is one row of a band table: values at or below Max map to Signal.
type Threshold struct {
	Max    float64
	Signal Signal
}

// Band maps a numeric indicator value to a Signal. Rows are checked in
// order and the first one whose Max is not exceeded wins; values above
// every row get Above. A value of exactly zero is always Neutral.
type Band struct {
	Rows  []Threshold
	Above Signal
}

// Classify returns the signal for v.
func (b Band) Classify(v float64) Signal {
	if v == 0 {
		return Neutral
	}
	for _, row := range b.Rows {
		if v <= row.Max {
			return row.Signal
		}
	}
	return b.Above
}

var (
	// OscillatorBand is used by RSI and the stochastic oscillator.
	OscillatorBand = Band{
		Rows: []Threshold{
			{20, StrongBuy},
			{40, Buy},
			{60, Neutral},
			{80, Sell},
		},
		Above: StrongSell,
	}

	UltimateBand = Band{
		Rows: []Threshold{
			{30, StrongBuy},
			{45, Buy},
			{55, Neutral},
			{70, Sell},
		},
		Above: StrongSell,
	}

	// MomentumBand classifies a percent change.
	MomentumBand = Band{
		Rows: []Threshold{
			{-5, StrongSell},
			{-1, Sell},
			{1, Neutral},
			{5, Buy},
		},
		Above: StrongBuy,
	}

	WilliamsBand = Band{
		Rows: []Threshold{
			{-80, StrongBuy},
			{-60, Buy},
			{-40, Neutral},
			{-20, Sell},
		},
		Above: StrongSell,
	}
)

// Deviation classifies a percent deviation of price from a reference line.
// Unlike Band, it treats anything within one percent either way as Neutral.
func Deviation(percent float64) Signal {
	switch {
	case percent > -1 && percent < 1:
		return Neutral
	case percent <= -10:
		return StrongSell
	case percent < 0:
		return Sell
	case percent <= 10:
		return Buy
	default:
		return StrongBuy
	}
}
