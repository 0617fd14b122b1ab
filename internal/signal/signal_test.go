package signal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignalNames(t *testing.T) {
	expected := map[Signal]string{
		StrongSell: "strong_sell",
		Sell:       "sell",
		Neutral:    "neutral",
		Buy:        "buy",
		StrongBuy:  "strong_buy",
	}
	for s, name := range expected {
		assert.Equal(t, name, s.String())
		parsed, err := Parse(name)
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := Parse("hold")
	assert.Error(t, err)
	assert.False(t, Signal(7).Valid())
}

func TestSignalJSON(t *testing.T) {
	b, err := json.Marshal(map[string]Signal{"overall_signal": StrongBuy})
	require.NoError(t, err)
	assert.JSONEq(t, `{"overall_signal":"strong_buy"}`, string(b))

	var s Signal
	require.NoError(t, json.Unmarshal([]byte(`"sell"`), &s))
	assert.Equal(t, Sell, s)

	assert.Error(t, json.Unmarshal([]byte(`"up"`), &s))
	_, err = json.Marshal(Signal(-3))
	assert.Error(t, err)
}

func TestBandClassify(t *testing.T) {
	tests := []struct {
		name     string
		band     Band
		value    float64
		expected Signal
	}{
		{"oscillator zero", OscillatorBand, 0, Neutral},
		{"oscillator low", OscillatorBand, 12.5, StrongBuy},
		{"oscillator boundary 20", OscillatorBand, 20, StrongBuy},
		{"oscillator 40", OscillatorBand, 40, Buy},
		{"oscillator mid", OscillatorBand, 50, Neutral},
		{"oscillator 80", OscillatorBand, 80, Sell},
		{"oscillator high", OscillatorBand, 80.001, StrongSell},
		{"ultimate 30", UltimateBand, 30, StrongBuy},
		{"ultimate 45", UltimateBand, 44.9, Buy},
		{"ultimate 55", UltimateBand, 55, Neutral},
		{"ultimate 70", UltimateBand, 70, Sell},
		{"ultimate high", UltimateBand, 71, StrongSell},
		{"momentum crash", MomentumBand, -12, StrongSell},
		{"momentum dip", MomentumBand, -1, Sell},
		{"momentum flat", MomentumBand, 0.5, Neutral},
		{"momentum zero", MomentumBand, 0, Neutral},
		{"momentum gain", MomentumBand, 5, Buy},
		{"momentum rally", MomentumBand, 5.001, StrongBuy},
		{"williams oversold", WilliamsBand, -95, StrongBuy},
		{"williams -60", WilliamsBand, -60, Buy},
		{"williams -50", WilliamsBand, -50, Neutral},
		{"williams -20", WilliamsBand, -20, Sell},
		{"williams overbought", WilliamsBand, -5, StrongSell},
		{"williams zero", WilliamsBand, 0, Neutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.band.Classify(tt.value))
		})
	}
}

func TestDeviation(t *testing.T) {
	assert.Equal(t, Neutral, Deviation(0))
	assert.Equal(t, Neutral, Deviation(0.99))
	assert.Equal(t, Neutral, Deviation(-0.99))
	assert.Equal(t, Sell, Deviation(-1))
	assert.Equal(t, Sell, Deviation(-9.99))
	assert.Equal(t, StrongSell, Deviation(-10))
	assert.Equal(t, Buy, Deviation(1))
	assert.Equal(t, Buy, Deviation(10))
	assert.Equal(t, StrongBuy, Deviation(10.01))
}

func TestTallyMajority(t *testing.T) {
	t.Run("clear winner", func(t *testing.T) {
		var tally Tally
		tally.Add(Buy, Buy, Buy, Sell, Neutral, StrongBuy, Sell)
		assert.Equal(t, 7, tally.Total())
		assert.Equal(t, 3, tally.Count(Buy))
		assert.Equal(t, Buy, tally.Majority())
	})

	t.Run("two-way tie is neutral", func(t *testing.T) {
		var tally Tally
		tally.Add(StrongSell, StrongSell, StrongBuy, StrongBuy, Sell, Buy, Neutral)
		assert.Equal(t, Neutral, tally.Majority())
	})

	t.Run("tie away from neutral still neutral", func(t *testing.T) {
		var tally Tally
		tally.Add(Sell, Sell, Sell, Buy, Buy, Buy, StrongBuy)
		assert.Equal(t, Neutral, tally.Majority())
	})

	t.Run("empty", func(t *testing.T) {
		var tally Tally
		assert.Equal(t, Neutral, tally.Majority())
	})

	t.Run("invalid votes ignored", func(t *testing.T) {
		var tally Tally
		tally.Add(Signal(9), StrongSell)
		assert.Equal(t, 1, tally.Total())
		assert.Equal(t, 0, tally.Count(Signal(9)))
		assert.Equal(t, StrongSell, tally.Majority())
	})
}

func TestZeroValueIsNeutral(t *testing.T) {
	var s Signal
	assert.Equal(t, Neutral, s)
	assert.True(t, StrongSell < Sell && Sell < Neutral && Neutral < Buy && Buy < StrongBuy)
}
