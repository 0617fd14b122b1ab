package strategy

import "github.com/amirphl/stock-technicals/internal/signal"

// CompareMovingAverages grades price against four moving averages. The rules
// are checked in order and the first match wins:
//
//	price or sma is zero                  neutral
//	above >= 3 and hma > ema > sma        strong_buy
//	above >= 2                            buy
//	above == 1                            sell
//	above == 0 and hma < ema < sma        strong_sell
//	otherwise                             sell
//
// where above counts the averages price is strictly greater than.
func CompareMovingAverages(price, sma, ema, hma, vwma float64) signal.Signal {
	if price == 0 || sma == 0 {
		return signal.Neutral
	}

	above := 0
	for _, ma := range [...]float64{sma, ema, hma, vwma} {
		if price > ma {
			above++
		}
	}
	trendingUp := hma > ema && ema > sma
	trendingDown := hma < ema && ema < sma

	switch {
	case above >= 3 && trendingUp:
		return signal.StrongBuy
	case above >= 2:
		return signal.Buy
	// above == 2 is always a buy; there is no separate neutral case for it.
	case above == 1:
		return signal.Sell
	case above == 0 && trendingDown:
		return signal.StrongSell
	default:
		return signal.Sell
	}
}
