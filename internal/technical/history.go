package technical

import "github.com/amirphl/stock-technicals/internal/candle"

// PriceHistory holds dates and closing prices oldest first, ready to plot.
type PriceHistory struct {
	Dates  []string `json:"dates"`
	Prices []int64  `json:"prices"`
}

// History parses only the closing price of each raw record and returns the
// series in chronological order.
func History(raws []candle.RawRecord) (PriceHistory, error) {
	h := PriceHistory{
		Dates:  make([]string, 0, len(raws)),
		Prices: make([]int64, 0, len(raws)),
	}
	for _, raw := range candle.ToChronological(raws) {
		p, err := candle.ParsePrice("last_transaction", raw.LastTransaction)
		if err != nil {
			return PriceHistory{}, err
		}
		h.Dates = append(h.Dates, raw.Date)
		h.Prices = append(h.Prices, p)
	}
	return h, nil
}
