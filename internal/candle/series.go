package candle

// Series is a most-recent-first sequence of parsed records: index 0 is the
// latest trading day.
type Series []Record

// Closes returns the last-transaction prices in the series' own order.
func (s Series) Closes() []int64 {
	out := make([]int64, len(s))
	for i := range s {
		out[i] = s[i].LastTransaction
	}
	return out
}

// Chronological returns a copy of the series ordered oldest first.
func (s Series) Chronological() Series {
	return ToChronological(s)
}

// ToChronological returns a reversed copy of a most-recent-first slice.
// The input is left untouched.
func ToChronological[T any](series []T) []T {
	out := make([]T, len(series))
	for i, v := range series {
		out[len(series)-1-i] = v
	}
	return out
}
