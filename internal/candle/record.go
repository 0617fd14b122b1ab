// Package candle
package candle

import "errors"

// RawRecord is one trading day as stored by the scraper. Price fields carry
// '.' thousands separators followed by an 8-character annotation; volume
// carries separators only.
type RawRecord struct {
	Date            string `json:"date" yaml:"date"`
	LastTransaction string `json:"last_transaction" yaml:"last_transaction"`
	MaxValue        string `json:"max_value" yaml:"max_value"`
	MinValue        string `json:"min_value" yaml:"min_value"`
	Volume          string `json:"volume" yaml:"volume"`
}

// Record is a parsed trading day. All integer fields share the same implicit
// fixed-point scale, so they can be compared and divided directly.
type Record struct {
	Date            string `json:"date"`
	LastTransaction int64  `json:"last_transaction"`
	MaxValue        int64  `json:"max_value"`
	MinValue        int64  `json:"min_value"`
	Volume          int64  `json:"volume"`
}

// Validate checks that a record is internally consistent. Indicator math does
// not require it; callers that want to reject suspicious rows can use it.
func (r *Record) Validate() error {
	if r.MaxValue < r.MinValue {
		return errors.New("record max value cannot be less than min value")
	}
	if r.LastTransaction < r.MinValue || r.LastTransaction > r.MaxValue {
		return errors.New("record last transaction must be between min and max")
	}
	if r.Volume < 0 {
		return errors.New("record volume cannot be negative")
	}
	return nil
}

// BuyingPressure is the close minus the day's low.
func (r *Record) BuyingPressure() int64 {
	return r.LastTransaction - r.MinValue
}

// TrueRange is the day's high minus its low.
func (r *Record) TrueRange() int64 {
	return r.MaxValue - r.MinValue
}
