package candle

import (
	"fmt"
	"strconv"
	"strings"
)

// SuffixLen is the length, in characters, of the opaque annotation trailing
// every price field (",00 ден." as written by the scraper).
const SuffixLen = 8

// ParseError reports a raw field that does not hold an integer once the
// annotation and separators are removed.
type ParseError struct {
	Field string
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s %q: %v", e.Field, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParsePrice drops the trailing annotation, removes every '.' and parses the
// remainder as a base-10 integer: "1.234.567decimals" is 1234567.
func ParsePrice(field, s string) (int64, error) {
	r := []rune(s)
	if len(r) < SuffixLen {
		return 0, &ParseError{Field: field, Input: s, Err: fmt.Errorf("shorter than %d-character suffix", SuffixLen)}
	}
	return parseDigits(field, s, string(r[:len(r)-SuffixLen]))
}

// ParseVolume removes every '.' from s and parses it as an integer.
func ParseVolume(field, s string) (int64, error) {
	return parseDigits(field, s, s)
}

func parseDigits(field, input, s string) (int64, error) {
	v, err := strconv.ParseInt(strings.ReplaceAll(s, ".", ""), 10, 64)
	if err != nil {
		return 0, &ParseError{Field: field, Input: input, Err: err}
	}
	return v, nil
}

// Parse converts one raw record. The date is carried through untouched.
func Parse(raw RawRecord) (Record, error) {
	var (
		rec = Record{Date: raw.Date}
		err error
	)
	if rec.LastTransaction, err = ParsePrice("last_transaction", raw.LastTransaction); err != nil {
		return Record{}, err
	}
	if rec.MaxValue, err = ParsePrice("max_value", raw.MaxValue); err != nil {
		return Record{}, err
	}
	if rec.MinValue, err = ParsePrice("min_value", raw.MinValue); err != nil {
		return Record{}, err
	}
	if rec.Volume, err = ParseVolume("volume", raw.Volume); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// ParseAll parses raws in order. The first malformed record aborts the whole
// series; nothing is skipped or substituted.
func ParseAll(raws []RawRecord) ([]Record, error) {
	out := make([]Record, 0, len(raws))
	for i, raw := range raws {
		rec, err := Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("record %d (%s): %w", i, raw.Date, err)
		}
		out = append(out, rec)
	}
	return out, nil
}
