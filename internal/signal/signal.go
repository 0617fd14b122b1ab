// Package signal defines the discrete trading recommendations produced by
// the indicator library and the vote counting used to combine them.
package signal

import (
	"encoding/json"
	"fmt"
)

// Signal is a five-level trading recommendation, ordered from most bearish
// to most bullish. The zero value is Neutral.
type Signal int

const (
	StrongSell Signal = iota - 2
	Sell
	Neutral
	Buy
	StrongBuy
)

// All lists every signal in tally order.
var All = [...]Signal{StrongSell, Sell, Neutral, Buy, StrongBuy}

var names = [...]string{"strong_sell", "sell", "neutral", "buy", "strong_buy"}

// index is the position of a valid signal in All.
func (s Signal) index() int {
	return int(s - StrongSell)
}

func (s Signal) String() string {
	if !s.Valid() {
		return fmt.Sprintf("signal(%d)", int(s))
	}
	return names[s.index()]
}

// Valid reports whether s is one of the five known signals.
func (s Signal) Valid() bool {
	return s >= StrongSell && s <= StrongBuy
}

// Parse converts the wire name of a signal back into a Signal.
func Parse(name string) (Signal, error) {
	for _, s := range All {
		if names[s.index()] == name {
			return s, nil
		}
	}
	return Neutral, fmt.Errorf("unknown signal %q", name)
}

func (s Signal) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid signal %d", int(s))
	}
	return []byte(names[s.index()]), nil
}

func (s *Signal) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s Signal) MarshalJSON() ([]byte, error) {
	b, err := s.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(b))
}

func (s *Signal) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	return s.UnmarshalText([]byte(name))
}
