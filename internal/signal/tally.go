package signal

// Tally counts votes per signal. The zero value is ready to use.
type Tally [len(All)]int

// Add records one vote for s. Invalid signals are ignored.
func (t *Tally) Add(votes ...Signal) {
	for _, s := range votes {
		if s.Valid() {
			t[s.index()]++
		}
	}
}

// Count returns the number of votes recorded for s.
func (t *Tally) Count(s Signal) int {
	if !s.Valid() {
		return 0
	}
	return t[s.index()]
}

// Total returns the number of votes recorded.
func (t *Tally) Total() int {
	n := 0
	for _, c := range t {
		n += c
	}
	return n
}

// Majority returns the signal with the most votes. When more than one signal
// shares the highest count the result is Neutral, whichever came first.
func (t *Tally) Majority() Signal {
	best := All[0]
	for _, s := range All[1:] {
		if t[s.index()] > t[best.index()] {
			best = s
		}
	}
	ties := 0
	for _, c := range t {
		if c == t[best.index()] {
			ties++
		}
	}
	if ties > 1 {
		return Neutral
	}
	return best
}
