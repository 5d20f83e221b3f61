package clock

import "time"

// Delayer blocks the caller for a number of clock cycles
type Delayer interface {
	DelayCycles(n uint32)
}

// BusyWait spins on a Counter. It is exact to within a few cycles, needs no timer peripheral and
// keeps the processor busy for the whole delay, so it is only suitable for very short pulses.
type BusyWait struct {
	Counter Counter
}

// NewBusyWait creates a BusyWait reading the same counter as the Clock
func NewBusyWait(c *Clock) BusyWait {
	return BusyWait{Counter: c.counter}
}

// DelayCycles spins until n cycles have passed. The subtraction is modulo 2^32 so a counter wrap
// during the delay is harmless, but n must stay well below 2^32: the loop only ends once a read
// lands between n and the next wrap.
func (b BusyWait) DelayCycles(n uint32) {
	start := b.Counter.Count()
	for b.Counter.Count()-start < n {
	}
}

// Delay spins for d, rounded to whole cycles at freq. d is limited like DelayCycles.
func (b BusyWait) Delay(d time.Duration, freq Freq) {
	b.DelayCycles(freq.Cycles(d))
}
