// Package clock derives elapsed time from a free-running hardware cycle counter.
//
// The counter is 32 bits wide and wraps silently: at 100MHz that happens every ~42.9s. Clock does
// not correct for this, so a reading taken after a wrap is smaller than one taken before it.
// Intervals measured with BusyWait are computed with modular arithmetic and are not affected.
package clock

// Counter is a free-running cycle counter, like the Cortex-M DWT CYCCNT register. It must already be
// running; Clock never starts or resets it.
type Counter interface {
	Count() uint32
}

// CounterFunc adapts a function to the Counter interface
type CounterFunc func() uint32

// Count implements Counter.
func (f CounterFunc) Count() uint32 {
	return f()
}

// Clock reports the time elapsed since the counter's epoch (normally device start). It has no
// mutable state, so one Clock can be shared by any number of readers in the same loop.
type Clock struct {
	counter Counter
	freq    Freq
}

// New creates a Clock that reads counter, which increments at freq
func New(counter Counter, freq Freq) *Clock {
	if freq <= 0 {
		panic("clock: frequency must be positive")
	}
	return &Clock{counter: counter, freq: freq}
}

// Freq returns the counting frequency
func (c *Clock) Freq() Freq {
	return c.freq
}

// Count returns the raw counter value
func (c *Clock) Count() uint32 {
	return c.counter.Count()
}

// Seconds returns the elapsed time in seconds
func (c *Clock) Seconds() float64 {
	return c.freq.Seconds(c.counter.Count())
}

// Milliseconds returns the elapsed time in milliseconds
func (c *Clock) Milliseconds() float64 {
	return c.freq.Seconds(c.counter.Count()) * 1e3
}

// Microseconds returns the elapsed time in microseconds
func (c *Clock) Microseconds() float64 {
	return c.freq.Seconds(c.counter.Count()) * 1e6
}
