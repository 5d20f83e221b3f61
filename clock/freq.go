package clock

import (
	"math"
	"time"
)

// Freq is the counting rate of a cycle counter, in ticks per second
type Freq float64

// Defines the unit of frequency
const (
	Hz  Freq = 1
	KHz Freq = 1e3
	MHz Freq = 1e6
	GHz Freq = 1e9
)

// Period returns the time between two consecutive ticks, in seconds
func (f Freq) Period() float64 {
	if f == 0 {
		panic("frequency cannot be 0")
	}
	return 1.0 / float64(f)
}

// Seconds converts a number of cycles into seconds
func (f Freq) Seconds(cycles uint32) float64 {
	return float64(cycles) * f.Period()
}

// Cycles converts a duration into the nearest whole number of cycles. Durations that do not fit in
// the 32-bit counter saturate at math.MaxUint32.
func (f Freq) Cycles(d time.Duration) uint32 {
	if d <= 0 {
		return 0
	}
	n := math.Round(d.Seconds() * float64(f))
	if n > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(n)
}
