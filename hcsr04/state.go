package hcsr04

import "github.com/calvinmclean/rangefinder"

// State is the phase of the measurement cycle
type State int

const (
	// StateIdle is ready to start a new measurement
	StateIdle State = iota
	// StateWaiting has triggered the sensor and is waiting for the echo to fall
	StateWaiting
	// StateReady has a distance to deliver on the next Poll
	StateReady
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateWaiting:
		return "Waiting"
	case StateReady:
		return "Ready"
	default:
		return "Unknown"
	}
}

// state is the measurement cycle along with the data of its active phase. Exactly one of idle,
// waiting or ready is held at a time.
type state interface {
	kind() State
}

type idle struct{}

// waiting keeps the time, in milliseconds, at which the trigger pulse ended
type waiting struct {
	start float64
}

// ready keeps the measured distance until it is delivered
type ready struct {
	distance rangefinder.Distance
}

func (idle) kind() State    { return StateIdle }
func (waiting) kind() State { return StateWaiting }
func (ready) kind() State   { return StateReady }
