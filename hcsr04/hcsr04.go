// Package hcsr04 reads an HC-SR04 ultrasonic range finder without blocking.
//
// The sensor is driven by calling Poll repeatedly from the application's main loop. Each call does
// a small, bounded amount of work: the only busy-wait is the 10µs trigger pulse.
//
//	for {
//		d, ok, err := sensor.Poll()
//		switch {
//		case err != nil:
//			println(err.Error())
//		case ok:
//			println(d.String())
//		}
//		// other work
//	}
package hcsr04

import (
	"errors"
	"time"

	"github.com/calvinmclean/rangefinder"
	"github.com/calvinmclean/rangefinder/clock"
)

var (
	// ErrTimeout is returned by Poll when the echo did not fall within Config.Timeout
	ErrTimeout = errors.New("hcsr04: no echo before timeout")

	// ErrDiscarded is returned by Poll when the echo fell at or below Config.MinDistance. The
	// measurement is abandoned without a reading and the next Poll triggers a new one.
	ErrDiscarded = errors.New("hcsr04: echo below minimum distance")
)

// OutputPin drives the trigger line
type OutputPin interface {
	High()
	Low()
}

// InputPin reads the echo line
type InputPin interface {
	IsLow() (bool, error)
}

// Clock provides the time in milliseconds and the frequency used to size the trigger pulse.
// It is satisfied by *clock.Clock.
type Clock interface {
	Milliseconds() float64
	Freq() clock.Freq
}

var _ Clock = (*clock.Clock)(nil)

// Device is an HC-SR04 connected to a trigger and an echo pin. The pins belong to the Device for
// its whole lifetime; the Clock is only read and can be shared with other devices.
type Device struct {
	triggerPin OutputPin
	echoPin    InputPin
	clock      Clock
	delay      clock.Delayer
	cfg        Config

	state state

	last       rangefinder.Distance
	hasLast    bool
	timeouts   uint
	discards   uint
	echoErrors uint
}

// New creates a Device, setting the trigger pin low
func New(trigger OutputPin, echo InputPin, clk Clock, delay clock.Delayer, cfg Config) *Device {
	trigger.Low()
	return &Device{
		triggerPin: trigger,
		echoPin:    echo,
		clock:      clk,
		delay:      delay,
		cfg:        cfg.withDefaults(),
		state:      idle{},
	}
}

// Poll advances the measurement cycle by one step. It returns ok=true only on the call that
// delivers a completed measurement, which is always the call after the echo was seen to fall.
// ErrTimeout or ErrDiscarded is returned when the measurement is abandoned; the Device is then Idle
// again and the next Poll starts a new measurement.
func (d *Device) Poll() (rangefinder.Distance, bool, error) {
	switch s := d.state.(type) {
	case idle:
		d.trigger()
		d.setState(waiting{start: d.clock.Milliseconds()})
	case waiting:
		return 0, false, d.checkEcho(s.start)
	case ready:
		d.last, d.hasLast = s.distance, true
		d.setState(idle{})
		return s.distance, true, nil
	}
	return 0, false, nil
}

func (d *Device) checkEcho(start float64) error {
	elapsed := d.clock.Milliseconds() - start

	// negative elapsed time means the cycle counter wrapped while waiting
	if elapsed < 0 || elapsed > float64(d.cfg.Timeout)/float64(time.Millisecond) {
		d.timeouts++
		d.Reset()
		return ErrTimeout
	}

	low, err := d.echoPin.IsLow()
	if err != nil {
		d.echoErrors++
		if d.cfg.OnEchoError != nil {
			d.cfg.OnEchoError(err)
		}
		d.log("echo read error:", err.Error())
		return nil
	}
	if !low {
		return nil
	}

	distance := rangefinder.FromRoundTrip(elapsed)
	// the echo stays low once it has fallen, so a discarded cycle cannot be measured any further
	if d.cfg.MinDistance > 0 && distance <= d.cfg.MinDistance {
		d.discards++
		d.log("discarded", distance.String())
		d.setState(idle{})
		return ErrDiscarded
	}

	d.setState(ready{distance: distance})
	return nil
}

// trigger sends the pulse that starts a measurement
func (d *Device) trigger() {
	d.triggerPin.High()
	d.delay.DelayCycles(d.clock.Freq().Cycles(d.cfg.TriggerPulse))
	d.triggerPin.Low()
}

// Reset abandons any measurement in progress and returns to Idle
func (d *Device) Reset() {
	d.triggerPin.Low()
	d.setState(idle{})
}

// SetVerbose turns logging of state transitions and echo errors on or off
func (d *Device) SetVerbose(v bool) {
	d.cfg.Verbose = v
}

// State returns the current phase of the measurement cycle
func (d *Device) State() State {
	return d.state.kind()
}

// Measurement returns the last distance delivered by Poll
func (d *Device) Measurement() (rangefinder.Distance, bool) {
	return d.last, d.hasLast
}

// Timeouts returns the number of measurements abandoned with ErrTimeout
func (d *Device) Timeouts() uint {
	return d.timeouts
}

// Discards returns the number of measurements abandoned with ErrDiscarded
func (d *Device) Discards() uint {
	return d.discards
}

// EchoErrors returns the number of failed echo reads
func (d *Device) EchoErrors() uint {
	return d.echoErrors
}

func (d *Device) setState(s state) {
	if d.state != nil && d.state.kind() != s.kind() {
		d.log(d.state.kind().String(), "->", s.kind().String())
	}
	d.state = s
}

func (d *Device) log(args ...any) {
	if !d.cfg.Verbose || d.cfg.Logger == nil {
		return
	}
	d.cfg.Logger.Println(append([]any{"hcsr04:"}, args...)...)
}
