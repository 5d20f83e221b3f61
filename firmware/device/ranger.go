package device

import (
	"errors"
	"strconv"
	"time"

	"github.com/calvinmclean/rangefinder"
	"github.com/calvinmclean/rangefinder/console"
	"github.com/calvinmclean/rangefinder/hcsr04"
)

// Sensor is a non-blocking range finder, like *hcsr04.Device
type Sensor interface {
	Poll() (rangefinder.Distance, bool, error)
	State() hcsr04.State
	Reset()
	SetVerbose(bool)
}

var _ Sensor = (*hcsr04.Device)(nil)

// Serial is the byte source that commands are read from. ReadByte must not block.
type Serial interface {
	ReadByte() (byte, error)
}

// Clock reports the time since device start
type Clock interface {
	Milliseconds() float64
}

// Ranger runs the measurement loop. It decides when a measurement is wanted, polls the Sensor and
// prints results to the console.
type Ranger struct {
	sensor Sensor
	serial Serial
	out    *console.Console
	clock  Clock

	unit       rangefinder.Unit
	continuous bool
	interval   float64 // ms

	// requested is set by Measure until one reading or timeout has been printed
	requested bool
	// nextStart is the earliest time the next measurement may be triggered
	nextStart float64

	last     rangefinder.Distance
	hasLast  bool
	timeouts uint
	discards uint
	verbose  bool
}

// New creates a Ranger with the provided Sensor and config
func New(sensor Sensor, serial Serial, out *console.Console, clk Clock, cfg Config) *Ranger {
	if cfg.Interval == 0 {
		cfg.Interval = defaultInterval
	}

	return &Ranger{
		sensor:     sensor,
		serial:     serial,
		out:        out,
		clock:      clk,
		unit:       cfg.Unit,
		continuous: cfg.Continuous,
		interval:   float64(cfg.Interval) / float64(time.Millisecond),
	}
}

// Tick runs one iteration of the main loop. It must be called continuously and does not block
// except for the sensor's trigger pulse.
func (r *Ranger) Tick() {
	if !r.requested && !r.continuous {
		return
	}

	if r.sensor.State() == hcsr04.StateIdle && r.clock.Milliseconds() < r.nextStart {
		return
	}

	d, ok, err := r.sensor.Poll()
	switch {
	case errors.Is(err, hcsr04.ErrDiscarded):
		// try again after the interval, still counting as the requested measurement
		r.discards++
		if r.verbose {
			r.out.Println("discarded")
		}
		r.nextStart = r.clock.Milliseconds() + r.interval
	case err != nil:
		r.timeouts++
		r.out.Println("error:", err.Error())
		r.done()
	case ok:
		r.last, r.hasLast = d, true
		r.out.Println(d.StringIn(r.unit))
		r.done()
	}
}

func (r *Ranger) done() {
	r.requested = false
	r.nextStart = r.clock.Milliseconds() + r.interval
}

// Measure requests a single measurement. It is printed by a later Tick.
func (r *Ranger) Measure() {
	if r.verbose {
		r.out.Println("Measure")
	}
	r.requested = true
}

// Continuous turns repeated measurements on or off
func (r *Ranger) Continuous(on bool) {
	if r.verbose {
		r.out.Println("Continuous", on)
	}
	r.continuous = on
}

// SetUnit sets the display Unit
func (r *Ranger) SetUnit(u rangefinder.Unit) {
	r.unit = u
	r.out.Println("unit", u.String())
}

// NextUnit cycles to the next display Unit
func (r *Ranger) NextUnit() {
	r.SetUnit(r.unit.Next())
}

// Reset abandons the measurement in progress and stops continuous mode
func (r *Ranger) Reset() {
	r.sensor.Reset()
	r.requested = false
	r.continuous = false
	r.nextStart = 0
	r.out.Println("Reset")
}

// Debug prints out details of the Ranger's state
func (r *Ranger) Debug() {
	last := "-"
	if r.hasLast {
		last = r.last.StringIn(r.unit)
	}
	r.out.Println(
		"state="+r.sensor.State().String(),
		"unit="+r.unit.String(),
		"continuous="+strconv.FormatBool(r.continuous),
		"last="+last,
		"timeouts="+strconv.FormatUint(uint64(r.timeouts), 10),
		"discards="+strconv.FormatUint(uint64(r.discards), 10),
	)
}

// Verbose sets the Ranger and its Sensor to verbose mode
func (r *Ranger) Verbose() {
	r.verbose = true
	r.sensor.SetVerbose(true)
	r.out.Println("Set Verbose Mode")
}

// Last returns the most recent distance
func (r *Ranger) Last() (rangefinder.Distance, bool) {
	return r.last, r.hasLast
}

// Println writes a line to the console
func (r *Ranger) Println(args ...any) {
	r.out.Println(args...)
}

// Raw writes a line to the console without a timestamp
func (r *Ranger) Raw(args ...any) {
	r.out.Raw(args...)
}

// ReadByte reads the next command byte from the serial port
func (r *Ranger) ReadByte() (byte, error) {
	return r.serial.ReadByte()
}
