package hcsr04

import (
	"math"

	"tinygo.org/x/drivers"
)

var _ drivers.Sensor = (*Device)(nil)

// Update implements drivers.Sensor. When which includes drivers.Distance it polls once, so it has
// to be called repeatedly like Poll. Completed readings are available from Distance.
func (d *Device) Update(which drivers.Measurement) error {
	if which&drivers.Distance == 0 {
		return nil
	}
	_, _, err := d.Poll()
	return err
}

// Distance returns the last completed reading in millimeters, or 0 before the first one
func (d *Device) Distance() int32 {
	return int32(math.Round(d.last.Millimeters()))
}
