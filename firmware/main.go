//go:build tinygo && rp2350

package main

import (
	"machine"
	"time"

	"github.com/calvinmclean/rangefinder"
	"github.com/calvinmclean/rangefinder/clock"
	"github.com/calvinmclean/rangefinder/console"
	"github.com/calvinmclean/rangefinder/firmware/commands"
	"github.com/calvinmclean/rangefinder/firmware/device"
	"github.com/calvinmclean/rangefinder/hcsr04"
)

const (
	triggerPin = machine.GP16
	echoPin    = machine.GP17
)

func main() {
	enableCycleCounter()

	clk := clock.New(dwtCounter{}, clock.Freq(machine.CPUFrequency())*clock.Hz)
	out := console.New(machine.Serial, clk)

	triggerPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	echoPin.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})

	sensorCfg := hcsr04.Config{
		Timeout:      36 * time.Millisecond,
		TriggerPulse: 10 * time.Microsecond,
		// anything closer than the HC-SR04's 2cm minimum range is noise
		MinDistance: 0.02,
		Logger:      out,
	}
	sensor := hcsr04.New(triggerPin, echo{echoPin}, clk, clock.NewBusyWait(clk), sensorCfg)

	rangerCfg := device.Config{
		Unit:       rangefinder.UnitCentimeters,
		Continuous: false,
		Interval:   100 * time.Millisecond,
	}
	r := device.New(sensor, machine.Serial, out, clk, rangerCfg)

	out.Println("Ultrasonic range finder ready, H for help")
	commands.Run(r)
}

// echo adapts a machine.Pin to hcsr04.InputPin. GPIO reads cannot fail.
type echo struct {
	machine.Pin
}

func (e echo) IsLow() (bool, error) {
	return !e.Get(), nil
}
