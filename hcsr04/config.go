package hcsr04

import (
	"time"

	"github.com/calvinmclean/rangefinder"
)

const (
	// defaultTimeout is the longest round trip the HC-SR04 reports. After this it pulls echo low by
	// itself, so a later low edge says nothing about distance.
	defaultTimeout = 36 * time.Millisecond

	// defaultTriggerPulse is the minimum trigger width from the datasheet
	defaultTriggerPulse = 10 * time.Microsecond

	// maxTriggerPulse keeps the busy-wait well inside one period of a 32-bit cycle counter
	maxTriggerPulse = time.Millisecond
)

// Logger is a text sink for diagnostic output
type Logger interface {
	Println(args ...any)
}

// Config has the timing and diagnostic settings for a Device
type Config struct {
	// Timeout is how long to wait for the echo to fall before abandoning a measurement
	Timeout time.Duration
	// TriggerPulse is the width of the pulse on the trigger pin, at most 1ms
	TriggerPulse time.Duration

	// MinDistance discards readings at or below this value as echo noise, abandoning the
	// measurement. Zero disables it.
	MinDistance rangefinder.Distance

	// OnEchoError is called for every failed echo read. The error is otherwise dropped.
	OnEchoError func(error)

	Logger  Logger
	Verbose bool
}

func (c Config) withDefaults() Config {
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
	if c.TriggerPulse == 0 {
		c.TriggerPulse = defaultTriggerPulse
	}
	if c.TriggerPulse > maxTriggerPulse {
		c.TriggerPulse = maxTriggerPulse
	}
	return c
}
