package device

import (
	"time"

	"github.com/calvinmclean/rangefinder"
)

// defaultInterval is the shortest measurement cycle from the HC-SR04 datasheet. Triggering sooner
// can pick up the previous burst's echo.
const defaultInterval = 60 * time.Millisecond

// Config has the user-facing settings for a Ranger
type Config struct {
	Unit       rangefinder.Unit
	Continuous bool
	// Interval is the minimum time from the end of one measurement to the next trigger
	Interval time.Duration
}
