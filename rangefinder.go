package rangefinder

import "strconv"

// HalfSpeedOfSound is the speed of sound through air (340.29 m/s) divided by two, because the
// echo covers the distance twice.
const HalfSpeedOfSound = 170.145 // m/s

// Distance is a one-way distance in meters
type Distance float64

// FromRoundTrip converts an echo round-trip time in milliseconds into a Distance
func FromRoundTrip(elapsedMillis float64) Distance {
	return Distance(elapsedMillis / 1000 * HalfSpeedOfSound)
}

// Meters returns the distance in meters
func (d Distance) Meters() float64 {
	return float64(d)
}

// Centimeters returns the distance in centimeters
func (d Distance) Centimeters() float64 {
	return float64(d) * 100
}

// Millimeters returns the distance in millimeters
func (d Distance) Millimeters() float64 {
	return float64(d) * 1000
}

// In returns the distance converted to the Unit
func (d Distance) In(u Unit) float64 {
	switch u {
	case UnitCentimeters:
		return d.Centimeters()
	case UnitMillimeters:
		return d.Millimeters()
	default:
		return d.Meters()
	}
}

// StringIn formats the distance in the Unit, like 12.3cm
func (d Distance) StringIn(u Unit) string {
	prec := 3
	switch u {
	case UnitCentimeters:
		prec = 1
	case UnitMillimeters:
		prec = 0
	}
	return strconv.FormatFloat(d.In(u), 'f', prec, 64) + u.String()
}

func (d Distance) String() string {
	return d.StringIn(UnitMeters)
}

// Unit is the unit used when displaying a Distance
type Unit int

const (
	UnitMeters Unit = iota
	UnitCentimeters
	UnitMillimeters
)

func (u Unit) String() string {
	switch u {
	case UnitCentimeters:
		return "cm"
	case UnitMillimeters:
		return "mm"
	default:
		fallthrough
	case UnitMeters:
		return "m"
	}
}

// Next goes to the next display Unit
func (u Unit) Next() Unit {
	if u == UnitMillimeters {
		return UnitMeters
	}
	return u + 1
}
