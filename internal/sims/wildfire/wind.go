package wildfire

import "math"

// Vector is a discretized wind direction. Each component is in {-1, 0, 1},
// so a Vector doubles as a Moore-neighborhood offset: the neighbor at
// (x+DX, y+DY) sits downwind of (x, y).
type Vector struct {
	DX int
	DY int
}

// DirectionVector converts a wind direction in degrees to a grid offset by
// rounding the (cos, sin) of the angle to the nearest integers. The angle
// is consumed as a plain mathematical angle (0° points +x, counter-clockwise
// positive) even though weather feeds report meteorological bearings
// (degrees from north, clockwise). The upstream model consumes bearings the
// same way, so the mismatch is kept rather than corrected.
func DirectionVector(degrees float64) Vector {
	rad := degrees * math.Pi / 180
	return Vector{
		DX: int(math.Round(math.Cos(rad))),
		DY: int(math.Round(math.Sin(rad))),
	}
}
