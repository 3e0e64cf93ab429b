package session

import (
	"fmt"

	"github.com/san-kum/pendlab/internal/pendulum"
)

// ReadoutOffsets are the vertical pixel offsets of the five text lines.
var ReadoutOffsets = [5]float64{0, 30, 60, 90, 120}

// FormatReadouts renders the five readout lines with their fixed labels, two
// decimal places each. Acceleration is displayed scaled by ten so it stays
// legible next to the other values.
func FormatReadouts(r pendulum.Readouts) [5]string {
	return [5]string{
		fmt.Sprintf("Gravity: %.2f", r.Gravity),
		fmt.Sprintf("Angle: %.2f", r.Angle),
		fmt.Sprintf("Acceleration: %.2f", r.Acceleration*10),
		fmt.Sprintf("Velocity: %.2f", r.Velocity),
		fmt.Sprintf("Mass: %.2f", r.Mass),
	}
}
