// Package export converts recorded runs into standalone SVG images.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/pendlab/internal/trace"
)

// TrajectorySVG draws the bob path of a recorded run as a polyline over the
// window rectangle, with the pivot marked. Frames map 1:1 to window pixels.
func TrajectorySVG(frames []trace.FrameRecord, width, height int, originX, originY float64) string {
	if len(frames) < 2 {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#cce6ff"/>
<circle cx="%.1f" cy="%.1f" r="4" fill="#555555"/>
<path fill="none" stroke="#444444" stroke-width="1.5" d="M`,
		width, height, width, height, originX, originY))

	for i, f := range frames {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", f.BobX, f.BobY))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", f.BobX, f.BobY))
		}
	}

	last := frames[len(frames)-1]
	sb.WriteString(fmt.Sprintf(`"/>
<circle cx="%.1f" cy="%.1f" r="28" fill="#666666"/>
<circle cx="%.1f" cy="%.1f" r="25" fill="#bbbbbb"/>
</svg>`, last.BobX, last.BobY, last.BobX, last.BobY))

	return sb.String()
}

// PhaseSVG plots angle against angular velocity, auto-scaled with a tenth of
// padding on each side.
func PhaseSVG(frames []trace.FrameRecord, width, height int) string {
	if len(frames) < 2 {
		return ""
	}

	minX, maxX := frames[0].Angle, frames[0].Angle
	minY, maxY := frames[0].Velocity, frames[0].Velocity
	for _, f := range frames {
		if f.Angle < minX {
			minX = f.Angle
		}
		if f.Angle > maxX {
			maxX = f.Angle
		}
		if f.Velocity < minY {
			minY = f.Velocity
		}
		if f.Velocity > maxY {
			maxY = f.Velocity
		}
	}

	rangeX, rangeY := maxX-minX, maxY-minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="#00ff88" stroke-width="1" d="M`,
		width, height, width, height))

	for i, f := range frames {
		x := (f.Angle - minX) / rangeX * float64(width)
		y := float64(height) - (f.Velocity-minY)/rangeY*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
