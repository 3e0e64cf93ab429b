package analysis

import "strings"

// PhasePoint is one sample of the (angle, angular velocity) trajectory.
type PhasePoint struct {
	Theta, Omega float64
}

// PhasePortraitASCII renders the trajectory as a scatter plot. Early points
// are drawn faint and late points solid so the direction of travel reads off
// the page.
func PhasePortraitASCII(points []PhasePoint, width, height int) string {
	if len(points) == 0 || width < 2 || height < 2 {
		return ""
	}

	minX, maxX := points[0].Theta, points[0].Theta
	minY, maxY := points[0].Omega, points[0].Omega
	for _, p := range points {
		if p.Theta < minX {
			minX = p.Theta
		}
		if p.Theta > maxX {
			maxX = p.Theta
		}
		if p.Omega < minY {
			minY = p.Omega
		}
		if p.Omega > maxY {
			maxY = p.Omega
		}
	}

	rangeX, rangeY := maxX-minX, maxY-minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	// axes through zero, if visible
	if minX <= 0 && maxX >= 0 {
		col := int((0 - minX) / rangeX * float64(width-1))
		for row := 0; row < height; row++ {
			canvas[row][col] = '│'
		}
	}
	if minY <= 0 && maxY >= 0 {
		row := height - 1 - int((0-minY)/rangeY*float64(height-1))
		for col := 0; col < width; col++ {
			if canvas[row][col] == ' ' {
				canvas[row][col] = '─'
			}
		}
	}

	n := len(points)
	for i, p := range points {
		col := int((p.Theta - minX) / rangeX * float64(width-1))
		row := height - 1 - int((p.Omega-minY)/rangeY*float64(height-1))
		if row < 0 || row >= height || col < 0 || col >= width {
			continue
		}
		switch {
		case i < n/3:
			canvas[row][col] = '.'
		case i < 2*n/3:
			canvas[row][col] = 'o'
		default:
			canvas[row][col] = '●'
		}
	}

	var b strings.Builder
	for _, row := range canvas {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}
