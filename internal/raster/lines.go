package raster

// LineVertex is a projected line endpoint with its color (0..255).
type LineVertex struct {
	X, Y    float64
	InvW    float64
	R, G, B float64
}

// DrawLine draws a depth-tested (ties pass), depth-writing line with the color ramped
// between the endpoints (Bresenham stepping). Off-screen pixels are skipped.
func DrawLine(fb *FrameBuffer, a, b LineVertex) int {
	x0, y0 := int(a.X), int(a.Y)
	x1, y1 := int(b.X), int(b.Y)

	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	steps := max(dx, -dy)
	err := dx + dy

	n := 0
	for i := 0; ; i++ {
		if x0 >= 0 && x0 < fb.Width && y0 >= 0 && y0 < fb.Height {
			t := 0.0
			if steps > 0 {
				t = float64(i) / float64(steps)
			}
			z := a.InvW + (b.InvW-a.InvW)*t
			idx := y0*fb.Width + x0
			if z >= fb.ZBuf[idx] {
				fb.ZBuf[idx] = z
				fb.setPixel(idx,
					a.R+(b.R-a.R)*t,
					a.G+(b.G-a.G)*t,
					a.B+(b.B-a.B)*t)
				n++
			}
		}
		if x0 == x1 && y0 == y1 {
			return n
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
