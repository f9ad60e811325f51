package raster

import "math"

// DrawPointSprite fills a square sprite of the given pixel size centered on
// (x, y), adding to the existing color when additive is set. Pixels already
// covered by nearer geometry are skipped; sprites do not write depth.
// It returns the number of pixels touched.
func DrawPointSprite(fb *FrameBuffer, x, y, invW, size, r, g, b float64, additive bool) int {
	if size <= 0 {
		return 0
	}
	half := size / 2
	// Pixel centers inside [x-half, x+half).
	minX := int(math.Ceil(x - half - 0.5))
	maxX := int(math.Ceil(x+half-0.5)) - 1
	minY := int(math.Ceil(y - half - 0.5))
	maxY := int(math.Ceil(y+half-0.5)) - 1
	// Sprites under one pixel still cover the pixel they land in.
	if maxX < minX {
		minX, maxX = int(math.Floor(x)), int(math.Floor(x))
	}
	if maxY < minY {
		minY, maxY = int(math.Floor(y)), int(math.Floor(y))
	}

	minX, maxX = max(minX, 0), min(maxX, fb.Width-1)
	minY, maxY = max(minY, 0), min(maxY, fb.Height-1)

	n := 0
	for py := minY; py <= maxY; py++ {
		row := py * fb.Width
		for px := minX; px <= maxX; px++ {
			i := row + px
			if invW < fb.ZBuf[i] {
				continue
			}
			if additive {
				fb.addPixel(i, r, g, b)
			} else {
				fb.setPixel(i, r, g, b)
			}
			n++
		}
	}
	return n
}

// AttenuatedPointSize returns the on-screen size in pixels of a point of
// world size `size` at view depth w, for a target of the given pixel height.
func AttenuatedPointSize(size, w float64, targetHeight int) float64 {
	if w <= 0 {
		return 0
	}
	return size * (float64(targetHeight) / 2) / w
}
