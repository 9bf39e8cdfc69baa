package layout

import "math"

// normalizeDegrees maps an angle to [0, 360).
func normalizeDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// rotatePoint rotates (x, y) about (cx, cy) by angle degrees.
func rotatePoint(cx, cy, x, y, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	tx, ty := x-cx, y-cy
	rx := tx*math.Cos(rad) - ty*math.Sin(rad)
	ry := tx*math.Sin(rad) + ty*math.Cos(rad)
	return rx + cx, ry + cy
}

// RotateGroup rotates every item's center about the pivot by angle degrees
// and adds the angle to each item's own rotation (mod 360). The input slice
// is not modified; a rotated copy is returned. Angle 0 copies unchanged.
func RotateGroup(items []PlacedItem, pivotX, pivotY, deg float64) []PlacedItem {
	out := make([]PlacedItem, len(items))
	copy(out, items)
	if deg == 0 {
		return out
	}
	for i := range out {
		nx, ny := rotatePoint(pivotX, pivotY, out[i].CenterX(), out[i].CenterY(), deg)
		out[i].X = nx - out[i].W/2
		out[i].Y = ny - out[i].H/2
		out[i].Rotation = normalizeDegrees(out[i].Rotation + deg)
	}
	return out
}

// CenterGroup translates the item set so its bounding box sits in the middle
// of a canvasW x canvasH scene. Empty input returns an empty slice.
func CenterGroup(items []PlacedItem, canvasW, canvasH float64) []PlacedItem {
	out := make([]PlacedItem, len(items))
	copy(out, items)
	if len(out) == 0 {
		return out
	}

	minX, minY := out[0].X, out[0].Y
	maxX, maxY := out[0].X+out[0].W, out[0].Y+out[0].H
	for _, it := range out[1:] {
		minX = math.Min(minX, it.X)
		minY = math.Min(minY, it.Y)
		maxX = math.Max(maxX, it.X+it.W)
		maxY = math.Max(maxY, it.Y+it.H)
	}

	offX := (canvasW-(maxX-minX))/2 - minX
	offY := (canvasH-(maxY-minY))/2 - minY
	for i := range out {
		out[i].X += offX
		out[i].Y += offY
	}
	return out
}

// Center is CenterGroup on the standard logical canvas.
func Center(items []PlacedItem) []PlacedItem {
	return CenterGroup(items, CanvasWidth, CanvasHeight)
}

// InBounds reports whether a point lies inside the logical canvas.
func InBounds(x, y float64) bool {
	return x >= 0 && x <= CanvasWidth && y >= 0 && y <= CanvasHeight
}

// contains reports whether the point lies inside the item's rectangle,
// honoring the item's rotation about its own center.
func (p PlacedItem) contains(x, y float64) bool {
	// Undo the item's rotation so the test happens in its local frame.
	lx, ly := rotatePoint(p.CenterX(), p.CenterY(), x, y, -p.Rotation)
	return lx >= p.X && lx <= p.X+p.W && ly >= p.Y && ly <= p.Y+p.H
}

// HitTest returns the topmost item under the point, or nil. Items later in
// the list are drawn on top, so the scan runs back to front.
func (l *Layout) HitTest(x, y float64) *PlacedItem {
	for i := len(l.Items) - 1; i >= 0; i-- {
		if l.Items[i].contains(x, y) {
			return &l.Items[i]
		}
	}
	return nil
}
