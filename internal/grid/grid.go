// Package grid provides the pixel-art coordinate system shared by every
// placed object. All positions are in pixels but snap to a 6×6 unit so
// sprites stay aligned with the background art.
package grid

// Unit is the pixel-art cell size. Every committed coordinate is a
// multiple of Unit.
const Unit = 6

// Point is a pixel position.
type Point struct {
	X, Y int
}

// Snap floors both coordinates to the grid. Snapping is idempotent:
// Snap(Snap(p)) == Snap(p).
func Snap(p Point) Point {
	return Point{
		X: p.X - p.X%Unit,
		Y: p.Y - p.Y%Unit,
	}
}

// SnapUp floors both coordinates to the grid then adds one unit. It always
// rounds up, even when the point is already aligned.
func SnapUp(p Point) Point {
	p = Snap(p)
	return Point{X: p.X + Unit, Y: p.Y + Unit}
}

// Aligned reports whether p already sits on the grid.
func Aligned(p Point) bool {
	return p.X%Unit == 0 && p.Y%Unit == 0
}

// Rect is an axis-aligned pixel rectangle with top-left origin.
type Rect struct {
	X, Y, W, H int
}

// NewRect builds a rect from a top-left point and a size.
func NewRect(p Point, w, h int) Rect {
	return Rect{X: p.X, Y: p.Y, W: w, H: h}
}

// TopLeft returns the rect's origin.
func (r Rect) TopLeft() Point { return Point{X: r.X, Y: r.Y} }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Right returns the X coordinate of the right edge.
func (r Rect) Right() int { return r.X + r.W }

// SetTopLeft moves the rect so its origin is p.
func (r *Rect) SetTopLeft(p Point) {
	r.X, r.Y = p.X, p.Y
}

// SetBottom moves the rect vertically so its bottom edge sits on y.
func (r *Rect) SetBottom(y int) {
	r.Y = y - r.H
}

// Contains reports whether p falls inside the rect.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Intersects reports whether two rects overlap. Touching edges do not
// count as overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}
