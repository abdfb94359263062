// Package geom holds the plain value types shared by the window layer:
// density-independent and physical lengths, 2D vectors and size bounds.
package geom

// Dip is a density-independent length. At 96 DPI one Dip is one pixel.
type Dip float64

// Pixels is a physical device pixel count.
type Pixels int

// Number constrains the scalar types a Vec2 can carry.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Vec2 is a 2D vector of X and Y components.
type Vec2[T Number] struct {
	X T
	Y T
}

// Size is a width/height pair stored as a Vec2 (X is width, Y is height).
type Size[T Number] = Vec2[T]

// Point is a position stored as a Vec2.
type Point[T Number] = Vec2[T]

// V builds a Vec2.
func V[T Number](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Add returns the component-wise sum.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul scales both components.
func (v Vec2[T]) Mul(k T) Vec2[T] {
	return Vec2[T]{X: v.X * k, Y: v.Y * k}
}

// LessEq reports whether both components are <= the other's.
func (v Vec2[T]) LessEq(o Vec2[T]) bool {
	return v.X <= o.X && v.Y <= o.Y
}

// Positive reports whether both components are > 0.
func (v Vec2[T]) Positive() bool {
	return v.X > 0 && v.Y > 0
}

// MinMax is a pair of size bounds.
type MinMax[T Number] struct {
	Min Size[T]
	Max Size[T]
}

// Valid reports whether Min <= Max on both axes.
func (m MinMax[T]) Valid() bool {
	return m.Min.LessEq(m.Max)
}

// Fixed returns bounds that pin both min and max to s.
func Fixed[T Number](s Size[T]) MinMax[T] {
	return MinMax[T]{Min: s, Max: s}
}

// Rect describes a rectangular region in screen pixels.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersect returns the overlap of r and o. ok is false when they do not
// overlap.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	x1 := max(r.X, o.X)
	y1 := max(r.Y, o.Y)
	x2 := min(r.X+r.Width, o.X+o.Width)
	y2 := min(r.Y+r.Height, o.Y+o.Height)
	if x2 <= x1 || y2 <= y1 {
		return Rect{}, false
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}, true
}

// Place positions an item of the given size inside r using a normalized
// factor in 0..1 per axis. 0 aligns to the left/top edge, 1 to the
// right/bottom edge. Factors outside the range are clamped.
func (r Rect) Place(factor Vec2[float64], size Size[Pixels]) Point[Pixels] {
	fx := clamp01(factor.X)
	fy := clamp01(factor.Y)
	freeX := r.Width - int(size.X)
	freeY := r.Height - int(size.Y)
	if freeX < 0 {
		freeX = 0
	}
	if freeY < 0 {
		freeY = 0
	}
	return Point[Pixels]{
		X: Pixels(r.X + int(fx*float64(freeX)+0.5)),
		Y: Pixels(r.Y + int(fy*float64(freeY)+0.5)),
	}
}

func clamp01(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}
