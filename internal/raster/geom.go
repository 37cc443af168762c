// Package raster implements the CPU rasterizer pipeline the benchmarks
// exercise: path flattening, stroke expansion, tiling, strip rendering and
// the fine (per-pixel) stage. Kernels are parameterized by SIMD level
// through per-level function tables; see kernels.go.
package raster

import "math"

// Tile geometry. A tile is the 4x4 unit of the coarse stages; a wide tile
// is the 256x4 unit of the fine stage.
const (
	TileWidth     = 4
	TileHeight    = 4
	WideTileWidth = 256
)

// Point is a 2D point.
type Point struct {
	X, Y float64
}

// Affine is a 2D affine transform in column-major [a b c d e f] layout:
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
type Affine [6]float64

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Translate returns a translation by (dx, dy).
func Translate(dx, dy float64) Affine {
	return Affine{1, 0, 0, 1, dx, dy}
}

// Scale returns a uniform scale about the origin.
func Scale(s float64) Affine {
	return Affine{s, 0, 0, s, 0, 0}
}

// Rotate returns a rotation by th radians about the origin.
func Rotate(th float64) Affine {
	c, s := math.Cos(th), math.Sin(th)
	return Affine{c, s, -s, c, 0, 0}
}

// RotateAbout returns a rotation by th radians about center.
func RotateAbout(th float64, center Point) Affine {
	return Translate(center.X, center.Y).
		Mul(Rotate(th)).
		Mul(Translate(-center.X, -center.Y))
}

// Mul returns the transform equivalent to applying u first, then t.
func (t Affine) Mul(u Affine) Affine {
	return Affine{
		t[0]*u[0] + t[2]*u[1],
		t[1]*u[0] + t[3]*u[1],
		t[0]*u[2] + t[2]*u[3],
		t[1]*u[2] + t[3]*u[3],
		t[0]*u[4] + t[2]*u[5] + t[4],
		t[1]*u[4] + t[3]*u[5] + t[5],
	}
}

// Apply transforms p.
func (t Affine) Apply(p Point) Point {
	return Point{
		X: t[0]*p.X + t[2]*p.Y + t[4],
		Y: t[1]*p.X + t[3]*p.Y + t[5],
	}
}

// Inverse returns the inverse transform. Singular transforms yield a
// degenerate result; callers pass well-formed transforms.
func (t Affine) Inverse() Affine {
	det := t[0]*t[3] - t[1]*t[2]
	inv := 1.0 / det
	a := t[3] * inv
	b := -t[1] * inv
	c := -t[2] * inv
	d := t[0] * inv
	return Affine{
		a, b, c, d,
		-(a*t[4] + c*t[5]),
		-(b*t[4] + d*t[5]),
	}
}

// Verb is a path segment tag.
type Verb uint8

const (
	VerbMoveTo Verb = iota
	VerbLineTo
	VerbQuadTo
	VerbCubicTo
	VerbClose
)

// Path is a sequence of verbs with their control points. MoveTo/LineTo
// consume one point, QuadTo two, CubicTo three, Close none.
type Path struct {
	Verbs  []Verb
	Points []Point
}

// MoveTo starts a new subpath at p.
func (p *Path) MoveTo(x, y float64) {
	p.Verbs = append(p.Verbs, VerbMoveTo)
	p.Points = append(p.Points, Point{x, y})
}

// LineTo appends a line segment.
func (p *Path) LineTo(x, y float64) {
	p.Verbs = append(p.Verbs, VerbLineTo)
	p.Points = append(p.Points, Point{x, y})
}

// QuadTo appends a quadratic Bezier segment.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.Verbs = append(p.Verbs, VerbQuadTo)
	p.Points = append(p.Points, Point{cx, cy}, Point{x, y})
}

// CubicTo appends a cubic Bezier segment.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.Verbs = append(p.Verbs, VerbCubicTo)
	p.Points = append(p.Points, Point{c1x, c1y}, Point{c2x, c2y}, Point{x, y})
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.Verbs = append(p.Verbs, VerbClose)
}

// Empty reports whether the path has no segments.
func (p *Path) Empty() bool {
	return len(p.Verbs) == 0
}

// Rect appends an axis-aligned rectangle as a closed subpath.
func (p *Path) Rect(x0, y0, x1, y1 float64) {
	p.MoveTo(x0, y0)
	p.LineTo(x1, y0)
	p.LineTo(x1, y1)
	p.LineTo(x0, y1)
	p.Close()
}

// Line is a flattened segment in device space.
type Line struct {
	X0, Y0, X1, Y1 float32
}
