package geom

import (
	"errors"
	"math/rand/v2"
)

// ErrNoCorners is returned when a shape is built without corners.
var ErrNoCorners = errors.New("geom: shape needs at least one corner")

// Shape is a fixed polygon the chaos game jumps towards.
type Shape struct {
	corners []Point
	bbox    BBox
}

// NewShape builds a shape from its corners. The slice is copied.
func NewShape(corners ...Point) (Shape, error) {
	if len(corners) == 0 {
		return Shape{}, ErrNoCorners
	}
	cs := make([]Point, len(corners))
	copy(cs, corners)
	bbox := BBox{MinX: cs[0].X, MinY: cs[0].Y, MaxX: cs[0].X, MaxY: cs[0].Y}
	for _, p := range cs[1:] {
		if p.X < bbox.MinX {
			bbox.MinX = p.X
		}
		if p.Y < bbox.MinY {
			bbox.MinY = p.Y
		}
		if p.X > bbox.MaxX {
			bbox.MaxX = p.X
		}
		if p.Y > bbox.MaxY {
			bbox.MaxY = p.Y
		}
	}
	return Shape{corners: cs, bbox: bbox}, nil
}

// Triangle returns the upright triangle spanning a w by h area:
// top middle, bottom left, bottom right.
func Triangle(w, h float64) Shape {
	s, _ := NewShape(Pt(w/2, 0), Pt(0, h), Pt(w, h))
	return s
}

// Corners returns a copy of the shape's corners in construction order.
func (s Shape) Corners() []Point {
	out := make([]Point, len(s.corners))
	copy(out, s.corners)
	return out
}

// Bounds returns the bounding box of the corners.
func (s Shape) Bounds() BBox { return s.bbox }

// RandomCorner picks a corner uniformly at random.
// It panics on the zero Shape; use NewShape.
func (s Shape) RandomCorner() Point {
	return s.corners[rand.IntN(len(s.corners))]
}

// Contains reports whether p lies inside the convex hull of a triangle
// shape, edges included, within eps. Shapes that are not triangles fall
// back to the bounding box.
func (s Shape) Contains(p Point, eps float64) bool {
	if len(s.corners) != 3 {
		b := s.bbox
		return BBox{MinX: b.MinX - eps, MinY: b.MinY - eps, MaxX: b.MaxX + eps, MaxY: b.MaxY + eps}.Contains(p)
	}
	a, b, c := s.corners[0], s.corners[1], s.corners[2]
	d1 := cross(a, b, p)
	d2 := cross(b, c, p)
	d3 := cross(c, a, p)
	hasNeg := d1 < -eps || d2 < -eps || d3 < -eps
	hasPos := d1 > eps || d2 > eps || d3 > eps
	return !(hasNeg && hasPos)
}

func cross(a, b, p Point) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}
