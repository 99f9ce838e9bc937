package unigrid

// Package unigrid is a uniform spatial hash grid for broadphase collision culling.

import "github.com/go-gl/mathgl/mgl64"

// BB is an axis-aligned bounding box described by its minimum and maximum corners.
type BB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// Shape is the capability required of values stored in a Grid: anything that can
// report an axis-aligned bounding box fully containing it.
type Shape interface {
	BoundingBox() BB
}

// Overlaps reports whether two boxes intersect.
// Boxes overlap iff they overlap on all three axes; touching faces count.
func (a BB) Overlaps(b BB) bool {
	return a.Max.X() >= b.Min.X() && a.Min.X() <= b.Max.X() &&
		a.Max.Y() >= b.Min.Y() && a.Min.Y() <= b.Max.Y() &&
		a.Max.Z() >= b.Min.Z() && a.Min.Z() <= b.Max.Z()
}

// Widths returns the full extent of the box along each axis.
func (a BB) Widths() mgl64.Vec3 {
	return a.Max.Sub(a.Min)
}

// HalfWidths returns half the extent of the box along each axis.
func (a BB) HalfWidths() mgl64.Vec3 {
	return a.Max.Sub(a.Min).Mul(0.5)
}

// MaxWidth returns the largest extent of the box along any axis.
func (a BB) MaxWidth() float64 {
	w := a.Max.Sub(a.Min)
	return max(w.X(), max(w.Y(), w.Z()))
}
