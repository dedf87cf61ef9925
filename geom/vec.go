// Package geom holds the small 2D vector/geometry primitives shared by
// every other package in the module: mesh storage, the spatial index,
// the interpolators and the polygon-overlap calculator.
package geom

import "math"

// EPSILON is the default tolerance used for signed-area and colinearity
// tests throughout the module.
const EPSILON = 1e-12

// V2 is a 2D point or vector.
type V2 struct {
	X, Y float64
}

// Add returns a+b.
func (a V2) Add(b V2) V2 { return V2{a.X + b.X, a.Y + b.Y} }

// Sub returns a-b.
func (a V2) Sub(b V2) V2 { return V2{a.X - b.X, a.Y - b.Y} }

// Scale returns a*s.
func (a V2) Scale(s float64) V2 { return V2{a.X * s, a.Y * s} }

// Dot returns the dot product a.b.
func (a V2) Dot(b V2) float64 { return a.X*b.X + a.Y*b.Y }

// Length returns the Euclidean norm of a.
func (a V2) Length() float64 { return math.Hypot(a.X, a.Y) }

// V2Set is a set of 2D points, e.g. the node coordinates of one element.
type V2Set []V2

// Min returns the component-wise minimum of the set.
func (s V2Set) Min() V2 {
	m := s[0]
	for _, p := range s[1:] {
		if p.X < m.X {
			m.X = p.X
		}
		if p.Y < m.Y {
			m.Y = p.Y
		}
	}
	return m
}

// Max returns the component-wise maximum of the set.
func (s V2Set) Max() V2 {
	m := s[0]
	for _, p := range s[1:] {
		if p.X > m.X {
			m.X = p.X
		}
		if p.Y > m.Y {
			m.Y = p.Y
		}
	}
	return m
}

// Centroid returns the arithmetic mean of the set, i.e. the element-center
// rule used throughout the mesh package.
func (s V2Set) Centroid() V2 {
	var sum V2
	for _, p := range s {
		sum = sum.Add(p)
	}
	n := float64(len(s))
	return V2{sum.X / n, sum.Y / n}
}

// Abs returns the absolute value of x.
func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Cross returns the 2D cross product (a x b), i.e. a.X*b.Y - a.Y*b.X.
func Cross(a, b V2) float64 { return a.X*b.Y - a.Y*b.X }

// SignedArea2 returns twice the signed area of the triangle (a, b, c).
// Positive when (a,b,c) winds counter-clockwise.
func SignedArea2(a, b, c V2) float64 {
	return Cross(b.Sub(a), c.Sub(a))
}
