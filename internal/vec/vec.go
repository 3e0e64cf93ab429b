// Package vec provides the 2D vector value type used throughout the
// simulation. Vectors are plain mutable values; the in-place operations
// return the receiver so updates can be chained.
package vec

import "math"

type Vec2 struct {
	X, Y float64
}

func New(x, y float64) *Vec2 {
	return &Vec2{X: x, Y: y}
}

// Set overwrites both coordinates.
func (v *Vec2) Set(x, y float64) {
	v.X = x
	v.Y = y
}

// Add adds o to v in place and returns v.
func (v *Vec2) Add(o *Vec2) *Vec2 {
	v.X += o.X
	v.Y += o.Y
	return v
}

// Sub subtracts o from v in place and returns v.
func (v *Vec2) Sub(o *Vec2) *Vec2 {
	v.X -= o.X
	v.Y -= o.Y
	return v
}

func (v *Vec2) Clone() *Vec2 {
	return &Vec2{X: v.X, Y: v.Y}
}

func (v *Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b *Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
