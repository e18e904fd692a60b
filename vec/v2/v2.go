// Package v2 provides 2D floating point vector operations.
package v2

import "math"

// Vec is a 2D float64 vector.
type Vec struct {
	X, Y float64
}

// Add returns a + b.
func (a Vec) Add(b Vec) Vec {
	return Vec{a.X + b.X, a.Y + b.Y}
}

// Sub returns a - b.
func (a Vec) Sub(b Vec) Vec {
	return Vec{a.X - b.X, a.Y - b.Y}
}

// MulScalar returns a * k.
func (a Vec) MulScalar(k float64) Vec {
	return Vec{a.X * k, a.Y * k}
}

// DivScalar returns a / k.
func (a Vec) DivScalar(k float64) Vec {
	return Vec{a.X / k, a.Y / k}
}

// AddScalar returns a + (k,k).
func (a Vec) AddScalar(k float64) Vec {
	return Vec{a.X + k, a.Y + k}
}

// Div returns componentwise a / b.
func (a Vec) Div(b Vec) Vec {
	return Vec{a.X / b.X, a.Y / b.Y}
}

// Dot returns the dot product of a and b.
func (a Vec) Dot(b Vec) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Cross returns the Z component of the 3D cross product of a and b.
func (a Vec) Cross(b Vec) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Length returns the Euclidean length of a.
func (a Vec) Length() float64 {
	return math.Sqrt(a.Dot(a))
}

// Ceil rounds each component up to the nearest integer.
func (a Vec) Ceil() Vec {
	return Vec{math.Ceil(a.X), math.Ceil(a.Y)}
}

// MaxComponent returns the largest of X, Y.
func (a Vec) MaxComponent() float64 {
	return math.Max(a.X, a.Y)
}

// MinComponent returns the smallest of X, Y.
func (a Vec) MinComponent() float64 {
	return math.Min(a.X, a.Y)
}

// Lerp linearly interpolates between a and b at parameter t.
func Lerp(a, b Vec, t float64) Vec {
	return Vec{a.X + t*(b.X-a.X), a.Y + t*(b.Y-a.Y)}
}

// Equals reports whether a and b are equal within tolerance eps.
func (a Vec) Equals(b Vec, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}
