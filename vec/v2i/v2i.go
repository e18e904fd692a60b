// Package v2i provides 2D integer vector operations.
package v2i

// Vec is a 2D int vector.
type Vec struct {
	X, Y int
}

// Add returns a + b.
func (a Vec) Add(b Vec) Vec {
	return Vec{a.X + b.X, a.Y + b.Y}
}
