// Package v3i provides 3D integer vector operations.
package v3i

// Vec is a 3D int vector.
type Vec struct {
	X, Y, Z int
}

// Add returns a + b.
func (a Vec) Add(b Vec) Vec {
	return Vec{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}
