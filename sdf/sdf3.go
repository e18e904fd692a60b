package sdf

import "github.com/deadsy/sdfpoly/vec/v3"

// SDF3 is a 3D scalar field. Evaluate must be pure, deterministic, and
// safe to call concurrently from multiple goroutines.
type SDF3 interface {
	Evaluate(p v3.Vec) float64
	BoundingBox() Box3
}

// Box3 is an axis-aligned 3D bounding box.
type Box3 struct {
	Min, Max v3.Vec
}

// NewBox3 returns a box with the given center and size.
func NewBox3(center, size v3.Vec) Box3 {
	half := size.DivScalar(2)
	return Box3{Min: center.Sub(half), Max: center.Add(half)}
}

// Size returns the extent of the box on each axis.
func (b Box3) Size() v3.Vec {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box.
func (b Box3) Center() v3.Vec {
	return b.Min.Add(b.Max).DivScalar(2)
}

// Empty reports whether the box has zero or negative extent on any axis.
func (b Box3) Empty() bool {
	return b.Min.X >= b.Max.X || b.Min.Y >= b.Max.Y || b.Min.Z >= b.Max.Z
}
