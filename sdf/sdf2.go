// Package sdf defines the field interfaces and bounding boxes consumed by
// the polygonization core. Construction of implicit functions from
// primitives and operators is out of scope — callers supply their own
// SDF2/SDF3 implementations.
package sdf

import "github.com/deadsy/sdfpoly/vec/v2"

// SDF2 is a 2D scalar field. Evaluate must be pure, deterministic, and
// safe to call concurrently from multiple goroutines.
type SDF2 interface {
	Evaluate(p v2.Vec) float64
	BoundingBox() Box2
}

// Box2 is an axis-aligned 2D bounding box.
type Box2 struct {
	Min, Max v2.Vec
}

// NewBox2 returns a box with the given center and size.
func NewBox2(center, size v2.Vec) Box2 {
	half := size.DivScalar(2)
	return Box2{Min: center.Sub(half), Max: center.Add(half)}
}

// Size returns the extent of the box on each axis.
func (b Box2) Size() v2.Vec {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box.
func (b Box2) Center() v2.Vec {
	return b.Min.Add(b.Max).DivScalar(2)
}

// Empty reports whether the box has zero or negative extent on any axis.
func (b Box2) Empty() bool {
	return b.Min.X >= b.Max.X || b.Min.Y >= b.Max.Y
}
