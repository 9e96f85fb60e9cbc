// Package fixture declares annotated types for directive loading tests.
package fixture

import "math"

// Base carries the identity shared by every shape.
type Base struct {
	ID string
}

// Describe returns a label for the shape.
//
//mirror:label base
//mirror:cached
func (b Base) Describe() string { return "shape " + b.ID }

// Circle is a shape with a radius.
type Circle struct {
	Base
	R float64
}

//mirror:unit cm2
func (c *Circle) Area() float64 { return math.Pi * c.R * c.R }

//mirror:Bad
func (c *Circle) Perimeter() float64 { return 2 * math.Pi * c.R }

//mirror:label circle
//mirror:label round
func (c *Circle) Name() string { return "circle" }

// NewCircle returns a circle of radius r.
//
//mirror:constructor
func NewCircle(r float64) *Circle { return &Circle{R: r} }
