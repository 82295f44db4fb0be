package geometry

import (
	"fmt"
	"math"
)

// Direction is a unit vector: a vector with a magnitude of exactly 1,
// representing a direction in the plane with no associated magnitude.
//
// The fields are unexported to maintain the unit-magnitude invariant; obtain
// directions from [Vec2.Direction], [DirectionFromAngle], or one of the axis
// directions [PosX], [NegX], [PosY], and [NegY].
type Direction struct {
	x float64
	y float64
}

// Unit directions along the coordinate axes.
var (
	PosX = Direction{1, 0}
	NegX = Direction{-1, 0}
	PosY = Direction{0, 1}
	NegY = Direction{0, -1}
)

// DirectionFromAngle returns the direction at the given angle, expressed in
// radians counterclockwise from the positive x axis.
func DirectionFromAngle(th float64) Direction {
	y, x := math.Sincos(th)
	return Direction{x, y}
}

func (d Direction) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", d.x, d.y)
}

// Vec2 returns the direction as a unit vector.
func (d Direction) Vec2() Vec2 {
	return Vec2{X: d.x, Y: d.y}
}

// Splat returns the direction's x and y components.
func (d Direction) Splat() (float64, float64) {
	return d.x, d.y
}

func (d Direction) X() float64 { return d.x }
func (d Direction) Y() float64 { return d.y }

// Angle returns the angle of the direction in radians, measured
// counterclockwise from the positive x axis. The result is in (−π, π].
func (d Direction) Angle() float64 {
	return math.Atan2(d.y, d.x)
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return Direction{-d.x, -d.y}
}

// Perpendicular returns the direction rotated counterclockwise by 90 degrees.
func (d Direction) Perpendicular() Direction {
	return Direction{-d.y, d.x}
}

// RotateBy returns the direction rotated counterclockwise by angle radians.
func (d Direction) RotateBy(angle float64) Direction {
	sin, cos := math.Sincos(angle)
	return Direction{
		x: d.x*cos - d.y*sin,
		y: d.x*sin + d.y*cos,
	}
}

// Mirror returns the direction mirrored across the axis with the given
// direction.
func (d Direction) Mirror(axis Direction) Direction {
	// Reflect by doubling the projection onto the axis.
	dot := d.x*axis.x + d.y*axis.y
	return Direction{
		x: 2*dot*axis.x - d.x,
		y: 2*dot*axis.y - d.y,
	}
}
