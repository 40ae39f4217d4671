package utils

import (
	"fmt"
	"math"
)

// Vector is a point or direction in the arena plane. The arena center is the origin.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (v Vector) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", v.X, v.Y)
}

func SubtractVectors(vectorA, vectorB Vector) Vector {
	return Vector{vectorA.X - vectorB.X, vectorA.Y - vectorB.Y}
}

func SumVectors(vectorA, vectorB Vector) Vector {
	return Vector{vectorA.X + vectorB.X, vectorA.Y + vectorB.Y}
}

func MultiplyVectorByScalar(vector Vector, scalar float64) Vector {
	return Vector{vector.X * scalar, vector.Y * scalar}
}

func DotProduct(vectorA, vectorB Vector) float64 {
	return vectorA.X*vectorB.X + vectorA.Y*vectorB.Y
}

// Length is the distance from the arena center.
func Length(vector Vector) float64 {
	return math.Hypot(vector.X, vector.Y)
}

func Distance(a, b Vector) float64 {
	return Length(SubtractVectors(b, a))
}

// Normalize returns the unit vector pointing like vector.
// A zero-length input is a programming error and panics.
func Normalize(vector Vector) Vector {
	length := Length(vector)
	if length == 0 || math.IsNaN(length) {
		panic(fmt.Sprintf("utils: cannot normalize degenerate vector %v", vector))
	}
	return Vector{vector.X / length, vector.Y / length}
}

// Perpendicular rotates vector by +90 degrees.
func Perpendicular(vector Vector) Vector {
	return Vector{-vector.Y, vector.X}
}

// Reflect2D mirrors v about the unit normal n: v - 2(v.n)n.
func Reflect2D(v, n Vector) Vector {
	d := DotProduct(v, n)
	return Vector{v.X - 2*d*n.X, v.Y - 2*d*n.Y}
}

// Lerp moves from a towards b by fraction t.
func Lerp(a, b Vector, t float64) Vector {
	return SumVectors(a, MultiplyVectorByScalar(SubtractVectors(b, a), t))
}

// FromAngle builds a vector of the given magnitude pointing at angle.
func FromAngle(angle, magnitude float64) Vector {
	return Vector{math.Cos(angle) * magnitude, math.Sin(angle) * magnitude}
}

// PositiveAngle maps any finite angle into [0, 2pi).
func PositiveAngle(angle float64) float64 {
	a := math.Mod(math.Mod(angle, TwoPi)+TwoPi, TwoPi)
	// Mod can round a tiny negative input up to exactly 2pi.
	if a >= TwoPi {
		return 0
	}
	return a
}

// AngleOf is the normalized polar angle of a point around the arena center.
func AngleOf(vector Vector) float64 {
	return PositiveAngle(math.Atan2(vector.Y, vector.X))
}

// AngularDistance is the unsigned circular distance between two angles, in [0, pi].
func AngularDistance(a, b float64) float64 {
	d := PositiveAngle(a - b)
	if d > math.Pi {
		return TwoPi - d
	}
	return d
}

// ShortestAngleDelta is the signed rotation from previous to target that never
// exceeds a half turn. Both inputs are expected in [0, 2pi).
func ShortestAngleDelta(previous, target float64) float64 {
	delta := target - previous
	if delta > math.Pi {
		return target - (previous + TwoPi)
	}
	if delta < -math.Pi {
		return target + TwoPi - previous
	}
	return delta
}

// Sign returns -1, 0 or 1.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
