// Package geom provides a 2D vector value type for geometry and graphics code.
package geom

import (
	"fmt"
	"math"
)

type Element = float32

// FloatLimit is the equality tolerance: components must differ by strictly
// less than this amount.
const FloatLimit Element = 1e-6

type Vector struct {
	X Element
	Y Element
}

func Zero() Vector {
	return Vector{}
}

func XAxis() Vector {
	return Vector{X: 1}
}

func YAxis() Vector {
	return Vector{Y: 1}
}

func One() Vector {
	return Vector{X: 1, Y: 1}
}

func NewVector(x, y Element) Vector {
	return Vector{X: x, Y: y}
}

func NewVectorInt(x, y int) Vector {
	return Vector{X: Element(x), Y: Element(y)}
}

func (v Vector) LenSqr() Element {
	return v.X*v.X + v.Y*v.Y
}

func (v Vector) Len() Element {
	return Element(math.Sqrt(float64(v.LenSqr())))
}

func (v Vector) Dot(v2 Vector) Element {
	return v.X*v2.X + v.Y*v2.Y
}

func (v Vector) Cross(v2 Vector) Element {
	return v.X*v2.Y - v.Y*v2.X
}

func (v Vector) XComp() Vector {
	return Vector{X: v.X}
}

func (v Vector) YComp() Vector {
	return Vector{Y: v.Y}
}

// Recip returns (1/x, 1/y). A zero component yields infinity, not an error.
func (v Vector) Recip() Vector {
	return Vector{X: 1 / v.X, Y: 1 / v.Y}
}

func (v Vector) Times(v2 Vector) Vector {
	return Vector{X: v.X * v2.X, Y: v.Y * v2.Y}
}

// Normalize is unguarded: the zero vector yields NaN components.
func (v Vector) Normalize() Vector {
	return v.Div(v.Len())
}

func (v Vector) Clamp(minBound, maxBound Vector) Vector {
	return Vector{
		X: min(maxBound.X, max(minBound.X, v.X)),
		Y: min(maxBound.Y, max(minBound.Y, v.Y)),
	}
}

func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

func (v Vector) Add(v2 Vector) Vector {
	return Vector{X: v.X + v2.X, Y: v.Y + v2.Y}
}

func (v Vector) Sub(v2 Vector) Vector {
	return v.Add(v2.Neg())
}

func (v Vector) Scale(s Element) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

func (v Vector) Div(s Element) Vector {
	return Vector{X: v.X / s, Y: v.Y / s}
}

func (v Vector) ScaleInt(s int) Vector {
	return v.Scale(Element(s))
}

func (v Vector) DivInt(s int) Vector {
	return v.Div(Element(s))
}

func (v Vector) Equals(v2 Vector) bool {
	return abs(v.X-v2.X) < FloatLimit && abs(v.Y-v2.Y) < FloatLimit
}

func (v Vector) String() string {
	return fmt.Sprintf("<%v, %v>", v.X, v.Y)
}

func abs(e Element) Element {
	return Element(math.Abs(float64(e)))
}
