package voxel

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Degree is a rotation constrained to quarter turns.
type Degree uint8

const (
	Zero Degree = iota
	Ninty
	OneEighty
	TwoSeventy
)

// DegreeFromQuarterTurns wraps any number of quarter turns (negative included) into a Degree.
func DegreeFromQuarterTurns(n int) Degree {
	n %= 4
	if n < 0 {
		n += 4
	}
	return Degree(n)
}

func (d Degree) quarterTurns() int {
	return int(d % 4)
}

func (d Degree) Add(o Degree) Degree {
	return DegreeFromQuarterTurns(d.quarterTurns() + o.quarterTurns())
}

func (d Degree) Sub(o Degree) Degree {
	return DegreeFromQuarterTurns(d.quarterTurns() - o.quarterTurns())
}

// Neg returns the additive inverse, so d.Add(d.Neg()) is always Zero.
// Zero and OneEighty are their own inverses.
func (d Degree) Neg() Degree {
	return DegreeFromQuarterTurns(-d.quarterTurns())
}

// Rotate turns a 2D vector counter-clockwise.
func (d Degree) Rotate(v mgl32.Vec2) mgl32.Vec2 {
	switch d % 4 {
	case Ninty:
		return mgl32.Vec2{-v.Y(), v.X()}
	case OneEighty:
		return mgl32.Vec2{-v.X(), -v.Y()}
	case TwoSeventy:
		return mgl32.Vec2{v.Y(), -v.X()}
	default:
		return v
	}
}

// RotateX rotates v around the x axis.
func (d Degree) RotateX(v mgl32.Vec3) mgl32.Vec3 {
	r := d.Rotate(mgl32.Vec2{v.Y(), v.Z()})
	return mgl32.Vec3{v.X(), r.X(), r.Y()}
}

// RotateY rotates v around the y axis. The xz plane is walked in the opposite
// direction so the rotation stays right-handed like the other two axes.
func (d Degree) RotateY(v mgl32.Vec3) mgl32.Vec3 {
	r := d.Neg().Rotate(mgl32.Vec2{v.X(), v.Z()})
	return mgl32.Vec3{r.X(), v.Y(), r.Y()}
}

// RotateZ rotates v around the z axis.
func (d Degree) RotateZ(v mgl32.Vec3) mgl32.Vec3 {
	r := d.Rotate(mgl32.Vec2{v.X(), v.Y()})
	return mgl32.Vec3{r.X(), r.Y(), v.Z()}
}

func (d Degree) String() string {
	switch d % 4 {
	case Ninty:
		return "90°"
	case OneEighty:
		return "180°"
	case TwoSeventy:
		return "270°"
	default:
		return "0°"
	}
}
