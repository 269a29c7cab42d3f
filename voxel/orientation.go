package voxel

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Orientation is an euler rotation limited to quarter turns. It is applied
// to vectors in z, y, x order.
type Orientation struct {
	X Degree
	Y Degree
	Z Degree
}

var OrientationZero = Orientation{}

func NewOrientation(x, y, z Degree) Orientation {
	return Orientation{X: x, Y: y, Z: z}
}

func (o Orientation) WithX(d Degree) Orientation {
	o.X = d
	return o
}

func (o Orientation) WithY(d Degree) Orientation {
	o.Y = d
	return o
}

func (o Orientation) WithZ(d Degree) Orientation {
	o.Z = d
	return o
}

func (o Orientation) Add(other Orientation) Orientation {
	return Orientation{X: o.X.Add(other.X), Y: o.Y.Add(other.Y), Z: o.Z.Add(other.Z)}
}

func (o Orientation) Sub(other Orientation) Orientation {
	return Orientation{X: o.X.Sub(other.X), Y: o.Y.Sub(other.Y), Z: o.Z.Sub(other.Z)}
}

// RelativeTo is the per-axis difference between o and other.
func (o Orientation) RelativeTo(other Orientation) Orientation {
	return o.Sub(other)
}

// Rotate applies the z rotation first, then y, then x. Slope geometry depends
// on this order.
func (o Orientation) Rotate(v mgl32.Vec3) mgl32.Vec3 {
	v = o.Z.RotateZ(v)
	v = o.Y.RotateY(v)
	v = o.X.RotateX(v)
	return v
}

func (o Orientation) String() string {
	return fmt.Sprintf("(x=%s y=%s z=%s)", o.X, o.Y, o.Z)
}
