package voxel

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

var allDegrees = []Degree{Zero, Ninty, OneEighty, TwoSeventy}

func TestDegreeRotate(t *testing.T) {
	tests := []struct {
		d    Degree
		in   mgl32.Vec2
		want mgl32.Vec2
	}{
		{Zero, mgl32.Vec2{1, 0}, mgl32.Vec2{1, 0}},
		{Zero, mgl32.Vec2{0, 2}, mgl32.Vec2{0, 2}},
		{Ninty, mgl32.Vec2{1, 0}, mgl32.Vec2{0, 1}},
		{Ninty, mgl32.Vec2{0, 2}, mgl32.Vec2{-2, 0}},
		{OneEighty, mgl32.Vec2{3, 0}, mgl32.Vec2{-3, 0}},
		{OneEighty, mgl32.Vec2{0, -4}, mgl32.Vec2{0, 4}},
		{TwoSeventy, mgl32.Vec2{5, 0}, mgl32.Vec2{0, -5}},
		{TwoSeventy, mgl32.Vec2{0, -6}, mgl32.Vec2{-6, 0}},
	}
	for _, tt := range tests {
		if got := tt.d.Rotate(tt.in); got != tt.want {
			t.Errorf("%s.Rotate(%v) = %v, want %v", tt.d, tt.in, got, tt.want)
		}
	}
}

func TestDegreeAddSub(t *testing.T) {
	if got := Ninty.Add(Zero); got != Ninty {
		t.Errorf("90+0 = %s", got)
	}
	if got := Ninty.Sub(Zero); got != Ninty {
		t.Errorf("90-0 = %s", got)
	}
	if got := Ninty.Add(Ninty); got != OneEighty {
		t.Errorf("90+90 = %s", got)
	}
	if got := OneEighty.Add(Ninty); got != TwoSeventy {
		t.Errorf("180+90 = %s", got)
	}
	if got := TwoSeventy.Add(OneEighty); got != Ninty {
		t.Errorf("270+180 = %s", got)
	}
	if got := TwoSeventy.Sub(OneEighty); got != Ninty {
		t.Errorf("270-180 = %s", got)
	}
	if got := Zero.Sub(Ninty); got != TwoSeventy {
		t.Errorf("0-90 = %s", got)
	}
}

func TestDegreeGroupLaws(t *testing.T) {
	v := mgl32.Vec2{1.5, -2}
	for _, d1 := range allDegrees {
		if d1.Add(Zero) != d1 {
			t.Errorf("identity failed for %s", d1)
		}
		if d1.Add(d1.Neg()) != Zero {
			t.Errorf("%s + -%s != 0", d1, d1)
		}
		if d1.Neg().Neg() != d1 {
			t.Errorf("double negation failed for %s", d1)
		}
		for _, d2 := range allDegrees {
			if d1.Add(d2) != d2.Add(d1) {
				t.Errorf("%s + %s not commutative", d1, d2)
			}
			if d1.Sub(d2) != d1.Add(d2.Neg()) {
				t.Errorf("%s - %s != %s + -%s", d1, d2, d1, d2)
			}
			// Composing rotations is adding degrees.
			if d2.Rotate(d1.Rotate(v)) != d1.Add(d2).Rotate(v) {
				t.Errorf("rotate(%s) after rotate(%s) != rotate(%s)", d2, d1, d1.Add(d2))
			}
			for _, d3 := range allDegrees {
				if d1.Add(d2).Add(d3) != d1.Add(d2.Add(d3)) {
					t.Errorf("(%s+%s)+%s not associative", d1, d2, d3)
				}
			}
		}
	}

	twice := Ninty.Rotate(Ninty.Rotate(mgl32.Vec2{1, 0}))
	if twice != OneEighty.Rotate(mgl32.Vec2{1, 0}) || twice != (mgl32.Vec2{-1, 0}) {
		t.Errorf("90 twice = %v", twice)
	}
}

func TestDegreeNeg(t *testing.T) {
	want := map[Degree]Degree{
		Zero:       Zero,
		Ninty:      TwoSeventy,
		OneEighty:  OneEighty,
		TwoSeventy: Ninty,
	}
	for d, w := range want {
		if got := d.Neg(); got != w {
			t.Errorf("-%s = %s, want %s", d, got, w)
		}
	}
}

func TestDegreeFromQuarterTurns(t *testing.T) {
	cases := map[int]Degree{0: Zero, 1: Ninty, 4: Zero, 7: TwoSeventy, -1: TwoSeventy, -6: OneEighty}
	for n, want := range cases {
		if got := DegreeFromQuarterTurns(n); got != want {
			t.Errorf("DegreeFromQuarterTurns(%d) = %s, want %s", n, got, want)
		}
	}
}

func TestDegreeAxisRotationsAreRightHanded(t *testing.T) {
	x := mgl32.Vec3{1, 0, 0}
	y := mgl32.Vec3{0, 1, 0}
	z := mgl32.Vec3{0, 0, 1}

	if got := Ninty.RotateX(y); got != z {
		t.Errorf("x-axis 90: y -> %v, want z", got)
	}
	if got := Ninty.RotateY(z); got != x {
		t.Errorf("y-axis 90: z -> %v, want x", got)
	}
	if got := Ninty.RotateZ(x); got != y {
		t.Errorf("z-axis 90: x -> %v, want y", got)
	}
	for _, d := range allDegrees {
		v := mgl32.Vec3{1, 2, 3}
		if d.RotateX(v).X() != 1 || d.RotateY(v).Y() != 2 || d.RotateZ(v).Z() != 3 {
			t.Errorf("%s moved the rotation axis component", d)
		}
	}
}
