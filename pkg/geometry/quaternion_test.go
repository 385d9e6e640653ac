package geometry

import (
	"math"
	"testing"
)

func TestQuaternionRotateZFromIdentity(t *testing.T) {
	q := IdentityQuaternion().RotateZ(math.Pi / 2)

	expected := Quaternion{Z: math.Sin(math.Pi / 4), W: math.Cos(math.Pi / 4)}
	if math.Abs(q.Z-expected.Z) > 1e-10 || math.Abs(q.W-expected.W) > 1e-10 || q.X != 0 || q.Y != 0 {
		t.Errorf("RotateZ failed: expected %v, got %v", expected, q)
	}
	if math.Abs(q.Norm()-1) > 1e-10 {
		t.Errorf("RotateZ should keep unit norm, got %v", q.Norm())
	}
}

func TestQuaternionYaw(t *testing.T) {
	for _, angle := range []float64{0, 0.3, -1.2, 2.5} {
		yaw := IdentityQuaternion().RotateZ(angle).Yaw()
		if math.Abs(yaw-angle) > 1e-10 {
			t.Errorf("Yaw failed: expected %v, got %v", angle, yaw)
		}
	}
}

func TestQuaternionRotate(t *testing.T) {
	q := IdentityQuaternion().RotateZ(math.Pi)
	v := q.Rotate(NewVector3(1, 2, 3))

	if math.Abs(v.X+1) > 1e-10 || math.Abs(v.Y+2) > 1e-10 || math.Abs(v.Z-3) > 1e-10 {
		t.Errorf("Rotate failed: expected (-1, -2, 3), got %v", v)
	}
}
