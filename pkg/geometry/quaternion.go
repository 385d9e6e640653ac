package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Quaternion is a rotation stored in x, y, z, w order
type Quaternion struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
	W float64 `json:"w" yaml:"w"`
}

// IdentityQuaternion returns the unit quaternion with no rotation
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// QuaternionFromArray converts a [x, y, z, w] array
func QuaternionFromArray(a [4]float64) Quaternion {
	return Quaternion{X: a[0], Y: a[1], Z: a[2], W: a[3]}
}

// Array returns the quaternion as [x, y, z, w]
func (q Quaternion) Array() [4]float64 {
	return [4]float64{q.X, q.Y, q.Z, q.W}
}

func (q Quaternion) quat() mgl64.Quat {
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{q.X, q.Y, q.Z}}
}

func fromQuat(q mgl64.Quat) Quaternion {
	return Quaternion{X: q.V[0], Y: q.V[1], Z: q.V[2], W: q.W}
}

// RotateZ returns q followed by a rotation of angle radians about the local Z axis
func (q Quaternion) RotateZ(angle float64) Quaternion {
	return fromQuat(q.quat().Mul(mgl64.QuatRotate(angle, mgl64.Vec3{0, 0, 1})))
}

// Rotate applies the rotation to v
func (q Quaternion) Rotate(v Vector3) Vector3 {
	return fromVec(q.quat().Rotate(v.vec()))
}

// Norm returns the quaternion length
func (q Quaternion) Norm() float64 {
	return q.quat().Len()
}

// Yaw returns the heading of the rotated +X axis measured in the XY plane
func (q Quaternion) Yaw() float64 {
	x := q.Rotate(NewVector3(1, 0, 0))
	return math.Atan2(x.Y, x.X)
}
