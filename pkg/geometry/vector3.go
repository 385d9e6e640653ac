package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector3 represents a 3D point or vector
type Vector3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// NewVector3 creates a new 3D vector
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// FromArray converts a [x, y, z] triple as stored in camera state
func FromArray(a [3]float64) Vector3 {
	return Vector3{X: a[0], Y: a[1], Z: a[2]}
}

// Array returns the vector as a [x, y, z] triple
func (v Vector3) Array() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func (v Vector3) vec() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromVec(v mgl64.Vec3) Vector3 {
	return Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// Add returns the sum of two vectors
func (v Vector3) Add(other Vector3) Vector3 {
	return fromVec(v.vec().Add(other.vec()))
}

// Sub returns the difference between two vectors
func (v Vector3) Sub(other Vector3) Vector3 {
	return fromVec(v.vec().Sub(other.vec()))
}

// Mul multiplies the vector by a scalar
func (v Vector3) Mul(scalar float64) Vector3 {
	return fromVec(v.vec().Mul(scalar))
}

// Length returns the magnitude of the vector
func (v Vector3) Length() float64 {
	return v.vec().Len()
}

// Distance returns the distance between two points
func (v Vector3) Distance(other Vector3) float64 {
	return v.Sub(other).Length()
}

// RotateZ rotates the vector counter-clockwise about the Z axis through the origin
func (v Vector3) RotateZ(angle float64) Vector3 {
	return fromVec(mgl64.Rotate3DZ(angle).Mul3x1(v.vec()))
}

// XY drops the Z component
func (v Vector3) XY() Point2 {
	return Point2{X: v.X, Y: v.Y}
}

// Point2 is a point on the drawing plane
type Point2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Add returns the sum of two points
func (p Point2) Add(other Point2) Point2 {
	return Point2{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference between two points
func (p Point2) Sub(other Point2) Point2 {
	return Point2{X: p.X - other.X, Y: p.Y - other.Y}
}

// Distance returns the euclidean distance between two points
func (p Point2) Distance(other Point2) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// DistanceToSegment returns the distance from p to the segment a-b
func (p Point2) DistanceToSegment(a, b Point2) float64 {
	ab := b.Sub(a)
	lenSq := ab.X*ab.X + ab.Y*ab.Y
	if lenSq == 0 {
		return p.Distance(a)
	}
	ap := p.Sub(a)
	t := (ap.X*ab.X + ap.Y*ab.Y) / lenSq
	t = math.Max(0, math.Min(1, t))
	return p.Distance(Point2{X: a.X + t*ab.X, Y: a.Y + t*ab.Y})
}
