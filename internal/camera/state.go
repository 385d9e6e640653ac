package camera

import (
	"math"

	"github.com/philipparndt/vizpanel/pkg/geometry"
)

// State is the orbit camera as stored in the panel config
type State struct {
	Distance          float64    `json:"distance" yaml:"distance"`
	Perspective       bool       `json:"perspective" yaml:"perspective"`
	Phi               float64    `json:"phi" yaml:"phi"`
	ThetaOffset       float64    `json:"thetaOffset" yaml:"thetaOffset"`
	Target            [3]float64 `json:"target" yaml:"target"`
	TargetOffset      [3]float64 `json:"targetOffset" yaml:"targetOffset"`
	TargetOrientation [4]float64 `json:"targetOrientation" yaml:"targetOrientation"`
}

// Default returns the camera the panel starts with
func Default() State {
	return State{
		Distance:          75,
		Perspective:       true,
		Phi:               math.Pi / 4,
		ThetaOffset:       0,
		TargetOrientation: geometry.IdentityQuaternion().Array(),
	}
}

// WithPerspective returns a copy of s with only the projection mode replaced
func (s State) WithPerspective(perspective bool) State {
	s.Perspective = perspective
	return s
}

// Orientation returns the target orientation, falling back to identity
// when the stored quaternion is all zeros.
func (s State) Orientation() geometry.Quaternion {
	if s.TargetOrientation == ([4]float64{}) {
		return geometry.IdentityQuaternion()
	}
	return geometry.QuaternionFromArray(s.TargetOrientation)
}

// TargetHeading returns the yaw of the orbit target in radians.
//
// The heading is the negated angle of the world +X axis after rotation by the
// target orientation. Consumers only use it through sin and cos, so the atan2
// branch cut at ±π never shows up as a jump in derived geometry.
func TargetHeading(s State) float64 {
	return -s.Orientation().Yaw()
}
