package game

import "github.com/airstripone/oceania/internal/geom"

// FrameTime is the fixed simulation step in seconds (30 Hz). Flight
// input scaling and physics integration both assume this step.
const FrameTime float32 = 1.0 / 30.0

const (
	// ThrottleRate scales throttle_change input to throttle per second.
	ThrottleRate float32 = 2.0
	// RotationRate is the full-deflection turn rate in radians per second.
	RotationRate float32 = 1.5
)

// FlightState is the physically simulated part of a character. It is
// mutated only by fly-input commands and the simulation loop, always
// under the game state lock.
type FlightState struct {
	Position    geom.Vec3 `json:"position"`
	Velocity    geom.Vec3 `json:"velocity"`
	Orientation geom.Quat `json:"orientation"`
	Throttle    float32   `json:"throttle"` // 0.0 to 1.0
}

// NewFlightState returns a grounded body at the spawn point with no
// velocity and identity orientation.
func NewFlightState() FlightState {
	return FlightState{
		Position:    geom.NewVec3(0, 0, 1.7),
		Orientation: geom.IdentityQuat(),
	}
}

// Forward is the body's forward axis in world coordinates.
func (f *FlightState) Forward() geom.Vec3 {
	return f.Orientation.Rotate(geom.AxisZ)
}

// Right is the body's right axis in world coordinates.
func (f *FlightState) Right() geom.Vec3 {
	return f.Orientation.Rotate(geom.AxisX)
}

// Up is the body's up axis in world coordinates.
func (f *FlightState) Up() geom.Vec3 {
	return f.Orientation.Rotate(geom.AxisY)
}
