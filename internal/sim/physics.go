// Package sim advances the 3D physics model and evaluates character
// end-of-life conditions on a fixed schedule.
package sim

import (
	"github.com/airstripone/oceania/internal/game"
	"github.com/airstripone/oceania/internal/geom"
)

const (
	gravity        = -9.81 // m/s^2, world Y
	dragCoeff      = 0.5   // linear drag
	thrustScale    = 20.0  // thrust force at full throttle, unit mass
	groundFriction = 0.9   // horizontal velocity multiplier on contact
)

// Integrate advances one flight state by dt seconds and returns the
// result. Pure function; it needs no lock and no world context.
//
// Forces assume unit mass: thrust along the body's forward axis scaled
// by throttle, constant gravity, and drag opposing velocity. Velocity
// integrates before position (semi-implicit Euler). The ground plane
// at height zero clamps the body, kills downward velocity, and bleeds
// horizontal speed.
func Integrate(f game.FlightState, dt float32) game.FlightState {
	thrust := f.Forward().Scale(f.Throttle * thrustScale)
	drag := f.Velocity.Scale(-dragCoeff)
	accel := thrust.Add(geom.NewVec3(0, gravity, 0)).Add(drag)

	f.Velocity = f.Velocity.Add(accel.Scale(dt))
	f.Position = f.Position.Add(f.Velocity.Scale(dt))

	if f.Position.Y < 0 {
		f.Position.Y = 0
		if f.Velocity.Y < 0 {
			f.Velocity.Y = 0
		}
		f.Velocity.X *= groundFriction
		f.Velocity.Z *= groundFriction
	}

	return f
}
