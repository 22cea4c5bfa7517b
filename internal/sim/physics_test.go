package sim

import (
	"math"
	"testing"

	"github.com/airstripone/oceania/internal/game"
	"github.com/airstripone/oceania/internal/geom"
)

func near(t *testing.T, name string, got, want float32) {
	t.Helper()
	if math.Abs(float64(got-want)) > 1e-4 {
		t.Errorf("%s: got %v, want %v", name, got, want)
	}
}

func airborne() game.FlightState {
	f := game.NewFlightState()
	f.Position = geom.NewVec3(0, 100, 0)
	return f
}

func TestIntegrateThrust(t *testing.T) {
	f := airborne()
	f.Throttle = 1

	out := Integrate(f, game.FrameTime)

	// Full throttle, identity orientation: 20 m/s^2 along +Z, gravity
	// along -Y, no drag on the first step.
	near(t, "vz", out.Velocity.Z, 20*game.FrameTime)
	near(t, "vy", out.Velocity.Y, gravity*game.FrameTime)
	near(t, "vx", out.Velocity.X, 0)

	// Semi-implicit Euler: the new velocity moves the position.
	near(t, "z", out.Position.Z, out.Velocity.Z*game.FrameTime)
}

func TestIntegrateDrag(t *testing.T) {
	f := airborne()
	f.Velocity = geom.NewVec3(30, 0, 0)

	out := Integrate(f, game.FrameTime)

	near(t, "vx", out.Velocity.X, 30+(-dragCoeff*30)*game.FrameTime)
}

func TestIntegrateFreeFall(t *testing.T) {
	f := airborne()

	out := f
	for i := 0; i < 30; i++ {
		out = Integrate(out, game.FrameTime)
	}

	if out.Position.Y >= f.Position.Y {
		t.Errorf("expected the body to fall, got y=%v", out.Position.Y)
	}
	if out.Velocity.Y >= 0 {
		t.Errorf("expected downward velocity, got vy=%v", out.Velocity.Y)
	}
}

func TestIntegrateGroundClamp(t *testing.T) {
	f := game.NewFlightState()
	f.Position = geom.NewVec3(0, 0.001, 0)
	f.Velocity = geom.NewVec3(10, -5, 0)

	out := Integrate(f, game.FrameTime)

	near(t, "y", out.Position.Y, 0)
	if out.Velocity.Y != 0 {
		t.Errorf("expected downward velocity killed, got %v", out.Velocity.Y)
	}
	// Horizontal speed bleeds off on contact.
	if out.Velocity.X >= f.Velocity.X {
		t.Errorf("expected ground friction, got vx=%v", out.Velocity.X)
	}
}

func TestIntegrateRestingBodyStaysPut(t *testing.T) {
	f := game.NewFlightState()
	f.Position.Y = 0

	out := f
	for i := 0; i < 120; i++ {
		out = Integrate(out, game.FrameTime)
	}

	near(t, "y", out.Position.Y, 0)
	near(t, "x", out.Position.X, f.Position.X)
	near(t, "z", out.Position.Z, f.Position.Z)
}
