package commands

import (
	"log/slog"

	"github.com/airstripone/oceania/internal/game"
	"github.com/airstripone/oceania/internal/geom"
	"github.com/airstripone/oceania/internal/protocol"
	"github.com/google/uuid"
)

// applyFlyInput folds one frame of control input into the character's
// flight state. The position itself only changes on simulation ticks;
// the next full-state broadcast carries the result, so no message is
// emitted here.
func applyFlyInput(g *game.GameState, playerID uuid.UUID, m protocol.FlyInput) []Directive {
	c := g.Character(playerID)
	if c == nil {
		slog.Warn("fly input from player with no character", "player", playerID)
		return nil
	}

	c.Throttle = clamp01(c.Throttle + m.ThrottleChange*game.FrameTime*game.ThrottleRate)

	// Small-angle rotations about the body axes, all derived from the
	// orientation as it stands before this input is applied.
	step := game.RotationRate * game.FrameTime
	pitch := geom.AxisAngle(c.Right(), m.Pitch*step)
	roll := geom.AxisAngle(c.Forward(), m.Roll*step)
	yaw := geom.AxisAngle(c.Up(), m.Yaw*step)

	c.Orientation = yaw.Mul(pitch).Mul(roll).Mul(c.Orientation).Normalize()

	return nil
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
