package commands

import (
	"fmt"
	"slices"

	"github.com/airstripone/oceania/internal/game"
	"github.com/airstripone/oceania/internal/protocol"
	"github.com/google/uuid"
)

// applyMove validates the move against the location graph before
// mutating anything. The character's location is only ever set to a
// key present in the world's location map.
func applyMove(g *game.GameState, playerID uuid.UUID, m protocol.MoveRequest) []Directive {
	c := g.Character(playerID)
	if c == nil {
		return senderError("You have no character yet.")
	}

	current, ok := g.World.Locations[c.Location]
	if !ok {
		return senderError("Internal server error: Current location invalid.")
	}

	if !slices.Contains(current.Connections, m.TargetLocation) {
		return senderError(fmt.Sprintf("Cannot move from %s to %s", c.Location, m.TargetLocation))
	}
	if _, ok := g.World.Locations[m.TargetLocation]; !ok {
		return senderError(fmt.Sprintf("Invalid move target: %s", m.TargetLocation))
	}

	c.Location = m.TargetLocation
	return []Directive{toAll(protocol.GameStateUpdate{State: g})}
}
