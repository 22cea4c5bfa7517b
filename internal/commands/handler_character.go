package commands

import (
	"github.com/airstripone/oceania/internal/game"
	"github.com/airstripone/oceania/internal/protocol"
	"github.com/google/uuid"
)

// applyCharacterCreation builds the character exactly once per player
// identity. A repeat request is rejected and never overwrites the
// existing character.
func applyCharacterCreation(g *game.GameState, playerID uuid.UUID, m protocol.RequestCharacterCreation) []Directive {
	if g.Character(playerID) != nil {
		return senderError("Character already created.")
	}

	c := game.NewCharacter(playerID, m.Name, m.Occupation)
	if err := g.AddCharacter(playerID, c); err != nil {
		// Guarded by the lookup above; kept for the invariant.
		return senderError("Character already created.")
	}

	return []Directive{
		toOthers(protocol.PlayerJoined{PlayerID: playerID, Character: c}),
		toSender(protocol.GameStateUpdate{State: g}),
	}
}
