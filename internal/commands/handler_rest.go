package commands

import (
	"github.com/airstripone/oceania/internal/game"
	"github.com/airstripone/oceania/internal/protocol"
	"github.com/google/uuid"
)

// restRecovery is the fixed saturating health gain per rest.
const restRecovery = 5

func applyRest(g *game.GameState, playerID uuid.UUID) []Directive {
	c := g.Character(playerID)
	if c == nil {
		return senderError("You have no character yet.")
	}

	c.Health = c.Health.Add(restRecovery)

	return []Directive{
		toSender(narrative("rest", nil)),
		toAll(protocol.GameStateUpdate{State: g}),
	}
}
