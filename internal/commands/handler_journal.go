package commands

import (
	"github.com/airstripone/oceania/internal/game"
	"github.com/airstripone/oceania/internal/protocol"
	"github.com/google/uuid"
)

// journalThoughtcrime is the fixed saturating increment per entry.
const journalThoughtcrime = 5

func applyJournalWrite(g *game.GameState, playerID uuid.UUID, m protocol.JournalWriteRequest) []Directive {
	c := g.Character(playerID)
	if c == nil {
		return senderError("You have no character yet.")
	}

	c.JournalEntries = append(c.JournalEntries, m.Entry)
	c.Thoughtcrime = c.Thoughtcrime.Add(journalThoughtcrime)

	return []Directive{
		toSender(narrative("journal", nil)),
		toAll(protocol.GameStateUpdate{State: g}),
	}
}
