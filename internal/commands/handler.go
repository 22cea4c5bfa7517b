// Package commands implements the synchronous state-transition rules
// of the game. Apply is always invoked with the game state lock held,
// so command application is atomic with respect to the simulation loop
// and every other connection.
package commands

import (
	"log/slog"

	"github.com/airstripone/oceania/internal/game"
	"github.com/airstripone/oceania/internal/protocol"
	"github.com/google/uuid"
)

// Scope selects the recipients of an emitted message.
type Scope int

const (
	ScopeSender Scope = iota
	ScopeOthers
	ScopeAll
)

// Directive pairs an outbound message with its recipient selection.
// The caller serializes and delivers after releasing the state lock.
type Directive struct {
	Scope Scope
	Msg   protocol.ServerMessage
}

func toSender(msg protocol.ServerMessage) Directive {
	return Directive{Scope: ScopeSender, Msg: msg}
}

func toOthers(msg protocol.ServerMessage) Directive {
	return Directive{Scope: ScopeOthers, Msg: msg}
}

func toAll(msg protocol.ServerMessage) Directive {
	return Directive{Scope: ScopeAll, Msg: msg}
}

func senderError(msg string) []Directive {
	return []Directive{toSender(protocol.ErrorMessage(msg))}
}

// Apply executes one inbound command against the game state and
// returns the messages to emit. It mutates g in place; rule violations
// produce sender-only errors and leave the state untouched.
func Apply(g *game.GameState, playerID uuid.UUID, msg protocol.ClientMessage) []Directive {
	switch m := msg.(type) {
	case protocol.RequestCharacterCreation:
		return applyCharacterCreation(g, playerID, m)
	case protocol.MoveRequest:
		return applyMove(g, playerID, m)
	case protocol.FlyInput:
		return applyFlyInput(g, playerID, m)
	case protocol.InteractRequest:
		return applyInteract(g, playerID, m)
	case protocol.JournalWriteRequest:
		return applyJournalWrite(g, playerID, m)
	case protocol.SearchRequest:
		return applySearch(g, playerID)
	case protocol.WorkRequest:
		return applyWork(g, playerID)
	case protocol.RestRequest:
		return applyRest(g, playerID)
	case protocol.SearchForForbiddenTexts:
		return applyPlaceholder(g, playerID, "search_texts", nil)
	case protocol.ReadForbiddenText:
		return applyPlaceholder(g, playerID, "read_text", m)
	case protocol.HideForbiddenText:
		return applyPlaceholder(g, playerID, "hide_text", m)
	case protocol.DestroyForbiddenText:
		return applyPlaceholder(g, playerID, "destroy_text", m)
	case protocol.MemorizeForbiddenKnowledge:
		return applyPlaceholder(g, playerID, "memorize", m)
	case protocol.ShareForbiddenKnowledge:
		return applyPlaceholder(g, playerID, "share_knowledge", m)
	case protocol.VoluntaryExchange:
		return applyPlaceholder(g, playerID, "voluntary_exchange", m)
	case protocol.DisableTelescreen:
		return applyPlaceholder(g, playerID, "disable_telescreen", m)
	default:
		// DecodeClientMessage only produces known variants; reaching
		// here means a variant was added without a rule.
		slog.Error("command with no rule", "player", playerID, "type", msg)
		return senderError("Unknown command.")
	}
}
