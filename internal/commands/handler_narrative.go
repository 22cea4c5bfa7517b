package commands

import (
	"github.com/airstripone/oceania/internal/game"
	"github.com/airstripone/oceania/internal/protocol"
	"github.com/google/uuid"
)

// The interaction, search, work, and forbidden-knowledge mechanics are
// narrative placeholders: the command-to-narrative hook is wired, the
// rule tables behind them are an extension point. None of them mutate
// state.

func applyInteract(g *game.GameState, playerID uuid.UUID, m protocol.InteractRequest) []Directive {
	return applyPlaceholder(g, playerID, "interact", m)
}

func applySearch(g *game.GameState, playerID uuid.UUID) []Directive {
	return applyPlaceholder(g, playerID, "search", nil)
}

func applyWork(g *game.GameState, playerID uuid.UUID) []Directive {
	return applyPlaceholder(g, playerID, "work", nil)
}

func applyPlaceholder(_ *game.GameState, _ uuid.UUID, key string, data any) []Directive {
	return []Directive{toSender(narrative(key, data))}
}
