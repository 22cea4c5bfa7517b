package game

import (
	"sync"

	"github.com/google/uuid"
)

// GameState is the single authoritative aggregate: every connected
// player's character plus the world. It has no locking of its own;
// callers go through State.
type GameState struct {
	Players map[uuid.UUID]*Character `json:"players"`
	World   *WorldState              `json:"world_state"`
	Day     uint32                   `json:"day"`
}

// NewGameState creates an empty game over the given world.
func NewGameState(world *WorldState) *GameState {
	return &GameState{
		Players: map[uuid.UUID]*Character{},
		World:   world,
		Day:     1,
	}
}

// Character returns the character for a player identity, or nil.
func (g *GameState) Character(id uuid.UUID) *Character {
	return g.Players[id]
}

// AddCharacter inserts a character for a player identity. A second
// insert for the same identity is rejected, never overwritten.
func (g *GameState) AddCharacter(id uuid.UUID, c *Character) error {
	if _, exists := g.Players[id]; exists {
		return ErrCharacterExists
	}
	g.Players[id] = c
	return nil
}

// RemoveCharacter deletes a player's character if present.
func (g *GameState) RemoveCharacter(id uuid.UUID) error {
	if _, exists := g.Players[id]; !exists {
		return ErrCharacterNotFound
	}
	delete(g.Players, id)
	return nil
}

// State serializes all access to the shared GameState behind one
// exclusive lock. Every command application and every simulation tick
// is one Update call; the critical section must never reach out to the
// network. Outbound messages are computed inside and delivered after
// the lock is released.
type State struct {
	mu   sync.Mutex
	game *GameState
}

func NewState(g *GameState) *State {
	return &State{game: g}
}

// Update runs fn with exclusive ownership of the game state.
func (s *State) Update(fn func(*GameState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.game)
}
