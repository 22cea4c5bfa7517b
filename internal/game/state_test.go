package game

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/pixil98/go-testutil"
)

func TestGameStateAddCharacter(t *testing.T) {
	g := NewGameState(DefaultWorldState())
	id := uuid.New()

	err := g.AddCharacter(id, NewCharacter(id, "Winston", ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "players", len(g.Players), 1)

	// A second insert must not overwrite the first.
	err = g.AddCharacter(id, NewCharacter(id, "Impostor", ""))
	if !errors.Is(err, ErrCharacterExists) {
		t.Errorf("expected ErrCharacterExists, got %v", err)
	}
	testutil.AssertEqual(t, "name kept", g.Character(id).Name, "Winston")
}

func TestGameStateRemoveCharacter(t *testing.T) {
	g := NewGameState(DefaultWorldState())
	id := uuid.New()

	err := g.RemoveCharacter(id)
	if !errors.Is(err, ErrCharacterNotFound) {
		t.Errorf("expected ErrCharacterNotFound, got %v", err)
	}

	if err := g.AddCharacter(id, NewCharacter(id, "Winston", "")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.RemoveCharacter(id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Character(id) != nil {
		t.Error("expected character to be gone")
	}
}

func TestStateUpdateSerializes(t *testing.T) {
	s := NewState(NewGameState(DefaultWorldState()))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Update(func(g *GameState) {
				g.Day++
			})
		}()
	}
	wg.Wait()

	s.Update(func(g *GameState) {
		testutil.AssertEqual(t, "day", g.Day, uint32(51))
	})
}
