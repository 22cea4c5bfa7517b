package sim

import (
	"context"
	"log/slog"

	"github.com/airstripone/oceania/internal/game"
	"github.com/airstripone/oceania/internal/protocol"
	"github.com/google/uuid"
)

const (
	deathText  = "Your health reached zero. You succumb to the harsh realities of Oceania."
	arrestText = "Your suspicion level reached its peak. You are arrested by the Thought Police and taken to the Ministry of Love. Your journey ends here."
)

// Deliverer is the outbound side of the session registry.
type Deliverer interface {
	Unicast(id uuid.UUID, data []byte)
	Broadcast(data []byte, exclude *uuid.UUID)
	Kick(id uuid.UUID)
}

// Simulator owns one tick of the game: termination scan, removal,
// physics integration, and the snapshot broadcast. It runs under the
// driver at the fixed frame rate.
type Simulator struct {
	state *game.State
	out   Deliverer
}

func NewSimulator(state *game.State, out Deliverer) *Simulator {
	return &Simulator{state: state, out: out}
}

// delivery is one planned send, computed under the state lock and
// performed after it is released.
type delivery struct {
	to        *uuid.UUID // nil broadcasts to all
	exclude   *uuid.UUID
	data      []byte
	thenClose *uuid.UUID // kick this session after sending
}

// Tick advances the world by exactly one frame.
func (s *Simulator) Tick(ctx context.Context) error {
	var plan []delivery

	s.state.Update(func(g *game.GameState) {
		plan = s.advance(g)
	})

	for _, d := range plan {
		switch {
		case d.to != nil:
			s.out.Unicast(*d.to, d.data)
		default:
			s.out.Broadcast(d.data, d.exclude)
		}
		if d.thenClose != nil {
			s.out.Kick(*d.thenClose)
		}
	}

	return nil
}

// advance mutates the game state for one frame and returns the
// deliveries to perform. Runs with the state lock held.
func (s *Simulator) advance(g *game.GameState) []delivery {
	var plan []delivery

	// TODO: advance Day and run the daily world events (ration
	// changes, enemy rotation, patrols) once the event tables exist.

	// Termination scan. The cause narrative is delivered to the
	// affected player before their removal is announced.
	var doomed []uuid.UUID
	for id, c := range g.Players {
		var cause string
		switch {
		case c.Health == 0:
			cause = deathText
		case c.Suspicion >= game.StatMax:
			cause = arrestText
		default:
			continue
		}

		doomed = append(doomed, id)
		if data, ok := encode(protocol.NarrativeUpdate(cause)); ok {
			to := id
			plan = append(plan, delivery{to: &to, data: data})
		}
	}

	mutated := false
	for _, id := range doomed {
		if err := g.RemoveCharacter(id); err != nil {
			continue
		}
		mutated = true
		if data, ok := encode(protocol.PlayerLeft{PlayerID: id}); ok {
			exclude := id
			kick := id
			plan = append(plan, delivery{exclude: &exclude, data: data, thenClose: &kick})
		}
	}

	// Physics for everyone still standing. One step per tick, fixed dt.
	for _, c := range g.Players {
		c.FlightState = Integrate(c.FlightState, game.FrameTime)
		mutated = true
	}

	if mutated {
		if data, ok := encode(protocol.GameStateUpdate{State: g}); ok {
			plan = append(plan, delivery{data: data})
		}
	}

	return plan
}

// encode serializes one message, logging and dropping on failure so a
// bad snapshot can never stop the loop.
func encode(msg protocol.ServerMessage) ([]byte, bool) {
	data, err := protocol.EncodeServerMessage(msg)
	if err != nil {
		slog.Error("encoding simulation message", "error", err)
		return nil, false
	}
	return data, true
}
