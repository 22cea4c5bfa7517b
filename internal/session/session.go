package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/airstripone/oceania/internal/commands"
	"github.com/airstripone/oceania/internal/game"
	"github.com/airstripone/oceania/internal/protocol"
	"github.com/google/uuid"
)

// Conn is the transport handed to a session: text frames in, text
// frames out. The core never sees the underlying socket.
type Conn interface {
	ReadText() ([]byte, error)
	WriteText(data []byte) error
	Close() error
}

// Manager runs the protocol lifecycle of every connection: identity
// assignment, welcome, command dispatch, and disconnect cleanup.
type Manager struct {
	registry *Registry
	state    *game.State
}

func NewManager(registry *Registry, state *game.State) *Manager {
	return &Manager{registry: registry, state: state}
}

// Run drives one connection until the peer disconnects, a write
// fails, or the simulation kicks the session. By the time it returns,
// the identity is gone from both the registry and the world.
func (m *Manager) Run(ctx context.Context, conn Conn) error {
	id := uuid.New()

	msgs := make(chan []byte, 64)
	done, err := m.registry.Register(id, msgs)
	if err != nil {
		return fmt.Errorf("registering session: %w", err)
	}
	defer m.cleanup(id)

	writerDone := make(chan struct{})
	stopWriter := make(chan struct{})
	go func() {
		defer close(writerDone)
		for {
			select {
			case data := <-msgs:
				if len(data) == 0 {
					// In-band close from a kick; everything queued
					// ahead of it has already been written.
					conn.Close()
					return
				}
				if err := conn.WriteText(data); err != nil {
					slog.Warn("writing to connection", "player", id, "error", err)
					conn.Close()
					return
				}
			case <-done:
				// Registry discarded the session with the writer still
				// running; closing unblocks the reader.
				conn.Close()
				return
			case <-ctx.Done():
				conn.Close()
				return
			case <-stopWriter:
				return
			}
		}
	}()
	defer func() {
		close(stopWriter)
		<-writerDone
	}()

	m.sendWelcome(id)

	for {
		frame, err := conn.ReadText()
		if err != nil {
			// Peer closed or transport failure; either way the
			// deferred cleanup reconciles state.
			return nil
		}

		msg, derr := protocol.DecodeClientMessage(frame)
		if derr != nil {
			m.sendError(id, fmt.Sprintf("Invalid message format: %v", derr))
			continue
		}

		m.dispatch(id, msg)
	}
}

// sendWelcome snapshots the world under the lock and greets the new
// connection with its assigned identity.
func (m *Manager) sendWelcome(id uuid.UUID) {
	var data []byte
	m.state.Update(func(g *game.GameState) {
		var err error
		data, err = protocol.EncodeServerMessage(protocol.Welcome{PlayerID: id, InitialGameState: g})
		if err != nil {
			slog.Error("encoding welcome", "player", id, "error", err)
			data = nil
		}
	})
	if data != nil {
		m.registry.Unicast(id, data)
	}
}

func (m *Manager) sendError(id uuid.UUID, text string) {
	data, err := protocol.EncodeServerMessage(protocol.ErrorMessage(text))
	if err != nil {
		slog.Error("encoding error message", "player", id, "error", err)
		return
	}
	m.registry.Unicast(id, data)
}

// dispatch applies one command under the state lock and delivers the
// resulting messages after releasing it. Serialization happens inside
// the critical section so every recipient sees a consistent snapshot;
// delivery never does.
func (m *Manager) dispatch(id uuid.UUID, msg protocol.ClientMessage) {
	type outbound struct {
		scope commands.Scope
		data  []byte
	}
	var outs []outbound

	m.state.Update(func(g *game.GameState) {
		for _, d := range commands.Apply(g, id, msg) {
			data, err := protocol.EncodeServerMessage(d.Msg)
			if err != nil {
				slog.Error("encoding response", "player", id, "error", err)
				continue
			}
			outs = append(outs, outbound{scope: d.Scope, data: data})
		}
	})

	for _, o := range outs {
		switch o.scope {
		case commands.ScopeSender:
			m.registry.Unicast(id, o.data)
		case commands.ScopeOthers:
			m.registry.Broadcast(o.data, &id)
		case commands.ScopeAll:
			m.registry.Broadcast(o.data, nil)
		}
	}
}

// cleanup reconciles the registry and the world after a connection
// ends. If the player still had a character (not already removed by a
// termination condition), the remaining players get exactly one
// PlayerLeft.
func (m *Manager) cleanup(id uuid.UUID) {
	m.registry.Remove(id)

	var left []byte
	m.state.Update(func(g *game.GameState) {
		if err := g.RemoveCharacter(id); err != nil {
			return
		}
		var eerr error
		left, eerr = protocol.EncodeServerMessage(protocol.PlayerLeft{PlayerID: id})
		if eerr != nil {
			slog.Error("encoding player left", "player", id, "error", eerr)
			left = nil
		}
	})
	if left != nil {
		m.registry.Broadcast(left, &id)
	}
}
