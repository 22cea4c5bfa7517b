// Package session tracks live connections and delivers outbound
// frames. Delivery rides the embedded message fabric: every session
// owns one subject, and the connection's writer goroutine consumes a
// subscription on it. Publishing never blocks on a slow consumer; a
// backlogged session accumulates in the subscription's pending buffer.
package session

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Bus is the message fabric the registry delivers through.
type Bus interface {
	Publish(subject string, data []byte) error
	Subscribe(subject string, handler func(data []byte)) (unsubscribe func(), err error)
}

// Registry is the concurrent map from player identity to a live
// delivery subject. One lock guards the map; it is held only for map
// mutation and membership snapshots, never while publishing.
type Registry struct {
	mu       sync.Mutex
	bus      Bus
	sessions map[uuid.UUID]*entry
}

type entry struct {
	unsub func()
	done  chan struct{}
}

func NewRegistry(bus Bus) *Registry {
	return &Registry{
		bus:      bus,
		sessions: map[uuid.UUID]*entry{},
	}
}

func subjectFor(id uuid.UUID) string {
	return "player." + id.String()
}

// Register wires a session's subject to its msgs channel. It must be
// called before any message is sent to the connection. The returned
// channel is closed when the registry discards the session; a
// server-initiated kick instead arrives in-band as an empty frame on
// msgs, after everything queued ahead of it.
func (r *Registry) Register(id uuid.UUID, msgs chan<- []byte) (<-chan struct{}, error) {
	done := make(chan struct{})

	unsub, err := r.bus.Subscribe(subjectFor(id), func(data []byte) {
		select {
		case msgs <- data:
		case <-done:
			// Session discarded with frames still in flight; drop them.
		}
	})
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	if old, exists := r.sessions[id]; exists {
		// Identity collision should not happen with random UUIDs;
		// evict the stale entry rather than leak its subscription.
		old.unsub()
		close(old.done)
	}
	r.sessions[id] = &entry{unsub: unsub, done: done}
	r.mu.Unlock()

	return done, nil
}

// Unicast delivers one encoded frame to a single session. Delivery is
// best effort: an absent identity or a publish failure is logged and
// dropped, never escalated. Disconnect cleanup is authoritative for
// removing stale entries.
func (r *Registry) Unicast(id uuid.UUID, data []byte) {
	r.mu.Lock()
	_, ok := r.sessions[id]
	r.mu.Unlock()

	if !ok {
		slog.Warn("unicast to unregistered session", "player", id)
		return
	}
	if err := r.bus.Publish(subjectFor(id), data); err != nil {
		slog.Warn("unicast failed", "player", id, "error", err)
	}
}

// Broadcast delivers one encoded frame to every registered session,
// optionally excluding one. The frame is already serialized; a failure
// for one recipient does not prevent delivery to the rest.
func (r *Registry) Broadcast(data []byte, exclude *uuid.UUID) {
	r.mu.Lock()
	ids := make([]uuid.UUID, 0, len(r.sessions))
	for id := range r.sessions {
		if exclude != nil && id == *exclude {
			continue
		}
		ids = append(ids, id)
	}
	r.mu.Unlock()

	for _, id := range ids {
		if err := r.bus.Publish(subjectFor(id), data); err != nil {
			slog.Warn("broadcast delivery failed", "player", id, "error", err)
		}
	}
}

// Kick asks the session's writer to close the connection. Used when
// the simulation removes a character on a termination condition. The
// signal is an empty frame on the session's own subject, so frames
// already queued (the termination narrative among them) are written to
// the connection before it closes.
func (r *Registry) Kick(id uuid.UUID) {
	r.mu.Lock()
	_, ok := r.sessions[id]
	r.mu.Unlock()

	if !ok {
		return
	}
	if err := r.bus.Publish(subjectFor(id), nil); err != nil {
		slog.Warn("kick failed", "player", id, "error", err)
	}
}

// Remove drops a session's registration and subscription. Idempotent;
// safe to call for an identity that was never registered.
func (r *Registry) Remove(id uuid.UUID) {
	r.mu.Lock()
	e, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
	}
	r.mu.Unlock()

	if !ok {
		return
	}
	// Release any dispatch blocked on a full session channel before
	// tearing down the subscription; unsubscribing alone cannot
	// reclaim a handler stuck mid-send.
	select {
	case <-e.done:
	default:
		close(e.done)
	}
	e.unsub()
}

// Len reports the number of registered sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
