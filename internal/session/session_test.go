package session

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/airstripone/oceania/internal/game"
	"github.com/airstripone/oceania/internal/protocol"
	"github.com/google/uuid"
	"github.com/pixil98/go-testutil"
)

// scriptConn is an in-memory transport for driving a session.
type scriptConn struct {
	in  chan []byte
	out chan []byte

	closed    chan struct{}
	closeOnce sync.Once
}

func newScriptConn() *scriptConn {
	return &scriptConn{
		in:     make(chan []byte, 16),
		out:    make(chan []byte, 64),
		closed: make(chan struct{}),
	}
}

func (c *scriptConn) ReadText() ([]byte, error) {
	select {
	case data := <-c.in:
		return data, nil
	case <-c.closed:
		return nil, io.EOF
	}
}

func (c *scriptConn) WriteText(data []byte) error {
	select {
	case c.out <- data:
		return nil
	case <-c.closed:
		return io.ErrClosedPipe
	}
}

func (c *scriptConn) Close() error {
	c.closeOnce.Do(func() { close(c.closed) })
	return nil
}

func (c *scriptConn) send(t *testing.T, frame string) {
	t.Helper()
	select {
	case c.in <- []byte(frame):
	case <-time.After(time.Second):
		t.Fatal("session never consumed the frame")
	}
}

func (c *scriptConn) recv(t *testing.T) []byte {
	t.Helper()
	select {
	case data := <-c.out:
		return data
	case <-time.After(time.Second):
		t.Fatal("no frame arrived")
		return nil
	}
}

func frameTag(t *testing.T, data []byte) string {
	t.Helper()
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		t.Fatalf("frame is not an envelope: %v", err)
	}
	for k := range envelope {
		return k
	}
	t.Fatal("empty envelope")
	return ""
}

type sessionFixture struct {
	manager  *Manager
	registry *Registry
	state    *game.State
}

func newSessionFixture() *sessionFixture {
	state := game.NewState(game.NewGameState(game.DefaultWorldState()))
	registry := NewRegistry(newFakeBus())
	return &sessionFixture{
		manager:  NewManager(registry, state),
		registry: registry,
		state:    state,
	}
}

// connect starts a session and consumes its welcome, returning the
// assigned identity and a wait function for Run's result.
func (f *sessionFixture) connect(t *testing.T, ctx context.Context) (*scriptConn, uuid.UUID, func() error) {
	t.Helper()
	conn := newScriptConn()

	done := make(chan error, 1)
	go func() {
		done <- f.manager.Run(ctx, conn)
	}()

	welcome := conn.recv(t)
	testutil.AssertEqual(t, "welcome tag", frameTag(t, welcome), "Welcome")

	var envelope struct {
		Welcome struct {
			PlayerID uuid.UUID `json:"player_id"`
		} `json:"Welcome"`
	}
	if err := json.Unmarshal(welcome, &envelope); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wait := func() error {
		select {
		case err := <-done:
			return err
		case <-time.After(time.Second):
			t.Fatal("session never finished")
			return nil
		}
	}
	return conn, envelope.Welcome.PlayerID, wait
}

func TestSessionLifecycle(t *testing.T) {
	f := newSessionFixture()
	conn, id, wait := f.connect(t, context.Background())

	conn.send(t, `{"RequestCharacterCreation":{"name":"Winston","occupation":"Records Department Worker"}}`)
	testutil.AssertEqual(t, "creation reply", frameTag(t, conn.recv(t)), "GameStateUpdate")

	f.state.Update(func(g *game.GameState) {
		c := g.Character(id)
		if c == nil {
			t.Fatal("character was not created")
		}
		testutil.AssertEqual(t, "name", c.Name, "Winston")
	})

	conn.Close()
	if err := wait(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Disconnect removed both the session and the character.
	testutil.AssertEqual(t, "sessions", f.registry.Len(), 0)
	f.state.Update(func(g *game.GameState) {
		if g.Character(id) != nil {
			t.Error("expected character to be removed on disconnect")
		}
	})
}

func TestSessionRejectsMalformedFrames(t *testing.T) {
	f := newSessionFixture()
	conn, _, wait := f.connect(t, context.Background())

	conn.send(t, `this is not json`)

	reply := conn.recv(t)
	testutil.AssertEqual(t, "tag", frameTag(t, reply), "Error")
	if !strings.Contains(string(reply), "Invalid message format") {
		t.Errorf("unexpected error frame: %s", reply)
	}

	// The session survives bad input.
	conn.send(t, `"RestRequest"`)
	testutil.AssertEqual(t, "still alive", frameTag(t, conn.recv(t)), "Error")

	conn.Close()
	if err := wait(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSessionBroadcastsBetweenPlayers(t *testing.T) {
	f := newSessionFixture()
	connA, _, waitA := f.connect(t, context.Background())
	connB, idB, waitB := f.connect(t, context.Background())

	connA.send(t, `{"RequestCharacterCreation":{"name":"Winston","occupation":""}}`)
	testutil.AssertEqual(t, "a reply", frameTag(t, connA.recv(t)), "GameStateUpdate")

	// B already hears about A before creating its own character.
	testutil.AssertEqual(t, "b hears a", frameTag(t, connB.recv(t)), "PlayerJoined")

	connB.send(t, `{"RequestCharacterCreation":{"name":"Julia","occupation":""}}`)
	testutil.AssertEqual(t, "b reply", frameTag(t, connB.recv(t)), "GameStateUpdate")

	// A hears about B's arrival, not its own snapshot.
	joined := connA.recv(t)
	testutil.AssertEqual(t, "joined tag", frameTag(t, joined), "PlayerJoined")
	var envelope struct {
		PlayerJoined struct {
			PlayerID uuid.UUID `json:"player_id"`
		} `json:"PlayerJoined"`
	}
	if err := json.Unmarshal(joined, &envelope); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "joined id", envelope.PlayerJoined.PlayerID, idB)

	// B leaving reaches A exactly once.
	connB.Close()
	if err := waitB(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "left tag", frameTag(t, connA.recv(t)), "PlayerLeft")

	connA.Close()
	if err := waitA(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSessionKickFlushesBacklog(t *testing.T) {
	f := newSessionFixture()
	conn, id, wait := f.connect(t, context.Background())

	frame, err := protocol.EncodeServerMessage(protocol.NarrativeUpdate("The Thought Police burst through your door."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Queue far more frames than the writer can have flushed, then
	// kick. The connection may only close after every one of them.
	const backlog = 100
	go func() {
		for i := 0; i < backlog; i++ {
			f.registry.Unicast(id, frame)
		}
		f.registry.Kick(id)
	}()

	for i := 0; i < backlog; i++ {
		testutil.AssertEqual(t, "tag", frameTag(t, conn.recv(t)), "NarrativeUpdate")
	}

	if err := wait(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "sessions", f.registry.Len(), 0)
}

func TestSessionContextCancelEndsSession(t *testing.T) {
	f := newSessionFixture()
	ctx, cancel := context.WithCancel(context.Background())
	_, _, wait := f.connect(t, ctx)

	cancel()
	if err := wait(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "sessions", f.registry.Len(), 0)
}
