package driver

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pixil98/go-testutil"
)

type countingManager struct {
	ticks atomic.Int64
	err   error
}

func (m *countingManager) Tick(context.Context) error {
	m.ticks.Add(1)
	return m.err
}

func TestDriverTick(t *testing.T) {
	a := &countingManager{}
	b := &countingManager{}
	d := NewDriver([]Manager{a, b})

	if err := d.Tick(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "a ticks", a.ticks.Load(), int64(1))
	testutil.AssertEqual(t, "b ticks", b.ticks.Load(), int64(1))
}

func TestDriverTickError(t *testing.T) {
	failing := &countingManager{err: fmt.Errorf("boom")}
	after := &countingManager{}
	d := NewDriver([]Manager{failing, after})

	if err := d.Tick(context.Background()); err == nil {
		t.Error("expected error")
	}
	testutil.AssertEqual(t, "later manager skipped", after.ticks.Load(), int64(0))
}

func TestDriverStartRunsUntilCanceled(t *testing.T) {
	m := &countingManager{}
	d := NewDriver([]Manager{m}, WithTickLength(time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- d.Start(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("driver did not stop after cancel")
	}

	if m.ticks.Load() == 0 {
		t.Error("expected at least one tick")
	}
}

func TestDriverStartPropagatesError(t *testing.T) {
	m := &countingManager{err: fmt.Errorf("boom")}
	d := NewDriver([]Manager{m}, WithTickLength(time.Millisecond))

	err := d.Start(context.Background())
	if err == nil {
		t.Error("expected error")
	}
	testutil.AssertEqual(t, "single tick", m.ticks.Load(), int64(1))
}
