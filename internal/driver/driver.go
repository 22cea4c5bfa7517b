// Package driver paces the simulation managers at a fixed tick rate.
package driver

import (
	"context"
	"log/slog"
	"time"
)

// DefaultTickLength matches the 30 Hz simulation frame.
const DefaultTickLength = time.Second / 30

// Manager is anything advanced once per tick.
type Manager interface {
	Tick(context.Context) error
}

type Driver struct {
	tickLength time.Duration
	managers   []Manager
}

func NewDriver(managers []Manager, opts ...DriverOpt) *Driver {
	d := &Driver{
		tickLength: DefaultTickLength,
		managers:   managers,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Start loops until the context is canceled. Each iteration runs
// exactly one tick, then sleeps whatever remains of the tick budget.
// An overrunning tick is logged and the next one starts immediately;
// missed frames are never coalesced or caught up.
func (d *Driver) Start(ctx context.Context) error {
	for {
		start := time.Now()

		if err := d.Tick(ctx); err != nil {
			return err
		}

		elapsed := time.Since(start)
		remaining := d.tickLength - elapsed
		if remaining <= 0 {
			slog.Warn("tick overran budget", "elapsed", elapsed, "budget", d.tickLength)
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			continue
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(remaining):
		}
	}
}

// Tick advances all managers once, in registration order.
func (d *Driver) Tick(ctx context.Context) error {
	for _, m := range d.managers {
		if err := m.Tick(ctx); err != nil {
			return err
		}
	}
	return nil
}
