package command

import (
	"fmt"
	"time"

	"github.com/airstripone/oceania/internal/driver"
	"github.com/airstripone/oceania/internal/game"
	"github.com/airstripone/oceania/internal/listener"
	"github.com/airstripone/oceania/internal/session"
	"github.com/airstripone/oceania/internal/sim"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Assemble the world and wrap it in the shared state lock
	world, err := cfg.World.BuildWorld()
	if err != nil {
		return nil, fmt.Errorf("building world: %w", err)
	}
	state := game.NewState(game.NewGameState(world))

	// Message fabric for outbound delivery
	bus, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	registry := session.NewRegistry(bus)
	sessions := session.NewManager(registry, state)
	cm := listener.NewConnectionManager(sessions)

	// Create listeners
	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i, l := range cfg.Listeners {
		lst, err := l.BuildListener(cm)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("listener-%d", i)] = lst
	}

	// Pace the simulation at the configured tick rate
	var opts []driver.DriverOpt
	if cfg.TickInterval != "" {
		d, err := time.ParseDuration(cfg.TickInterval)
		if err != nil {
			return nil, fmt.Errorf("parsing tick_interval: %w", err)
		}
		opts = append(opts, driver.WithTickLength(d))
	}
	drv := driver.NewDriver([]driver.Manager{
		sim.NewSimulator(state, registry),
	}, opts...)

	return service.WorkerList{
		"nats":      bus,
		"driver":    drv,
		"listeners": &listeners,
	}, nil
}
