package command

import (
	"fmt"
	"os"

	"github.com/airstripone/oceania/internal/game"
	"github.com/airstripone/oceania/internal/storage"
	"github.com/pixil98/go-errors"
)

// WorldConfig selects the world content. With no paths configured the
// built-in Airstrip One seed is used; otherwise locations are required
// and the other asset kinds are optional.
type WorldConfig struct {
	Locations  AssetConfig[*game.Location]      `json:"locations"`
	Npcs       AssetConfig[*game.Npc]           `json:"npcs"`
	Texts      AssetConfig[*game.ForbiddenText] `json:"texts"`
	Placements AssetConfig[*Placement]          `json:"placements"`
}

func (c *WorldConfig) enabled() bool {
	return c.Locations.Path != "" || c.Npcs.Path != "" || c.Texts.Path != "" || c.Placements.Path != ""
}

func (c *WorldConfig) validate() error {
	if !c.enabled() {
		return nil
	}

	el := errors.NewErrorList()

	if c.Locations.Path == "" {
		el.Add(fmt.Errorf("locations: path is required when world content is configured"))
	} else {
		el.Add(c.Locations.Validate("locations"))
	}
	if c.Npcs.Path != "" {
		el.Add(c.Npcs.Validate("npcs"))
	}
	if c.Texts.Path != "" {
		el.Add(c.Texts.Validate("texts"))
	}
	if c.Placements.Path != "" {
		el.Add(c.Placements.Validate("placements"))
	}

	return el.Err()
}

// BuildWorld assembles the world from asset files, or falls back to
// the built-in seed. Asset maps are keyed by the content's own names,
// not asset identifiers, because location and NPC names carry spaces
// the identifier syntax disallows.
func (c *WorldConfig) BuildWorld() (*game.WorldState, error) {
	if !c.enabled() {
		return game.DefaultWorldState(), nil
	}

	locStore, err := c.Locations.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating location store: %w", err)
	}
	locations := map[string]*game.Location{}
	for _, l := range locStore.GetAll() {
		if _, dup := locations[l.Name]; dup {
			return nil, fmt.Errorf("duplicate location name %q", l.Name)
		}
		locations[l.Name] = l
	}

	npcs := map[string]*game.Npc{}
	if c.Npcs.Path != "" {
		npcStore, err := c.Npcs.BuildFileStore()
		if err != nil {
			return nil, fmt.Errorf("creating npc store: %w", err)
		}
		for _, n := range npcStore.GetAll() {
			if _, dup := npcs[n.Name]; dup {
				return nil, fmt.Errorf("duplicate npc name %q", n.Name)
			}
			npcs[n.Name] = n
		}
	}

	texts := map[string]*game.ForbiddenText{}
	if c.Texts.Path != "" {
		textStore, err := c.Texts.BuildFileStore()
		if err != nil {
			return nil, fmt.Errorf("creating text store: %w", err)
		}
		for _, t := range textStore.GetAll() {
			texts[t.ID] = t
		}
	}

	placements := map[string][]string{}
	if c.Placements.Path != "" {
		placementStore, err := c.Placements.BuildFileStore()
		if err != nil {
			return nil, fmt.Errorf("creating placement store: %w", err)
		}
		for _, p := range placementStore.GetAll() {
			placements[p.Location] = append(placements[p.Location], p.TextIds...)
		}
	}

	return game.NewWorldState(locations, npcs, texts, placements)
}

// Placement hides forbidden texts in a location. Its own asset kind
// because location names are not valid asset identifiers.
type Placement struct {
	Location string   `json:"location"`
	TextIds  []string `json:"text_ids"`
}

func (p *Placement) Validate() error {
	el := errors.NewErrorList()

	if p.Location == "" {
		el.Add(fmt.Errorf("location is required"))
	}
	if len(p.TextIds) == 0 {
		el.Add(fmt.Errorf("text_ids must not be empty"))
	}

	return el.Err()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
