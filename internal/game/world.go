package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Location is a node in the narrative movement graph. Connections are
// directed; an edge does not have to be symmetric.
type Location struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Connections []string `json:"connections"`
	Safety      uint8    `json:"safety"` // 0-5, 5 is safest
}

func (l *Location) Validate() error {
	el := errors.NewErrorList()

	if l.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	if l.Safety > 5 {
		el.Add(fmt.Errorf("safety must be between 0 and 5"))
	}

	return el.Err()
}

// Npc is a static non-player character descriptor.
type Npc struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Trust       Trust  `json:"trust"` // base trust/betrayal bias
	Location    string `json:"location"`
}

func (n *Npc) Validate() error {
	el := errors.NewErrorList()

	if n.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	if n.Location == "" {
		el.Add(fmt.Errorf("location is required"))
	}

	return el.Err()
}

// TextLanguage is the language a forbidden text is written in.
type TextLanguage string

const (
	LanguageCzech   TextLanguage = "Czech"
	LanguageEnglish TextLanguage = "English"
)

// ForbiddenText is a fragment of contraband knowledge hidden somewhere
// in the world.
type ForbiddenText struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Content       string       `json:"content"`
	Language      TextLanguage `json:"language"`
	Difficulty    uint8        `json:"difficulty"`     // 1-10 to understand
	SuspicionRisk uint8        `json:"suspicion_risk"` // 1-10 if caught
}

func (t *ForbiddenText) Validate() error {
	el := errors.NewErrorList()

	if t.ID == "" {
		el.Add(fmt.Errorf("id is required"))
	}
	switch t.Language {
	case LanguageCzech, LanguageEnglish:
	default:
		el.Add(fmt.Errorf("unknown language %q", t.Language))
	}

	return el.Err()
}

// WorldState holds the location graph, NPC roster, and world-level
// flags. The graph and roster are immutable after initialization; the
// flags are mutated only by (currently unimplemented) daily event
// logic.
type WorldState struct {
	Locations map[string]*Location `json:"locations"`
	Npcs      map[string]*Npc      `json:"npcs"`

	CurrentDate         string `json:"current_date"`
	TwoMinutesHateToday bool   `json:"two_minutes_hate_today"`
	ChocolateRation     uint8  `json:"chocolate_ration"`
	CurrentEnemy        string `json:"current_enemy"`

	ForbiddenTexts map[string]*ForbiddenText `json:"forbidden_texts"`
	TextLocations  map[string][]string       `json:"text_locations"`
}

// NewWorldState assembles a world from externally loaded content. Used
// by the asset-driven configuration path; DefaultWorldState provides
// the built-in seed.
func NewWorldState(locations map[string]*Location, npcs map[string]*Npc, texts map[string]*ForbiddenText, placements map[string][]string) (*WorldState, error) {
	el := errors.NewErrorList()

	for name, loc := range locations {
		for _, conn := range loc.Connections {
			if _, ok := locations[conn]; !ok {
				el.Add(fmt.Errorf("location %q connects to unknown location %q", name, conn))
			}
		}
	}
	for name, npc := range npcs {
		if _, ok := locations[npc.Location]; !ok {
			el.Add(fmt.Errorf("npc %q lives in unknown location %q", name, npc.Location))
		}
	}
	for loc, ids := range placements {
		if _, ok := locations[loc]; !ok {
			el.Add(fmt.Errorf("texts placed in unknown location %q", loc))
		}
		for _, id := range ids {
			if _, ok := texts[id]; !ok {
				el.Add(fmt.Errorf("unknown forbidden text %q placed in %q", id, loc))
			}
		}
	}
	if _, ok := locations[HomeLocation]; !ok {
		el.Add(fmt.Errorf("world has no %q to spawn characters in", HomeLocation))
	}

	if err := el.Err(); err != nil {
		return nil, err
	}

	return &WorldState{
		Locations:           locations,
		Npcs:                npcs,
		CurrentDate:         "April 4, 1984",
		TwoMinutesHateToday: true,
		ChocolateRation:     30, // grams
		CurrentEnemy:        "Eurasia",
		ForbiddenTexts:      texts,
		TextLocations:       placements,
	}, nil
}

// DefaultWorldState seeds the built-in Airstrip One content.
func DefaultWorldState() *WorldState {
	locations := map[string]*Location{
		"Victory Mansions": {
			Name:        "Victory Mansions",
			Description: "Your dilapidated apartment building. The telescreen on the wall continuously broadcasts Party propaganda.",
			Connections: []string{"Ministry of Truth", "Victory Square"},
			Safety:      3,
		},
		"Ministry of Truth": {
			Name:        "Ministry of Truth",
			Description: "A massive pyramidal structure where historical documents are rewritten to match Party narratives.",
			Connections: []string{"Victory Mansions", "Victory Square", "Canteen"},
			Safety:      1,
		},
		"Canteen": {
			Name:        "Canteen",
			Description: "A gray cafeteria serving tasteless Victory meals and Victory Gin.",
			Connections: []string{"Ministry of Truth"},
			Safety:      2,
		},
		"Victory Square": {
			Name:        "Victory Square",
			Description: "The central square where public executions and rallies are held.",
			Connections: []string{"Victory Mansions", "Ministry of Truth", "Prole District", "Charrington's Shop"},
			Safety:      1,
		},
		"Prole District": {
			Name:        "Prole District",
			Description: "The rundown area where the proles (working class) live with less surveillance.",
			Connections: []string{"Victory Square", "Charrington's Shop"},
			Safety:      4,
		},
		"Charrington's Shop": {
			Name:        "Charrington's Shop",
			Description: "An antique shop run by an elderly man. It has a room upstairs without a telescreen.",
			Connections: []string{"Victory Square", "Prole District"},
			Safety:      3,
		},
		"Ministry of Love": {
			Name:        "Ministry of Love",
			Description: "The terrifying windowless building where enemies of the Party are taken. Room 101 is inside.",
			Connections: []string{}, // no escape
			Safety:      0,
		},
	}

	npcs := map[string]*Npc{
		"O'Brien": {
			Name:        "O'Brien",
			Description: "A high-ranking Inner Party member who seems to have rebellious tendencies.",
			Trust:       0, // will betray you
			Location:    "Ministry of Truth",
		},
		"Julia": {
			Name:        "Julia",
			Description: "A young woman who works in the Fiction Department of the Ministry of Truth.",
			Trust:       80,
			Location:    "Ministry of Truth",
		},
		"Charrington": {
			Name:        "Charrington",
			Description: "The seemingly friendly old man who runs the antique shop.",
			Trust:       -100, // Thought Police agent
			Location:    "Charrington's Shop",
		},
		"Parsons": {
			Name:        "Parsons",
			Description: "Your neighbor, an enthusiastic Party supporter whose children spy on adults.",
			Trust:       20,
			Location:    "Victory Mansions",
		},
		"Syme": {
			Name:        "Syme",
			Description: "A philologist working on the 11th edition of the Newspeak dictionary.",
			Trust:       50,
			Location:    "Canteen",
		},
		"Old Trader": {
			Name:        "Old Trader",
			Description: "An elderly prole who trades in black market goods and seems to remember life before the Party.",
			Trust:       70,
			Location:    "Prole District",
		},
	}

	texts := map[string]*ForbiddenText{
		"ankap_principles": {
			ID:            "ankap_principles",
			Title:         "Principy dobrovolnosti",
			Content:       "Anarchokapitalismus je založen na myšlence oboustranné dobrovolnosti: Nikdo by neměl být nucen a nikomu by nemělo být bráněno nabízet ostatním produkty své práce za libovolných podmínek...",
			Language:      LanguageCzech,
			Difficulty:    5,
			SuspicionRisk: 8,
		},
		"free_market": {
			ID:            "free_market",
			Title:         "Volný trh a svoboda jednotlivce",
			Content:       "Chceme jen svobodně žít v klidu a míru; chceme milovat, bavit se, pracovat, rozhodovat o sobě. Nechceme a nepotřebujeme nikoho, kdo si bude násilím brát plody naší práce...",
			Language:      LanguageCzech,
			Difficulty:    6,
			SuspicionRisk: 9,
		},
		"state_myth": {
			ID:            "state_myth",
			Title:         "Mýtus nezbytnosti státu",
			Content:       "To je sice hezká pohádka, ale bez státu by naše společnost prostě nefungovala. Tak zněla má reakce, když jsem o anarchokapitalismu slyšel poprvé...",
			Language:      LanguageCzech,
			Difficulty:    7,
			SuspicionRisk: 10,
		},
		"freedom_eng": {
			ID:            "freedom_eng",
			Title:         "The Path to Freedom",
			Content:       "We want only to live freely in peace; we want to love, have fun, work, and make our own decisions. We don't want or need anyone who would forcibly take the fruits of our labor...",
			Language:      LanguageEnglish,
			Difficulty:    3,
			SuspicionRisk: 7,
		},
	}

	placements := map[string][]string{
		"Charrington's Shop": {"ankap_principles", "freedom_eng"},
		"Prole District":     {"free_market"},
		"Ministry of Truth":  {"state_myth"},
	}

	w, err := NewWorldState(locations, npcs, texts, placements)
	if err != nil {
		// The built-in seed is validated by tests; a failure here is a
		// programming error.
		panic(err)
	}
	return w
}
