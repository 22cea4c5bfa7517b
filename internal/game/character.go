package game

import "github.com/google/uuid"

// CatStatus describes what the cat companion is currently doing.
type CatStatus string

const (
	CatFollowing CatStatus = "Following"
	CatWaiting   CatStatus = "Waiting"
	CatInjured   CatStatus = "Injured"
	CatLost      CatStatus = "Lost"
)

// CatState is the companion travelling with a character.
type CatState struct {
	Name   string    `json:"name"`
	Health Stat      `json:"health"`
	Status CatStatus `json:"status"`
}

// Character is a player's in-world avatar and stat sheet. It is owned
// exclusively by GameState.Players and must only be touched under the
// state lock.
type Character struct {
	PlayerID   uuid.UUID `json:"player_id"`
	Name       string    `json:"name"`
	Occupation string    `json:"occupation"`

	Loyalty      Stat `json:"loyalty"`
	Suspicion    Stat `json:"suspicion"`
	Thoughtcrime Stat `json:"thoughtcrime"`
	Health       Stat `json:"health"`

	Inventory      []string         `json:"inventory"`
	Relationships  map[string]Trust `json:"relationships"`
	Location       string           `json:"location"`
	JournalEntries []string         `json:"journal_entries"`
	TasksCompleted uint32           `json:"tasks_completed"`
	RebellionScore Stat             `json:"rebellion_score"`

	AnarchoKnowledge     map[string]Stat `json:"anarcho_knowledge"`
	EconomicFreedomScore Stat            `json:"economic_freedom_score"`
	VoluntaryActions     uint32          `json:"voluntary_actions"`

	FlightState

	CatCompanion      *CatState `json:"cat_companion"`
	KocourkaQuestOpen bool      `json:"kocourka_quest_active"`
	KocourkaQuestLost bool      `json:"kocourka_quest_failed"`
}

// HomeLocation is where every new character wakes up.
const HomeLocation = "Victory Mansions"

// knowledgeTopics are the forbidden concepts a character can come to
// understand; every character starts with zero understanding of each.
var knowledgeTopics = []string{
	"Principles of Non-Aggression",
	"Voluntary Exchange",
	"Free Market Economy",
	"Private Property Rights",
	"Decentralization",
}

// occupationDelta is a fixed stat adjustment applied once at creation.
type occupationDelta struct {
	loyaltyUp      uint8
	loyaltyDown    uint8
	suspicionDown  uint8
	thoughtcrimeUp uint8
}

// occupationDeltas is the closed table of occupation adjustments.
// Unrecognized occupations get no adjustment.
var occupationDeltas = map[string]occupationDelta{
	"Records Department Worker": {loyaltyDown: 5, thoughtcrimeUp: 10},
	"Junior Spy Instructor":     {loyaltyUp: 15, suspicionDown: 10},
	"Fiction Department Writer": {thoughtcrimeUp: 15},
}

// NewCharacter builds a character with default stats, the occupation's
// fixed adjustments applied, and the cat companion already following.
// Construction cannot fail.
func NewCharacter(playerID uuid.UUID, name, occupation string) *Character {
	c := &Character{
		PlayerID:   playerID,
		Name:       name,
		Occupation: occupation,

		Loyalty: 50,
		Health:  StatMax,

		Inventory:      []string{},
		Relationships:  map[string]Trust{},
		Location:       HomeLocation,
		JournalEntries: []string{},

		AnarchoKnowledge: map[string]Stat{},

		FlightState: NewFlightState(),

		CatCompanion: &CatState{
			Name:   "Kocourek",
			Health: StatMax,
			Status: CatFollowing,
		},
		KocourkaQuestOpen: true,
	}

	for _, topic := range knowledgeTopics {
		c.AnarchoKnowledge[topic] = 0
	}

	if d, ok := occupationDeltas[occupation]; ok {
		c.Loyalty = c.Loyalty.Add(d.loyaltyUp).Sub(d.loyaltyDown)
		c.Suspicion = c.Suspicion.Sub(d.suspicionDown)
		c.Thoughtcrime = c.Thoughtcrime.Add(d.thoughtcrimeUp)
	}

	return c
}
