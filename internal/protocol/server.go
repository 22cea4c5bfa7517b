package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/airstripone/oceania/internal/game"
	"github.com/google/uuid"
)

// ServerMessage is a message sent from the server to a client.
type ServerMessage interface {
	isServerMessage()
}

type Welcome struct {
	PlayerID         uuid.UUID       `json:"player_id"`
	InitialGameState *game.GameState `json:"initial_game_state"`
}

type PlayerJoined struct {
	PlayerID  uuid.UUID       `json:"player_id"`
	Character *game.Character `json:"character"`
}

type PlayerLeft struct {
	PlayerID uuid.UUID `json:"player_id"`
}

// GameStateUpdate carries a full snapshot of the game state.
type GameStateUpdate struct {
	State *game.GameState
}

// NarrativeUpdate is a free-text line describing events to one player.
type NarrativeUpdate string

// ErrorMessage is a structured error; it encodes under the "Error" tag.
type ErrorMessage string

type ForbiddenTextFound struct {
	Texts []string `json:"texts"`
}

type ForbiddenTextContent struct {
	Text                  *game.ForbiddenText `json:"text"`
	UnderstandingIncrease uint8               `json:"understanding_increase"`
	SuspicionIncrease     uint8               `json:"suspicion_increase"`
}

type KnowledgeShared struct {
	Success        bool   `json:"success"`
	TargetReaction string `json:"target_reaction"`
	Consequence    string `json:"consequence"`
}

type TeleScreenWarning struct {
	Message  string `json:"message"`
	Severity uint8  `json:"severity"` // 1-5
}

type VoluntaryExchangeResult struct {
	Success       bool    `json:"success"`
	ResultMessage string  `json:"result_message"`
	GainedItem    *string `json:"gained_item"`
	LostItem      *string `json:"lost_item"`
}

func (Welcome) isServerMessage()                 {}
func (PlayerJoined) isServerMessage()            {}
func (PlayerLeft) isServerMessage()              {}
func (GameStateUpdate) isServerMessage()         {}
func (NarrativeUpdate) isServerMessage()         {}
func (ErrorMessage) isServerMessage()            {}
func (ForbiddenTextFound) isServerMessage()      {}
func (ForbiddenTextContent) isServerMessage()    {}
func (KnowledgeShared) isServerMessage()         {}
func (TeleScreenWarning) isServerMessage()       {}
func (VoluntaryExchangeResult) isServerMessage() {}

// EncodeServerMessage serializes one outbound message to its wire
// form. Serialization failures are defensive: callers log and drop the
// message rather than crash.
func EncodeServerMessage(m ServerMessage) ([]byte, error) {
	switch v := m.(type) {
	case Welcome:
		return json.Marshal(map[string]Welcome{"Welcome": v})
	case PlayerJoined:
		return json.Marshal(map[string]PlayerJoined{"PlayerJoined": v})
	case PlayerLeft:
		return json.Marshal(map[string]PlayerLeft{"PlayerLeft": v})
	case GameStateUpdate:
		return json.Marshal(map[string]*game.GameState{"GameStateUpdate": v.State})
	case NarrativeUpdate:
		return json.Marshal(map[string]string{"NarrativeUpdate": string(v)})
	case ErrorMessage:
		return json.Marshal(map[string]string{"Error": string(v)})
	case ForbiddenTextFound:
		return json.Marshal(map[string]ForbiddenTextFound{"ForbiddenTextFound": v})
	case ForbiddenTextContent:
		return json.Marshal(map[string]ForbiddenTextContent{"ForbiddenTextContent": v})
	case KnowledgeShared:
		return json.Marshal(map[string]KnowledgeShared{"KnowledgeShared": v})
	case TeleScreenWarning:
		return json.Marshal(map[string]TeleScreenWarning{"TeleScreenWarning": v})
	case VoluntaryExchangeResult:
		return json.Marshal(map[string]VoluntaryExchangeResult{"VoluntaryExchangeResult": v})
	default:
		return nil, fmt.Errorf("unknown server message type %T", m)
	}
}
