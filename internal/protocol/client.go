// Package protocol defines the two closed message families exchanged
// with clients and their JSON codec. The wire format is externally
// tagged: struct variants encode as a single-key object keyed by the
// variant name, unit variants encode as a bare string. Field and
// variant names are a compatibility contract with existing clients and
// must not change.
package protocol

import (
	"encoding/json"
	"fmt"
)

// ClientMessage is a message sent from a client to the server. The set
// of variants is closed; dispatch sites switch exhaustively.
type ClientMessage interface {
	isClientMessage()
}

type RequestCharacterCreation struct {
	Name       string `json:"name"`
	Occupation string `json:"occupation"`
}

type MoveRequest struct {
	TargetLocation string `json:"target_location"`
}

// FlyInput carries one frame of flight control input. Each channel is
// nominally in [-1, 1]; out-of-range values are tolerated and only
// scale the per-tick rotation.
type FlyInput struct {
	Pitch          float32 `json:"pitch"`
	Roll           float32 `json:"roll"`
	Yaw            float32 `json:"yaw"`
	ThrottleChange float32 `json:"throttle_change"`
}

type InteractRequest struct {
	NpcName         string `json:"npc_name"`
	InteractionType uint8  `json:"interaction_type"`
}

type JournalWriteRequest struct {
	Entry string `json:"entry"`
}

type SearchRequest struct{}
type WorkRequest struct{}
type RestRequest struct{}

type SearchForForbiddenTexts struct{}

type ReadForbiddenText struct {
	TextID string `json:"text_id"`
}

type HideForbiddenText struct {
	TextID      string `json:"text_id"`
	HidingPlace string `json:"hiding_place"`
}

type DestroyForbiddenText struct {
	TextID string `json:"text_id"`
}

type MemorizeForbiddenKnowledge struct {
	Topic        string `json:"topic"`
	TimeInvested uint8  `json:"time_invested"`
}

// SharingApproach selects how forbidden knowledge is passed on.
type SharingApproach string

const (
	ApproachSubtle      SharingApproach = "Subtle"
	ApproachDirect      SharingApproach = "Direct"
	ApproachMetaphoric  SharingApproach = "Metaphoric"
	ApproachQuestioning SharingApproach = "Questioning"
)

type ShareForbiddenKnowledge struct {
	TargetNpc      string          `json:"target_npc"`
	KnowledgeTopic string          `json:"knowledge_topic"`
	Approach       SharingApproach `json:"approach"`
}

type VoluntaryExchange struct {
	TargetNpc string `json:"target_npc"`
	Offer     string `json:"offer"`
	Request   string `json:"request"`
}

type DisableTelescreen struct {
	Method string `json:"method"`
}

func (RequestCharacterCreation) isClientMessage()   {}
func (MoveRequest) isClientMessage()                {}
func (FlyInput) isClientMessage()                   {}
func (InteractRequest) isClientMessage()            {}
func (JournalWriteRequest) isClientMessage()        {}
func (SearchRequest) isClientMessage()              {}
func (WorkRequest) isClientMessage()                {}
func (RestRequest) isClientMessage()                {}
func (SearchForForbiddenTexts) isClientMessage()    {}
func (ReadForbiddenText) isClientMessage()          {}
func (HideForbiddenText) isClientMessage()          {}
func (DestroyForbiddenText) isClientMessage()       {}
func (MemorizeForbiddenKnowledge) isClientMessage() {}
func (ShareForbiddenKnowledge) isClientMessage()    {}
func (VoluntaryExchange) isClientMessage()          {}
func (DisableTelescreen) isClientMessage()          {}

// DecodeClientMessage parses one inbound frame. Unparseable frames and
// unrecognized variants return an error; the caller answers with a
// sender-only Error message and discards the frame.
func DecodeClientMessage(data []byte) (ClientMessage, error) {
	// Unit variants arrive as a bare JSON string.
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		switch tag {
		case "SearchRequest":
			return SearchRequest{}, nil
		case "WorkRequest":
			return WorkRequest{}, nil
		case "RestRequest":
			return RestRequest{}, nil
		case "SearchForForbiddenTexts":
			return SearchForForbiddenTexts{}, nil
		default:
			return nil, fmt.Errorf("unknown message variant %q", tag)
		}
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("parsing frame: %w", err)
	}
	if len(envelope) != 1 {
		return nil, fmt.Errorf("expected exactly one variant tag, got %d", len(envelope))
	}

	for tag, payload := range envelope {
		msg, err := decodeTagged(tag, payload)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", tag, err)
		}
		return msg, nil
	}
	return nil, fmt.Errorf("empty frame")
}

func decodeTagged(tag string, payload json.RawMessage) (ClientMessage, error) {
	switch tag {
	case "RequestCharacterCreation":
		var m RequestCharacterCreation
		return m, json.Unmarshal(payload, &m)
	case "MoveRequest":
		var m MoveRequest
		return m, json.Unmarshal(payload, &m)
	case "FlyInput":
		var m FlyInput
		return m, json.Unmarshal(payload, &m)
	case "InteractRequest":
		var m InteractRequest
		return m, json.Unmarshal(payload, &m)
	case "JournalWriteRequest":
		var m JournalWriteRequest
		return m, json.Unmarshal(payload, &m)
	case "ReadForbiddenText":
		var m ReadForbiddenText
		return m, json.Unmarshal(payload, &m)
	case "HideForbiddenText":
		var m HideForbiddenText
		return m, json.Unmarshal(payload, &m)
	case "DestroyForbiddenText":
		var m DestroyForbiddenText
		return m, json.Unmarshal(payload, &m)
	case "MemorizeForbiddenKnowledge":
		var m MemorizeForbiddenKnowledge
		return m, json.Unmarshal(payload, &m)
	case "ShareForbiddenKnowledge":
		var m ShareForbiddenKnowledge
		return m, json.Unmarshal(payload, &m)
	case "VoluntaryExchange":
		var m VoluntaryExchange
		return m, json.Unmarshal(payload, &m)
	case "DisableTelescreen":
		var m DisableTelescreen
		return m, json.Unmarshal(payload, &m)
	default:
		return nil, fmt.Errorf("unknown message variant")
	}
}
