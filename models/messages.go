package models

import (
	"errors"
	"fmt"
)

// JoinRequest is the join_queue payload sent by a client.
type JoinRequest struct {
	Nickname     string `json:"nickname"`
	Gender       string `json:"gender"`
	GenderFilter string `json:"genderFilter"`
	DeviceID     string `json:"deviceId"`
}

// Validate checks required fields and enum values.
func (r JoinRequest) Validate() error {
	if r.Nickname == "" {
		return errors.New("nickname is required")
	}
	if r.Gender != GenderMale && r.Gender != GenderFemale {
		return fmt.Errorf("invalid gender: %q", r.Gender)
	}
	switch r.GenderFilter {
	case GenderAny, GenderMale, GenderFemale:
	default:
		return fmt.Errorf("invalid gender filter: %q", r.GenderFilter)
	}
	if r.Filtered() && r.DeviceID == "" {
		return errors.New("deviceId is required for filtered matching")
	}
	return nil
}

// Filtered reports whether this join counts against the daily filter quota.
func (r JoinRequest) Filtered() bool {
	return r.GenderFilter != GenderAny
}

// ChatMessage is the send_message payload sent by a client.
type ChatMessage struct {
	RoomID  string `json:"roomID"`
	Message string `json:"message"`
	Sender  string `json:"sender"`
}

// Validate checks required fields.
func (m ChatMessage) Validate() error {
	if m.RoomID == "" {
		return errors.New("roomID is required")
	}
	if m.Message == "" {
		return errors.New("message is required")
	}
	if m.Sender == "" {
		return errors.New("sender is required")
	}
	return nil
}

// IncomingPayload is the receive_message payload delivered to a client.
type IncomingPayload struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
	Time    string `json:"time,omitempty"`
}

// MatchPayload is the match_found payload delivered to both members of a new room.
type MatchPayload struct {
	RoomID string `json:"roomID"`
}
