package models

import (
	"time"

	"golang.org/x/oauth2"
)

// Phase identifies which interpretation governs the next turn's input.
// Exactly one phase is in effect at a time; the extractor's rule order decides
// transitions between them.
type Phase string

const (
	PhaseIdle         Phase = "idle"
	PhaseAwaitingTime Phase = "awaiting_time"
	PhaseAwaitingDate Phase = "awaiting_date"
	PhaseDeleting     Phase = "deleting"
)

// HourRange carries pending hour-of-day bounds captured from a
// "between X-Y am/pm next week" utterance. Only meaningful while the phase is
// PhaseAwaitingDate; it is consumed in the same transition that resolves the
// full window.
type HourRange struct {
	StartHour int `json:"startHour"`
	EndHour   int `json:"endHour"`
}

// DialogueState is the session record threaded through every pipeline stage.
// One instance exists per inbound message; the transport rehydrates it from
// the previous turn's output, so the agent itself never retains state between
// calls.
type DialogueState struct {
	SessionID string `json:"sessionID"`
	Input     string `json:"input"`

	// Creds is the caller's Google OAuth token. It is passed through to the
	// calendar collaborator and never persisted with the session.
	Creds *oauth2.Token `json:"-"`

	WindowStart     *time.Time `json:"windowStart,omitempty"`
	WindowEnd       *time.Time `json:"windowEnd,omitempty"`
	DurationMinutes int        `json:"durationMinutes"`

	Available    bool                 `json:"available"`
	Message      string               `json:"message,omitempty"`
	Confirmation *BookingConfirmation `json:"confirmation,omitempty"`

	Phase Phase      `json:"phase"`
	Range *HourRange `json:"range,omitempty"`
}

// NewDialogueState seeds a state for one turn.
func NewDialogueState(sessionID, input string, creds *oauth2.Token) DialogueState {
	return DialogueState{
		SessionID:       sessionID,
		Input:           input,
		Creds:           creds,
		DurationMinutes: 30,
		Phase:           PhaseIdle,
	}
}

// AwaitingInput reports whether extraction is incomplete and the next turn's
// input should fill a missing slot.
func (s DialogueState) AwaitingInput() bool {
	return s.Phase == PhaseAwaitingTime || s.Phase == PhaseAwaitingDate
}

// HasWindow reports whether both endpoints of the booking window are resolved.
func (s DialogueState) HasWindow() bool {
	return s.WindowStart != nil && s.WindowEnd != nil
}
