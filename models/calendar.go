package models

import "time"

// BusyInterval is one occupied stretch reported by the calendar backend.
type BusyInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// CalendarEvent is the collaborator's view of a created event.
type CalendarEvent struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	OrganizerEmail string    `json:"organizerEmail,omitempty"`
	Link           string    `json:"link,omitempty"`
}
