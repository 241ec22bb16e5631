package models

import "time"

// Booking record actions.
const (
	RecordActionCreated = "created"
	RecordActionDeleted = "deleted"
)

// BookingRecord is the persisted log entry for a committed calendar action.
type BookingRecord struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	SessionID string    `bson:"sessionId" json:"sessionId"`
	Action    string    `bson:"action" json:"action"`
	Title     string    `bson:"title,omitempty" json:"title,omitempty"`
	Start     time.Time `bson:"start" json:"start"`
	End       time.Time `bson:"end,omitempty" json:"end,omitempty"`
	Organizer string    `bson:"organizer,omitempty" json:"organizer,omitempty"`
	Link      string    `bson:"link,omitempty" json:"link,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
