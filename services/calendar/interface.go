package calendar

import (
	"context"
	"time"

	"meetsync/models"

	"golang.org/x/oauth2"
)

// Service is the calendar collaborator contract consumed by the agent core.
// Implementations own the wire protocol; the core only sees windows, busy
// intervals and created events.
type Service interface {
	// ListBusy returns the busy intervals overlapping [start, end) on the
	// given calendar.
	ListBusy(ctx context.Context, creds *oauth2.Token, calendarID string, start, end time.Time) ([]models.BusyInterval, error)

	// CreateEvent books [start, end) on the given calendar.
	CreateEvent(ctx context.Context, creds *oauth2.Token, calendarID string, start, end time.Time, title string) (*models.CalendarEvent, error)

	// DeleteEventNear removes the event nearest target within ±radius.
	// It returns false when no event was found in the search window.
	DeleteEventNear(ctx context.Context, creds *oauth2.Token, calendarID string, target time.Time, radius time.Duration) (bool, error)
}
