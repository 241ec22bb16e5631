package agent

import (
	"context"
	"errors"
	"time"

	"meetsync/models"
	"meetsync/services/resolver"

	"golang.org/x/oauth2"
)

// fakeResolver resolves only the exact inputs it was seeded with.
type fakeResolver struct {
	fixed    map[string]time.Time
	mentions map[string][]resolver.Mention
}

func (f *fakeResolver) Resolve(text string, ref time.Time) (time.Time, bool) {
	at, ok := f.fixed[text]
	return at, ok
}

func (f *fakeResolver) Mentions(text string, ref time.Time) []resolver.Mention {
	return f.mentions[text]
}

// fakeCalendar records calls and serves canned responses.
type fakeCalendar struct {
	busy      []models.BusyInterval
	busyErr   error
	created   *models.CalendarEvent
	createErr error
	found     bool
	deleteErr error

	listCalls   int
	createCalls int
	deleteCalls int

	lastStart  time.Time
	lastEnd    time.Time
	lastTitle  string
	lastTarget time.Time
	lastRadius time.Duration
}

func (f *fakeCalendar) ListBusy(ctx context.Context, creds *oauth2.Token, calendarID string, start, end time.Time) ([]models.BusyInterval, error) {
	f.listCalls++
	f.lastStart, f.lastEnd = start, end
	return f.busy, f.busyErr
}

func (f *fakeCalendar) CreateEvent(ctx context.Context, creds *oauth2.Token, calendarID string, start, end time.Time, title string) (*models.CalendarEvent, error) {
	f.createCalls++
	f.lastStart, f.lastEnd, f.lastTitle = start, end, title
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.created != nil {
		return f.created, nil
	}
	return &models.CalendarEvent{Title: title, Start: start, End: end}, nil
}

func (f *fakeCalendar) DeleteEventNear(ctx context.Context, creds *oauth2.Token, calendarID string, target time.Time, radius time.Duration) (bool, error) {
	f.deleteCalls++
	f.lastTarget, f.lastRadius = target, radius
	return f.found, f.deleteErr
}

// fakeRecords captures appended booking records.
type fakeRecords struct {
	created   []models.BookingRecord
	createErr error
}

func (f *fakeRecords) Create(ctx context.Context, record models.BookingRecord) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, record)
	return record.ID, nil
}

func (f *fakeRecords) GetBySessionID(ctx context.Context, sessionID string) ([]models.BookingRecord, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRecords) GetRecent(ctx context.Context, limit int64) ([]models.BookingRecord, error) {
	return nil, errors.New("not implemented")
}

// testBase is a Tuesday morning; weekday fixtures below are relative to it.
var testBase = time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)

func newTestService(fr *fakeResolver, fc *fakeCalendar) *DefaultAgentService {
	if fr == nil {
		fr = &fakeResolver{}
	}
	if fc == nil {
		fc = &fakeCalendar{}
	}
	return &DefaultAgentService{
		Calendar:   fc,
		Resolver:   fr,
		CalendarID: "primary",
		Location:   time.UTC,
		Clock:      func() time.Time { return testBase },
	}
}

func newTurn(input string) models.DialogueState {
	return models.NewDialogueState("sess-1", input, &oauth2.Token{AccessToken: "tok"})
}

func timePtr(t time.Time) *time.Time {
	return &t
}
