// File: services/calendar/google.go
package calendar

import (
	"context"
	"fmt"
	"time"

	"meetsync/models"

	"golang.org/x/oauth2"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleCalendarService implements Service against the Google Calendar API.
type GoogleCalendarService struct {
	OAuth    *oauth2.Config
	Timezone string
}

// serviceFor builds an authenticated API client for the caller's token.
func (s *GoogleCalendarService) serviceFor(ctx context.Context, token *oauth2.Token) (*gcal.Service, error) {
	if token == nil {
		return nil, fmt.Errorf("credentials are required")
	}
	client := s.OAuth.Client(ctx, token)
	svc, err := gcal.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return svc, nil
}

func (s *GoogleCalendarService) ListBusy(ctx context.Context, creds *oauth2.Token, calendarID string, start, end time.Time) ([]models.BusyInterval, error) {
	svc, err := s.serviceFor(ctx, creds)
	if err != nil {
		return nil, err
	}

	req := &gcal.FreeBusyRequest{
		TimeMin: start.Format(time.RFC3339),
		TimeMax: end.Format(time.RFC3339),
		Items:   []*gcal.FreeBusyRequestItem{{Id: calendarID}},
	}
	resp, err := svc.Freebusy.Query(req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("freebusy query failed: %w", err)
	}

	cal, ok := resp.Calendars[calendarID]
	if !ok {
		return nil, fmt.Errorf("calendar %s missing from freebusy response", calendarID)
	}

	busy := make([]models.BusyInterval, 0, len(cal.Busy))
	for _, period := range cal.Busy {
		from, err := time.Parse(time.RFC3339, period.Start)
		if err != nil {
			return nil, fmt.Errorf("failed to parse busy interval start %q: %w", period.Start, err)
		}
		to, err := time.Parse(time.RFC3339, period.End)
		if err != nil {
			return nil, fmt.Errorf("failed to parse busy interval end %q: %w", period.End, err)
		}
		busy = append(busy, models.BusyInterval{Start: from, End: to})
	}
	return busy, nil
}

func (s *GoogleCalendarService) CreateEvent(ctx context.Context, creds *oauth2.Token, calendarID string, start, end time.Time, title string) (*models.CalendarEvent, error) {
	svc, err := s.serviceFor(ctx, creds)
	if err != nil {
		return nil, err
	}

	event := &gcal.Event{
		Summary: title,
		Start:   &gcal.EventDateTime{DateTime: start.Format(time.RFC3339), TimeZone: s.Timezone},
		End:     &gcal.EventDateTime{DateTime: end.Format(time.RFC3339), TimeZone: s.Timezone},
	}
	created, err := svc.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to insert event: %w", err)
	}

	result := &models.CalendarEvent{
		ID:    created.Id,
		Title: created.Summary,
		Start: start,
		End:   end,
		Link:  created.HtmlLink,
	}
	if created.Organizer != nil {
		result.OrganizerEmail = created.Organizer.Email
	}
	return result, nil
}

func (s *GoogleCalendarService) DeleteEventNear(ctx context.Context, creds *oauth2.Token, calendarID string, target time.Time, radius time.Duration) (bool, error) {
	svc, err := s.serviceFor(ctx, creds)
	if err != nil {
		return false, err
	}

	resp, err := svc.Events.List(calendarID).
		TimeMin(target.Add(-radius).Format(time.RFC3339)).
		TimeMax(target.Add(radius).Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return false, fmt.Errorf("failed to list events around %s: %w", target.Format(time.RFC3339), err)
	}
	if len(resp.Items) == 0 {
		return false, nil
	}

	// Delete the first event found in the window.
	if err := svc.Events.Delete(calendarID, resp.Items[0].Id).Context(ctx).Do(); err != nil {
		return false, fmt.Errorf("failed to delete event %s: %w", resp.Items[0].Id, err)
	}
	return true, nil
}
