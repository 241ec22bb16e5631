package agent

import (
	"context"
	"time"

	recordsRepo "meetsync/database/repository/records"
	"meetsync/models"
	"meetsync/services/calendar"
	"meetsync/services/resolver"
)

// AgentService runs one pipeline pass per inbound user message.
type AgentService interface {
	RunTurn(ctx context.Context, state models.DialogueState) (models.DialogueState, error)
}

// DefaultAgentService implements AgentService. It holds no per-session state;
// everything a turn needs rides on the DialogueState.
type DefaultAgentService struct {
	Calendar calendar.Service
	Resolver resolver.DateTimeResolver
	// RecordsRepo receives a best-effort log entry per committed action.
	// Nil disables the log.
	RecordsRepo recordsRepo.BookingRecordRepository

	CalendarID   string
	DefaultTitle string
	Location     *time.Location

	// Clock overrides the wall clock in tests.
	Clock func() time.Time
}

func (s *DefaultAgentService) location() *time.Location {
	if s.Location != nil {
		return s.Location
	}
	return time.Local
}

func (s *DefaultAgentService) now() time.Time {
	if s.Clock != nil {
		return s.Clock().In(s.location())
	}
	return time.Now().In(s.location())
}

func (s *DefaultAgentService) defaultTitle() string {
	if s.DefaultTitle != "" {
		return s.DefaultTitle
	}
	return "Meeting"
}
