package agent

import (
	"context"
	"fmt"
	"time"

	"meetsync/models"
	"meetsync/utils"

	"go.uber.org/zap"
)

// deleteSearchRadius bounds the search for the event to remove when the user
// gave an approximate time.
const deleteSearchRadius = 30 * time.Minute

// confirmationTimeFormat renders "Wednesday, September 02, 2026 at 03:00 PM".
const confirmationTimeFormat = "Monday, January 02, 2006 at 03:04 PM"

// Commit finalizes a fully resolved turn: it deletes the targeted event when
// a deletion is in flight, books the window when it is known to be available,
// and otherwise passes the state through unchanged.
func (s *DefaultAgentService) Commit(ctx context.Context, state models.DialogueState) (models.DialogueState, error) {
	if state.Phase == models.PhaseDeleting {
		return s.commitDelete(ctx, state)
	}
	if state.AwaitingInput() || !state.Available {
		return state, nil
	}
	return s.commitCreate(ctx, state)
}

func (s *DefaultAgentService) commitDelete(ctx context.Context, state models.DialogueState) (models.DialogueState, error) {
	// The delete target is still unknown; keep asking.
	if state.WindowStart == nil {
		return state, nil
	}

	found, err := s.Calendar.DeleteEventNear(ctx, state.Creds, s.CalendarID, *state.WindowStart, deleteSearchRadius)
	if err != nil {
		return state, fmt.Errorf("failed to delete event: %w", err)
	}
	if !found {
		// Success is still reported below; the collaborator's "nothing found"
		// outcome is only made visible in the logs.
		utils.GetLogger().Warn("no event found near requested deletion time",
			zap.String("sessionID", state.SessionID),
			zap.Time("target", *state.WindowStart))
	}

	s.appendRecord(ctx, models.BookingRecord{
		SessionID: state.SessionID,
		Action:    models.RecordActionDeleted,
		Start:     *state.WindowStart,
	})

	state.Message = "🗑️ Meeting deleted successfully!"
	state.Phase = models.PhaseIdle
	return state, nil
}

func (s *DefaultAgentService) commitCreate(ctx context.Context, state models.DialogueState) (models.DialogueState, error) {
	event, err := s.Calendar.CreateEvent(ctx, state.Creds, s.CalendarID, *state.WindowStart, *state.WindowEnd, s.defaultTitle())
	if err != nil {
		return state, fmt.Errorf("failed to create event: %w", err)
	}

	state.Confirmation = &models.BookingConfirmation{
		Title:     event.Title,
		Start:     state.WindowStart.Format(confirmationTimeFormat),
		End:       state.WindowEnd.Format(confirmationTimeFormat),
		Organizer: event.OrganizerEmail,
		Link:      event.Link,
	}

	s.appendRecord(ctx, models.BookingRecord{
		SessionID: state.SessionID,
		Action:    models.RecordActionCreated,
		Title:     event.Title,
		Start:     *state.WindowStart,
		End:       *state.WindowEnd,
		Organizer: event.OrganizerEmail,
		Link:      event.Link,
	})

	utils.GetLogger().Info("booking committed",
		zap.String("sessionID", state.SessionID),
		zap.Time("start", *state.WindowStart),
		zap.Time("end", *state.WindowEnd))
	return state, nil
}

// appendRecord logs the committed action to the booking record store. The
// record log is best-effort: a storage failure never blocks the turn.
func (s *DefaultAgentService) appendRecord(ctx context.Context, record models.BookingRecord) {
	if s.RecordsRepo == nil {
		return
	}
	if _, err := s.RecordsRepo.Create(ctx, record); err != nil {
		utils.GetLogger().Warn("failed to append booking record",
			zap.String("sessionID", record.SessionID),
			zap.Error(err))
	}
}
