package agent

import (
	"context"
	"fmt"

	"meetsync/models"
	"meetsync/utils"

	"go.uber.org/zap"
)

// CheckAvailability queries the calendar for conflicts within the resolved
// window. It passes the state through untouched while more input is pending
// or a deletion is in flight; availability is meaningless in either case.
// Collaborator failures escalate to the caller.
func (s *DefaultAgentService) CheckAvailability(ctx context.Context, state models.DialogueState) (models.DialogueState, error) {
	if state.Phase == models.PhaseDeleting || state.AwaitingInput() {
		return state, nil
	}
	if !state.HasWindow() {
		state.Message = "⛔ Could not determine a valid time."
		return state, nil
	}

	busy, err := s.Calendar.ListBusy(ctx, state.Creds, s.CalendarID, *state.WindowStart, *state.WindowEnd)
	if err != nil {
		return state, fmt.Errorf("availability check failed: %w", err)
	}

	state.Available = len(busy) == 0
	if state.Available {
		state.Message = "✅ That time is available!"
	} else {
		state.Message = "⛔ That slot is busy."
	}

	utils.GetLogger().Debug("availability checked",
		zap.String("sessionID", state.SessionID),
		zap.Int("busyIntervals", len(busy)),
		zap.Bool("available", state.Available))
	return state, nil
}
