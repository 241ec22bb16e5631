package agent

import (
	"context"
	"testing"
	"time"

	"meetsync/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTurnRangeBookingAcrossTwoTurns(t *testing.T) {
	wednesday := time.Date(2026, time.September, 9, 8, 0, 0, 0, time.UTC)
	fc := &fakeCalendar{}
	svc := newTestService(&fakeResolver{fixed: map[string]time.Time{"wednesday": wednesday}}, fc)

	// Turn 1: the range utterance only collects the hour bounds.
	first, err := svc.RunTurn(context.Background(), newTurn("between 3-5pm next week"))
	require.NoError(t, err)
	assert.Equal(t, models.PhaseAwaitingDate, first.Phase)
	assert.Zero(t, fc.listCalls)
	assert.Zero(t, fc.createCalls)

	// Turn 2: the day follow-up resolves the window; the same pass checks
	// availability and commits.
	first.Input = "wednesday"
	second, err := svc.RunTurn(context.Background(), first)
	require.NoError(t, err)

	assert.Equal(t, models.PhaseIdle, second.Phase)
	assert.True(t, second.Available)
	require.NotNil(t, second.Confirmation)
	assert.Equal(t, "Wednesday, September 09, 2026 at 03:00 PM", second.Confirmation.Start)
	assert.Equal(t, "Wednesday, September 09, 2026 at 05:00 PM", second.Confirmation.End)
	assert.Equal(t, 1, fc.listCalls)
	assert.Equal(t, 1, fc.createCalls)
}

func TestRunTurnBusySlotDoesNotCommit(t *testing.T) {
	at := time.Date(2026, time.September, 2, 14, 0, 0, 0, time.UTC)
	fc := &fakeCalendar{busy: []models.BusyInterval{{Start: at, End: at.Add(time.Hour)}}}
	svc := newTestService(&fakeResolver{fixed: map[string]time.Time{"tomorrow 2pm": at}}, fc)

	out, err := svc.RunTurn(context.Background(), newTurn("tomorrow 2pm"))
	require.NoError(t, err)

	assert.False(t, out.Available)
	assert.Equal(t, "⛔ That slot is busy.", out.Message)
	assert.Nil(t, out.Confirmation)
	assert.Zero(t, fc.createCalls)
}

func TestRunTurnDeleteAcrossTwoTurns(t *testing.T) {
	at := time.Date(2026, time.September, 2, 15, 0, 0, 0, time.UTC)
	fc := &fakeCalendar{found: true}
	svc := newTestService(&fakeResolver{fixed: map[string]time.Time{"tomorrow 3pm": at}}, fc)

	first, err := svc.RunTurn(context.Background(), newTurn("delete my meeting"))
	require.NoError(t, err)
	assert.Equal(t, models.PhaseDeleting, first.Phase)
	assert.Equal(t, "Which meeting would you like to delete? Please specify date and time.", first.Message)
	assert.Zero(t, fc.deleteCalls)
	assert.Zero(t, fc.listCalls)

	first.Input = "tomorrow 3pm"
	second, err := svc.RunTurn(context.Background(), first)
	require.NoError(t, err)

	assert.Equal(t, "🗑️ Meeting deleted successfully!", second.Message)
	assert.Equal(t, models.PhaseIdle, second.Phase)
	assert.Equal(t, 1, fc.deleteCalls)
	// Deleting never consults availability.
	assert.Zero(t, fc.listCalls)
}

func TestRunTurnUnparseableInputStopsEarly(t *testing.T) {
	fc := &fakeCalendar{}
	svc := newTestService(nil, fc)

	out, err := svc.RunTurn(context.Background(), newTurn("hello there"))
	require.NoError(t, err)

	// The extractor's diagnostic survives; the missing window then yields the
	// availability stage's own message only when a window was never set.
	assert.False(t, out.HasWindow())
	assert.Equal(t, "⛔ Could not determine a valid time.", out.Message)
	assert.Zero(t, fc.listCalls)
	assert.Zero(t, fc.createCalls)
}
