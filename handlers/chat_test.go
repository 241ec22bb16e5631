// File: handlers/chat_test.go
package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"meetsync/models"
	"meetsync/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

type stubAgent struct {
	calls  int
	result models.DialogueState
	err    error
}

func (a *stubAgent) RunTurn(_ context.Context, _ models.DialogueState) (models.DialogueState, error) {
	a.calls++
	return a.result, a.err
}

func postChat(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	Chat(c)
	return w
}

func TestChatSessionStoreOutage(t *testing.T) {
	// A client pointed at an unreachable address fails every command, which
	// stands in for a session-store outage mid-conversation.
	prevCache := utils.SessionCacheClient
	utils.SessionCacheClient = redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	prevAgent := AgentSvc
	stub := &stubAgent{}
	SetAgentService(stub)
	t.Cleanup(func() {
		utils.SessionCacheClient = prevCache
		AgentSvc = prevAgent
	})

	w := postChat(t, `{"sessionID":"abc-123","text":"book monday","creds":{"access_token":"tok"}}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "failed to load dialogue session")
	assert.Equal(t, 0, stub.calls, "a store outage must not restart the dialogue")
}

func TestChatRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing text", body: `{"creds":{"access_token":"tok"}}`},
		{name: "missing creds", body: `{"text":"book monday"}`},
		{name: "empty access token", body: `{"text":"book monday","creds":{"access_token":""}}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := postChat(t, tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestTurnResponse(t *testing.T) {
	confirmed := &models.BookingConfirmation{Title: "Meeting", Start: "Monday, September 07, 2026 at 03:00 PM"}

	tests := []struct {
		name   string
		result models.DialogueState
		want   any
	}{
		{
			name:   "confirmation wins over message",
			result: models.DialogueState{Confirmation: confirmed, Message: "✅ That time is available!"},
			want:   confirmed,
		},
		{
			name:   "message when no confirmation",
			result: models.DialogueState{Message: "⛔ That slot is busy."},
			want:   "⛔ That slot is busy.",
		},
		{
			name:   "fallback when both empty",
			result: models.DialogueState{},
			want:   "Sorry, could not complete request.",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, turnResponse(tc.result))
		})
	}
}
