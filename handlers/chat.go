// File: handlers/chat.go
package handlers

import (
	"encoding/json"
	"net/http"

	"meetsync/models"
	"meetsync/services/agent"
	"meetsync/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

var AgentSvc agent.AgentService

// SetAgentService injects the agent service used by the chat handler.
func SetAgentService(svc agent.AgentService) {
	AgentSvc = svc
}

// Chat handles one conversational turn: it rehydrates the dialogue session,
// runs a single pipeline pass, persists the resulting state and renders the
// confirmation or progress message.
func Chat(c *gin.Context) {
	var input struct {
		SessionID string          `json:"sessionID"`
		Text      string          `json:"text" binding:"required"`
		Creds     json.RawMessage `json:"creds" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	var token oauth2.Token
	if err := json.Unmarshal(input.Creds, &token); err != nil || token.AccessToken == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid credentials", "creds must be an OAuth token JSON")
		return
	}

	ctx := c.Request.Context()
	cacheClient := utils.GetSessionCacheClient()

	sessionID := input.SessionID
	var state models.DialogueState
	if sessionID == "" {
		sessionID = uuid.New().String()
		state = models.NewDialogueState(sessionID, input.Text, &token)
	} else if sessionData, err := cacheClient.Get(ctx, sessionID).Result(); err == redis.Nil {
		// Expired or unknown session: start fresh under the same id.
		state = models.NewDialogueState(sessionID, input.Text, &token)
	} else if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load dialogue session", err.Error())
		return
	} else {
		if err := json.Unmarshal([]byte(sessionData), &state); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to parse dialogue session", err.Error())
			return
		}
		state.Input = input.Text
		state.Creds = &token
		state.Message = ""
		state.Confirmation = nil
		// Only pending phases carry a partial window into the next turn; an
		// idle session starts its window resolution from scratch.
		if state.Phase == models.PhaseIdle {
			state.WindowStart = nil
			state.WindowEnd = nil
			state.Available = false
			state.DurationMinutes = 30
		}
	}

	result, err := AgentSvc.RunTurn(ctx, state)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "calendar service failure", err.Error())
		return
	}

	updatedData, err := json.Marshal(result)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to marshal dialogue session", err.Error())
		return
	}
	if err := cacheClient.Set(ctx, sessionID, updatedData, utils.SessionTTL).Err(); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to store dialogue session", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionID": sessionID,
		"response":  turnResponse(result),
	})
}

// turnResponse picks what the caller sees for a turn: a confirmation when the
// booking completed, the progress message otherwise, and a stock apology when
// the pipeline produced neither.
func turnResponse(result models.DialogueState) any {
	if result.Confirmation != nil {
		return result.Confirmation
	}
	if result.Message != "" {
		return result.Message
	}
	return "Sorry, could not complete request."
}
