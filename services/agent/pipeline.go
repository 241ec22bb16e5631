package agent

import (
	"context"

	"meetsync/models"
)

// RunTurn executes the fixed extract → check availability → commit pipeline
// exactly once for the given state. There are no loops and no retries; each
// stage decides internally whether to act or pass through. Collaborator
// failures escalate to the caller unhandled.
func (s *DefaultAgentService) RunTurn(ctx context.Context, state models.DialogueState) (models.DialogueState, error) {
	state = s.ExtractIntent(state)

	state, err := s.CheckAvailability(ctx, state)
	if err != nil {
		return state, err
	}

	return s.Commit(ctx, state)
}
