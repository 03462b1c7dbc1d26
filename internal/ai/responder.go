package ai

import "context"

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Responder produces a reply for a new user message. history holds the prior
// conversation turns in chronological order; implementations that are
// stateless may ignore system and history.
type Responder interface {
	Reply(ctx context.Context, system string, history []Message, msg string) (string, error)
}
