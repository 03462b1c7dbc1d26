package ai

import (
	"context"
	"fmt"
	"strings"
)

// Planner is the stateless fallback responder. It answers from a fixed rule
// table keyed on keywords in the new message and never looks at history.
type Planner struct{}

func NewPlanner() *Planner { return &Planner{} }

type planRule struct {
	keywords []string
	reply    string
}

var planRules = []planRule{
	{[]string{"hello", "hi", "hey"}, "Hello! How can I help you today?"},
	{[]string{"schedule", "meeting", "calendar"}, "Let me outline the steps to set that up: pick a time, invite attendees, and confirm the agenda."},
	{[]string{"search", "find", "look up"}, "I would start by gathering the relevant keywords and narrowing the results from there."},
	{[]string{"thanks", "thank you"}, "You're welcome!"},
}

func (p *Planner) Reply(ctx context.Context, system string, history []Message, msg string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	lowered := strings.ToLower(msg)
	for _, rule := range planRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				return rule.reply, nil
			}
		}
	}
	return fmt.Sprintf("Here is a plan for %q: clarify the goal, break it into steps, and tackle them in order.", msg), nil
}
