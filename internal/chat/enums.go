package chat

import "fmt"

type Sender string

const (
	SenderMe       Sender = "me"
	SenderComputer Sender = "computer"
)

// ParseSender validates the from_who field at the boundary.
func ParseSender(s string) (Sender, error) {
	switch Sender(s) {
	case SenderMe, SenderComputer:
		return Sender(s), nil
	}
	return "", fmt.Errorf("%w: unknown sender %q", ErrInvalidRequest, s)
}

type ReplyMode string

const (
	ModeGPT      ReplyMode = "gpt"
	ModePlanning ReplyMode = "planning"
)

func ParseReplyMode(s string) (ReplyMode, error) {
	switch ReplyMode(s) {
	case ModeGPT, ModePlanning:
		return ReplyMode(s), nil
	}
	return "", fmt.Errorf("%w: unknown mode %q", ErrInvalidRequest, s)
}
