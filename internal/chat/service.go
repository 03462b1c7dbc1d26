package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kimtth/chatroom-api/internal/ai"
)

// Preamble sent on every history-aware reply request.
const systemPreamble = "You are an AI assistant that helps people find information."

type Service struct {
	repo         *Repo
	registry     *ai.Registry
	replyTimeout time.Duration
}

func NewService(repo *Repo, registry *ai.Registry, replyTimeout time.Duration) *Service {
	if replyTimeout <= 0 {
		replyTimeout = 60 * time.Second
	}
	return &Service{repo: repo, registry: registry, replyTimeout: replyTimeout}
}

func (s *Service) CreateRoom(ctx context.Context, id, name, prompt string) (*ChatRoom, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidRequest)
	}
	room := &ChatRoom{ID: id, Name: name, Prompt: prompt, Messages: []Message{}}
	if err := s.repo.CreateRoom(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) ListRooms(ctx context.Context) ([]ChatRoom, error) {
	return s.repo.ListRooms(ctx)
}

func (s *Service) GetRoom(ctx context.Context, id string) (*ChatRoom, error) {
	return s.repo.GetRoom(ctx, id)
}

func (s *Service) UpdateRoom(ctx context.Context, id, name, prompt string) (*ChatRoom, error) {
	return s.repo.UpdateRoom(ctx, id, name, prompt)
}

func (s *Service) DeleteRoom(ctx context.Context, id string) error {
	return s.repo.DeleteRoom(ctx, id)
}

func (s *Service) AppendMessage(ctx context.Context, chatID, id, fromWho, msg string) (*Message, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidRequest)
	}
	sender, err := ParseSender(fromWho)
	if err != nil {
		return nil, err
	}
	m := &Message{ID: id, ChatID: chatID, FromWho: string(sender), Msg: msg}
	if err := s.repo.AppendMessage(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) ListMessages(ctx context.Context, chatID string) ([]Message, error) {
	return s.repo.ListMessages(ctx, chatID)
}

func (s *Service) ListCodesByCategory(ctx context.Context, category string) ([]Code, error) {
	return s.repo.ListCodesByCategory(ctx, category)
}

// GenerateReply dispatches the new message to the responder selected by mode.
// In gpt mode the room's prior messages become the conversation history; in
// planning mode the responder sees only the new message. Responder failures
// surface to the caller unretried.
func (s *Service) GenerateReply(ctx context.Context, chatID, msg, mode string) (string, error) {
	// validated before any storage access
	if strings.TrimSpace(msg) == "" {
		return "", fmt.Errorf("%w: msg is required", ErrInvalidRequest)
	}
	if strings.TrimSpace(mode) == "" {
		return "", fmt.Errorf("%w: mode is required", ErrInvalidRequest)
	}
	parsed, err := ParseReplyMode(mode)
	if err != nil {
		return "", err
	}

	responder, err := s.registry.Get(ctx, string(parsed))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, s.replyTimeout)
	defer cancel()

	if parsed != ModeGPT {
		return responder.Reply(ctx, "", nil, msg)
	}

	room, err := s.repo.GetRoom(ctx, chatID)
	if err != nil {
		return "", err
	}

	history := make([]ai.Message, 0, len(room.Messages))
	for _, m := range room.Messages {
		// rows predating boundary validation may carry other senders; skip them
		switch Sender(m.FromWho) {
		case SenderMe:
			history = append(history, ai.Message{Role: "user", Content: m.Msg})
		case SenderComputer:
			history = append(history, ai.Message{Role: "assistant", Content: m.Msg})
		}
	}

	return responder.Reply(ctx, systemPreamble, history, msg)
}
