package services

import (
	"context"
	"encoding/json"
	"time"

	"serenemind.app/configs/configslog"
	"serenemind.app/models"

	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"
)

// FallbackMessage is what the chat user sees whenever the AI gateway fails.
// The chat contract never surfaces a raw error.
const FallbackMessage = "I'm sorry, I'm having trouble connecting right now. Please try again later."

const (
	chatHistoryKey = "chat_history"
	chatTimeout    = 30 * time.Second
)

// AIGateway generates a reply for one user utterance.
type AIGateway interface {
	GenerateContent(ctx context.Context, userMessage string) (string, error)
}

// IChatService owns the session-scoped chat log. The log is loaded from and
// saved back to the session store on every request; no in-process state is
// kept between requests.
type IChatService interface {
	LoadHistory(sess *session.Session) []models.ChatMessage
	SaveHistory(sess *session.Session, history []models.ChatMessage) error
	Exchange(ctx context.Context, history []models.ChatMessage, userText string) (string, []models.ChatMessage)
}

// ChatService implements IChatService over an AIGateway.
type ChatService struct {
	gateway AIGateway
}

// NewChatService creates a ChatService using the given gateway.
func NewChatService(gateway AIGateway) IChatService {
	return &ChatService{gateway: gateway}
}

// LoadHistory decodes the chat log from the session. A missing or corrupt
// value yields an empty log.
func (s *ChatService) LoadHistory(sess *session.Session) []models.ChatMessage {
	raw, ok := sess.Get(chatHistoryKey).(string)
	if !ok || raw == "" {
		return nil
	}
	var history []models.ChatMessage
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		configslog.Log.Warn("ChatService.LoadHistory: discarding unreadable chat history", zap.Error(err))
		return nil
	}
	return history
}

// SaveHistory encodes the chat log back into the session and saves it.
func (s *ChatService) SaveHistory(sess *session.Session, history []models.ChatMessage) error {
	raw, err := json.Marshal(history)
	if err != nil {
		return err
	}
	sess.Set(chatHistoryKey, string(raw))
	return sess.Save()
}

// Exchange appends the user message, asks the gateway for a reply, and
// appends the AI message. On any gateway failure the reply is the fixed
// fallback text; Exchange itself never fails.
func (s *ChatService) Exchange(ctx context.Context, history []models.ChatMessage, userText string) (string, []models.ChatMessage) {
	history = append(history, models.ChatMessage{
		ID:     len(history),
		Text:   userText,
		Sender: models.ChatSenderUser,
	})

	genCtx, cancel := context.WithTimeout(ctx, chatTimeout)
	defer cancel()

	reply, err := s.gateway.GenerateContent(genCtx, userText)
	if err != nil {
		configslog.Log.Warn("ChatService.Exchange: AI gateway failed, using fallback", zap.Error(err))
		reply = FallbackMessage
	}

	history = append(history, models.ChatMessage{
		ID:     len(history),
		Text:   reply,
		Sender: models.ChatSenderAI,
	})
	return reply, history
}

var _ IChatService = (*ChatService)(nil)
