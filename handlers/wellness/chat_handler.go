package handlers

import (
	"strings"

	"serenemind.app/configs/configslog"
	"serenemind.app/models"
	"serenemind.app/pkg/renderer"
	"serenemind.app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"
)

// ChatHandler serves the chatbot page and the message exchange endpoint.
type ChatHandler struct {
	chat services.IChatService
}

// NewChatHandler creates a ChatHandler over the given chat service.
func NewChatHandler(chat services.IChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

func (h *ChatHandler) session(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, fiber.ErrInternalServerError
	}
	return store.Get(c)
}

// ChatbotPage renders the chat UI with the current session log.
func (h *ChatHandler) ChatbotPage(c *fiber.Ctx) error {
	var history []models.ChatMessage
	sess, err := h.session(c)
	if err != nil {
		configslog.Log.Error("Chat - ChatbotPage: session unavailable", zap.Error(err))
	} else {
		history = h.chat.LoadHistory(sess)
	}
	return renderer.Render(c, "chatbot", "layouts/main_layout", fiber.Map{
		"Title":    "Chat with Sarah",
		"Messages": history,
	})
}

// SendMessage handles POST /send_message. The reply is always a success
// response: gateway failures are replaced by the fallback text inside the
// chat service.
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	message := strings.TrimSpace(c.FormValue("message"))
	if message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "message is required"})
	}

	sess, err := h.session(c)
	if err != nil {
		configslog.Log.Error("Chat - SendMessage: session unavailable", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "session unavailable"})
	}

	history := h.chat.LoadHistory(sess)
	reply, history := h.chat.Exchange(c.UserContext(), history, message)

	if err := h.chat.SaveHistory(sess, history); err != nil {
		// The reply is already in hand; losing one history save is not
		// worth failing the exchange.
		configslog.Log.Error("Chat - SendMessage: history save failed", zap.Error(err))
	}

	return c.JSON(fiber.Map{"response": reply})
}
