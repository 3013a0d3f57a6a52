// Package flashmessages stores one-shot messages in the session so a handler
// can redirect and still show the outcome on the next page load.
package flashmessages

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	FlashSuccessKey = "flash_success"
	FlashErrorKey   = "flash_error"
)

// Messages carries the flash messages consumed by a render.
type Messages struct {
	Success string
	Error   string
}

func getSession(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, fiber.ErrInternalServerError
	}
	return store.Get(c)
}

// SetFlashMessage records a message under key for the next request.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	return sess.Save()
}

// GetFlashMessages pops and returns any pending messages.
func GetFlashMessages(c *fiber.Ctx) Messages {
	sess, err := getSession(c)
	if err != nil {
		return Messages{}
	}
	var msgs Messages
	if v, ok := sess.Get(FlashSuccessKey).(string); ok {
		msgs.Success = v
		sess.Delete(FlashSuccessKey)
	}
	if v, ok := sess.Get(FlashErrorKey).(string); ok {
		msgs.Error = v
		sess.Delete(FlashErrorKey)
	}
	if msgs.Success != "" || msgs.Error != "" {
		_ = sess.Save()
	}
	return msgs
}
