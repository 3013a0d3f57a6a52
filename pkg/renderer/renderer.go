// Package renderer wraps Fiber's template rendering with the layout and
// flash-message plumbing shared by every page handler.
package renderer

import (
	"net/http"

	"serenemind.app/pkg/flashmessages"

	"github.com/gofiber/fiber/v2"
)

// View data keys consumed by the layouts.
const (
	FlashSuccessKeyView = "FlashSuccess"
	FlashErrorKeyView   = "FlashError"
)

// SetFlashMessages copies pending flash messages into the view data.
func SetFlashMessages(data fiber.Map, msgs flashmessages.Messages) {
	if msgs.Success != "" {
		data[FlashSuccessKeyView] = msgs.Success
	}
	if msgs.Error != "" {
		data[FlashErrorKeyView] = msgs.Error
	}
}

// Render renders a named view inside layout with data. An optional status
// code defaults to 200.
func Render(c *fiber.Ctx, view, layout string, data fiber.Map, status ...int) error {
	code := http.StatusOK
	if len(status) > 0 {
		code = status[0]
	}
	return c.Status(code).Render(view, data, layout)
}

// NotFound writes the 404 response for a missing resource, JSON or HTML
// depending on what the client accepts.
func NotFound(c *fiber.Ctx, message string) error {
	if c.Accepts("application/json", "text/html") == "application/json" {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": message})
	}
	return c.Status(http.StatusNotFound).Render("errors/404", fiber.Map{
		"Title":   "Not Found",
		"Message": message,
	}, "layouts/error_layout")
}
