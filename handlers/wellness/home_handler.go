package handlers // handlers/wellness package

import (
	"serenemind.app/pkg/renderer"

	"github.com/gofiber/fiber/v2"
)

// HomeHandler serves the static wellness pages.
type HomeHandler struct{}

// NewHomeHandler creates a HomeHandler.
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Welcome renders the landing page.
func (h *HomeHandler) Welcome(c *fiber.Ctx) error {
	return renderer.Render(c, "welcome", "layouts/main_layout", fiber.Map{
		"Title": "Serenemind",
	})
}

// Dashboard renders the dashboard page.
func (h *HomeHandler) Dashboard(c *fiber.Ctx) error {
	return renderer.Render(c, "dashboard", "layouts/main_layout", fiber.Map{
		"Title": "Dashboard",
	})
}

// Breathing renders the breathing exercise page.
func (h *HomeHandler) Breathing(c *fiber.Ctx) error {
	return renderer.Render(c, "breathing", "layouts/main_layout", fiber.Map{
		"Title": "Breathing Exercise",
	})
}
