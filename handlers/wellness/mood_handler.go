package handlers

import (
	"errors"

	"serenemind.app/configs/configslog"
	"serenemind.app/models"
	"serenemind.app/pkg/flashmessages"
	"serenemind.app/pkg/renderer"
	"serenemind.app/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MoodHandler serves mood log CRUD. The mood list itself is shown by the
// journal page.
type MoodHandler struct {
	service services.IMoodService
}

// NewMoodHandler creates a MoodHandler with the default service wiring.
func NewMoodHandler() *MoodHandler {
	return &MoodHandler{service: services.NewMoodService()}
}

// CreateLog handles POST /add_mood.
func (h *MoodHandler) CreateLog(c *fiber.Ctx) error {
	mood := models.Mood(c.FormValue("mood"))
	if _, err := h.service.CreateLog(c.UserContext(), mood); err != nil {
		if !errors.Is(err, services.ErrMoodInvalid) {
			configslog.Log.Error("Mood - CreateLog Error", zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/journal", fiber.StatusSeeOther)
	}
	return c.Redirect("/journal", fiber.StatusFound)
}

// ShowUpdateLog renders the pre-filled edit form for one mood log.
func (h *MoodHandler) ShowUpdateLog(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return renderer.NotFound(c, "mood log not found")
	}
	log, err := h.service.GetLogByID(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrMoodLogNotFound) {
			return renderer.NotFound(c, err.Error())
		}
		configslog.Log.Error("Mood - ShowUpdateLog Error", zap.Int("id", id), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "The mood log could not be loaded.")
		return c.Redirect("/journal", fiber.StatusSeeOther)
	}
	return renderer.Render(c, "edit_mood", "layouts/main_layout", fiber.Map{
		"Title": "Edit Mood",
		"Log":   log,
		"Moods": models.ValidMoods,
	})
}

// UpdateLog handles POST /edit_mood/:id.
func (h *MoodHandler) UpdateLog(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return renderer.NotFound(c, "mood log not found")
	}
	mood := models.Mood(c.FormValue("mood"))
	if err := h.service.UpdateLog(c.UserContext(), uint(id), mood); err != nil {
		if errors.Is(err, services.ErrMoodLogNotFound) {
			return renderer.NotFound(c, err.Error())
		}
		if !errors.Is(err, services.ErrMoodInvalid) {
			configslog.Log.Error("Mood - UpdateLog Error", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/journal", fiber.StatusSeeOther)
	}
	return c.Redirect("/journal", fiber.StatusFound)
}

// DeleteLog handles POST /delete_mood/:id.
func (h *MoodHandler) DeleteLog(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return renderer.NotFound(c, "mood log not found")
	}
	if err := h.service.DeleteLog(c.UserContext(), uint(id)); err != nil {
		if errors.Is(err, services.ErrMoodLogNotFound) {
			return renderer.NotFound(c, err.Error())
		}
		configslog.Log.Error("Mood - DeleteLog Error", zap.Int("id", id), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
	}
	return c.Redirect("/journal", fiber.StatusSeeOther)
}
