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

// JournalHandler serves the journal page and journal entry CRUD.
type JournalHandler struct {
	journal services.IJournalService
	mood    services.IMoodService
}

// NewJournalHandler creates a JournalHandler with the default service wiring.
func NewJournalHandler() *JournalHandler {
	return &JournalHandler{
		journal: services.NewJournalService(),
		mood:    services.NewMoodService(),
	}
}

// JournalPage renders the five most recent entries and mood logs.
func (h *JournalHandler) JournalPage(c *fiber.Ctx) error {
	entries, entriesErr := h.journal.GetRecentEntries(c.UserContext())
	moods, moodsErr := h.mood.GetRecentLogs(c.UserContext())

	renderData := fiber.Map{
		"Title":   "Journal",
		"Entries": entries,
		"Moods":   moods,
	}
	renderer.SetFlashMessages(renderData, flashmessages.GetFlashMessages(c))

	if entriesErr != nil || moodsErr != nil {
		configslog.Log.Error("Journal - JournalPage Error",
			zap.NamedError("entries", entriesErr), zap.NamedError("moods", moodsErr))
		renderData[renderer.FlashErrorKeyView] = "The journal could not be loaded."
		if entriesErr != nil {
			renderData["Entries"] = []models.JournalEntry{}
		}
		if moodsErr != nil {
			renderData["Moods"] = []models.MoodLog{}
		}
	}
	return renderer.Render(c, "journal", "layouts/main_layout", renderData)
}

// CreateEntry handles POST /add_entry.
func (h *JournalHandler) CreateEntry(c *fiber.Ctx) error {
	text := c.FormValue("text")
	if _, err := h.journal.CreateEntry(c.UserContext(), text); err != nil {
		if !errors.Is(err, services.ErrJournalTextRequired) {
			configslog.Log.Error("Journal - CreateEntry Error", zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/journal", fiber.StatusSeeOther)
	}
	return c.Redirect("/journal", fiber.StatusFound)
}

// ShowUpdateEntry renders the pre-filled edit form for one entry.
func (h *JournalHandler) ShowUpdateEntry(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return renderer.NotFound(c, "journal entry not found")
	}
	entry, err := h.journal.GetEntryByID(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrJournalEntryNotFound) {
			return renderer.NotFound(c, err.Error())
		}
		configslog.Log.Error("Journal - ShowUpdateEntry Error", zap.Int("id", id), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "The journal entry could not be loaded.")
		return c.Redirect("/journal", fiber.StatusSeeOther)
	}
	return renderer.Render(c, "edit_entry", "layouts/main_layout", fiber.Map{
		"Title": "Edit Entry",
		"Entry": entry,
	})
}

// UpdateEntry handles POST /edit_entry/:id.
func (h *JournalHandler) UpdateEntry(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return renderer.NotFound(c, "journal entry not found")
	}
	text := c.FormValue("text")
	if err := h.journal.UpdateEntry(c.UserContext(), uint(id), text); err != nil {
		if errors.Is(err, services.ErrJournalEntryNotFound) {
			return renderer.NotFound(c, err.Error())
		}
		if !errors.Is(err, services.ErrJournalTextRequired) {
			configslog.Log.Error("Journal - UpdateEntry Error", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/journal", fiber.StatusSeeOther)
	}
	return c.Redirect("/journal", fiber.StatusFound)
}

// DeleteEntry handles POST /delete_entry/:id.
func (h *JournalHandler) DeleteEntry(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return renderer.NotFound(c, "journal entry not found")
	}
	if err := h.journal.DeleteEntry(c.UserContext(), uint(id)); err != nil {
		if errors.Is(err, services.ErrJournalEntryNotFound) {
			return renderer.NotFound(c, err.Error())
		}
		configslog.Log.Error("Journal - DeleteEntry Error", zap.Int("id", id), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
	}
	return c.Redirect("/journal", fiber.StatusSeeOther)
}
