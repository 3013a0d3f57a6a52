package handlers

import (
	"serenemind.app/configs/configslog"
	"serenemind.app/models"
	"serenemind.app/pkg/renderer"
	"serenemind.app/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MusicHandler serves the curated music list.
type MusicHandler struct {
	service services.ISongService
}

// NewMusicHandler creates a MusicHandler with the default service wiring.
func NewMusicHandler() *MusicHandler {
	return &MusicHandler{service: services.NewSongService()}
}

// ListSongs renders the music page with every song.
func (h *MusicHandler) ListSongs(c *fiber.Ctx) error {
	songs, err := h.service.GetAllSongs(c.UserContext())
	renderData := fiber.Map{
		"Title": "Music",
		"Songs": songs,
	}
	if err != nil {
		configslog.Log.Error("Music - ListSongs Error", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "The music list could not be loaded."
		renderData["Songs"] = []models.Song{}
	}
	return renderer.Render(c, "music", "layouts/main_layout", renderData)
}
