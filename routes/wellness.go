package routes

import (
	"serenemind.app/configs"
	wellness_handlers "serenemind.app/handlers/wellness"
	"serenemind.app/pkg/gemini"
	"serenemind.app/services"

	"github.com/gofiber/fiber/v2"
)

// registerWellnessRoutes defines the end-user pages: landing, dashboard,
// chat, music, breathing, journal and mood logging.
func registerWellnessRoutes(app *fiber.App, cfg *configs.AppConfig) {
	homeHandler := wellness_handlers.NewHomeHandler()
	musicHandler := wellness_handlers.NewMusicHandler()
	journalHandler := wellness_handlers.NewJournalHandler()
	moodHandler := wellness_handlers.NewMoodHandler()

	chatService := services.NewChatService(gemini.NewClient(cfg.GeminiAPIKey))
	chatHandler := wellness_handlers.NewChatHandler(chatService)

	// --- Pages ---
	app.Get("/", homeHandler.Welcome)              // GET /
	app.Get("/dashboard", homeHandler.Dashboard)   // GET /dashboard
	app.Get("/breathing", homeHandler.Breathing)   // GET /breathing
	app.Get("/music", musicHandler.ListSongs)      // GET /music

	// --- Chat ---
	app.Get("/chatbot", chatHandler.ChatbotPage)       // GET /chatbot
	app.Post("/send_message", chatHandler.SendMessage) // POST /send_message

	// --- Journal ---
	app.Get("/journal", journalHandler.JournalPage)            // GET /journal
	app.Post("/add_entry", journalHandler.CreateEntry)         // POST /add_entry
	app.Get("/edit_entry/:id", journalHandler.ShowUpdateEntry) // GET /edit_entry/{id}
	app.Post("/edit_entry/:id", journalHandler.UpdateEntry)    // POST /edit_entry/{id}
	app.Post("/delete_entry/:id", journalHandler.DeleteEntry)  // POST /delete_entry/{id}

	// --- Mood logs ---
	app.Post("/add_mood", moodHandler.CreateLog)         // POST /add_mood
	app.Get("/edit_mood/:id", moodHandler.ShowUpdateLog) // GET /edit_mood/{id}
	app.Post("/edit_mood/:id", moodHandler.UpdateLog)    // POST /edit_mood/{id}
	app.Post("/delete_mood/:id", moodHandler.DeleteLog)  // POST /delete_mood/{id}
}
