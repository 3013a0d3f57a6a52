package models

// Chat message senders.
const (
	ChatSenderUser = "user"
	ChatSenderAI   = "ai"
)

// ChatMessage is one record of the session-scoped chat log. It is never
// persisted to the database; the log lives in the browser session and is
// discarded when the session expires.
type ChatMessage struct {
	ID     int    `json:"id"`
	Text   string `json:"text"`
	Sender string `json:"sender"`
}
