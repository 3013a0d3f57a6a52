package models

// JournalEntry is a free-text wellness journal record. CreatedAt doubles as
// the entry timestamp shown on the journal page.
type JournalEntry struct {
	BaseModel
	Text string `gorm:"type:text;not null" form:"text"`
}
