package models

import "time"

// BaseModel is embedded by every persisted entity. Rows are hard-deleted;
// there is no soft-delete column.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}
