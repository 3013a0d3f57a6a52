package models

// Song is one entry of the curated relaxation playlist.
type Song struct {
	BaseModel
	Title  string `gorm:"type:varchar(100);not null" form:"title"`
	Artist string `gorm:"type:varchar(100);not null" form:"artist"`
	URL    string `gorm:"type:varchar(200);not null" form:"url"`
}
