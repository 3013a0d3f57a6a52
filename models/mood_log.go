package models

// Mood is the closed set of values a mood log may take.
type Mood string

const (
	MoodEcstatic Mood = "ecstatic"
	MoodHappy    Mood = "happy"
	MoodNeutral  Mood = "neutral"
	MoodSad      Mood = "sad"
	MoodAwful    Mood = "awful"
)

// ValidMoods lists every accepted mood, in display order.
var ValidMoods = []Mood{MoodEcstatic, MoodHappy, MoodNeutral, MoodSad, MoodAwful}

// IsValid reports whether m is one of the fixed mood values.
func (m Mood) IsValid() bool {
	for _, v := range ValidMoods {
		if m == v {
			return true
		}
	}
	return false
}

// MoodLog records how the user felt at one point in time.
type MoodLog struct {
	BaseModel
	Mood Mood `gorm:"type:varchar(20);not null;check:mood IN ('ecstatic','happy','neutral','sad','awful')" form:"mood"`
}
