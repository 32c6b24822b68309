package models

// Emotion holds the learned colour-likelihood state for one canonical
// emotion. SampleSize counts completed judgment batches and never decreases.
type Emotion struct {
	EmotionID   uint          `gorm:"primaryKey" json:"emotion_id"`
	EmotionName string        `gorm:"type:varchar(64);uniqueIndex;not null" json:"emotion_name"`
	SampleSize  int           `gorm:"not null;default:1" json:"sample_size"`
	Scores      []ColourScore `gorm:"foreignKey:EmotionID;constraint:OnDelete:CASCADE" json:"scores"`
}

// ColourScore is one emotion's likelihood score for one colour, kept in
// [0, 10]. One row per (emotion, colour) pair.
type ColourScore struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	EmotionID uint    `gorm:"not null;index;uniqueIndex:idx_emotion_colour" json:"-"`
	Colour    string  `gorm:"type:varchar(32);not null;uniqueIndex:idx_emotion_colour" json:"colour"`
	Score     float64 `gorm:"not null" json:"score"`
}
