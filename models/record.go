package models

import "time"

// Record is one judged colour from one presentation. LikelihoodScore is the
// score that was on display when the user judged it, not the updated one.
// Rows are append-only on the learning path.
type Record struct {
	RecordID        uint      `gorm:"primaryKey" json:"record_id"`
	EmotionName     string    `gorm:"type:varchar(64);not null;index" json:"emotion_name"`
	LikelihoodScore float64   `gorm:"not null" json:"likelihood_score"`
	ColourDisplayed string    `gorm:"type:varchar(32);not null" json:"colour_displayed"`
	RecordDate      time.Time `gorm:"not null" json:"record_date"`
	ColourMatch     bool      `gorm:"not null" json:"colour_match"`
}
