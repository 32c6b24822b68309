package database

import (
	"fmt"

	"github.com/Yusha2849/machine-learning-emotion-regulator/models"
	"gorm.io/gorm"
)

// Seed creates one emotion record per canonical label with the reference
// dataset scores and sample_size 1. It is a no-op when any emotions already
// exist, so it is safe to call on every startup.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Emotion{}).Count(&count).Error; err != nil {
		return fmt.Errorf("counting emotions: %w", err)
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, name := range models.ReferenceEmotionNames() {
			emotion := models.Emotion{
				EmotionName: name,
				SampleSize:  1,
			}
			if err := tx.Create(&emotion).Error; err != nil {
				return fmt.Errorf("seeding emotion %s: %w", name, err)
			}

			ref := models.ReferenceScoresFor(name)
			for _, colour := range models.Colours() {
				score := models.ColourScore{
					EmotionID: emotion.EmotionID,
					Colour:    colour.Identifier,
					Score:     ref[colour.Identifier],
				}
				if err := tx.Create(&score).Error; err != nil {
					return fmt.Errorf("seeding score %s/%s: %w", name, colour.Identifier, err)
				}
			}
		}
		return nil
	})
}
