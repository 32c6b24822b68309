package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/Yusha2849/machine-learning-emotion-regulator/logger"
	"github.com/Yusha2849/machine-learning-emotion-regulator/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBCounter int64

// newTestDB opens a private in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:servicestest%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Emotion{}, &models.ColourScore{}, &models.Record{}); err != nil {
		t.Fatalf("migrating test db: %v", err)
	}
	return db
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("dev")
	if err != nil {
		t.Fatalf("building test logger: %v", err)
	}
	return log
}

// seedEmotion creates one emotion with the given sample size and scores.
// Colours absent from scores get 0.
func seedEmotion(t *testing.T, db *gorm.DB, name string, sampleSize int, scores map[string]float64) uint {
	t.Helper()

	emotion := models.Emotion{EmotionName: name, SampleSize: sampleSize}
	if err := db.Create(&emotion).Error; err != nil {
		t.Fatalf("seeding emotion %s: %v", name, err)
	}
	for _, colour := range models.Colours() {
		cs := models.ColourScore{
			EmotionID: emotion.EmotionID,
			Colour:    colour.Identifier,
			Score:     scores[colour.Identifier],
		}
		if err := db.Create(&cs).Error; err != nil {
			t.Fatalf("seeding score %s/%s: %v", name, colour.Identifier, err)
		}
	}
	return emotion.EmotionID
}

func currentScore(t *testing.T, db *gorm.DB, emotionID uint, colour string) float64 {
	t.Helper()
	var cs models.ColourScore
	if err := db.Where("emotion_id = ? AND colour = ?", emotionID, colour).First(&cs).Error; err != nil {
		t.Fatalf("loading score %d/%s: %v", emotionID, colour, err)
	}
	return cs.Score
}

func currentSampleSize(t *testing.T, db *gorm.DB, emotionID uint) int {
	t.Helper()
	var emotion models.Emotion
	if err := db.First(&emotion, emotionID).Error; err != nil {
		t.Fatalf("loading emotion %d: %v", emotionID, err)
	}
	return emotion.SampleSize
}
