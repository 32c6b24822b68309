package database

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/Yusha2849/machine-learning-emotion-regulator/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBCounter int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:seedtest%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Emotion{}, &models.ColourScore{}, &models.Record{}); err != nil {
		t.Fatalf("migrating test db: %v", err)
	}
	return db
}

func TestSeed_ColdStart(t *testing.T) {
	db := newTestDB(t)

	if err := Seed(db); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	var emotions []models.Emotion
	if err := db.Preload("Scores").Order("emotion_id").Find(&emotions).Error; err != nil {
		t.Fatalf("loading emotions: %v", err)
	}
	if len(emotions) != 10 {
		t.Fatalf("expected 10 seeded emotions, got %d", len(emotions))
	}

	for _, e := range emotions {
		if e.SampleSize != 1 {
			t.Fatalf("%s seeded with sample_size %d, want 1", e.EmotionName, e.SampleSize)
		}
		if len(e.Scores) != 15 {
			t.Fatalf("%s seeded with %d scores, want 15", e.EmotionName, len(e.Scores))
		}
	}

	var happiness models.Emotion
	if err := db.Preload("Scores").Where("emotion_name = ?", "Happiness").First(&happiness).Error; err != nil {
		t.Fatalf("loading Happiness: %v", err)
	}
	found := false
	for _, s := range happiness.Scores {
		if s.Colour == "yellow" {
			found = true
			if s.Score != 5.3 {
				t.Fatalf("Happiness/yellow seeded as %v, want 5.3", s.Score)
			}
		}
	}
	if !found {
		t.Fatalf("Happiness has no yellow score")
	}
}

func TestSeed_Idempotent(t *testing.T) {
	db := newTestDB(t)

	if err := Seed(db); err != nil {
		t.Fatalf("first Seed failed: %v", err)
	}
	if err := Seed(db); err != nil {
		t.Fatalf("second Seed failed: %v", err)
	}

	var count int64
	if err := db.Model(&models.Emotion{}).Count(&count).Error; err != nil {
		t.Fatalf("counting emotions: %v", err)
	}
	if count != 10 {
		t.Fatalf("expected 10 emotions after repeated seeding, got %d", count)
	}
}
