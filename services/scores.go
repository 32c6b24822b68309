package services

import (
	"errors"
	"fmt"

	"github.com/Yusha2849/machine-learning-emotion-regulator/models"
	"gorm.io/gorm"
)

var ErrEmotionNotFound = errors.New("emotion not found")

// ColourValue is one colour's current likelihood score, in the caller's
// requested order.
type ColourValue struct {
	Colour string
	Score  float64
}

type ScoreStore struct {
	db *gorm.DB
}

func NewScoreStore(db *gorm.DB) *ScoreStore {
	return &ScoreStore{db: db}
}

// GetRecord loads an emotion with all its colour scores.
func (s *ScoreStore) GetRecord(emotionName string) (*models.Emotion, error) {
	var emotion models.Emotion
	err := s.db.Preload("Scores").
		Where("emotion_name = ?", emotionName).
		First(&emotion).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEmotionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading emotion %s: %w", emotionName, err)
	}
	return &emotion, nil
}

// GetScores returns the emotion's scores restricted to the requested colours,
// preserving the filter's order. Filter entries that are not catalog colours
// are dropped. The order matters downstream: ranking ties keep it.
func (s *ScoreStore) GetScores(emotionName string, colourFilter []string) ([]ColourValue, error) {
	record, err := s.GetRecord(emotionName)
	if err != nil {
		return nil, err
	}

	byColour := make(map[string]float64, len(record.Scores))
	for _, cs := range record.Scores {
		byColour[cs.Colour] = cs.Score
	}

	values := make([]ColourValue, 0, len(colourFilter))
	for _, colour := range colourFilter {
		if !models.KnownColour(colour) {
			continue
		}
		score, ok := byColour[colour]
		if !ok {
			continue
		}
		values = append(values, ColourValue{Colour: colour, Score: score})
	}
	return values, nil
}

// AllEmotionNames lists the canonical names currently stored.
func (s *ScoreStore) AllEmotionNames() ([]string, error) {
	var names []string
	if err := s.db.Model(&models.Emotion{}).
		Order("emotion_id").
		Pluck("emotion_name", &names).Error; err != nil {
		return nil, fmt.Errorf("listing emotions: %w", err)
	}
	return names, nil
}

// ApplyUpdates writes the staged scores and the new sample size for one
// emotion. The caller supplies the transaction so score changes and judgment
// history commit together.
func (s *ScoreStore) ApplyUpdates(tx *gorm.DB, emotionID uint, newScores map[string]float64, newSampleSize int) error {
	for colour, score := range newScores {
		if err := tx.Model(&models.ColourScore{}).
			Where("emotion_id = ? AND colour = ?", emotionID, colour).
			Update("score", score).Error; err != nil {
			return fmt.Errorf("updating score %d/%s: %w", emotionID, colour, err)
		}
	}

	if err := tx.Model(&models.Emotion{}).
		Where("emotion_id = ?", emotionID).
		Update("sample_size", newSampleSize).Error; err != nil {
		return fmt.Errorf("updating sample size for emotion %d: %w", emotionID, err)
	}
	return nil
}
