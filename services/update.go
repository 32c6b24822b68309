package services

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/Yusha2849/machine-learning-emotion-regulator/logger"
	"github.com/Yusha2849/machine-learning-emotion-regulator/models"
	"gorm.io/gorm"
)

const (
	minScore = 0.0
	maxScore = 10.0
)

// Judgment is one user verdict on one displayed colour. Choice 1 means the
// colour matched the emotion, anything else means it did not.
type Judgment struct {
	Colour string
	Choice int
}

// UpdateEngine applies judgment batches to the stored scores.
//
// Every judgment in a batch is evaluated against the record as it stood when
// the batch started: the same sample size, the same pre-update scores. A
// colour judged twice is computed twice from that snapshot and the last
// staged value wins, while both judgments are logged. Each non-empty batch
// bumps the sample size by exactly 1, shrinking the weight of future batches.
type UpdateEngine struct {
	db        *gorm.DB
	scores    *ScoreStore
	recordLog *RecordLog
	log       *logger.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewUpdateEngine(db *gorm.DB, scores *ScoreStore, recordLog *RecordLog, log *logger.Logger) *UpdateEngine {
	return &UpdateEngine{
		db:        db,
		scores:    scores,
		recordLog: recordLog,
		log:       log,
		locks:     make(map[string]*sync.Mutex),
	}
}

// emotionLock serializes batches per canonical name. Without it two
// concurrent batches read the same sample size and one increment is lost.
func (e *UpdateEngine) emotionLock(emotionName string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	lock, ok := e.locks[emotionName]
	if !ok {
		lock = &sync.Mutex{}
		e.locks[emotionName] = lock
	}
	return lock
}

// dropEmotionLock removes a lock allocated for a name that turned out not to
// exist, so arbitrary request strings cannot grow the map. Only the entry
// that still maps to this lock is removed; a concurrently re-created entry
// belongs to a request that will fail the same lookup.
func (e *UpdateEngine) dropEmotionLock(emotionName string, lock *sync.Mutex) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.locks[emotionName] == lock {
		delete(e.locks, emotionName)
	}
}

// ApplyJudgments runs one batch for one emotion. The staged scores, the
// sample size increment and the history rows commit in a single transaction;
// on any failure nothing is applied. An empty batch changes nothing and
// succeeds. Unknown colours are skipped, the rest of the batch still counts.
func (e *UpdateEngine) ApplyJudgments(emotionName string, judgments []Judgment) error {
	lock := e.emotionLock(emotionName)
	lock.Lock()
	defer lock.Unlock()

	record, err := e.scores.GetRecord(emotionName)
	if err != nil {
		if errors.Is(err, ErrEmotionNotFound) {
			e.dropEmotionLock(emotionName, lock)
		}
		return err
	}
	if len(judgments) == 0 {
		return nil
	}

	snapshot := make(map[string]float64, len(record.Scores))
	for _, cs := range record.Scores {
		snapshot[cs.Colour] = cs.Score
	}
	sampleSize := record.SampleSize
	today := time.Now()

	staged := make(map[string]float64, len(judgments))
	entries := make([]models.Record, 0, len(judgments))

	for _, j := range judgments {
		value, ok := snapshot[j.Colour]
		if !ok {
			e.log.Warn("skipping judgment for unknown colour",
				"emotion", emotionName, "colour", j.Colour)
			continue
		}

		contribution := value / float64(sampleSize)
		var newValue float64
		if j.Choice == 1 {
			newValue = math.Min(value+contribution, maxScore)
		} else {
			newValue = math.Max(value-contribution, minScore)
		}

		entries = append(entries, models.Record{
			EmotionName:     emotionName,
			LikelihoodScore: value,
			ColourDisplayed: j.Colour,
			RecordDate:      today,
			ColourMatch:     j.Choice == 1,
		})
		staged[j.Colour] = newValue
	}

	err = e.db.Transaction(func(tx *gorm.DB) error {
		if err := e.scores.ApplyUpdates(tx, record.EmotionID, staged, sampleSize+1); err != nil {
			return err
		}
		for i := range entries {
			if err := e.recordLog.Append(tx, &entries[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("committing judgment batch for %s: %w", emotionName, err)
	}

	e.log.Info("judgment batch applied",
		"emotion", emotionName,
		"judged", len(entries),
		"sample_size", sampleSize+1)
	return nil
}
