package services

import (
	"errors"
	"fmt"

	"github.com/Yusha2849/machine-learning-emotion-regulator/models"
	"gorm.io/gorm"
)

var ErrRecordNotFound = errors.New("record not found")

// RecordLog is the append-only judgment history. The learning path only ever
// calls Append; the rest backs the administrative /records endpoints.
type RecordLog struct {
	db *gorm.DB
}

func NewRecordLog(db *gorm.DB) *RecordLog {
	return &RecordLog{db: db}
}

// Append inserts one judgment row inside the caller's transaction and fills
// in the assigned record id.
func (r *RecordLog) Append(tx *gorm.DB, record *models.Record) error {
	if err := tx.Create(record).Error; err != nil {
		return fmt.Errorf("appending judgment record: %w", err)
	}
	return nil
}

func (r *RecordLog) All() ([]models.Record, error) {
	var records []models.Record
	if err := r.db.Order("record_id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	return records, nil
}

func (r *RecordLog) Find(recordID uint) (*models.Record, error) {
	var record models.Record
	err := r.db.First(&record, recordID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading record %d: %w", recordID, err)
	}
	return &record, nil
}

func (r *RecordLog) Create(record *models.Record) error {
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("creating record: %w", err)
	}
	return nil
}

func (r *RecordLog) Update(recordID uint, fields map[string]interface{}) (*models.Record, error) {
	record, err := r.Find(recordID)
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(record).Updates(fields).Error; err != nil {
		return nil, fmt.Errorf("updating record %d: %w", recordID, err)
	}
	return record, nil
}

func (r *RecordLog) Delete(recordID uint) error {
	result := r.db.Delete(&models.Record{}, recordID)
	if result.Error != nil {
		return fmt.Errorf("deleting record %d: %w", recordID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
