package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Yusha2849/machine-learning-emotion-regulator/logger"
	"github.com/Yusha2849/machine-learning-emotion-regulator/models"
	"github.com/Yusha2849/machine-learning-emotion-regulator/services"
	"github.com/gin-gonic/gin"
)

// RecordController is the administrative surface over the judgment history.
// The learning path never goes through these handlers.
type RecordController struct {
	records *services.RecordLog
	log     *logger.Logger
}

func NewRecordController(records *services.RecordLog, log *logger.Logger) *RecordController {
	return &RecordController{records: records, log: log}
}

func (rc *RecordController) GetRecords(c *gin.Context) {
	records, err := rc.records.All()
	if err != nil {
		rc.log.Error("listing records failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch records"})
		return
	}
	c.JSON(http.StatusOK, records)
}

func (rc *RecordController) GetRecordByID(c *gin.Context) {
	id, err := parseRecordID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record id"})
		return
	}

	record, err := rc.records.Find(id)
	if errors.Is(err, services.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}
	if err != nil {
		rc.log.Error("fetching record failed", "record_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch record"})
		return
	}
	c.JSON(http.StatusOK, record)
}

func (rc *RecordController) CreateRecord(c *gin.Context) {
	var input struct {
		EmotionName     string  `json:"emotion_name"`
		LikelihoodScore float64 `json:"likelihood_score"`
		ColourDisplayed string  `json:"colour_displayed"`
		RecordDate      string  `json:"record_date"`
		ColourMatch     bool    `json:"colour_match"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if input.EmotionName == "" || input.ColourDisplayed == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "emotion_name and colour_displayed are required"})
		return
	}

	recordDate, err := time.Parse("2006-01-02", input.RecordDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "record_date must be YYYY-MM-DD"})
		return
	}

	record := models.Record{
		EmotionName:     input.EmotionName,
		LikelihoodScore: input.LikelihoodScore,
		ColourDisplayed: input.ColourDisplayed,
		RecordDate:      recordDate,
		ColourMatch:     input.ColourMatch,
	}

	if err := rc.records.Create(&record); err != nil {
		rc.log.Error("creating record failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create record"})
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (rc *RecordController) UpdateRecord(c *gin.Context) {
	id, err := parseRecordID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record id"})
		return
	}

	var input struct {
		EmotionName     *string  `json:"emotion_name"`
		LikelihoodScore *float64 `json:"likelihood_score"`
		ColourDisplayed *string  `json:"colour_displayed"`
		RecordDate      *string  `json:"record_date"`
		ColourMatch     *bool    `json:"colour_match"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	fields := map[string]interface{}{}
	if input.EmotionName != nil {
		fields["emotion_name"] = *input.EmotionName
	}
	if input.LikelihoodScore != nil {
		fields["likelihood_score"] = *input.LikelihoodScore
	}
	if input.ColourDisplayed != nil {
		fields["colour_displayed"] = *input.ColourDisplayed
	}
	if input.RecordDate != nil {
		recordDate, err := time.Parse("2006-01-02", *input.RecordDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "record_date must be YYYY-MM-DD"})
			return
		}
		fields["record_date"] = recordDate
	}
	if input.ColourMatch != nil {
		fields["colour_match"] = *input.ColourMatch
	}

	record, err := rc.records.Update(id, fields)
	if errors.Is(err, services.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}
	if err != nil {
		rc.log.Error("updating record failed", "record_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update record"})
		return
	}
	c.JSON(http.StatusOK, record)
}

func (rc *RecordController) DeleteRecord(c *gin.Context) {
	id, err := parseRecordID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record id"})
		return
	}

	err = rc.records.Delete(id)
	if errors.Is(err, services.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}
	if err != nil {
		rc.log.Error("deleting record failed", "record_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete record"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Record deleted successfully"})
}

func parseRecordID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
