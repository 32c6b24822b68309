package controllers

import (
	"errors"
	"net/http"

	"github.com/Yusha2849/machine-learning-emotion-regulator/logger"
	"github.com/Yusha2849/machine-learning-emotion-regulator/models"
	"github.com/Yusha2849/machine-learning-emotion-regulator/services"
	"github.com/gin-gonic/gin"
)

type EmotionController struct {
	scores     *services.ScoreStore
	engine     *services.UpdateEngine
	classifier services.Classifier
	log        *logger.Logger
}

func NewEmotionController(scores *services.ScoreStore, engine *services.UpdateEngine, classifier services.Classifier, log *logger.Logger) *EmotionController {
	return &EmotionController{
		scores:     scores,
		engine:     engine,
		classifier: classifier,
		log:        log,
	}
}

// DisplayColours resolves a free-text description to a canonical emotion and
// returns its colours ranked by likelihood.
func (ec *EmotionController) DisplayColours(c *gin.Context) {
	description := c.Param("description")

	emotionName, err := ec.classifier.Classify(c.Request.Context(), description)
	if errors.Is(err, services.ErrNoMatch) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No emotion matched the description"})
		return
	}
	if err != nil {
		ec.log.Error("classification failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to classify description"})
		return
	}

	values, err := ec.scores.GetScores(emotionName, models.ColourIdentifiers())
	if errors.Is(err, services.ErrEmotionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Emotion not found"})
		return
	}
	if err != nil {
		ec.log.Error("fetching scores failed", "emotion", emotionName, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch colours"})
		return
	}

	ranked, err := services.RankScores(values)
	if err != nil {
		ec.log.Error("ranking failed", "emotion", emotionName, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rank colours"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"emotion_name": emotionName,
		"colours":      ranked,
	})
}

// ProcessResults applies one batch of match/no-match judgments. results[i]
// pairs with colours[i]; when colours is longer than results only the judged
// prefix counts.
func (ec *EmotionController) ProcessResults(c *gin.Context) {
	var input struct {
		Results     []int    `json:"results"`
		Colours     []string `json:"colours"`
		EmotionName string   `json:"emotion_name"`
	}

	if err := c.ShouldBindJSON(&input); err != nil || input.Results == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Bad request, results not found"})
		return
	}

	n := len(input.Results)
	if len(input.Colours) < n {
		n = len(input.Colours)
	}
	judgments := make([]services.Judgment, 0, n)
	for i := 0; i < n; i++ {
		judgments = append(judgments, services.Judgment{
			Colour: input.Colours[i],
			Choice: input.Results[i],
		})
	}

	if err := ec.engine.ApplyJudgments(input.EmotionName, judgments); err != nil {
		if errors.Is(err, services.ErrEmotionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Emotion not found"})
			return
		}
		ec.log.Error("applying judgments failed", "emotion", input.EmotionName, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to process results"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Results processed successfully!"})
}
