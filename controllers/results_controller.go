package controllers

import (
	"net/http"

	"github.com/Yusha2849/machine-learning-emotion-regulator/logger"
	"github.com/Yusha2849/machine-learning-emotion-regulator/services"
	"github.com/gin-gonic/gin"
)

type ResultsController struct {
	charts *services.ChartRenderer
	log    *logger.Logger
}

func NewResultsController(charts *services.ChartRenderer, log *logger.Logger) *ResultsController {
	return &ResultsController{charts: charts, log: log}
}

// GetResults returns the dataset-vs-system comparison charts for every
// canonical emotion as base64 PNGs.
func (rc *ResultsController) GetResults(c *gin.Context) {
	charts, err := rc.charts.RenderAll()
	if err != nil {
		rc.log.Error("rendering result charts failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render results"})
		return
	}
	c.JSON(http.StatusOK, charts)
}
