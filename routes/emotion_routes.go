package routes

import (
	"github.com/Yusha2849/machine-learning-emotion-regulator/controllers"
	"github.com/gin-gonic/gin"
)

func EmotionRoutes(r *gin.Engine, ec *controllers.EmotionController) {
	r.GET("/colours/:description", ec.DisplayColours)
	r.POST("/process_results", ec.ProcessResults)
}
