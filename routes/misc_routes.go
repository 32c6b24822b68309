package routes

import (
	"net/http"

	"github.com/Yusha2849/machine-learning-emotion-regulator/controllers"
	"github.com/gin-gonic/gin"
)

func MiscRoutes(r *gin.Engine, cc *controllers.ContactController, resc *controllers.ResultsController) {
	r.GET("/healthcheck", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/contact", cc.SubmitContact)
	r.GET("/results", resc.GetResults)
}
