package routes

import (
	"github.com/Yusha2849/machine-learning-emotion-regulator/controllers"
	"github.com/gin-gonic/gin"
)

func RecordRoutes(r *gin.Engine, rc *controllers.RecordController) {
	records := r.Group("/records")
	{
		records.GET("", rc.GetRecords)
		records.GET("/:id", rc.GetRecordByID)
		records.POST("", rc.CreateRecord)
		records.PUT("/:id", rc.UpdateRecord)
		records.DELETE("/:id", rc.DeleteRecord)
	}
}
