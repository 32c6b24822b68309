package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Yusha2849/machine-learning-emotion-regulator/controllers"
	"github.com/Yusha2849/machine-learning-emotion-regulator/database"
	"github.com/Yusha2849/machine-learning-emotion-regulator/logger"
	"github.com/Yusha2849/machine-learning-emotion-regulator/middleware"
	"github.com/Yusha2849/machine-learning-emotion-regulator/models"
	"github.com/Yusha2849/machine-learning-emotion-regulator/routes"
	"github.com/Yusha2849/machine-learning-emotion-regulator/services"
)

func main() {
	_ = godotenv.Load()

	log, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		panic("failed to build logger: " + err.Error())
	}
	defer log.Sync()

	database.Connect()
	if err := database.DB.AutoMigrate(
		&models.Emotion{},
		&models.ColourScore{},
		&models.Record{},
	); err != nil {
		log.Fatal("migration failed", "error", err)
	}
	if err := database.Seed(database.DB); err != nil {
		log.Fatal("seeding failed", "error", err)
	}

	scores := services.NewScoreStore(database.DB)
	recordLog := services.NewRecordLog(database.DB)
	engine := services.NewUpdateEngine(database.DB, scores, recordLog, log)

	labels := models.ReferenceEmotionNames()
	var classifier services.Classifier
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		classifier = services.NewOpenAIClassifier(apiKey, labels, log)
	} else {
		log.Warn("OPENAI_API_KEY not set, using keyword classifier")
		classifier = services.NewKeywordClassifier(labels)
	}

	charts, err := services.NewChartRenderer(scores, log)
	if err != nil {
		log.Fatal("chart renderer init failed", "error", err)
	}
	mailer := services.NewContactMailer(services.MailConfigFromEnv(), log)

	emotionController := controllers.NewEmotionController(scores, engine, classifier, log)
	recordController := controllers.NewRecordController(recordLog, log)
	contactController := controllers.NewContactController(mailer, log)
	resultsController := controllers.NewResultsController(charts, log)

	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middleware.RequestID())

	routes.EmotionRoutes(r, emotionController)
	routes.RecordRoutes(r, recordController)
	routes.MiscRoutes(r, contactController, resultsController)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Info("starting server", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("server stopped", "error", err)
	}
}
