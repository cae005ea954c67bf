package main

import (
	"log"
	"net/http"
	"time"

	"study-service/internal/config"
	"study-service/internal/db"
	"study-service/internal/event"
	"study-service/internal/handlers"
	"study-service/internal/metrics"
	"study-service/internal/repository"
	"study-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.New()
	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(cfg.MongoURI)
	defer db.DisconnectMongo()
	db.InitRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitURI != "" && cfg.RabbitExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitURI, cfg.RabbitExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, study events will not be published")
	}

	database := db.Client.Database(cfg.MongoDatabase)

	// Content store
	materialRepo := repository.NewMaterialRepository(database)
	questionRepo := repository.NewQuestionRepository(database)
	flashcardRepo := repository.NewFlashcardRepository(database)

	// Score store and quiz session store
	progressRepo := repository.NewProgressRepository(database)
	sessionRepo := repository.NewSessionRepository(db.Redis, cfg.SessionTTL)

	materialService := service.NewMaterialService(materialRepo, questionRepo, flashcardRepo)
	materialHandler := handlers.NewMaterialHandler(materialService)

	progressService := service.NewProgressService(
		progressRepo,
		materialRepo,
		questionRepo,
		flashcardRepo,
		cfg.WeakAreaThreshold,
		cfg.MergeRetries,
	)
	progressHandler := handlers.NewProgressHandler(progressService)

	sessionService := service.NewSessionService(sessionRepo, materialRepo, questionRepo)
	sessionHandler := handlers.NewSessionHandler(sessionService, cfg.DefaultQuizSize)

	r := gin.Default()
	r.Use(metrics.Middleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/metrics", metrics.Handler())

	protected := r.Group("/protected/study")
	protected.Use(requireUser())

	material := protected.Group("/material")
	{
		material.POST("/", materialHandler.CreateMaterial)
		material.GET("/", materialHandler.ListMaterials)
		material.GET("/:materialId", materialHandler.GetMaterial)
		material.DELETE("/:materialId", materialHandler.DeleteMaterial)
		material.GET("/:materialId/questions", materialHandler.ListQuestions)
		material.GET("/:materialId/flashcards", materialHandler.ListFlashcards)
		material.POST("/:materialId/questions", materialHandler.AddQuestions)
		material.POST("/:materialId/flashcards", materialHandler.AddFlashcards)
	}

	progress := protected.Group("/progress")
	{
		progress.GET("/materials", progressHandler.ListMaterialsProgress)
		progress.GET("/:materialId", progressHandler.GetProgress)
		progress.GET("/:materialId/stats", progressHandler.GetStats)
		progress.GET("/:materialId/weak-areas", progressHandler.GetWeakAreas)
		progress.GET("/:materialId/weak-topics", progressHandler.GetWeakTopics)

		progress.POST("/:materialId/flashcard-review", func(c *gin.Context) {
			progressHandler.UpdateFlashcardReview(c)
			if publisher != nil {
				publisher.Publish("progress.updated", gin.H{
					"material_id": c.Param("materialId"),
					"user_id":     c.GetHeader("X-User-ID"),
					"kind":        "flashcard",
				})
			}
		})
		progress.POST("/:materialId/question-review", func(c *gin.Context) {
			progressHandler.UpdateQuestionReview(c)
			if publisher != nil {
				publisher.Publish("progress.updated", gin.H{
					"material_id": c.Param("materialId"),
					"user_id":     c.GetHeader("X-User-ID"),
					"kind":        "question",
				})
			}
		})
	}

	quiz := protected.Group("/quiz")
	{
		quiz.POST("/:materialId/session", func(c *gin.Context) {
			sessionHandler.CreateSession(c)
			if publisher != nil {
				publisher.Publish("quiz.session.created", gin.H{
					"material_id": c.Param("materialId"),
					"user_id":     c.GetHeader("X-User-ID"),
				})
			}
		})
		quiz.POST("/:materialId/session/:sessionId/evaluate", func(c *gin.Context) {
			sessionHandler.EvaluateSession(c)
			if publisher != nil {
				publisher.Publish("quiz.session.evaluated", gin.H{
					"session_id":  c.Param("sessionId"),
					"material_id": c.Param("materialId"),
					"user_id":     c.GetHeader("X-User-ID"),
				})
			}
		})
	}

	r.Run(":" + cfg.Port)
}

// requireUser rejects requests that did not pass the gateway's auth check.
func requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-User-ID") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
