package main

import (
	"log"
	"time"

	"exam-platform-backend/internal/config"
	"exam-platform-backend/internal/database"
	"exam-platform-backend/internal/handlers"
	"exam-platform-backend/internal/middleware"
	"exam-platform-backend/internal/services"

	_ "exam-platform-backend/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Online Exam Platform API
// @version         1.0
// @description     API for a timed multiple-choice exam platform: randomized question sets, graded submissions and per-user result history
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)
	if cfg.SeedQuestions {
		database.SeedQuestions(db)
	}

	authService := services.NewAuthService(db, cfg.JWTSecret)
	examService := services.NewExamService(db, cfg.QuestionCount, cfg.TimeLimitSeconds)
	scoringService := services.NewScoringService(
		db, cfg.EnforceDeadline, time.Duration(cfg.DeadlineGraceSec)*time.Second,
	)

	authHandler := handlers.NewAuthHandler(authService)
	examHandler := handlers.NewExamHandler(examService)
	resultsHandler := handlers.NewResultsHandler(scoringService)
	healthHandler := handlers.NewHealthHandler(db)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("regnumber", handlers.RegNumber); err != nil {
			log.Fatalf("failed to register validator: %v", err)
		}
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/health", healthHandler.Health)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/profile", middleware.JWTAuth(authService), authHandler.Profile)
		}

		exam := api.Group("/exam")
		exam.Use(middleware.JWTAuth(authService))
		{
			exam.GET("/questions", examHandler.GetQuestions)
		}

		results := api.Group("/results")
		results.Use(middleware.JWTAuth(authService))
		{
			results.POST("/submit", resultsHandler.Submit)
			results.GET("/:resultId", resultsHandler.GetResult)
			results.GET("", resultsHandler.ListResults)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
