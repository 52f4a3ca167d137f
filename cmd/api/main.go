package main

import (
	"fmt"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"jobtrackr/internal/auth"
	"jobtrackr/internal/config"
	"jobtrackr/internal/database"
	"jobtrackr/internal/handlers"
	"jobtrackr/internal/logger"
	"jobtrackr/internal/middleware"
	"jobtrackr/internal/services"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Error("database connection failed", "err", err)
		os.Exit(1)
	}
	log.Info("database connection established")

	tokens := auth.NewTokenProvider(cfg.JWTSecret, cfg.TokenTTL)

	authService := services.NewAuthService(db, tokens, log)
	jobService := services.NewJobService(db, log)
	statsService := services.NewStatsService(db, log)
	exportService := services.NewExportService()
	resumeService := services.NewResumeService(db, log)
	interviewService := services.NewInterviewService(db, jobService, log)
	contactService := services.NewContactService(db, log)

	authHandler := handlers.NewAuthHandler(authService)
	jobHandler := handlers.NewJobHandler(jobService, statsService, exportService)
	trackerHandler := handlers.NewTrackerHandler(resumeService, interviewService, contactService)

	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		protected := api.Group("", middleware.Auth(tokens))
		{
			protected.GET("/auth/me", authHandler.Me)

			protected.GET("/jobs", jobHandler.List)
			protected.POST("/jobs", jobHandler.Create)
			protected.GET("/jobs/download", jobHandler.Download)
			protected.GET("/jobs/export/csv", jobHandler.ExportCSV)
			protected.GET("/jobs/export/xlsx", jobHandler.ExportXLSX)
			protected.GET("/jobs/:id", jobHandler.Get)
			protected.PUT("/jobs/:id", jobHandler.Update)
			protected.DELETE("/jobs/:id", jobHandler.Delete)

			protected.GET("/stats", jobHandler.StatusCounts)
			protected.GET("/charts", jobHandler.Charts)

			protected.GET("/resumes", trackerHandler.ListResumes)
			protected.POST("/resumes", trackerHandler.CreateResume)
			protected.GET("/resumes/:id", trackerHandler.GetResume)
			protected.PUT("/resumes/:id", trackerHandler.UpdateResume)
			protected.DELETE("/resumes/:id", trackerHandler.DeleteResume)

			protected.GET("/interviews", trackerHandler.ListInterviews)
			protected.POST("/interviews", trackerHandler.CreateInterview)
			protected.GET("/interviews/:id", trackerHandler.GetInterview)
			protected.PUT("/interviews/:id", trackerHandler.UpdateInterview)
			protected.DELETE("/interviews/:id", trackerHandler.DeleteInterview)

			protected.GET("/contacts", trackerHandler.ListContacts)
			protected.POST("/contacts", trackerHandler.CreateContact)
			protected.GET("/contacts/:id", trackerHandler.GetContact)
			protected.PUT("/contacts/:id", trackerHandler.UpdateContact)
			protected.DELETE("/contacts/:id", trackerHandler.DeleteContact)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info("server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Error("server failed", "err", err)
		os.Exit(1)
	}
}
