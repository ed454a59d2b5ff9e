package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"job-application-api/internal/config"
	"job-application-api/internal/handlers"
	"job-application-api/internal/repositories"
	"job-application-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("Config loaded successfully")

	// Initialize in-memory repositories. Everything in them is gone on
	// restart; resume files on disk outlive the records pointing at them.
	appRepo := repositories.NewApplicationRepository()
	sessionRepo := repositories.NewSessionRepository()
	log.Println("Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.ResumeDir)
	if err := storageService.EnsureResumeDir(); err != nil {
		log.Fatalf("Failed to create resume directory: %v", err)
	}

	pdfInspector := services.NewPDFInspector()
	ttsService := services.NewElevenLabsService(cfg.ElevenLabs, cfg.Upstream.Timeout)
	log.Println("Services initialized successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini AI: %v", err)
	}
	log.Println("Gemini AI initialized successfully")

	interviewService := services.NewInterviewService(sessionRepo, geminiService)

	// Initialize handlers
	applicationHandler := handlers.NewApplicationHandler(appRepo, storageService, pdfInspector)
	speechHandler := handlers.NewSpeechHandler(ttsService)
	interviewHandler := handlers.NewInterviewHandler(interviewService, sessionRepo, cfg.Upstream.Timeout)
	adminHandler := handlers.NewAdminHandler(appRepo, sessionRepo)
	log.Println("Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Job Application API",
		ReadTimeout:  30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string {
			return uuid.NewString()
		},
	}))
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Job Application API",
			"endpoints": fiber.Map{
				"POST /api/job-application":              "Submit job application with resume",
				"POST /api/text-to-speech":               "Convert text to speech audio",
				"GET /api/applications":                  "Get all applications (admin)",
				"POST /api/interview/generate-questions": "Generate interview questions",
				"POST /api/interview/evaluate":           "Evaluate interview answers",
				"GET /api/interview/session/:id":         "Get interview session",
				"GET /api/admin/storage":                 "Inspect in-memory storage",
				"DELETE /api/admin/storage/reset":        "Clear in-memory storage",
			},
		})
	})

	// Routes
	api := app.Group("/api")

	api.Post("/job-application", applicationHandler.HandleSubmit)
	api.Post("/text-to-speech", speechHandler.HandleTextToSpeech)
	api.Get("/applications", applicationHandler.HandleList)
	api.Get("/applications/:id", applicationHandler.HandleGet)
	api.Get("/applications/:id/resume", applicationHandler.HandleDownloadResume)
	api.Get("/resumes", applicationHandler.HandleListResumes)

	api.Post("/interview/generate-questions", interviewHandler.HandleGenerateQuestions)
	api.Post("/interview/evaluate", interviewHandler.HandleEvaluate)
	api.Get("/interview/session/:id", interviewHandler.HandleGetSession)
	api.Get("/interview/sessions", interviewHandler.HandleListSessions)

	api.Get("/admin/storage", adminHandler.HandleStorageSnapshot)
	api.Delete("/admin/storage/reset", adminHandler.HandleReset)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
