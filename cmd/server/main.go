package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"learnquest/internal/app"
	"learnquest/internal/config"
	"learnquest/internal/handlers"
	"learnquest/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Open the configured store backend (remote, SQL or memory)
	stores, closeStores, err := app.OpenStores(cfg)
	if err != nil {
		log.Fatalf("Failed to open record store: %v", err)
	}
	defer closeStores()

	// Initialize services
	childService := service.NewChildService(stores.Children)
	levelService := service.NewLevelService(stores.Levels)
	questionService := service.NewQuestionService(stores.Questions, cfg.QuestionsPerSession)
	activityService := service.NewActivityService(stores.Activities, childService, levelService)
	progressService := service.NewProgressService(stores.Progress)
	dashboardService := service.NewDashboardService(stores.Activities, stores.Progress, stores.Children)

	reportService, err := service.NewReportService(cfg.AWSRegion, cfg.ReportFromEmail, cfg.ReportFromName, dashboardService)
	if err != nil {
		log.Fatalf("Failed to initialize report service: %v", err)
	}

	// Initialize handlers and routes
	router := handlers.NewRouter(
		handlers.NewChildHandler(childService),
		handlers.NewLevelHandler(levelService, questionService),
		handlers.NewQuestionHandler(questionService),
		handlers.NewActivityHandler(activityService),
		handlers.NewProgressHandler(progressService),
		handlers.NewDashboardHandler(dashboardService),
		handlers.NewReportHandler(reportService),
	)

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
