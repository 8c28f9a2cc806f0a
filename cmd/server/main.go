package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codearena/internal/api"
	"codearena/internal/api/handler"
	"codearena/internal/app/service"
	"codearena/internal/common/security"
	"codearena/internal/domain/repository"
	"codearena/internal/judge"
	"codearena/internal/platform/cache"
	"codearena/internal/platform/config"
	"codearena/internal/platform/database"
)

func main() {
	// 1. Load Configuration
	config.Load()
	fmt.Println("Configuration loaded.")

	// 2. Initialize JWT
	security.InitJWT()
	fmt.Println("JWT initialized.")

	// 3. Initialize Database
	database.Connect()
	defer database.Close()
	fmt.Println("Database connected.")

	// 4. Initialize Redis
	cache.ConnectRedis()
	defer cache.CloseRedis()
	fmt.Println("Redis connected.")

	// 5. Initialize Repositories
	userRepo := repository.NewPgUserRepository(database.DB)
	contestRepo := repository.NewPgContestRepository(database.DB)
	questionRepo := repository.NewPgQuestionRepository(database.DB)
	problemRepo := repository.NewPgProblemRepository(database.DB)
	submissionRepo := repository.NewPgSubmissionRepository(database.DB)

	// 6. Initialize Judge
	sandbox := judge.NewNodeSandbox(
		config.AppConfig.JudgeNodeBinary,
		config.AppConfig.JudgeTempDir,
		int64(config.AppConfig.JudgeMaxOutputKB)*1024,
		config.AppConfig.JudgeMaxConcurrent,
	)
	grader := judge.New(sandbox)
	fmt.Println("Judge initialized.")

	// 7. Initialize Services
	authService := service.NewAuthService(userRepo)
	contestService := service.NewContestService(contestRepo, questionRepo, problemRepo)
	problemService := service.NewProblemService(contestRepo, problemRepo)
	submissionService := service.NewSubmissionService(contestRepo, questionRepo, problemRepo, submissionRepo, grader)
	leaderboardService := service.NewLeaderboardService(contestRepo, submissionRepo, cache.RDB, config.AppConfig.LeaderboardCacheTTL)

	// 8. Initialize Router & HTTP Server
	authHandler := handler.NewAuthHandler(authService)
	contestHandler := handler.NewContestHandler(contestService, problemService, submissionService, leaderboardService)
	problemHandler := handler.NewProblemHandler(problemService, submissionService)
	router := api.NewRouter(authHandler, contestHandler, problemHandler)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second, // grading runs inside the request
		IdleTimeout:  120 * time.Second,
	}

	// 9. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.APIPort, err)
		}
	}()
	log.Println("Server started successfully.")

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}
