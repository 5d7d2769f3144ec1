package main

import (
	"github.com/gin-gonic/gin"

	"github.com/adiprasetyo/task-tracker-api/internal/config"
	"github.com/adiprasetyo/task-tracker-api/internal/database"
	"github.com/adiprasetyo/task-tracker-api/internal/handlers"
	"github.com/adiprasetyo/task-tracker-api/internal/logging"
	"github.com/adiprasetyo/task-tracker-api/internal/repository"
	"github.com/adiprasetyo/task-tracker-api/internal/services"
	"github.com/adiprasetyo/task-tracker-api/internal/storage"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)

	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Info("Database connection established")

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if cfg.DBDriver == "postgres" {
		if err := database.AddIndexes(db); err != nil {
			log.Fatalf("Failed to create indexes: %v", err)
		}
	}

	// Repositories are constructed once and injected everywhere.
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	tokenRepo := repository.NewTokenRepository(db)

	avatars := storage.NewAvatarStore(cfg.StoragePath)

	authService := services.NewAuthService(userRepo, tokenRepo)
	userService := services.NewUserService(userRepo)
	projectService := services.NewProjectService(projectRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo, userRepo)

	r := handlers.NewRouter(handlers.RouterDeps{
		Auth:        handlers.NewAuthHandler(authService, avatars),
		Users:       handlers.NewUserHandler(userService, avatars),
		Projects:    handlers.NewProjectHandler(projectService),
		Tasks:       handlers.NewTaskHandler(taskService),
		Tokens:      tokenRepo,
		Logger:      log,
		StoragePath: cfg.StoragePath,
	})

	addr := ":" + cfg.AppPort
	log.Infof("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
