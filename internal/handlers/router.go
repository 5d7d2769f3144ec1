package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/adiprasetyo/task-tracker-api/internal/middleware"
	"github.com/adiprasetyo/task-tracker-api/internal/repository"
)

// RouterDeps carries everything the route table needs.
type RouterDeps struct {
	Auth     *AuthHandler
	Users    *UserHandler
	Projects *ProjectHandler
	Tasks    *TaskHandler
	Tokens   repository.TokenRepository
	Logger   *logrus.Logger

	// StoragePath, when set, is served under /storage for avatar access.
	StoragePath string
}

// NewRouter builds the gin engine with the full route table.
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if deps.Logger != nil {
		r.Use(middleware.RequestLogger(deps.Logger))
	}
	r.Use(middleware.Metrics())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Task Tracker API is running",
		})
	})
	r.GET("/metrics", middleware.MetricsHandler())

	if deps.StoragePath != "" {
		r.Static("/storage", deps.StoragePath)
	}

	requireAuth := middleware.RequireAuth(deps.Tokens)

	// Auth
	r.POST("/register", deps.Auth.Register)
	r.POST("/login", deps.Auth.Login)
	r.POST("/logout", requireAuth, deps.Auth.Logout)

	// Users (no auth enforcement on these routes)
	r.GET("/users", deps.Users.Index)
	r.POST("/users", deps.Users.Store)
	r.PUT("/users/:id", deps.Users.Update)
	r.DELETE("/users/:id", deps.Users.Destroy)

	// Projects
	r.GET("/projects", deps.Projects.Index)
	r.POST("/projects", deps.Projects.Store)
	r.PUT("/projects/:id", deps.Projects.Update)
	r.DELETE("/projects/:id", deps.Projects.Destroy)

	// Tasks: reads are open, mutations require the owning user
	r.GET("/tasks", deps.Tasks.Index)
	r.GET("/tasks/:id", deps.Tasks.Show)
	r.POST("/tasks", deps.Tasks.Store)
	r.PUT("/tasks/:id", requireAuth, deps.Tasks.Update)
	r.DELETE("/tasks/:id", requireAuth, deps.Tasks.Destroy)

	return r
}
