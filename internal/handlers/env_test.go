package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/adiprasetyo/task-tracker-api/internal/database"
	"github.com/adiprasetyo/task-tracker-api/internal/repository"
	"github.com/adiprasetyo/task-tracker-api/internal/services"
	"github.com/adiprasetyo/task-tracker-api/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	storageDir  string
	authService *services.AuthService
	userRepo    repository.UserRepository
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
	tokenRepo   repository.TokenRepository
}

func setupTestEnv(t *testing.T) testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	tokenRepo := repository.NewTokenRepository(db)

	storageDir := t.TempDir()
	avatars := storage.NewAvatarStore(storageDir)

	authService := services.NewAuthService(userRepo, tokenRepo)
	userService := services.NewUserService(userRepo)
	projectService := services.NewProjectService(projectRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo, userRepo)

	router := NewRouter(RouterDeps{
		Auth:     NewAuthHandler(authService, avatars),
		Users:    NewUserHandler(userService, avatars),
		Projects: NewProjectHandler(projectService),
		Tasks:    NewTaskHandler(taskService),
		Tokens:   tokenRepo,
	})

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return testEnv{
		db:          db,
		router:      router,
		storageDir:  storageDir,
		authService: authService,
		userRepo:    userRepo,
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		tokenRepo:   tokenRepo,
	}
}

// doJSON performs a JSON request against the env's router.
func (env testEnv) doJSON(t *testing.T, method, url string, payload interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// registerAndLogin creates an account through the API and returns its user id
// and a live bearer token.
func (env testEnv) registerAndLogin(t *testing.T, email string) (uint64, string) {
	t.Helper()

	w := env.doJSON(t, http.MethodPost, "/register", map[string]string{
		"name":     "Test User",
		"phone":    "081234567890",
		"email":    email,
		"password": "supersecret",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	userID := uint64(data["id"].(float64))

	w = env.doJSON(t, http.MethodPost, "/login", map[string]string{
		"email":    email,
		"password": "supersecret",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	login := decodeBody(t, w)
	token := login["access_token"].(string)
	require.NotEmpty(t, token)

	return userID, token
}
