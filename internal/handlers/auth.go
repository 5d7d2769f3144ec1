package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adiprasetyo/task-tracker-api/internal/dto"
	"github.com/adiprasetyo/task-tracker-api/internal/middleware"
	"github.com/adiprasetyo/task-tracker-api/internal/response"
	"github.com/adiprasetyo/task-tracker-api/internal/services"
	"github.com/adiprasetyo/task-tracker-api/internal/storage"
)

// AuthHandler coordinates registration, login and logout.
type AuthHandler struct {
	authService *services.AuthService
	avatars     *storage.AvatarStore
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, avatars *storage.AvatarStore) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		avatars:     avatars,
	}
}

// Register creates a new account.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Name     string `json:"name" form:"name" binding:"required,max=255"`
		Phone    string `json:"phone" form:"phone" binding:"required,max=12"`
		Email    string `json:"email" form:"email" binding:"required,email,max=255"`
		Password string `json:"password" form:"password" binding:"required,min=6"`
	}

	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ValidationFailed(c, response.FieldErrors(err))
		return
	}

	avatarPath, err := storeAvatar(c, h.avatars)
	if err != nil {
		if respondAvatarError(c, err) {
			return
		}
		response.Internal(c, "An error occurred during registration: "+err.Error())
		return
	}

	user, err := h.authService.Register(services.RegisterInput{
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		Password:   req.Password,
		AvatarPath: avatarPath,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			emailTakenResponse(c)
			return
		}
		response.Internal(c, "An error occurred during registration: "+err.Error())
		return
	}

	response.Success(c, http.StatusCreated, "User registered successfully", dto.ToUserResource(*user))
}

// Login verifies credentials and issues a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" form:"email" binding:"required,email"`
		Password string `json:"password" form:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ValidationFailed(c, response.FieldErrors(err))
		return
	}

	_, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Unauthorized(c, "Invalid credentials")
			return
		}
		response.Internal(c, "An error occurred during login: "+err.Error())
		return
	}

	// The token travels alongside the envelope fields, not under data.
	c.JSON(http.StatusOK, gin.H{
		"status":       "success",
		"message":      "Login successful",
		"access_token": token,
		"token_type":   "Bearer",
	})
}

// Logout revokes every token belonging to the caller.
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		response.Unauthorized(c, "Unauthenticated")
		return
	}

	if err := h.authService.Logout(userID); err != nil {
		response.Internal(c, "An error occurred while logging out: "+err.Error())
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Logout successful")
}
