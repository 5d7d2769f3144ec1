package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adiprasetyo/task-tracker-api/internal/dto"
	"github.com/adiprasetyo/task-tracker-api/internal/response"
	"github.com/adiprasetyo/task-tracker-api/internal/services"
	"github.com/adiprasetyo/task-tracker-api/internal/storage"
)

// UserHandler coordinates user management endpoints.
type UserHandler struct {
	userService *services.UserService
	avatars     *storage.AvatarStore
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService, avatars *storage.AvatarStore) *UserHandler {
	return &UserHandler{
		userService: userService,
		avatars:     avatars,
	}
}

// Index returns all users.
func (h *UserHandler) Index(c *gin.Context) {
	users, err := h.userService.List()
	if err != nil {
		response.Internal(c, "An error occurred while retrieving users: "+err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Users retrieved successfully", dto.ToUserCollection(users))
}

// Store creates a new user. Unlike registration the phone is optional.
func (h *UserHandler) Store(c *gin.Context) {
	type StoreRequest struct {
		Name     string `json:"name" form:"name" binding:"required,max=255"`
		Phone    string `json:"phone" form:"phone" binding:"omitempty,max=12"`
		Email    string `json:"email" form:"email" binding:"required,email,max=255"`
		Password string `json:"password" form:"password" binding:"required,min=6"`
	}

	var req StoreRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ValidationFailed(c, response.FieldErrors(err))
		return
	}

	avatarPath, err := storeAvatar(c, h.avatars)
	if err != nil {
		if respondAvatarError(c, err) {
			return
		}
		response.Internal(c, "An error occurred while creating the user: "+err.Error())
		return
	}

	user, err := h.userService.Create(services.RegisterInput{
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
		response.Internal(c, "An error occurred while creating the user: "+err.Error())
		return
	}

	response.Success(c, http.StatusCreated, "User created successfully", dto.ToUserResource(*user))
}

// Update replaces the user's profile fields wholesale.
func (h *UserHandler) Update(c *gin.Context) {
	type UpdateRequest struct {
		Name     string `json:"name" form:"name" binding:"required,max=255"`
		Phone    string `json:"phone" form:"phone" binding:"required,max=12"`
		Email    string `json:"email" form:"email" binding:"required,email,max=255"`
		Password string `json:"password" form:"password" binding:"required,min=6"`
	}

	var req UpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ValidationFailed(c, response.FieldErrors(err))
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "User not found")
		return
	}

	avatarPath, err := storeAvatar(c, h.avatars)
	if err != nil {
		if respondAvatarError(c, err) {
			return
		}
		response.Internal(c, "An error occurred while updating the user: "+err.Error())
		return
	}

	user, err := h.userService.Update(id, services.RegisterInput{
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		Password:   req.Password,
		AvatarPath: avatarPath,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			emailTakenResponse(c)
		case errors.Is(err, services.ErrUserNotFound):
			response.NotFound(c, "User not found")
		default:
			response.Internal(c, "An error occurred while updating the user: "+err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, "User updated successfully", dto.ToUserResource(*user))
}

// Destroy removes a user.
func (h *UserHandler) Destroy(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "User not found")
		return
	}

	if err := h.userService.Delete(id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.Internal(c, "An error occurred while deleting the user: "+err.Error())
		return
	}

	response.SuccessMessage(c, http.StatusOK, "User deleted successfully")
}
