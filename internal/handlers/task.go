package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adiprasetyo/task-tracker-api/internal/dto"
	"github.com/adiprasetyo/task-tracker-api/internal/middleware"
	"github.com/adiprasetyo/task-tracker-api/internal/response"
	"github.com/adiprasetyo/task-tracker-api/internal/services"
)

// TaskHandler coordinates task management endpoints.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

type taskRequest struct {
	ProjectID   uint64  `json:"project_id" form:"project_id" binding:"required"`
	UserID      uint64  `json:"user_id" form:"user_id" binding:"required"`
	Title       string  `json:"title" form:"title" binding:"required,max=255"`
	Description *string `json:"description" form:"description"`
	Status      string  `json:"status" form:"status" binding:"required,max=50"`
	DueDate     string  `json:"due_date" form:"due_date" binding:"required"`
}

// toInput parses the due date; a bad date joins the field-error map.
func (r taskRequest) toInput() (services.TaskInput, map[string]string) {
	due, err := parseDate(r.DueDate)
	if err != nil {
		return services.TaskInput{}, map[string]string{"due_date": "The due_date is not a valid date."}
	}

	return services.TaskInput{
		ProjectID:   r.ProjectID,
		UserID:      r.UserID,
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		DueDate:     due,
	}, nil
}

// Index returns all tasks. Reads are unrestricted.
func (h *TaskHandler) Index(c *gin.Context) {
	tasks, err := h.taskService.List()
	if err != nil {
		response.Internal(c, "An error occurred while retrieving tasks: "+err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Tasks retrieved successfully", dto.ToTaskCollection(tasks))
}

// Show returns a single task by ID.
func (h *TaskHandler) Show(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Internal(c, "An error occurred while retrieving the task: "+err.Error())
		return
	}

	task, err := h.taskService.Get(id)
	if err != nil {
		response.Internal(c, "An error occurred while retrieving the task: "+err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Task retrieved successfully", dto.ToTaskResource(*task))
}

// Store creates a new task after the cross-entity reference checks pass.
func (h *TaskHandler) Store(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ValidationFailed(c, response.FieldErrors(err))
		return
	}

	input, fields := req.toInput()
	if fields != nil {
		response.ValidationFailed(c, fields)
		return
	}

	task, err := h.taskService.Create(input)
	if err != nil {
		if h.respondReferenceError(c, err) {
			return
		}
		response.Internal(c, "An error occurred while creating the task: "+err.Error())
		return
	}

	response.Success(c, http.StatusCreated, "Task created successfully", dto.ToTaskResource(*task))
}

// Update replaces all fields of a task owned by the caller.
func (h *TaskHandler) Update(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ValidationFailed(c, response.FieldErrors(err))
		return
	}

	input, fields := req.toInput()
	if fields != nil {
		response.ValidationFailed(c, fields)
		return
	}

	callerID, exists := middleware.GetUserID(c)
	if !exists {
		response.Unauthorized(c, "Unauthenticated")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Internal(c, "An error occurred while updating the task: "+err.Error())
		return
	}

	task, err := h.taskService.Update(id, callerID, input)
	if err != nil {
		if h.respondReferenceError(c, err) {
			return
		}
		if errors.Is(err, services.ErrNotTaskOwner) {
			response.Forbidden(c, "Unauthorized to update this task")
			return
		}
		response.Internal(c, "An error occurred while updating the task: "+err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Task updated successfully", dto.ToTaskResource(*task))
}

// Destroy removes a task owned by the caller.
func (h *TaskHandler) Destroy(c *gin.Context) {
	callerID, exists := middleware.GetUserID(c)
	if !exists {
		response.Unauthorized(c, "Unauthenticated")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Internal(c, "An error occurred while deleting the task: "+err.Error())
		return
	}

	if err := h.taskService.Delete(id, callerID); err != nil {
		if errors.Is(err, services.ErrNotTaskOwner) {
			response.Forbidden(c, "Unauthorized to delete this task")
			return
		}
		response.Internal(c, "An error occurred while deleting the task: "+err.Error())
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Task deleted successfully")
}

func (h *TaskHandler) respondReferenceError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, services.ErrProjectMissing):
		response.ValidationFailed(c, map[string]string{
			"project_id": "The selected project_id is invalid.",
		})
		return true
	case errors.Is(err, services.ErrOwnerMissing):
		response.ValidationFailed(c, map[string]string{
			"user_id": "The selected user_id is invalid.",
		})
		return true
	default:
		return false
	}
}
