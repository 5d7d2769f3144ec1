package dto

import (
	"github.com/adiprasetyo/task-tracker-api/internal/constants"
	"github.com/adiprasetyo/task-tracker-api/internal/models"
)

// TaskResource is the public projection of a task.
type TaskResource struct {
	ID          uint64  `json:"id"`
	ProjectID   uint64  `json:"project_id"`
	UserID      uint64  `json:"user_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	DueDate     string  `json:"due_date"`
}

// ToTaskResource converts a Task model to its public representation.
func ToTaskResource(task models.Task) TaskResource {
	return TaskResource{
		ID:          task.ID,
		ProjectID:   task.ProjectID,
		UserID:      task.UserID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		DueDate:     task.DueDate.Format(constants.DateFormat),
	}
}

// ToTaskCollection converts a slice of tasks.
func ToTaskCollection(tasks []models.Task) []TaskResource {
	out := make([]TaskResource, len(tasks))
	for i, t := range tasks {
		out[i] = ToTaskResource(t)
	}
	return out
}
