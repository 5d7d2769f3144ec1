package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/adiprasetyo/task-tracker-api/internal/models"
	"github.com/adiprasetyo/task-tracker-api/internal/repository"
)

var (
	ErrProjectMissing = errors.New("project does not exist")
	ErrOwnerMissing   = errors.New("user does not exist")
	ErrNotTaskOwner   = errors.New("caller does not own task")
)

// TaskService handles task management business logic.
type TaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository, userRepo repository.UserRepository) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// TaskInput holds the validated fields for a task.
type TaskInput struct {
	ProjectID   uint64
	UserID      uint64
	Title       string
	Description *string
	Status      string
	DueDate     time.Time
}

// List returns all tasks.
func (s *TaskService) List() ([]models.Task, error) {
	return s.taskRepo.List()
}

// Get returns a single task. A missing row surfaces as the store's
// not-found error for the caller to report.
func (s *TaskService) Get(id uint64) (*models.Task, error) {
	return s.taskRepo.FindByID(id)
}

// Create inserts a new task after checking both referenced rows exist.
// No row is written when either reference is dangling.
func (s *TaskService) Create(input TaskInput) (*models.Task, error) {
	if err := s.checkReferences(input); err != nil {
		return nil, err
	}

	task := &models.Task{
		ProjectID:   input.ProjectID,
		UserID:      input.UserID,
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		DueDate:     input.DueDate,
	}
	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// Update replaces all fields of a task. Only the owning user may update;
// anyone else gets ErrNotTaskOwner and the row is untouched. Reference
// checks run before the lookup, matching the request validation order.
func (s *TaskService) Update(id, callerID uint64, input TaskInput) (*models.Task, error) {
	if err := s.checkReferences(input); err != nil {
		return nil, err
	}

	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if task.UserID != callerID {
		return nil, ErrNotTaskOwner
	}

	task.ProjectID = input.ProjectID
	task.UserID = input.UserID
	task.Title = input.Title
	task.Description = input.Description
	task.Status = input.Status
	task.DueDate = input.DueDate

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// Delete removes a task, with the same ownership rule as Update.
func (s *TaskService) Delete(id, callerID uint64) error {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		return err
	}

	if task.UserID != callerID {
		return ErrNotTaskOwner
	}

	if err := s.taskRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

func (s *TaskService) checkReferences(input TaskInput) error {
	ok, err := s.projectRepo.Exists(input.ProjectID)
	if err != nil {
		return fmt.Errorf("failed to check project: %w", err)
	}
	if !ok {
		return ErrProjectMissing
	}

	ok, err = s.userRepo.Exists(input.UserID)
	if err != nil {
		return fmt.Errorf("failed to check user: %w", err)
	}
	if !ok {
		return ErrOwnerMissing
	}

	return nil
}
