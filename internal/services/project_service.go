package services

import (
	"time"

	"github.com/adiprasetyo/task-tracker-api/internal/models"
	"github.com/adiprasetyo/task-tracker-api/internal/repository"
)

// ProjectService handles project management business logic.
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// ProjectInput holds the validated fields for a project.
type ProjectInput struct {
	ProjectName string
	StartDate   time.Time
	EndDate     *time.Time
}

// List returns all projects.
func (s *ProjectService) List() ([]models.Project, error) {
	return s.projectRepo.List()
}

// Create inserts a new project.
func (s *ProjectService) Create(input ProjectInput) (*models.Project, error) {
	project := &models.Project{
		ProjectName: input.ProjectName,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
	}
	if err := s.projectRepo.Create(project); err != nil {
		return nil, err
	}
	return project, nil
}

// Update replaces all three fields of an existing project. A missing row
// surfaces as the store's not-found error for the caller to report.
func (s *ProjectService) Update(id uint64, input ProjectInput) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	project.ProjectName = input.ProjectName
	project.StartDate = input.StartDate
	project.EndDate = input.EndDate

	if err := s.projectRepo.Update(project); err != nil {
		return nil, err
	}
	return project, nil
}

// Delete removes a project by ID.
func (s *ProjectService) Delete(id uint64) error {
	if _, err := s.projectRepo.FindByID(id); err != nil {
		return err
	}
	return s.projectRepo.Delete(id)
}
