package dto

import (
	"github.com/adiprasetyo/task-tracker-api/internal/constants"
	"github.com/adiprasetyo/task-tracker-api/internal/models"
)

// ProjectResource is the public projection of a project. Dates are rendered
// as plain YYYY-MM-DD strings, end_date as null when unset.
type ProjectResource struct {
	ID          uint64  `json:"id"`
	ProjectName string  `json:"project_name"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
}

// ToProjectResource converts a Project model to its public representation.
func ToProjectResource(project models.Project) ProjectResource {
	res := ProjectResource{
		ID:          project.ID,
		ProjectName: project.ProjectName,
		StartDate:   project.StartDate.Format(constants.DateFormat),
	}
	if project.EndDate != nil {
		end := project.EndDate.Format(constants.DateFormat)
		res.EndDate = &end
	}
	return res
}

// ToProjectCollection converts a slice of projects.
func ToProjectCollection(projects []models.Project) []ProjectResource {
	out := make([]ProjectResource, len(projects))
	for i, p := range projects {
		out[i] = ToProjectResource(p)
	}
	return out
}
