package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adiprasetyo/task-tracker-api/internal/constants"
	"github.com/adiprasetyo/task-tracker-api/internal/dto"
	"github.com/adiprasetyo/task-tracker-api/internal/response"
	"github.com/adiprasetyo/task-tracker-api/internal/services"
)

// ProjectHandler coordinates project management endpoints.
//
// Project endpoints validate explicitly and report failures as 400 with a
// field-error map, unlike the 422 binding channel used elsewhere. Clients
// depend on the split, so both channels stay as they are.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

type projectRequest struct {
	ProjectName string `json:"project_name" form:"project_name"`
	StartDate   string `json:"start_date" form:"start_date"`
	EndDate     string `json:"end_date" form:"end_date"`
}

// validate checks the request and returns the parsed input, or a field-error
// map when anything fails.
func (r projectRequest) validate() (services.ProjectInput, map[string]string) {
	fields := map[string]string{}
	var input services.ProjectInput

	switch {
	case r.ProjectName == "":
		fields["project_name"] = "The project_name field is required."
	case len(r.ProjectName) > constants.MaxNameLength:
		fields["project_name"] = "The project_name may not be greater than 255 characters."
	default:
		input.ProjectName = r.ProjectName
	}

	var start time.Time
	if r.StartDate == "" {
		fields["start_date"] = "The start_date field is required."
	} else {
		parsed, err := parseDate(r.StartDate)
		if err != nil {
			fields["start_date"] = "The start_date is not a valid date."
		} else {
			start = parsed
			input.StartDate = parsed
		}
	}

	if r.EndDate != "" {
		end, err := parseDate(r.EndDate)
		switch {
		case err != nil:
			fields["end_date"] = "The end_date is not a valid date."
		case !start.IsZero() && end.Before(start):
			fields["end_date"] = "The end_date must be a date after or equal to start_date."
		default:
			input.EndDate = &end
		}
	}

	if len(fields) > 0 {
		return services.ProjectInput{}, fields
	}
	return input, nil
}

// Index returns all projects.
func (h *ProjectHandler) Index(c *gin.Context) {
	projects, err := h.projectService.List()
	if err != nil {
		response.Internal(c, "An error occurred while retrieving projects: "+err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Projects retrieved successfully", dto.ToProjectCollection(projects))
}

// Store creates a new project.
func (h *ProjectHandler) Store(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, map[string]string{"request": "The request body is invalid."})
		return
	}

	input, fields := req.validate()
	if fields != nil {
		response.Error(c, http.StatusBadRequest, fields)
		return
	}

	project, err := h.projectService.Create(input)
	if err != nil {
		response.Internal(c, "An error occurred while creating the project: "+err.Error())
		return
	}

	response.Success(c, http.StatusCreated, "Project created successfully", dto.ToProjectResource(*project))
}

// Update replaces all fields of a project. A missing row falls through to
// the 500 channel with the store's error text.
func (h *ProjectHandler) Update(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, map[string]string{"request": "The request body is invalid."})
		return
	}

	input, fields := req.validate()
	if fields != nil {
		response.Error(c, http.StatusBadRequest, fields)
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Internal(c, "An error occurred while updating the project: "+err.Error())
		return
	}

	project, err := h.projectService.Update(id, input)
	if err != nil {
		response.Internal(c, "An error occurred while updating the project: "+err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Project updated successfully", dto.ToProjectResource(*project))
}

// Destroy removes a project.
func (h *ProjectHandler) Destroy(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Internal(c, "An error occurred while deleting the project: "+err.Error())
		return
	}

	if err := h.projectService.Delete(id); err != nil {
		response.Internal(c, "An error occurred while deleting the project: "+err.Error())
		return
	}

	response.SuccessMessage(c, http.StatusOK, "Project deleted successfully")
}
