package handlers

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/migration-tracker/internal/analytics"
	"github.com/yukikurage/migration-tracker/internal/constants"
	"github.com/yukikurage/migration-tracker/internal/dto"
	apierrors "github.com/yukikurage/migration-tracker/internal/errors"
	"github.com/yukikurage/migration-tracker/internal/middleware"
	"github.com/yukikurage/migration-tracker/internal/services"
	"github.com/yukikurage/migration-tracker/internal/utils"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// ListProjects returns the recency-first page of projects matching the
// search, status and method query filters
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	projects, total, err := h.projectService.ListProjects(services.ListProjectsInput{
		Filter: analytics.ProjectFilter{
			Search: c.Query("search"),
			Status: c.Query("status"),
			Method: c.Query("method"),
		},
		Pagination: params,
	})
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectListResponse(projects, params, total))
}

// GetProject returns a specific project
// Project is already loaded by RequireProject middleware
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// GetPerformance returns the estimate, deadline and actual duration panel
func (h *ProjectHandler) GetPerformance(c *gin.Context) {
	project, perf, err := h.projectService.ProjectPerformance(c.Param("id"))
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProjectPerformanceResponse{
		Project:     dto.ToProjectDTO(*project),
		Performance: perf,
	})
}

// NextID previews the id the next created project would receive
func (h *ProjectHandler) NextID(c *gin.Context) {
	id, err := h.projectService.NextProjectID()
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// CreateProject creates a new project
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	type CreateProjectRequest struct {
		Name            string   `json:"name" binding:"required"`
		StartDate       *string  `json:"start_date"`
		DueDate         *string  `json:"due_date"`
		EndDate         *string  `json:"end_date"`
		EstimatedDays   *int     `json:"estimated_days"`
		MigrationMethod string   `json:"migration_method"`
		BackupReceived  bool     `json:"backup_received"`
		Difficulties    string   `json:"difficulties"`
		Notes           string   `json:"notes"`
		Assignees       []string `json:"assignees"`
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.CreateProject(services.CreateProjectInput{
		Name:            req.Name,
		StartDate:       req.StartDate,
		DueDate:         req.DueDate,
		EndDate:         req.EndDate,
		EstimatedDays:   req.EstimatedDays,
		MigrationMethod: req.MigrationMethod,
		BackupReceived:  req.BackupReceived,
		Difficulties:    req.Difficulties,
		Notes:           req.Notes,
		Assignees:       req.Assignees,
	})
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectDTO(*project))
}

// UpdateProject updates the fields present in the body. A date sent as
// null or "" is cleared.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}

	// Parse raw JSON to detect which fields were sent
	var rawReq map[string]any
	if err := c.ShouldBindJSON(&rawReq); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input, err := parseUpdateProject(rawReq)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	updated, err := h.projectService.UpdateProject(project.ID, input)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*updated))
}

// DeleteProject deletes a project
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.projectService.DeleteProject(c.Param("id")); err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project deleted successfully",
	})
}

// ClassifyDifficulty returns the difficulty tier for ?estimated_days=N
func (h *ProjectHandler) ClassifyDifficulty(c *gin.Context) {
	days, err := strconv.Atoi(c.Query("estimated_days"))
	if err != nil {
		apierrors.BadRequest(c, "estimated_days must be an integer")
		return
	}

	c.JSON(http.StatusOK, analytics.ClassifyDifficulty(days))
}

func parseUpdateProject(raw map[string]any) (services.UpdateProjectInput, error) {
	var input services.UpdateProjectInput

	for key, value := range raw {
		var err error
		switch key {
		case "name":
			input.Name, err = stringField(key, value)
		case "migration_method":
			input.MigrationMethod, err = stringField(key, value)
		case "difficulties":
			input.Difficulties, err = stringField(key, value)
		case "notes":
			input.Notes, err = stringField(key, value)
		case "start_date":
			input.StartDate, input.ClearStartDate, err = dateField(key, value)
		case "due_date":
			input.DueDate, input.ClearDueDate, err = dateField(key, value)
		case "end_date":
			input.EndDate, input.ClearEndDate, err = dateField(key, value)
		case "estimated_days":
			n, ok := value.(float64)
			if !ok || n != math.Trunc(n) {
				err = fmt.Errorf("%s must be an integer", key)
			} else {
				days := int(n)
				input.EstimatedDays = &days
			}
		case "backup_received":
			b, ok := value.(bool)
			if !ok {
				err = fmt.Errorf("%s must be a boolean", key)
			} else {
				input.BackupReceived = &b
			}
		case "assignees":
			var assignees []string
			assignees, err = stringListField(key, value)
			input.Assignees = &assignees
		}
		if err != nil {
			return services.UpdateProjectInput{}, err
		}
	}

	return input, nil
}

func stringField(key string, value any) (*string, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%s must be a string", key)
	}
	return &s, nil
}

func dateField(key string, value any) (*string, bool, error) {
	if value == nil {
		return nil, true, nil
	}
	s, ok := value.(string)
	if !ok {
		return nil, false, fmt.Errorf("%s must be a YYYY-MM-DD string or null", key)
	}
	if strings.TrimSpace(s) == "" {
		return nil, true, nil
	}
	return &s, false, nil
}

func stringListField(key string, value any) ([]string, error) {
	if value == nil {
		return []string{}, nil
	}
	items, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%s must be a list of usernames", key)
	}
	result := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%s must be a list of usernames", key)
		}
		result = append(result, s)
	}
	return result, nil
}

func respondProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, "Project not found")
	case errors.Is(err, services.ErrInvalidDate):
		apierrors.InvalidDate(c, err.Error())
	case errors.Is(err, services.ErrInvalidEstimatedDays):
		apierrors.BadRequest(c, fmt.Sprintf("estimated_days must be between %d and %d", constants.MinEstimatedDays, constants.MaxEstimatedDays))
	case errors.Is(err, services.ErrNameRequired),
		errors.Is(err, services.ErrNameTooLong),
		errors.Is(err, services.ErrInvalidAssignee):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrIDAllocationFailed):
		apierrors.Conflict(c, err.Error())
	default:
		_ = c.Error(err)
		apierrors.InternalError(c, "Internal server error")
	}
}
