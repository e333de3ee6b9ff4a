package dto

import (
	"time"

	"github.com/yukikurage/migration-tracker/internal/analytics"
	"github.com/yukikurage/migration-tracker/internal/models"
	"github.com/yukikurage/migration-tracker/internal/utils"
)

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	StartDate       *string              `json:"start_date"`
	DueDate         *string              `json:"due_date"`
	EndDate         *string              `json:"end_date"`
	EstimatedDays   int                  `json:"estimated_days"`
	MigrationMethod string               `json:"migration_method"`
	BackupReceived  bool                 `json:"backup_received"`
	Difficulties    string               `json:"difficulties"`
	Notes           string               `json:"notes"`
	Status          models.ProjectStatus `json:"status"`
	StatusColor     string               `json:"status_color"`
	Difficulty      analytics.Difficulty `json:"difficulty"`
	Assignees       []string             `json:"assignees"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// ProjectListResponse represents a paginated list of projects
type ProjectListResponse struct {
	Projects   []ProjectDTO             `json:"projects"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ProjectPerformanceResponse pairs a project with its performance panel
type ProjectPerformanceResponse struct {
	Project     ProjectDTO            `json:"project"`
	Performance analytics.Performance `json:"performance"`
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		ID:              project.ID,
		Name:            project.Name,
		StartDate:       project.StartDate,
		DueDate:         project.DueDate,
		EndDate:         project.EndDate,
		EstimatedDays:   project.EstimatedDays,
		MigrationMethod: project.MigrationMethod,
		BackupReceived:  project.BackupReceived,
		Difficulties:    project.Difficulties,
		Notes:           project.Notes,
		Status:          project.Status,
		StatusColor:     analytics.StatusColor(project.Status),
		Difficulty:      analytics.ClassifyDifficulty(project.EstimatedDays),
		Assignees:       project.AssigneeUsernames(),
		CreatedAt:       project.CreatedAt,
		UpdatedAt:       project.UpdatedAt,
	}
}

// ToProjectListResponse converts a page of projects to ProjectListResponse
func ToProjectListResponse(projects []models.Project, params utils.PaginationParams, total int64) ProjectListResponse {
	items := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		items[i] = ToProjectDTO(project)
	}

	return ProjectListResponse{
		Projects: items,
		Pagination: utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	}
}
