package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yukikurage/migration-tracker/internal/analytics"
	"github.com/yukikurage/migration-tracker/internal/models"
	"github.com/yukikurage/migration-tracker/internal/utils"
)

func TestToProjectDTO(t *testing.T) {
	project := models.Project{
		ID:            "MIG-2024-001",
		Name:          "Payroll",
		EstimatedDays: 20,
		Status:        models.ProjectStatusLate,
		Assignees:     []models.ProjectAssignee{{ProjectID: "MIG-2024-001", Username: "ana"}},
	}

	dto := ToProjectDTO(project)

	assert.Equal(t, analytics.TierModerate, dto.Difficulty.Tier)
	assert.Equal(t, analytics.ColorRed, dto.StatusColor)
	assert.Equal(t, []string{"ana"}, dto.Assignees)
}

func TestToProjectListResponse(t *testing.T) {
	resp := ToProjectListResponse(nil, utils.NewPaginationParams(2, 10), 12)

	assert.NotNil(t, resp.Projects)
	assert.Empty(t, resp.Projects)
	assert.Equal(t, utils.PaginationResponse{Page: 2, Limit: 10, Total: 12}, resp.Pagination)
}
