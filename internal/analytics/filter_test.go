package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yukikurage/migration-tracker/internal/models"
)

func TestFilterProjects(t *testing.T) {
	today := mustDay("2024-06-01")

	projects := []models.Project{
		{ID: "MIG-2024-001", Name: "Alpha server", MigrationMethod: "Script", StartDate: date("2024-01-01"), EndDate: date("2024-02-01")},
		{ID: "MIG-2024-002", Name: "Beta", MigrationMethod: "Manual", StartDate: date("2024-01-01"), DueDate: date("2024-01-10"), EndDate: date("2024-02-01")},
		{ID: "MIG-2024-003", Name: "Gamma", MigrationMethod: "Manual", StartDate: date("2024-01-01"), DueDate: date("2024-05-01")},
		{ID: "MIG-2024-004", Name: "alphabet", MigrationMethod: "Manual+Script", StartDate: date("2024-05-01")},
	}

	ids := func(ps []models.Project) []string {
		out := make([]string, len(ps))
		for i, p := range ps {
			out[i] = p.ID
		}
		return out
	}

	assert.Len(t, FilterProjects(projects, ProjectFilter{}, today), 4)
	assert.Equal(t, []string{"MIG-2024-001", "MIG-2024-004"}, ids(FilterProjects(projects, ProjectFilter{Search: "ALPHA"}, today)))
	assert.Equal(t, []string{"MIG-2024-003"}, ids(FilterProjects(projects, ProjectFilter{Search: "-003"}, today)))
	assert.Equal(t, []string{"MIG-2024-001", "MIG-2024-002"}, ids(FilterProjects(projects, ProjectFilter{Status: "Completed"}, today)))
	assert.Equal(t, []string{"MIG-2024-003"}, ids(FilterProjects(projects, ProjectFilter{Status: "Late"}, today)))
	assert.Equal(t, []string{"MIG-2024-002", "MIG-2024-003"}, ids(FilterProjects(projects, ProjectFilter{Method: "Manual"}, today)))
	assert.Empty(t, FilterProjects(projects, ProjectFilter{Search: "beta", Method: "Script"}, today))
}
