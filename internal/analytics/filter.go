package analytics

import (
	"strings"
	"time"

	"github.com/yukikurage/migration-tracker/internal/models"
)

// ProjectFilter narrows a project list. Empty fields match everything.
type ProjectFilter struct {
	// Search matches the id or name, case-insensitively.
	Search string
	// Status matches statuses starting with it, so "Completed" also
	// matches "Completed Late" while "Late" does not.
	Status string
	// Method matches the migration method exactly.
	Method string
}

// FilterProjects returns the projects matching f, keeping input order.
// Status is matched against the status recomputed for today.
func FilterProjects(projects []models.Project, f ProjectFilter, today time.Time) []models.Project {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	result := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.ID), search) {
			continue
		}
		if f.Status != "" && !strings.HasPrefix(string(ComputeStatus(p, today)), f.Status) {
			continue
		}
		if f.Method != "" && p.MigrationMethod != f.Method {
			continue
		}
		result = append(result, p)
	}
	return result
}
