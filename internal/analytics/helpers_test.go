package analytics

import (
	"time"

	"github.com/yukikurage/migration-tracker/internal/datemath"
	"github.com/yukikurage/migration-tracker/internal/models"
)

func date(s string) *string { return &s }

func mustDay(s string) time.Time {
	d, err := datemath.Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// activeProject is in progress on any today after 2020-01-01 and before 2999.
func activeProject(id string, estimatedDays int) models.Project {
	return models.Project{
		ID:            id,
		Name:          "Project " + id,
		StartDate:     date("2020-01-01"),
		DueDate:       date("2999-12-31"),
		EstimatedDays: estimatedDays,
	}
}
