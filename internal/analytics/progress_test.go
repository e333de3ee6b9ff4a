package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/migration-tracker/internal/models"
)

func TestComputeProgress(t *testing.T) {
	today := mustDay("2024-01-11")

	projects := []models.Project{
		{ID: "done", Name: "Done", EndDate: date("2024-01-05")},
		{ID: "half", Name: "Half way", StartDate: date("2024-01-01"), DueDate: date("2024-01-21")},
		{ID: "overdue", Name: "Overdue", StartDate: date("2023-12-01"), DueDate: date("2023-12-31")},
		{ID: "future", Name: "Future", StartDate: date("2024-02-01"), DueDate: date("2024-03-01")},
		{ID: "no-due", Name: "A very long migration project name indeed", StartDate: date("2024-01-01")},
		{ID: "zero-span", Name: "Zero", StartDate: date("2024-01-01"), DueDate: date("2024-01-01")},
	}

	got := ComputeProgress(projects, today)

	require.Len(t, got, 6)
	assert.Equal(t, 100.0, got[0].Progress)
	assert.Equal(t, models.ProjectStatusCompleted, got[0].Status)
	assert.Equal(t, 50.0, got[1].Progress)
	assert.Equal(t, 100.0, got[2].Progress)
	assert.Equal(t, ColorRed, got[2].StatusColor)
	assert.Equal(t, 0.0, got[3].Progress)
	assert.Equal(t, 50.0, got[4].Progress)
	assert.Equal(t, "A very long migration project ...", got[4].Name)
	assert.Equal(t, 0.0, got[5].Progress)
}

func TestComputeProgress_Limit(t *testing.T) {
	projects := make([]models.Project, 15)
	for i := range projects {
		projects[i] = models.Project{ID: fmt.Sprintf("P%d", i)}
	}

	got := ComputeProgress(projects, mustDay("2024-01-01"))

	require.Len(t, got, ChartProjectLimit)
	assert.Equal(t, "P0", got[0].ID)
	assert.Equal(t, "P9", got[9].ID)
}

func TestBuildTimeline(t *testing.T) {
	today := mustDay("2024-01-11")

	projects := []models.Project{
		{ID: "a", Name: "A", StartDate: date("2024-01-01"), DueDate: date("2024-01-31"), EndDate: date("2024-01-20")},
		{ID: "b", Name: "B", StartDate: date("2024-01-01")},
		{ID: "c", Name: "C", StartDate: date("bad"), DueDate: date("2024-01-31")},
		{ID: "d", Name: "D", StartDate: date("2024-01-05"), DueDate: date("2024-01-10")},
	}

	got := BuildTimeline(projects, today)

	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, 30, got[0].SpanDays)
	require.NotNil(t, got[0].EndDate)
	assert.Equal(t, "2024-01-20", *got[0].EndDate)
	assert.Equal(t, "d", got[1].ID)
	assert.Nil(t, got[1].EndDate)
	assert.Equal(t, models.ProjectStatusLate, got[1].Status)
}

func TestBuildTimeline_Limit(t *testing.T) {
	projects := make([]models.Project, 12)
	for i := range projects {
		projects[i] = models.Project{ID: fmt.Sprintf("P%d", i), StartDate: date("2024-01-01"), DueDate: date("2024-02-01")}
	}

	assert.Len(t, BuildTimeline(projects, mustDay("2024-01-15")), ChartProjectLimit)
}
