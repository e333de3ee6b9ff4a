package analytics

import (
	"time"

	"github.com/yukikurage/migration-tracker/internal/datemath"
	"github.com/yukikurage/migration-tracker/internal/models"
)

const (
	// ChartProjectLimit caps the progress and timeline charts.
	ChartProjectLimit = 10

	progressNameLength = 30
	unknownProgress    = 50.0
)

// ProjectProgress is one bar of the progress chart.
type ProjectProgress struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Progress    float64              `json:"progress"`
	Status      models.ProjectStatus `json:"status"`
	StatusColor string               `json:"status_color"`
	DueDate     *string              `json:"due_date"`
}

// TimelineEntry is one bar of the timeline chart.
type TimelineEntry struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	StartDate   string               `json:"start_date"`
	DueDate     string               `json:"due_date"`
	EndDate     *string              `json:"end_date,omitempty"`
	SpanDays    int                  `json:"span_days"`
	Status      models.ProjectStatus `json:"status"`
	StatusColor string               `json:"status_color"`
}

// ComputeProgress reports schedule progress for the first ChartProjectLimit
// projects, in input order. A finished project is at 100%; a project with a
// start and due date is at the elapsed share of that window, clamped to
// 0..100; anything else is reported at 50%.
func ComputeProgress(projects []models.Project, today time.Time) []ProjectProgress {
	n := min(len(projects), ChartProjectLimit)
	result := make([]ProjectProgress, 0, n)

	for _, p := range projects[:n] {
		status := ComputeStatus(p, today)
		result = append(result, ProjectProgress{
			ID:          p.ID,
			Name:        shortenName(p.Name, progressNameLength),
			Progress:    round1(scheduleProgress(p, today)),
			Status:      status,
			StatusColor: StatusColor(status),
			DueDate:     p.DueDate,
		})
	}

	return result
}

func scheduleProgress(p models.Project, today time.Time) float64 {
	if isSet(p.EndDate) {
		return 100
	}
	start, okStart := datemath.ParseOptional(p.StartDate)
	due, okDue := datemath.ParseOptional(p.DueDate)
	if !okStart || !okDue {
		return unknownProgress
	}

	span := datemath.DaysBetween(start, due)
	if span <= 0 {
		return 0
	}
	elapsed := float64(datemath.DaysBetween(start, today)) / float64(span) * 100
	return max(0, min(100, elapsed))
}

// BuildTimeline lists projects that have both a start and a due date, up
// to ChartProjectLimit entries, in input order.
func BuildTimeline(projects []models.Project, today time.Time) []TimelineEntry {
	result := make([]TimelineEntry, 0, ChartProjectLimit)

	for _, p := range projects {
		if len(result) == ChartProjectLimit {
			break
		}
		start, okStart := datemath.ParseOptional(p.StartDate)
		due, okDue := datemath.ParseOptional(p.DueDate)
		if !okStart || !okDue {
			continue
		}

		status := ComputeStatus(p, today)
		entry := TimelineEntry{
			ID:          p.ID,
			Name:        p.Name,
			StartDate:   datemath.Format(start),
			DueDate:     datemath.Format(due),
			SpanDays:    datemath.DaysBetween(start, due),
			Status:      status,
			StatusColor: StatusColor(status),
		}
		if end, ok := datemath.ParseOptional(p.EndDate); ok {
			formatted := datemath.Format(end)
			entry.EndDate = &formatted
		}
		result = append(result, entry)
	}

	return result
}

func shortenName(name string, limit int) string {
	runes := []rune(name)
	if len(runes) <= limit {
		return name
	}
	return string(runes[:limit]) + "..."
}
