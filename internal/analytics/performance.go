package analytics

import (
	"time"

	"github.com/yukikurage/migration-tracker/internal/datemath"
	"github.com/yukikurage/migration-tracker/internal/models"
)

// Performance compares a project's estimate, deadline window and actual
// (or elapsed) duration.
type Performance struct {
	EstimatedDays int    `json:"estimated_days"`
	DeadlineDays  int    `json:"deadline_days"`
	ActualDays    int    `json:"actual_days"`
	Elapsed       bool   `json:"elapsed"`
	MarginDays    int    `json:"margin_days"`
	ActualColor   string `json:"actual_color"`
	MarginColor   string `json:"margin_color"`
}

// ComputePerformance derives the performance panel of a single project.
// DeadlineDays is due - start and ActualDays is end - start, using today
// when the project has no end date (Elapsed is then true). Missing dates
// count as zero days.
func ComputePerformance(p models.Project, today time.Time) Performance {
	perf := Performance{
		EstimatedDays: p.EstimatedDays,
		Elapsed:       !isSet(p.EndDate),
	}

	start, hasStart := datemath.ParseOptional(p.StartDate)
	if hasStart {
		if due, ok := datemath.ParseOptional(p.DueDate); ok {
			perf.DeadlineDays = datemath.DaysBetween(start, due)
		}

		end := today
		if !perf.Elapsed {
			parsed, ok := datemath.ParseOptional(p.EndDate)
			if ok {
				end = parsed
			} else {
				end = start
			}
		}
		perf.ActualDays = datemath.DaysBetween(start, end)
	}

	perf.MarginDays = perf.DeadlineDays - perf.ActualDays

	switch {
	case perf.ActualDays <= perf.EstimatedDays:
		perf.ActualColor = ColorGreen
	case perf.ActualDays <= perf.DeadlineDays:
		perf.ActualColor = ColorYellow
	default:
		perf.ActualColor = ColorRed
	}

	perf.MarginColor = ColorGreen
	if perf.MarginDays < 0 {
		perf.MarginColor = ColorRed
	}

	return perf
}
