package analytics

import (
	"strings"
	"time"

	"github.com/yukikurage/migration-tracker/internal/datemath"
	"github.com/yukikurage/migration-tracker/internal/models"
)

// ComputeStatus derives the lifecycle status of a project from its dates.
// Rules are evaluated in order and the first match wins:
//
//  1. end date set: Completed Late when it is after the due date, else Completed
//  2. no start date, or start date after today: Not Started
//  3. today after the due date: Late
//  4. otherwise: In Progress
//
// A date that fails to parse is treated as absent for the rule reading it.
func ComputeStatus(p models.Project, today time.Time) models.ProjectStatus {
	due, hasDue := datemath.ParseOptional(p.DueDate)

	if isSet(p.EndDate) {
		end, hasEnd := datemath.ParseOptional(p.EndDate)
		if hasEnd && hasDue && end.After(due) {
			return models.ProjectStatusCompletedLate
		}
		return models.ProjectStatusCompleted
	}

	if !isSet(p.StartDate) {
		return models.ProjectStatusNotStarted
	}
	if start, ok := datemath.ParseOptional(p.StartDate); ok && start.After(today) {
		return models.ProjectStatusNotStarted
	}

	if hasDue && today.After(due) {
		return models.ProjectStatusLate
	}

	return models.ProjectStatusInProgress
}

// RecomputeStatus overwrites p.Status with the derived status. Every write
// path must call it on the merged record before persisting.
func RecomputeStatus(p *models.Project, today time.Time) models.ProjectStatus {
	p.Status = ComputeStatus(*p, today)
	return p.Status
}

// IsActive reports whether a status counts toward team load.
func IsActive(status models.ProjectStatus) bool {
	return status == models.ProjectStatusNotStarted || status == models.ProjectStatusInProgress
}

// IsCompleted reports whether a status is one of the completion statuses.
func IsCompleted(status models.ProjectStatus) bool {
	return strings.Contains(string(status), string(models.ProjectStatusCompleted))
}

func isSet(value *string) bool {
	return value != nil && strings.TrimSpace(*value) != ""
}
