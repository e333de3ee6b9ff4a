package analytics

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/yukikurage/migration-tracker/internal/datemath"
	"github.com/yukikurage/migration-tracker/internal/models"
)

const (
	// UndefinedMethod buckets projects without a migration method.
	UndefinedMethod = "Undefined"

	difficultyKeyLength = 50
	topDifficultyLimit  = 5
	defaultEfficiency   = 100.0
)

// DifficultyCount is one row of the most common difficulties table.
type DifficultyCount struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

// Statistics are the dashboard-wide metrics.
type Statistics struct {
	Total             int               `json:"total"`
	Completed         int               `json:"completed"`
	Late              int               `json:"late"`
	InProgress        int               `json:"in_progress"`
	NotStarted        int               `json:"not_started"`
	AverageDays       float64           `json:"average_days"`
	AverageEfficiency float64           `json:"average_efficiency"`
	CompletionRate    float64           `json:"completion_rate"`
	Methods           map[string]int    `json:"methods"`
	TopDifficulties   []DifficultyCount `json:"top_difficulties"`
}

// ComputeStatistics aggregates all projects in a single pass.
//
// Durations are measured over projects with parseable start and end dates
// and are floored at one day. With no such project the average duration is
// 0 and the average efficiency is 100. Difficulty texts are trimmed and
// grouped on their first 50 characters; the five most frequent are kept,
// ties in first-seen order.
func ComputeStatistics(projects []models.Project, today time.Time) Statistics {
	stats := Statistics{
		Total:           len(projects),
		Methods:         make(map[string]int),
		TopDifficulties: []DifficultyCount{},
	}

	var (
		totalDays       int
		totalEfficiency float64
		measured        int
	)
	difficultyIndex := make(map[string]int)

	for _, p := range projects {
		status := ComputeStatus(p, today)
		switch {
		case IsCompleted(status):
			stats.Completed++
		case status == models.ProjectStatusLate:
			stats.Late++
		case status == models.ProjectStatusInProgress:
			stats.InProgress++
		case status == models.ProjectStatusNotStarted:
			stats.NotStarted++
		}

		if days, ok := actualDays(p); ok {
			totalDays += days
			totalEfficiency += float64(p.EstimatedDays)/float64(days)*100
			measured++
		}

		method := strings.TrimSpace(p.MigrationMethod)
		if method == "" {
			method = UndefinedMethod
		}
		stats.Methods[method]++

		if key := difficultyKey(p.Difficulties); key != "" {
			if i, ok := difficultyIndex[key]; ok {
				stats.TopDifficulties[i].Count++
			} else {
				difficultyIndex[key] = len(stats.TopDifficulties)
				stats.TopDifficulties = append(stats.TopDifficulties, DifficultyCount{Text: key, Count: 1})
			}
		}
	}

	stats.AverageEfficiency = defaultEfficiency
	if measured > 0 {
		stats.AverageDays = round1(float64(totalDays) / float64(measured))
		stats.AverageEfficiency = round1(totalEfficiency / float64(measured))
	}
	if stats.Total > 0 {
		stats.CompletionRate = round1(float64(stats.Completed) / float64(stats.Total) * 100)
	}

	sort.SliceStable(stats.TopDifficulties, func(i, j int) bool {
		return stats.TopDifficulties[i].Count > stats.TopDifficulties[j].Count
	})
	if len(stats.TopDifficulties) > topDifficultyLimit {
		stats.TopDifficulties = stats.TopDifficulties[:topDifficultyLimit]
	}

	return stats
}

// actualDays is end - start, floored at one day.
func actualDays(p models.Project) (int, bool) {
	if !isSet(p.EndDate) || !isSet(p.StartDate) {
		return 0, false
	}
	start, ok := datemath.ParseOptional(p.StartDate)
	if !ok {
		return 0, false
	}
	end, ok := datemath.ParseOptional(p.EndDate)
	if !ok {
		return 0, false
	}
	days := datemath.DaysBetween(start, end)
	if days < 1 {
		days = 1
	}
	return days, true
}

func difficultyKey(text string) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) > difficultyKeyLength {
		return string(runes[:difficultyKeyLength])
	}
	return text
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
