package analytics

import (
	"time"

	"github.com/yukikurage/migration-tracker/internal/models"
)

type LoadLevel string

const (
	LoadCalm       LoadLevel = "Calm"
	LoadBusy       LoadLevel = "Busy"
	LoadOverloaded LoadLevel = "Overloaded"
)

// TeamLoad is the capacity signal derived from active projects.
type TeamLoad struct {
	Status           LoadLevel `json:"status"`
	Color            string    `json:"color"`
	ActiveProjects   int       `json:"active_projects"`
	HardProjects     int       `json:"hard_projects"`
	ModerateProjects int       `json:"moderate_projects"`
	LightProjects    int       `json:"light_projects"`
	TotalWeight      float64   `json:"total_weight"`
	Description      string    `json:"description"`
}

// Weights are kept in tenths so that boundary comparisons are exact.
const (
	hardWeightTenths     = 15
	moderateWeightTenths = 12
	lightWeightTenths    = 10

	calmMaxTenths = 20
	busyMaxTenths = 30
)

// loadWeight uses the same band edges as difficultyBands on purpose but is
// a separate table: changing one must not change the other.
func loadWeight(estimatedDays int) (tenths int, tier DifficultyTier) {
	switch {
	case estimatedDays >= 25:
		return hardWeightTenths, TierHard
	case estimatedDays >= 16:
		return moderateWeightTenths, TierModerate
	default:
		return lightWeightTenths, TierLight
	}
}

var loadLevels = map[LoadLevel]struct {
	color       string
	description string
}{
	LoadCalm:       {ColorGreen, "Team has room for new projects"},
	LoadBusy:       {ColorYellow, "Team is working at its limit"},
	LoadOverloaded: {ColorRed, "Attention! Team is overloaded"},
}

// ComputeTeamLoad weighs every active project (Not Started or In Progress,
// recomputed against today) and classifies the total: up to 2.0 is Calm,
// up to 3.0 is Busy and anything above is Overloaded.
func ComputeTeamLoad(projects []models.Project, today time.Time) TeamLoad {
	var load TeamLoad
	totalTenths := 0

	for _, p := range projects {
		if !IsActive(ComputeStatus(p, today)) {
			continue
		}
		load.ActiveProjects++

		tenths, tier := loadWeight(p.EstimatedDays)
		totalTenths += tenths
		switch tier {
		case TierHard:
			load.HardProjects++
		case TierModerate:
			load.ModerateProjects++
		default:
			load.LightProjects++
		}
	}

	switch {
	case totalTenths <= calmMaxTenths:
		load.Status = LoadCalm
	case totalTenths <= busyMaxTenths:
		load.Status = LoadBusy
	default:
		load.Status = LoadOverloaded
	}

	level := loadLevels[load.Status]
	load.Color = level.color
	load.Description = level.description
	load.TotalWeight = float64(totalTenths) / 10

	return load
}
