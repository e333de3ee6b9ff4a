package analytics

import "github.com/yukikurage/migration-tracker/internal/models"

// Color tokens shared by difficulty tiers, load levels and statuses.
const (
	ColorGreen  = "#64ffda"
	ColorYellow = "#ffd93d"
	ColorRed    = "#ff6b6b"
	ColorPurple = "#a855f7"
	ColorGray   = "#8892b0"
)

var statusColors = map[models.ProjectStatus]string{
	models.ProjectStatusNotStarted:    ColorGray,
	models.ProjectStatusInProgress:    ColorYellow,
	models.ProjectStatusLate:          ColorRed,
	models.ProjectStatusCompleted:     ColorGreen,
	models.ProjectStatusCompletedLate: ColorPurple,
}

// StatusColor returns the display color for a status.
func StatusColor(status models.ProjectStatus) string {
	if c, ok := statusColors[status]; ok {
		return c
	}
	return ColorGray
}
