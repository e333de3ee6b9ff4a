package models

import "time"

type ProjectStatus string

const (
	ProjectStatusNotStarted    ProjectStatus = "Not Started"
	ProjectStatusInProgress    ProjectStatus = "In Progress"
	ProjectStatusLate          ProjectStatus = "Late"
	ProjectStatusCompleted     ProjectStatus = "Completed"
	ProjectStatusCompletedLate ProjectStatus = "Completed Late"
)

// Recommended migration methods. Any other non-empty string is accepted.
const (
	MigrationMethodScript       = "Script"
	MigrationMethodManual       = "Manual"
	MigrationMethodManualScript = "Manual+Script"
)

// MigrationMethods lists the recommended methods in display order.
var MigrationMethods = []string{
	MigrationMethodScript,
	MigrationMethodManual,
	MigrationMethodManualScript,
}

// Project is a data-migration engagement. Dates are stored as YYYY-MM-DD
// strings; Status is always derived from the other fields on write.
type Project struct {
	ID              string        `gorm:"primarykey;type:varchar(20)" json:"id"`
	Name            string        `gorm:"type:varchar(255);not null" json:"name"`
	StartDate       *string       `gorm:"type:varchar(10)" json:"start_date"`
	DueDate         *string       `gorm:"type:varchar(10)" json:"due_date"`
	EndDate         *string       `gorm:"type:varchar(10)" json:"end_date"`
	EstimatedDays   int           `gorm:"not null;default:30" json:"estimated_days"`
	MigrationMethod string        `gorm:"type:varchar(50);not null" json:"migration_method"`
	BackupReceived  bool          `gorm:"not null" json:"backup_received"`
	Difficulties    string        `gorm:"type:text" json:"difficulties"`
	Notes           string        `gorm:"type:text" json:"notes"`
	Status          ProjectStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`

	// Relations
	Assignees []ProjectAssignee `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"assignees,omitempty"`
}

// AssigneeUsernames returns the usernames assigned to the project.
func (p Project) AssigneeUsernames() []string {
	usernames := make([]string, len(p.Assignees))
	for i, a := range p.Assignees {
		usernames[i] = a.Username
	}
	return usernames
}
